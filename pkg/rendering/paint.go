package rendering

// Paint describes how a shape is filled or stroked.
type Paint struct {
	Color       Color
	StrokeWidth float64
	AntiAlias   bool
}

// FillPaint creates a solid anti-aliased fill.
func FillPaint(color Color) Paint {
	return Paint{Color: color, StrokeWidth: 1, AntiAlias: true}
}

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// FontStyle represents normal or italic text styles.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
	FontStyle  FontStyle
}
