package geometry

// EdgeInsets describes padding or margins on each side of a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll creates insets with the same value on every side.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with the given horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the total horizontal inset.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the total vertical inset.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// ShrinkSize returns the size reduced by the insets, clamped to zero.
func (e EdgeInsets) ShrinkSize(size Size) Size {
	width := size.Width - e.Horizontal()
	if width < 0 {
		width = 0
	}
	height := size.Height - e.Vertical()
	if height < 0 {
		height = 0
	}
	return Size{Width: width, Height: height}
}

// Alignment positions a child box within a container box. The X and Y
// components range from -1 (start) through 0 (center) to +1 (end).
type Alignment struct {
	X float64
	Y float64
}

var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentTopRight     = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft   = Alignment{X: -1, Y: 0}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft   = Alignment{X: -1, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

// Align returns the offset that positions a child of the given size within
// a container of the given size.
func (a Alignment) Align(child Size, container Size) Offset {
	return Offset{
		X: (container.Width - child.Width) * (a.X + 1) / 2,
		Y: (container.Height - child.Height) * (a.Y + 1) / 2,
	}
}
