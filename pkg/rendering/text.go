package rendering

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-quill/quill/pkg/geometry"
)

// defaultFontSize is used when a text style does not specify a size.
const defaultFontSize = 16

// measureFace is the metrics source for text measurement. The core never
// shapes or rasterizes text; a backend substitutes real faces at draw time.
// Measurement uses the basic bitmap face scaled to the requested size so
// layout stays deterministic in tests.
var measureFace font.Face = basicfont.Face7x13

// fontScale returns the scale factor from the measurement face's natural
// size to the style's font size.
func fontScale(style TextStyle) float64 {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	metrics := measureFace.Metrics()
	natural := float64(metrics.Height.Ceil())
	if natural <= 0 {
		return 1
	}
	return size / natural
}

// MeasureText returns the laid-out size of a single run of text.
func MeasureText(content string, style TextStyle) geometry.Size {
	scale := fontScale(style)
	metrics := measureFace.Metrics()
	height := float64(metrics.Height.Ceil()) * scale
	if content == "" {
		return geometry.Size{Width: 0, Height: height}
	}
	advance := font.MeasureString(measureFace, content)
	width := float64(advance.Ceil()) * scale
	return geometry.Size{Width: width, Height: height}
}

// TextAscent returns the distance from the top of a text run to its baseline.
func TextAscent(style TextStyle) float64 {
	scale := fontScale(style)
	metrics := measureFace.Metrics()
	return float64(metrics.Ascent.Ceil()) * scale
}
