// Package rendering defines the backend-agnostic scene description: colors,
// paints, text styles, the drawing primitive tree, and the pipeline that
// flattens primitives into a culled display list for a backend to consume.
package rendering

import "fmt"

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromHex creates a color from a 0xAARRGGBB value. A value without
// alpha bits (0xRRGGBB) is opaque.
func ColorFromHex(hex uint32) Color {
	a := uint8(hex >> 24)
	if hex <= 0xFFFFFF {
		a = 255
	}
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: a,
	}
}

// WithAlpha returns the color with a replaced alpha channel.
func (c Color) WithAlpha(alpha uint8) Color {
	c.A = alpha
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = RGBA(0, 0, 0, 0)
)
