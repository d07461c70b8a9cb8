// Package theme provides the ambient color and text configuration widgets
// read through the build context, plus optional file-based overrides.
package theme

import "github.com/go-quill/quill/pkg/rendering"

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is a light theme.
	BrightnessLight Brightness = iota

	// BrightnessDark is a dark theme.
	BrightnessDark
)

// ColorScheme defines the color palette.
type ColorScheme struct {
	Background   rendering.Color
	Surface      rendering.Color
	Primary      rendering.Color
	OnPrimary    rendering.Color
	OnBackground rendering.Color
	OnSurface    rendering.Color
	Outline      rendering.Color
}

// TextTheme defines the standard text styles.
type TextTheme struct {
	Body    rendering.TextStyle
	Title   rendering.TextStyle
	Caption rendering.TextStyle
}

// ShapeTheme defines surface shape parameters.
type ShapeTheme struct {
	// CornerRadius is the default rounding for surfaces, in pixels.
	CornerRadius float64

	// ShadowElevation is the default drop-shadow extent for raised
	// surfaces, in pixels. Zero disables shadows.
	ShadowElevation float64
}

// DefaultShapeTheme returns the default shape parameters.
func DefaultShapeTheme() ShapeTheme {
	return ShapeTheme{
		CornerRadius:    4,
		ShadowElevation: 2,
	}
}

// Theme contains all ambient configuration for a widget tree.
type Theme struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// TextTheme defines text styles.
	TextTheme TextTheme

	// ShapeTheme defines surface shape parameters.
	ShapeTheme ShapeTheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Background:   rendering.ColorFromHex(0xFFFFFBFE),
		Surface:      rendering.ColorFromHex(0xFFFFFBFE),
		Primary:      rendering.ColorFromHex(0xFF6750A4),
		OnPrimary:    rendering.ColorFromHex(0xFFFFFFFF),
		OnBackground: rendering.ColorFromHex(0xFF1C1B1F),
		OnSurface:    rendering.ColorFromHex(0xFF1C1B1F),
		Outline:      rendering.ColorFromHex(0xFF79747E),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Background:   rendering.ColorFromHex(0xFF1C1B1F),
		Surface:      rendering.ColorFromHex(0xFF1C1B1F),
		Primary:      rendering.ColorFromHex(0xFFD0BCFF),
		OnPrimary:    rendering.ColorFromHex(0xFF381E72),
		OnBackground: rendering.ColorFromHex(0xFFE6E1E5),
		OnSurface:    rendering.ColorFromHex(0xFFE6E1E5),
		Outline:      rendering.ColorFromHex(0xFF938F99),
	}
}

// DefaultTextTheme returns the default text styles in the given color.
func DefaultTextTheme(color rendering.Color) TextTheme {
	return TextTheme{
		Body: rendering.TextStyle{
			Color:    color,
			FontSize: 16,
		},
		Title: rendering.TextStyle{
			Color:      color,
			FontSize:   22,
			FontWeight: rendering.FontWeightBold,
		},
		Caption: rendering.TextStyle{
			Color:    color,
			FontSize: 12,
		},
	}
}

// DefaultLight returns the default light theme.
func DefaultLight() *Theme {
	colors := LightColorScheme()
	return &Theme{
		ColorScheme: colors,
		TextTheme:   DefaultTextTheme(colors.OnBackground),
		ShapeTheme:  DefaultShapeTheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDark returns the default dark theme.
func DefaultDark() *Theme {
	colors := DarkColorScheme()
	return &Theme{
		ColorScheme: colors,
		TextTheme:   DefaultTextTheme(colors.OnBackground),
		ShapeTheme:  DefaultShapeTheme(),
		Brightness:  BrightnessDark,
	}
}
