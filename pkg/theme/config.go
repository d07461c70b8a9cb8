package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-quill/quill/pkg/rendering"
)

// configVersion is the config schema major version this package reads.
const configVersion = "v1"

// Config represents the optional quill.yaml theme configuration.
type Config struct {
	Version    string       `yaml:"version,omitempty"`
	Brightness string       `yaml:"brightness,omitempty"`
	Colors     ColorsConfig `yaml:"colors"`
	Text       TextConfig   `yaml:"text"`
	Shape      ShapeConfig  `yaml:"shape"`
}

// ColorsConfig contains palette overrides as hex strings, "#RRGGBB" or
// "#AARRGGBB". Empty entries keep the default.
type ColorsConfig struct {
	Background   string `yaml:"background,omitempty"`
	Surface      string `yaml:"surface,omitempty"`
	Primary      string `yaml:"primary,omitempty"`
	OnPrimary    string `yaml:"on_primary,omitempty"`
	OnBackground string `yaml:"on_background,omitempty"`
	OnSurface    string `yaml:"on_surface,omitempty"`
	Outline      string `yaml:"outline,omitempty"`
}

// TextConfig contains text style overrides. Zero sizes keep the default.
type TextConfig struct {
	FontFamily  string  `yaml:"font_family,omitempty"`
	BodySize    float64 `yaml:"body_size,omitempty"`
	TitleSize   float64 `yaml:"title_size,omitempty"`
	CaptionSize float64 `yaml:"caption_size,omitempty"`
}

// ShapeConfig contains surface shape overrides. Absent entries keep the
// default; an explicit zero is a valid override (no rounding, no shadow).
type ShapeConfig struct {
	CornerRadius    *float64 `yaml:"corner_radius,omitempty"`
	ShadowElevation *float64 `yaml:"shadow_elevation,omitempty"`
}

// LoadOptional reads quill.yaml from dir if present. A missing file is
// not an error and yields an empty config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "quill.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read quill.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse quill.yaml: %w", err)
	}
	return &cfg, nil
}

// Load reads quill.yaml from dir and resolves it into a theme. A missing
// file yields the default light theme.
func Load(dir string) (*Theme, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}

// FromConfig resolves a config into a theme, applying overrides on top of
// the defaults for the configured brightness.
func FromConfig(cfg *Config) (*Theme, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var th *Theme
	switch strings.ToLower(strings.TrimSpace(cfg.Brightness)) {
	case "", "light":
		th = DefaultLight()
	case "dark":
		th = DefaultDark()
	default:
		return nil, fmt.Errorf("unknown brightness %q (want light or dark)", cfg.Brightness)
	}

	overrides := []struct {
		value string
		dst   *rendering.Color
	}{
		{cfg.Colors.Background, &th.ColorScheme.Background},
		{cfg.Colors.Surface, &th.ColorScheme.Surface},
		{cfg.Colors.Primary, &th.ColorScheme.Primary},
		{cfg.Colors.OnPrimary, &th.ColorScheme.OnPrimary},
		{cfg.Colors.OnBackground, &th.ColorScheme.OnBackground},
		{cfg.Colors.OnSurface, &th.ColorScheme.OnSurface},
		{cfg.Colors.Outline, &th.ColorScheme.Outline},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		color, err := ParseColor(o.value)
		if err != nil {
			return nil, err
		}
		*o.dst = color
	}

	if family := strings.TrimSpace(cfg.Text.FontFamily); family != "" {
		th.TextTheme.Body.FontFamily = family
		th.TextTheme.Title.FontFamily = family
		th.TextTheme.Caption.FontFamily = family
	}
	if cfg.Text.BodySize > 0 {
		th.TextTheme.Body.FontSize = cfg.Text.BodySize
	}
	if cfg.Text.TitleSize > 0 {
		th.TextTheme.Title.FontSize = cfg.Text.TitleSize
	}
	if cfg.Text.CaptionSize > 0 {
		th.TextTheme.Caption.FontSize = cfg.Text.CaptionSize
	}

	if r := cfg.Shape.CornerRadius; r != nil {
		if *r < 0 {
			return nil, fmt.Errorf("negative corner_radius %v", *r)
		}
		th.ShapeTheme.CornerRadius = *r
	}
	if elev := cfg.Shape.ShadowElevation; elev != nil {
		if *elev < 0 {
			return nil, fmt.Errorf("negative shadow_elevation %v", *elev)
		}
		th.ShapeTheme.ShadowElevation = *elev
	}
	return th, nil
}

// validate checks the schema version. An absent version means current.
func (c *Config) validate() error {
	version := strings.TrimSpace(c.Version)
	if version == "" {
		return nil
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid config version %q", c.Version)
	}
	if semver.Major(version) != configVersion {
		return fmt.Errorf("unsupported config version %q (want %s.x)", c.Version, configVersion)
	}
	return nil
}

// ParseColor parses a "#RRGGBB" or "#AARRGGBB" hex string.
func ParseColor(s string) (rendering.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rendering.Color{}, fmt.Errorf("invalid color %q", s)
	}
	// The string length decides whether an alpha channel is present, so
	// build the channels directly; ColorFromHex would misread a zero
	// alpha as absent.
	switch len(hex) {
	case 6:
		return rendering.RGB(uint8(value>>16), uint8(value>>8), uint8(value)), nil
	case 8:
		return rendering.RGBA(uint8(value>>16), uint8(value>>8), uint8(value), uint8(value>>24)), nil
	default:
		return rendering.Color{}, fmt.Errorf("invalid color %q (want #RRGGBB or #AARRGGBB)", s)
	}
}
