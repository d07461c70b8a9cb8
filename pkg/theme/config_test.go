package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quill/quill/pkg/rendering"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "quill.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := writeConfig(t, `
version: "1.0.0"
brightness: dark
colors:
  primary: "#FF0000"
  on_primary: "#80FFFFFF"
text:
  font_family: Inter
  body_size: 14
`)
	th, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if th.Brightness != BrightnessDark {
		t.Error("expected dark brightness")
	}
	if th.ColorScheme.Primary != rendering.RGB(255, 0, 0) {
		t.Errorf("primary = %v", th.ColorScheme.Primary)
	}
	if th.ColorScheme.OnPrimary.A != 0x80 {
		t.Errorf("on_primary alpha = %d, want 128", th.ColorScheme.OnPrimary.A)
	}
	if th.TextTheme.Body.FontFamily != "Inter" || th.TextTheme.Body.FontSize != 14 {
		t.Errorf("body style = %+v", th.TextTheme.Body)
	}
	// Unset fields keep the dark defaults.
	if th.ColorScheme.Background != DarkColorScheme().Background {
		t.Error("background should keep the dark default")
	}
	if th.TextTheme.Title.FontSize != 22 {
		t.Errorf("title size = %v, want default 22", th.TextTheme.Title.FontSize)
	}
}

func TestLoadAppliesShapeOverrides(t *testing.T) {
	dir := writeConfig(t, `
shape:
  corner_radius: 12
  shadow_elevation: 0
`)
	th, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if th.ShapeTheme.CornerRadius != 12 {
		t.Errorf("corner radius = %v, want 12", th.ShapeTheme.CornerRadius)
	}
	// An explicit zero is an override, not an absent entry.
	if th.ShapeTheme.ShadowElevation != 0 {
		t.Errorf("shadow elevation = %v, want 0", th.ShapeTheme.ShadowElevation)
	}

	if _, err := Load(writeConfig(t, "shape:\n  corner_radius: -1\n")); err == nil {
		t.Error("negative corner radius should be rejected")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "colors: [not a map")
	if _, err := Load(dir); err == nil {
		t.Error("expected a parse error")
	}
}

func TestConfigVersionValidation(t *testing.T) {
	cases := []struct {
		name    string
		version string
		ok      bool
	}{
		{"absent", "", true},
		{"current major", "1.2.3", true},
		{"v prefix", "v1.0.0", true},
		{"future major", "2.0.0", false},
		{"garbage", "latest", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromConfig(&Config{Version: tc.version})
			if tc.ok && err != nil {
				t.Errorf("version %q should be accepted: %v", tc.version, err)
			}
			if !tc.ok && err == nil {
				t.Errorf("version %q should be rejected", tc.version)
			}
		})
	}
}

func TestFromConfigRejectsUnknownBrightness(t *testing.T) {
	if _, err := FromConfig(&Config{Brightness: "dim"}); err == nil {
		t.Error("expected an error for unknown brightness")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want rendering.Color
		ok   bool
	}{
		{"#FF0000", rendering.RGB(255, 0, 0), true},
		{"#80010203", rendering.RGBA(1, 2, 3, 0x80), true},
		{"#00FF0000", rendering.RGBA(255, 0, 0, 0), true},
		{"FF0000", rendering.RGB(255, 0, 0), true},
		{"#F00", rendering.Color{}, false},
		{"#GGGGGG", rendering.Color{}, false},
		{"", rendering.Color{}, false},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseColor(%q): %v", tc.in, err)
			} else if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("ParseColor(%q) should fail", tc.in)
		}
	}
}

func TestDefaultThemesDiffer(t *testing.T) {
	light := DefaultLight()
	dark := DefaultDark()
	if light.ColorScheme.Background == dark.ColorScheme.Background {
		t.Error("light and dark backgrounds should differ")
	}
	if light.TextTheme.Body.Color != light.ColorScheme.OnBackground {
		t.Error("body text should use the on-background color")
	}
}
