package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Template != "auto" || cfg.Size != "800x600" || cfg.Format != "png" {
		t.Errorf("Default() = %+v", cfg)
	}
}

func TestParse(t *testing.T) {
	src := `
template = "timeline"
palette  = "Brand"
font     = "Georgia"
glyph    = "🚀"
size     = "widescreen"
format   = "jpeg"
delay    = "250ms"

[[palettes]]
name      = "Brand"
primary   = "#0f172a"
secondary = "#38bdf8"
accent    = "#0369a1"

[server]
addr = "127.0.0.1:9000"
`
	cfg := Default()
	if err := Parse([]byte(src), &cfg); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Default()
	want.Template = "timeline"
	want.Palette = "Brand"
	want.Font = "Georgia"
	want.Glyph = "🚀"
	want.Size = "widescreen"
	want.Format = "jpeg"
	want.Delay = Duration{250 * time.Millisecond}
	want.Palettes = []style.Palette{{Name: "Brand", Primary: "#0f172a", Secondary: "#38bdf8", Accent: "#0369a1"}}
	want.Server.Addr = "127.0.0.1:9000"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code apperrors.Code
	}{
		{"syntax", `template = `, apperrors.ErrCodeInvalidInput},
		{"unknown key", `colour = "red"`, apperrors.ErrCodeInvalidInput},
		{"unknown template", `template = "venn"`, apperrors.ErrCodeInvalidTemplate},
		{"bad size", `size = "640x480"`, apperrors.ErrCodeInvalidSize},
		{"bad format", `format = "gif"`, apperrors.ErrCodeInvalidFormat},
		{"bad delay", `delay = "soon"`, apperrors.ErrCodeInvalidInput},
		{"negative delay", `delay = "-1s"`, apperrors.ErrCodeInvalidInput},
		{"bad palette", "[[palettes]]\nname = \"x\"\nprimary = \"red\"", apperrors.ErrCodeInvalidPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Parse([]byte(tt.src), &cfg)
			if !apperrors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)

	// missing default file falls back to defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}

	// an explicit missing file is an error
	if _, err := Load(filepath.Join(tmpDir, "missing.toml")); !apperrors.Is(err, apperrors.ErrCodeInvalidPath) {
		t.Errorf("Load(missing) error = %v, want INVALID_PATH", err)
	}

	path := filepath.Join(tmpDir, "custom.toml")
	if err := os.WriteFile(path, []byte(`palette = "Rose Pink"`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Palette != "Rose Pink" || cfg.Format != "png" {
		t.Errorf("Load() = %+v", cfg)
	}

	bad := filepath.Join(tmpDir, "bad.toml")
	if err := os.WriteFile(bad, []byte(`size = "huge"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !apperrors.Is(err, apperrors.ErrCodeInvalidSize) {
		t.Errorf("Load(bad) error = %v, want INVALID_SIZE", err)
	}
}
