// Package config loads the TOML configuration shared by the CLI and the HTTP
// shell. Command-line flags override file values.
//
//	template     = "auto"
//	palette      = "Forest Green"
//	palette_file = "~/palettes.hcl"
//	font         = "Georgia"
//	size         = "1280x720"
//	format       = "png"
//	delay        = "500ms"
//
//	[[palettes]]
//	name      = "Brand"
//	primary   = "#0f172a"
//	secondary = "#38bdf8"
//	accent    = "#0369a1"
//
//	[server]
//	addr = ":8080"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
	"github.com/ankek/terraform-provider-infographic/internal/renderer"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

// Config holds the defaults of a render
type Config struct {
	Template    string          `toml:"template"`
	Palette     string          `toml:"palette"`
	PaletteFile string          `toml:"palette_file"`
	Font        string          `toml:"font"`
	Glyph       string          `toml:"glyph"`
	Size        string          `toml:"size"`
	Format      string          `toml:"format"`
	Delay       Duration        `toml:"delay"`
	Palettes    []style.Palette `toml:"palettes"`
	Server      Server          `toml:"server"`
}

// Server configures the HTTP shell
type Server struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	MaxRequestBytes int64    `toml:"max_request_bytes"`
}

// Duration is a time.Duration written as a string such as "1.5s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("duration %s is negative", text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Template: catalog.Auto,
		Palette:  style.DefaultPalette().Name,
		Font:     style.DefaultFontFamily,
		Size:     canvas.Standard.String(),
		Format:   string(renderer.FormatPNG),
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{30 * time.Second},
			MaxRequestBytes: 2 << 20,
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/infographic/config.toml, or the platform
// equivalent. It is empty when no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "infographic", "config.toml")
}

// Load reads path on top of the defaults. An empty path means DefaultPath,
// which may be missing; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "failed to read config")
	}

	if err := Parse(data, &cfg); err != nil {
		return Config{}, apperrors.Wrap(apperrors.GetCode(err), err, "%s", path)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg, rejecting unknown keys, and validates the result
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate checks every value that names a catalog entry or preset.
// Palette names are resolved later, once the palette file is loaded.
func (c Config) Validate() error {
	if _, ok := catalog.Resolve(c.Template); !ok {
		return apperrors.New(apperrors.ErrCodeInvalidTemplate, "unknown template %q", c.Template)
	}
	if _, err := canvas.ParseSize(c.Size); err != nil {
		return err
	}
	if _, err := renderer.ParseFormat(c.Format); err != nil {
		return err
	}
	for _, p := range c.Palettes {
		if strings.TrimSpace(p.Name) == "" {
			return apperrors.New(apperrors.ErrCodeInvalidPalette, "palette name cannot be empty")
		}
		if _, _, _, err := p.Colors(); err != nil {
			return err
		}
	}
	return nil
}
