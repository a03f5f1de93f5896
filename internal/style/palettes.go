package style

import (
	"image/color"
	"strings"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
)

// Palette is a named set of three colours in hex notation
type Palette struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Primary   string `json:"primary" yaml:"primary" toml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary" toml:"secondary"`
	Accent    string `json:"accent" yaml:"accent" toml:"accent"`
}

// Colors parses the three palette colours
func (p Palette) Colors() (primary, secondary, accent color.RGBA, err error) {
	if primary, err = ParseHex(p.Primary); err != nil {
		return primary, secondary, accent, apperrors.Wrap(apperrors.ErrCodeInvalidPalette, err, "palette %q: primary", p.Name)
	}
	if secondary, err = ParseHex(p.Secondary); err != nil {
		return primary, secondary, accent, apperrors.Wrap(apperrors.ErrCodeInvalidPalette, err, "palette %q: secondary", p.Name)
	}
	if accent, err = ParseHex(p.Accent); err != nil {
		return primary, secondary, accent, apperrors.Wrap(apperrors.ErrCodeInvalidPalette, err, "palette %q: accent", p.Name)
	}
	return primary, secondary, accent, nil
}

var builtinPalettes = []Palette{
	{Name: "Ocean Blue", Primary: "#2563eb", Secondary: "#60a5fa", Accent: "#1d4ed8"},
	{Name: "Forest Green", Primary: "#16a34a", Secondary: "#4ade80", Accent: "#15803d"},
	{Name: "Sunset Orange", Primary: "#ea580c", Secondary: "#fb923c", Accent: "#c2410c"},
	{Name: "Royal Purple", Primary: "#9333ea", Secondary: "#c084fc", Accent: "#7c3aed"},
	{Name: "Rose Pink", Primary: "#e11d48", Secondary: "#fb7185", Accent: "#be123c"},
	{Name: "Neutral Gray", Primary: "#6b7280", Secondary: "#9ca3af", Accent: "#4b5563"},
}

// Palettes returns the built-in palettes
func Palettes() []Palette {
	return append([]Palette{}, builtinPalettes...)
}

// DefaultPalette returns the palette selected when nothing else is
func DefaultPalette() Palette {
	return builtinPalettes[0]
}

// LookupPalette finds a palette by name, case-insensitively. Custom palettes
// are searched first so they can shadow a built-in of the same name.
// An empty name selects the default palette.
func LookupPalette(name string, custom ...Palette) (Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPalette(), nil
	}
	for _, set := range [][]Palette{custom, builtinPalettes} {
		for _, p := range set {
			if strings.EqualFold(p.Name, name) || strings.EqualFold(slug(p.Name), name) {
				return p, nil
			}
		}
	}
	return Palette{}, apperrors.New(apperrors.ErrCodeInvalidPalette, "unknown palette %q", name)
}

// slug turns "Ocean Blue" into "ocean-blue"
func slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
