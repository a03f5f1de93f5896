// Package style describes how an infographic looks: the colour palette, the
// font family and the optional decorative glyph. A Context is chosen by the
// caller and only ever read by the layout renderers.
package style

import (
	"image/color"
	"strings"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
)

// DefaultFontFamily is used when no font family is selected
const DefaultFontFamily = "Arial"

// Context is the active style of a render
type Context struct {
	Palette    string
	Primary    color.RGBA
	Secondary  color.RGBA
	Accent     color.RGBA
	FontFamily string
	Glyph      string // optional, empty when no glyph is selected
}

// New builds a Context from a palette, a font family and an optional glyph
func New(p Palette, fontFamily, glyph string) (Context, error) {
	primary, secondary, accent, err := p.Colors()
	if err != nil {
		return Context{}, err
	}

	fontFamily = strings.TrimSpace(fontFamily)
	if fontFamily == "" {
		fontFamily = DefaultFontFamily
	}

	return Context{
		Palette:    p.Name,
		Primary:    primary,
		Secondary:  secondary,
		Accent:     accent,
		FontFamily: fontFamily,
		Glyph:      strings.TrimSpace(glyph),
	}, nil
}

// Default returns the style used when nothing is selected
func Default() Context {
	ctx, err := New(DefaultPalette(), DefaultFontFamily, "")
	if err != nil {
		panic(apperrors.Wrap(apperrors.ErrCodeInternal, err, "built-in palette is invalid"))
	}
	return ctx
}

// WithGlyph returns a copy of the context using glyph
func (c Context) WithGlyph(glyph string) Context {
	c.Glyph = strings.TrimSpace(glyph)
	return c
}

// WithFont returns a copy of the context using fontFamily
func (c Context) WithFont(fontFamily string) Context {
	if f := strings.TrimSpace(fontFamily); f != "" {
		c.FontFamily = f
	}
	return c
}
