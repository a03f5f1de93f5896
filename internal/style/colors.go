package style

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// TextColor is the near-black used for body text
var TextColor = color.RGBA{0x33, 0x33, 0x33, 0xff}

// White is the background every render starts from
var White = color.RGBA{0xff, 0xff, 0xff, 0xff}

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseHex parses "#rrggbb" or "#rgb"
func ParseHex(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	// colorful.Hex accepts trailing input, so the whole string is checked first
	if !hexPattern.MatchString(hex) {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: want #rgb or #rrggbb", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// BandColor returns the fill of pyramid band i: hue 200+20i degrees,
// saturation 60%, lightness 70-8i percent.
func BandColor(i int) color.RGBA {
	lightness := 0.70 - 0.08*float64(i)
	if lightness < 0 {
		lightness = 0
	}
	c := colorful.Hsl(200+20*float64(i), 0.60, lightness).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// Hex formats a colour as "#rrggbb"
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
