package renderer

import (
	"image/color"
	"math"
	"strings"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

const (
	titleFontSize = 24
	arrowHeadLen  = 15
	arrowWidth    = 3
)

// fontOf returns the style's font family at the given size
func fontOf(st style.Context, size float64, bold bool) canvas.Font {
	return canvas.Font{Family: st.FontFamily, Size: size, Bold: bold}
}

// drawTitle draws the model title centred at baseline y
func drawTitle(s canvas.Surface, title string, st style.Context, y float64) {
	s.SetFont(fontOf(st, titleFontSize, true))
	s.Text(title, float64(s.Width())/2, y, canvas.AlignCenter, st.Primary)
}

// WrapText breaks text into lines no wider than maxWidth using the active
// font, and draws them centred on x with the block vertically centred on y.
// It returns the lines it drew; there is always at least one.
func WrapText(s canvas.Surface, text string, x, y, maxWidth, lineHeight float64, c color.Color) []string {
	lines := wrapLines(s.MeasureText, text, maxWidth)
	startY := y - float64(len(lines)-1)*lineHeight/2
	for i, line := range lines {
		s.Text(line, x, startY+float64(i)*lineHeight, canvas.AlignCenter, c)
	}
	return lines
}

// wrapLines splits text on single spaces and greedily packs words into lines.
// A line only breaks between words, so a word wider than maxWidth gets a line
// of its own.
func wrapLines(measure func(string) float64, text string, maxWidth float64) []string {
	words := strings.Split(text, " ")

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if measure(strings.TrimSpace(candidate)) > maxWidth {
			lines = append(lines, strings.TrimSpace(line))
			line = word
			continue
		}
		line = candidate
	}
	lines = append(lines, strings.TrimSpace(line))

	return lines
}

// Arrow draws a line from (x1, y1) to (x2, y2) with an open head at the
// destination, its two strokes at ±30° from the shaft.
func Arrow(s canvas.Surface, x1, y1, x2, y2 float64, c color.Color) {
	angle := math.Atan2(y2-y1, x2-x1)

	s.Line(x1, y1, x2, y2, c, arrowWidth)
	for _, side := range []float64{-math.Pi / 6, math.Pi / 6} {
		s.Line(x2, y2,
			x2-arrowHeadLen*math.Cos(angle+side),
			y2-arrowHeadLen*math.Sin(angle+side),
			c, arrowWidth)
	}
}

// limit truncates items to the capacity of a layout
func limit[T any](items []T, max int) []T {
	if len(items) > max {
		return items[:max]
	}
	return items
}
