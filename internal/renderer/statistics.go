package renderer

import (
	"fmt"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

const (
	statsMaxItems = 4
	statsCols     = 2
	statsRows     = 2
	statWidth     = 180.0
	statHeight    = 120.0
	statsTop      = 100.0

	// DefaultStatValue is shown when a stat has no value
	DefaultStatValue = "100%"

	// glyphFamily draws glyphs that have no icon, whatever the style font
	glyphFamily = "serif"
	glyphSize   = 24.0
)

// Statistics draws up to four label/value boxes in a 2x2 grid, with the
// style's glyph under each value when one is set.
type Statistics struct{}

func (Statistics) Render(s canvas.Surface, m *content.Model, st style.Context) {
	spacingX := (float64(s.Width()) - statsCols*statWidth) / (statsCols + 1)
	spacingY := (float64(s.Height()) - statsRows*statHeight - statsTop) / (statsRows + 1)

	drawTitle(s, m.Title(), st, 50)

	for i, stat := range limit(m.Stats(), statsMaxItems) {
		col := i % statsCols
		row := i / statsCols
		x := spacingX + float64(col)*(statWidth+spacingX)
		y := statsTop + spacingY + float64(row)*(statHeight+spacingY)
		cx := x + statWidth/2

		s.FillRect(x, y, statWidth, statHeight, st.Secondary)
		s.StrokeRect(x, y, statWidth, statHeight, st.Primary, 3)

		label := stat.Label
		if label == "" {
			label = fmt.Sprintf("Metric %d", i+1)
		}
		s.SetFont(fontOf(st, 14, true))
		s.Text(label, cx, y+25, canvas.AlignCenter, st.Primary)

		value := stat.Value
		if value == "" {
			value = DefaultStatValue
		}
		s.SetFont(fontOf(st, 20, true))
		s.Text(value, cx, y+55, canvas.AlignCenter, style.TextColor)

		if st.Glyph != "" {
			drawGlyph(s, st.Glyph, cx, y+85)
		}
	}
}

// drawGlyph draws a picker glyph from the icon font, or any other glyph as
// text, centred on x.
func drawGlyph(s canvas.Surface, glyph string, x, y float64) {
	text, family := glyph, glyphFamily
	if icon, ok := style.GlyphIcon(glyph); ok {
		text, family = string(icon), canvas.IconFamily
	}
	s.SetFont(canvas.Font{Family: family, Size: glyphSize})
	s.Text(text, x, y, canvas.AlignCenter, style.TextColor)
}
