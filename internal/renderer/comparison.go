package renderer

import (
	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

const (
	comparisonFirstRow  = 130.0
	comparisonRowHeight = 40.0
)

// Comparison column headers
const (
	LeftHeader  = "Option A"
	RightHeader = "Option B"
)

// Comparison splits the items into two bulleted columns, the first half
// (rounded up) on the left.
type Comparison struct{}

func (Comparison) Render(s canvas.Surface, m *content.Model, st style.Context) {
	items := m.Texts()
	split := (len(items) + 1) / 2

	centerX := float64(s.Width()) / 2
	leftX := centerX / 2
	rightX := centerX + centerX/2

	drawTitle(s, m.Title(), st, 50)
	s.Line(centerX, 80, centerX, float64(s.Height())-50, st.Primary, 3)

	drawColumn(s, st, LeftHeader, items[:split], leftX)
	drawColumn(s, st, RightHeader, items[split:], rightX)
}

func drawColumn(s canvas.Surface, st style.Context, header string, items []string, x float64) {
	s.SetFont(fontOf(st, 16, true))
	s.Text(header, x, 100, canvas.AlignCenter, st.Secondary)

	s.SetFont(fontOf(st, 12, false))
	for i, item := range items {
		s.Text(bullet(item), x, comparisonFirstRow+float64(i)*comparisonRowHeight, canvas.AlignCenter, style.TextColor)
	}
}

func bullet(item string) string {
	return "• " + item
}
