package renderer

import (
	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

const (
	timelineMaxItems = 6
	timelineMargin   = 100.0
	eventOffset      = 60.0
	eventWidth       = 120.0
	eventHeight      = 40.0
	markerRadius     = 8.0
)

// Timeline draws a horizontal axis with up to six events spread evenly along
// it, alternating above (even index) and below (odd index).
type Timeline struct{}

func (Timeline) Render(s canvas.Surface, m *content.Model, st style.Context) {
	lineY := float64(s.Height()) / 2
	startX := timelineMargin
	endX := float64(s.Width()) - timelineMargin

	drawTitle(s, m.Title(), st, 60)
	s.Line(startX, lineY, endX, lineY, st.Primary, 4)

	items := limit(m.Texts(), timelineMaxItems)
	for i, item := range items {
		x := eventX(i, len(items), startX, endX)

		above := i%2 == 0
		textY, dir := lineY+eventOffset, 1.0
		if above {
			textY, dir = lineY-eventOffset, -1.0
		}

		s.FillCircle(x, lineY, markerRadius, st.Secondary)
		s.StrokeCircle(x, lineY, markerRadius, st.Primary, 3)

		s.Line(x, lineY+dir*markerRadius, x, textY-dir*eventHeight/2, st.Secondary, 2)

		s.FillRect(x-eventWidth/2, textY-eventHeight/2, eventWidth, eventHeight, st.Secondary)
		s.StrokeRect(x-eventWidth/2, textY-eventHeight/2, eventWidth, eventHeight, st.Primary, 2)

		s.SetFont(fontOf(st, 10, false))
		WrapText(s, item, x, textY, eventWidth-10, 11, style.TextColor)
	}
}

// eventX spaces n events evenly between startX and endX. A single event sits
// halfway between them.
func eventX(i, n int, startX, endX float64) float64 {
	if n < 2 {
		return (startX + endX) / 2
	}
	return startX + float64(i)*(endX-startX)/float64(n-1)
}
