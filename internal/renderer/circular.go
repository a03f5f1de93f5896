package renderer

import (
	"math"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

const (
	circularMaxItems = 8
	orbitRadius      = 180.0
	hubRadius        = 80.0
	nodeRadius       = 30.0
)

// Circular draws a hub at the centre with up to eight nodes on an orbit
// around it, the first at the top and the rest clockwise.
type Circular struct{}

func (Circular) Render(s canvas.Surface, m *content.Model, st style.Context) {
	cx := float64(s.Width()) / 2
	cy := float64(s.Height()) / 2

	drawTitle(s, m.Title(), st, 50)

	s.FillCircle(cx, cy, hubRadius, st.Primary)
	s.SetFont(fontOf(st, 16, true))
	s.Text("MAIN", cx, cy-5, canvas.AlignCenter, style.White)
	s.Text("TOPIC", cx, cy+15, canvas.AlignCenter, style.White)

	items := limit(m.Texts(), circularMaxItems)
	for i, item := range items {
		angle := nodeAngle(i, len(items))
		cos, sin := math.Cos(angle), math.Sin(angle)
		x := cx + cos*orbitRadius
		y := cy + sin*orbitRadius

		s.Line(cx+cos*hubRadius, cy+sin*hubRadius, x, y, st.Secondary, 2)

		s.FillCircle(x, y, nodeRadius, st.Secondary)
		s.StrokeCircle(x, y, nodeRadius, st.Primary, 2)

		s.SetFont(fontOf(st, 10, false))
		WrapText(s, item, x, y, 50, 10, style.TextColor)
	}
}

// nodeAngle is the position of item i of n: (i/n)*2π - π/2
func nodeAngle(i, n int) float64 {
	return float64(i)/float64(n)*2*math.Pi - math.Pi/2
}
