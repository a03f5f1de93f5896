package renderer

import (
	"strconv"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

const (
	processMaxSteps = 5
	stepWidth       = 140.0
	stepHeight      = 80.0
	stepSpacing     = 60.0
)

// ProcessFlow draws up to five numbered boxes in a row joined by arrows
type ProcessFlow struct{}

func (ProcessFlow) Render(s canvas.Surface, m *content.Model, st style.Context) {
	drawTitle(s, m.Title(), st, 60)

	steps := limit(m.Texts(), processMaxSteps)
	if len(steps) == 0 {
		return
	}

	n := float64(len(steps))
	startX := (float64(s.Width()) - (n*stepWidth + (n-1)*stepSpacing)) / 2
	y := float64(s.Height())/2 - stepHeight/2

	for i, step := range steps {
		x := startX + float64(i)*(stepWidth+stepSpacing)

		s.FillRect(x, y, stepWidth, stepHeight, st.Secondary)
		s.StrokeRect(x, y, stepWidth, stepHeight, st.Primary, 2)

		s.SetFont(fontOf(st, 16, true))
		s.Text(strconv.Itoa(i+1), x+stepWidth/2, y+25, canvas.AlignCenter, st.Primary)

		s.SetFont(fontOf(st, 12, false))
		WrapText(s, step, x+stepWidth/2, y+45, stepWidth-20, 14, style.TextColor)

		if i < len(steps)-1 {
			Arrow(s, x+stepWidth, y+stepHeight/2, x+stepWidth+stepSpacing, y+stepHeight/2, st.Primary)
		}
	}
}
