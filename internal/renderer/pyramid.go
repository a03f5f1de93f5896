package renderer

import (
	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

const (
	pyramidMaxLevels = 5
	pyramidWidth     = 400.0
	pyramidHeight    = 300.0
	pyramidTop       = 120.0
)

// Pyramid stacks up to five centred bands, the first item widest. Band i of n
// is pyramidWidth*(n-i)/n wide.
type Pyramid struct{}

func (Pyramid) Render(s canvas.Surface, m *content.Model, st style.Context) {
	drawTitle(s, m.Title(), st, 50)

	items := limit(m.Texts(), pyramidMaxLevels)
	if len(items) == 0 {
		return
	}

	n := float64(len(items))
	levelHeight := pyramidHeight / n
	for i, item := range items {
		y := pyramidTop + float64(i)*levelHeight
		levelWidth := pyramidWidth * (n - float64(i)) / n
		x := (float64(s.Width()) - levelWidth) / 2

		s.FillRect(x, y, levelWidth, levelHeight, style.BandColor(i))
		s.StrokeRect(x, y, levelWidth, levelHeight, st.Primary, 2)

		s.SetFont(fontOf(st, 14, true))
		WrapText(s, item, x+levelWidth/2, y+levelHeight/2, levelWidth-20, 16, style.TextColor)
	}
}
