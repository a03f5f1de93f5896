package renderer

import (
	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

const (
	genericLeft      = 100.0
	genericFirstRow  = 120.0
	genericRowHeight = 40.0
)

// Generic lists every item as a left-aligned bullet under the title. It is
// used for template ids the catalog does not know.
type Generic struct{}

func (Generic) Render(s canvas.Surface, m *content.Model, st style.Context) {
	drawTitle(s, m.Title(), st, 60)

	s.SetFont(fontOf(st, 16, false))
	for i, item := range m.Texts() {
		s.Text(bullet(item), genericLeft, genericFirstRow+float64(i)*genericRowHeight, canvas.AlignLeft, style.TextColor)
	}
}
