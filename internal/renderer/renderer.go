// Package renderer lays classified content out onto a canvas.Surface. There is
// one Layout per catalog template plus a Generic fallback, and helpers for
// wrapped text and arrows shared by all of them.
package renderer

import (
	"context"
	"image"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

// Layout draws a content model onto a surface that has already been cleared.
// Layouts only read the model and the style.
type Layout interface {
	Render(s canvas.Surface, m *content.Model, st style.Context)
}

var layouts = map[catalog.ID]Layout{
	catalog.ProcessFlow:     ProcessFlow{},
	catalog.CircularDiagram: Circular{},
	catalog.Timeline:        Timeline{},
	catalog.Comparison:      Comparison{},
	catalog.Pyramid:         Pyramid{},
	catalog.Statistics:      Statistics{},
}

// For returns the layout of a template. Unknown ids get the Generic layout.
func For(id catalog.ID) Layout {
	if l, ok := layouts[id]; ok {
		return l
	}
	return Generic{}
}

// Draw clears s to white and paints m with the layout of template id.
// A nil model leaves a blank surface.
func Draw(s canvas.Surface, m *content.Model, id catalog.ID, st style.Context) {
	s.Clear(style.White)
	if m == nil {
		return
	}
	For(id).Render(s, m, st)
}

// Render paints m onto a new raster surface of the given size.
// It respects the provided context for cancellation.
func Render(ctx context.Context, m *content.Model, id catalog.ID, st style.Context, size canvas.Size) (image.Image, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r := canvas.NewRaster(size)
	Draw(r, m, id, st)
	return r.Image(), nil
}
