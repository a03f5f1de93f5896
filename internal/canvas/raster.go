package canvas

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
)

// DefaultFont is active on a fresh Raster
var DefaultFont = Font{Family: "Arial", Size: 16}

var _ Surface = (*Raster)(nil)

// Raster is a Surface backed by an in-memory RGBA image
type Raster struct {
	dc    *gg.Context
	faces *faceCache
	font  Font
}

// NewRaster creates a surface of the given size with the default font active
func NewRaster(size Size) *Raster {
	r := &Raster{
		dc:    gg.NewContext(size.Width, size.Height),
		faces: newFaceCache(),
	}
	r.SetFont(DefaultFont)
	return r
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

func (r *Raster) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

// SetFont switches the active face. The embedded fonts are parsed at first
// use; a parse failure keeps the previous face.
func (r *Raster) SetFont(f Font) {
	if f.Size <= 0 {
		f.Size = DefaultFont.Size
	}
	face, err := r.faces.face(f)
	if err != nil {
		return
	}
	r.font = f
	r.dc.SetFontFace(face)
}

// Font returns the active font
func (r *Raster) Font() Font {
	return r.font
}

func (r *Raster) MeasureText(s string) float64 {
	w, _ := r.dc.MeasureString(s)
	return w
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) StrokeRect(x, y, w, h float64, c color.Color, lineWidth float64) {
	r.dc.DrawRectangle(x, y, w, h)
	r.stroke(c, lineWidth)
}

func (r *Raster) FillCircle(cx, cy, radius float64, c color.Color) {
	r.dc.DrawCircle(cx, cy, radius)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) StrokeCircle(cx, cy, radius float64, c color.Color, lineWidth float64) {
	r.dc.DrawCircle(cx, cy, radius)
	r.stroke(c, lineWidth)
}

func (r *Raster) Line(x1, y1, x2, y2 float64, c color.Color, lineWidth float64) {
	r.dc.DrawLine(x1, y1, x2, y2)
	r.stroke(c, lineWidth)
}

func (r *Raster) Text(s string, x, y float64, align Align, c color.Color) {
	ax := 0.0
	if align == AlignCenter {
		ax = 0.5
	}
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(s, x, y, ax, 0)
}

func (r *Raster) stroke(c color.Color, lineWidth float64) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(lineWidth)
	r.dc.Stroke()
}

// Image returns the pixels drawn so far
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the surface as PNG
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to encode PNG")
	}
	return nil
}
