// Package canvas defines the drawing surface layouts paint onto and a raster
// implementation of it.
package canvas

import "image/color"

// Align is the horizontal anchor of a text draw
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

func (a Align) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

// Font selects the face used by subsequent text draws and measurements
type Font struct {
	Family string
	Size   float64
	Bold   bool
}

// Surface is a rectangular pixel target. Coordinates are in pixels with the
// origin at the top left; the y of a text draw is its baseline.
type Surface interface {
	Width() int
	Height() int

	// Clear fills the whole surface with c
	Clear(c color.Color)

	// SetFont changes the active font. MeasureText and Text use it.
	SetFont(f Font)
	MeasureText(s string) float64

	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h float64, c color.Color, lineWidth float64)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r float64, c color.Color, lineWidth float64)
	Line(x1, y1, x2, y2 float64, c color.Color, lineWidth float64)
	Text(s string, x, y float64, align Align, c color.Color)
}
