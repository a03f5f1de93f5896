// Package canvastest provides a Surface that records drawing calls instead of
// producing pixels, for layout tests.
package canvastest

import (
	"image/color"
	"unicode/utf8"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
)

// Kind names a recorded primitive
type Kind string

const (
	KindClear        Kind = "clear"
	KindFillRect     Kind = "fill-rect"
	KindStrokeRect   Kind = "stroke-rect"
	KindFillCircle   Kind = "fill-circle"
	KindStrokeCircle Kind = "stroke-circle"
	KindLine         Kind = "line"
	KindText         Kind = "text"
)

// CharWidth is the advance of one rune at size 1. Text width is
// runes * size * CharWidth, so tests can reason about wrapping exactly.
const CharWidth = 0.5

// Op is one recorded primitive. Only the fields relevant to Kind are set.
type Op struct {
	Kind      Kind
	X, Y      float64
	X2, Y2    float64
	W, H      float64
	R         float64
	LineWidth float64
	Text      string
	Align     canvas.Align
	Font      canvas.Font
	Color     color.Color
}

// Recorder is a canvas.Surface that appends every call to Ops
type Recorder struct {
	W, H int
	Ops  []Op

	font canvas.Font
}

var _ canvas.Surface = (*Recorder)(nil)

// New returns a recorder of the given size with the default font active
func New(size canvas.Size) *Recorder {
	return &Recorder{W: size.Width, H: size.Height, font: canvas.DefaultFont}
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindClear, W: float64(r.W), H: float64(r.H), Color: c})
}

func (r *Recorder) SetFont(f canvas.Font) { r.font = f }

func (r *Recorder) MeasureText(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * r.font.Size * CharWidth
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h float64, c color.Color, lineWidth float64) {
	r.Ops = append(r.Ops, Op{Kind: KindStrokeRect, X: x, Y: y, W: w, H: h, Color: c, LineWidth: lineWidth})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindFillCircle, X: cx, Y: cy, R: radius, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius float64, c color.Color, lineWidth float64) {
	r.Ops = append(r.Ops, Op{Kind: KindStrokeCircle, X: cx, Y: cy, R: radius, Color: c, LineWidth: lineWidth})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, c color.Color, lineWidth float64) {
	r.Ops = append(r.Ops, Op{Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: c, LineWidth: lineWidth})
}

func (r *Recorder) Text(s string, x, y float64, align canvas.Align, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindText, X: x, Y: y, Text: s, Align: align, Font: r.font, Color: c})
}

// Filter returns the recorded ops of one kind, in draw order
func (r *Recorder) Filter(kind Kind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Count returns how many ops of kind were recorded
func (r *Recorder) Count(kind Kind) int {
	return len(r.Filter(kind))
}

// Texts returns the strings drawn, in draw order
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.Filter(KindText) {
		texts = append(texts, op.Text)
	}
	return texts
}

// Reset drops every recorded op
func (r *Recorder) Reset() {
	r.Ops = nil
}
