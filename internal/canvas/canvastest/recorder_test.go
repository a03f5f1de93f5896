package canvastest

import (
	"image/color"
	"testing"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
)

func TestRecorder(t *testing.T) {
	r := New(canvas.Standard)
	r.Clear(color.White)
	r.SetFont(canvas.Font{Family: "Arial", Size: 10, Bold: true})
	r.Text("abcd", 1, 2, canvas.AlignCenter, color.Black)
	r.Line(0, 0, 1, 1, color.Black, 2)

	if got := r.MeasureText("abcd"); got != 20 {
		t.Errorf("MeasureText() = %v, want 20", got)
	}
	if r.Count(KindText) != 1 || r.Count(KindLine) != 1 || r.Count(KindClear) != 1 {
		t.Errorf("unexpected ops: %+v", r.Ops)
	}
	op := r.Filter(KindText)[0]
	if !op.Font.Bold || op.Align != canvas.AlignCenter {
		t.Errorf("text op = %+v", op)
	}

	r.Reset()
	if len(r.Ops) != 0 || len(r.Texts()) != 0 {
		t.Error("Reset() should drop recorded ops")
	}
}
