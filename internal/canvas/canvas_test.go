package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    Size
		wantErr bool
	}{
		{"", Standard, false},
		{"800x600", Standard, false},
		{"1280x720", Widescreen, false},
		{" Widescreen ", Widescreen, false},
		{"standard", Standard, false},
		{"1024x768", Size{}, true},
		{"800X600x1", Size{}, true},
		{"big", Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !apperrors.Is(err, apperrors.ErrCodeInvalidSize) {
					t.Errorf("ParseSize(%q) error code = %v", tt.input, apperrors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSizeString(t *testing.T) {
	if Standard.String() != "800x600" || Widescreen.String() != "1280x720" {
		t.Errorf("unexpected size strings %s %s", Standard, Widescreen)
	}
}

func TestIsMonospace(t *testing.T) {
	tests := map[string]bool{
		"Arial":           false,
		"Georgia":         false,
		"Courier New":     true,
		"monospace":       true,
		"JetBrains Mono":  true,
		"Times New Roman": false,
	}
	for family, want := range tests {
		if got := isMonospace(family); got != want {
			t.Errorf("isMonospace(%q) = %v, want %v", family, got, want)
		}
	}
}

func TestRasterDraws(t *testing.T) {
	r := NewRaster(Standard)
	if r.Width() != 800 || r.Height() != 600 {
		t.Fatalf("size = %dx%d, want 800x600", r.Width(), r.Height())
	}

	r.Clear(color.White)
	red := color.RGBA{0xff, 0, 0, 0xff}
	r.FillRect(10, 10, 50, 50, red)

	got := color.RGBAModel.Convert(r.Image().At(30, 30)).(color.RGBA)
	if got != red {
		t.Errorf("pixel inside filled rect = %v, want %v", got, red)
	}
	got = color.RGBAModel.Convert(r.Image().At(400, 400)).(color.RGBA)
	if got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("background pixel = %v, want white", got)
	}
}

func TestRasterMeasureText(t *testing.T) {
	r := NewRaster(Standard)

	r.SetFont(Font{Family: "Arial", Size: 12})
	small := r.MeasureText("Research the market")
	r.SetFont(Font{Family: "Arial", Size: 24, Bold: true})
	large := r.MeasureText("Research the market")

	if small <= 0 {
		t.Fatalf("MeasureText() = %v, want positive width", small)
	}
	if large <= small {
		t.Errorf("24px bold width %v should exceed 12px width %v", large, small)
	}
	if r.MeasureText("") != 0 {
		t.Errorf("MeasureText(\"\") = %v, want 0", r.MeasureText(""))
	}

	r.SetFont(Font{Family: "Courier New", Size: 12})
	if r.MeasureText("iiii") != r.MeasureText("MMMM") {
		t.Error("monospace family should measure every glyph with the same advance")
	}
	if r.Font().Family != "Courier New" {
		t.Errorf("Font() = %+v", r.Font())
	}
}

func TestRasterFontFallbackSize(t *testing.T) {
	r := NewRaster(Standard)
	r.SetFont(Font{Family: "Arial"})
	if r.Font().Size != DefaultFont.Size {
		t.Errorf("zero size should fall back to %v, got %v", DefaultFont.Size, r.Font().Size)
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(Widescreen)
	r.Clear(color.White)
	r.Text("hello", 640, 360, AlignCenter, color.Black)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1280 || b.Dy() != 720 {
		t.Errorf("decoded bounds = %v, want 1280x720", b)
	}
}

func TestIconFamilyDrawsIcons(t *testing.T) {
	render := func(icon rune) *image.RGBA {
		r := NewRaster(Standard)
		r.Clear(color.White)
		r.SetFont(Font{Family: IconFamily, Size: 48})
		r.Text(string(icon), 100, 100, AlignCenter, color.Black)
		return r.Image().(*image.RGBA)
	}

	briefcase := render(0xf0b1)
	rocket := render(0xf135)
	if bytes.Equal(briefcase.Pix, rocket.Pix) {
		t.Error("different icons rendered identical pixels")
	}

	r := NewRaster(Standard)
	r.SetFont(Font{Family: IconFamily, Size: 48, Bold: true})
	if r.MeasureText(string(rune(0xf0b1))) <= 0 {
		t.Error("icon font should measure its glyphs")
	}
}
