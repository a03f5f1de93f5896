package renderer

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
)

// Format is an export format
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
)

// jpegQuality matches the 0.9 quality of a browser canvas JPEG export
const jpegQuality = 90

// Formats lists every format name ParseFormat accepts
var Formats = []string{"png", "jpeg", "jpg", "svg", "pdf"}

// ParseFormat normalises a format name. An empty name selects PNG.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "svg":
		return FormatSVG, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported format: %s (expected png or jpeg)", name)
	}
}

// Extension returns the file extension of the format, without the dot
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// Extensions lists the file extensions accepted for the format
func (f Format) Extensions() []string {
	if f == FormatJPEG {
		return []string{"jpg", "jpeg"}
	}
	return []string{string(f)}
}

// Raster reports whether the format can be encoded
func (f Format) Raster() bool {
	return f == FormatPNG || f == FormatJPEG
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPDF:
		return "application/pdf"
	default:
		return "image/png"
	}
}

// Encode writes img in the given raster format. Vector and paginated
// formats are recognised but not supported.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case FormatSVG, FormatPDF:
		return apperrors.New(apperrors.ErrCodeUnsupported, "%s export is not supported, use png or jpeg", strings.ToUpper(string(format)))
	default:
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to encode %s", format)
	}
	return nil
}

// EncodeBytes encodes img into memory
func EncodeBytes(img image.Image, format Format) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, img, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFile encodes img and writes it to outputPath.
// It respects the provided context for cancellation.
func ExportFile(ctx context.Context, img image.Image, outputPath string, format Format) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := EncodeBytes(img, format)
	if err != nil {
		return nil, err
	}

	if err := writeFile(outputPath, data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "failed to write %s", outputPath)
	}
	return data, nil
}
