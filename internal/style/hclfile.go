package style

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
)

// paletteFileSchema describes the top level of a palette file:
//
//	palette "Corporate" {
//	  primary   = "#0f172a"
//	  secondary = "#38bdf8"
//	  accent    = "#0369a1"
//	}
var paletteFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{
			Type:       "palette",
			LabelNames: []string{"name"},
		},
	},
}

var paletteBlockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "primary", Required: true},
		{Name: "secondary", Required: true},
		{Name: "accent", Required: true},
	},
}

// LoadPaletteFile reads custom palettes from an HCL file.
// It respects the provided context for cancellation.
func LoadPaletteFile(ctx context.Context, path string) ([]Palette, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "failed to read palette file")
	}
	return ParsePalettes(src, path)
}

// ParsePalettes parses palette blocks from HCL source
func ParsePalettes(src []byte, filename string) ([]Palette, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, apperrors.New(apperrors.ErrCodeInvalidPalette, "HCL parse errors: %s", diags.Error())
	}

	content, diags := file.Body.Content(paletteFileSchema)
	if diags.HasErrors() {
		return nil, apperrors.New(apperrors.ErrCodeInvalidPalette, "failed to parse body: %s", diags.Error())
	}

	seen := make(map[string]bool)
	palettes := make([]Palette, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		name := strings.TrimSpace(block.Labels[0])
		if name == "" {
			return nil, apperrors.New(apperrors.ErrCodeInvalidPalette, "%s: palette name cannot be empty", block.DefRange)
		}
		if seen[strings.ToLower(name)] {
			return nil, apperrors.New(apperrors.ErrCodeInvalidPalette, "%s: duplicate palette %q", block.DefRange, name)
		}
		seen[strings.ToLower(name)] = true

		p, err := parsePaletteBlock(name, block.Body)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}

	return palettes, nil
}

// parsePaletteBlock extracts and validates the colours of one palette block
func parsePaletteBlock(name string, body hcl.Body) (Palette, error) {
	content, diags := body.Content(paletteBlockSchema)
	if diags.HasErrors() {
		return Palette{}, apperrors.New(apperrors.ErrCodeInvalidPalette, "palette %q: %s", name, diags.Error())
	}

	values := make(map[string]string, len(content.Attributes))
	for attrName, attr := range content.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return Palette{}, apperrors.New(apperrors.ErrCodeInvalidPalette, "palette %q: %s", name, diags.Error())
		}
		s, err := ctyString(val)
		if err != nil {
			return Palette{}, apperrors.Wrap(apperrors.ErrCodeInvalidPalette, err, "palette %q: %s", name, attrName)
		}
		values[attrName] = s
	}

	p := Palette{
		Name:      name,
		Primary:   values["primary"],
		Secondary: values["secondary"],
		Accent:    values["accent"],
	}
	if _, _, _, err := p.Colors(); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// ctyString converts a known, non-null string value
func ctyString(val cty.Value) (string, error) {
	if val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("value must be a known string")
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("value must be a string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), nil
}
