// Package provider implements the Terraform provider for infographic generation.
// It provides the infographic_image resource plus data sources exposing the
// classifier and the template catalog.
package provider

import (
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/types"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
	"github.com/ankek/terraform-provider-infographic/internal/generator"
)

// generatorConfig builds the pipeline configuration of an image, filling the
// blanks from the provider defaults.
func (m *ImageResourceModel) generatorConfig(pd *providerData) generator.Config {
	return generator.Config{
		Text:           m.Text.ValueString(),
		TextFile:       m.TextFile.ValueString(),
		SourceURL:      m.SourceURL.ValueString(),
		SourceToken:    m.SourceToken.ValueString(),
		Template:       m.Template.ValueString(),
		Palette:        stringOr(m.Palette, pd.defaults.Palette),
		PaletteFile:    m.PaletteFile.ValueString(),
		CustomPalettes: pd.palettes,
		FontFamily:     stringOr(m.FontFamily, pd.defaults.Font),
		Glyph:          m.Glyph.ValueString(),
		Size:           stringOr(m.Size, pd.defaults.Size),
		Format:         m.Format.ValueString(),
		OutputPath:     m.OutputPath.ValueString(),
	}
}

// applyResult copies the computed attributes of a generated image
func (m *ImageResourceModel) applyResult(res *generator.Result) {
	m.Category = types.StringValue(string(res.Model.Category()))
	m.Title = types.StringValue(res.Model.Title())
	m.TemplateID = types.StringValue(string(res.Template.ID))
	m.ItemCount = types.Int64Value(int64(res.Model.Len()))
	m.SHA256 = types.StringValue(res.SHA256)
}

// attributeFor names the attribute responsible for an error code, if any
var attributeFor = map[apperrors.Code]string{
	apperrors.ErrCodeInvalidTemplate: "template",
	apperrors.ErrCodeInvalidPalette:  "palette",
	apperrors.ErrCodeInvalidSize:     "size",
	apperrors.ErrCodeInvalidFormat:   "format",
	apperrors.ErrCodeUnsupported:     "format",
}

// addGenerateError reports a generation failure, attached to the offending
// attribute when the error code names one.
func addGenerateError(diags *diag.Diagnostics, err error) {
	const summary = "Failed to generate infographic"
	if attr, ok := attributeFor[apperrors.GetCode(err)]; ok {
		diags.AddAttributeError(path.Root(attr), summary, apperrors.UserMessage(err))
		return
	}
	diags.AddError(summary, apperrors.UserMessage(err))
}
