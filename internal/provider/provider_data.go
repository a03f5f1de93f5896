package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/generator"
	"github.com/ankek/terraform-provider-infographic/internal/interfaces"
	"github.com/ankek/terraform-provider-infographic/internal/style"
	"github.com/ankek/terraform-provider-infographic/internal/validation"
)

// defaults are the provider-level fallbacks of a render
type defaults struct {
	Palette string
	Font    string
	Size    string
}

// providerData is handed to resources and data sources by Configure
type providerData struct {
	defaults  defaults
	palettes  []style.Palette
	generator interfaces.Generator
}

// newProviderData resolves the provider block, loading palette_file when set
func newProviderData(ctx context.Context, data InfographicProviderModel, gen interfaces.Generator) (*providerData, error) {
	pd := &providerData{
		defaults: defaults{
			Palette: stringOr(data.DefaultPalette, style.DefaultPalette().Name),
			Font:    stringOr(data.DefaultFont, style.DefaultFontFamily),
			Size:    stringOr(data.DefaultSize, canvas.Standard.String()),
		},
		generator: gen,
	}

	if file := data.PaletteFile.ValueString(); file != "" {
		if err := validation.ValidateInputPath(file, false); err != nil {
			return nil, err
		}
		palettes, err := style.LoadPaletteFile(ctx, file)
		if err != nil {
			return nil, err
		}
		tflog.Debug(ctx, "loaded provider palette file", map[string]interface{}{
			"path":     file,
			"palettes": len(palettes),
		})
		pd.palettes = palettes
	}

	if _, err := style.LookupPalette(pd.defaults.Palette, pd.palettes...); err != nil {
		return nil, err
	}
	return pd, nil
}

// configureData extracts providerData from a Configure request. Unconfigured
// providers get the built-in defaults.
func configureData(raw any, diags *diag.Diagnostics) *providerData {
	if raw == nil {
		return defaultProviderData(generator.New(nil))
	}
	pd, ok := raw.(*providerData)
	if !ok {
		diags.AddError(
			"Unexpected Provider Data Type",
			fmt.Sprintf("Expected *providerData, got: %T. Please report this issue to the provider developers.", raw),
		)
		return nil
	}
	return pd
}

func defaultProviderData(gen interfaces.Generator) *providerData {
	return &providerData{
		defaults: defaults{
			Palette: style.DefaultPalette().Name,
			Font:    style.DefaultFontFamily,
			Size:    canvas.Standard.String(),
		},
		generator: gen,
	}
}

// stringOr returns the value of s, or fallback when s is null, unknown or empty
func stringOr(s types.String, fallback string) string {
	if s.IsNull() || s.IsUnknown() || s.ValueString() == "" {
		return fallback
	}
	return s.ValueString()
}
