package provider

import (
	"context"
	"regexp"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
	"github.com/ankek/terraform-provider-infographic/internal/generator"
)

// Ensure InfographicProvider satisfies various provider interfaces.
var _ provider.Provider = &InfographicProvider{}

// sizePattern accepts a named canvas size or WIDTHxHEIGHT
var sizePattern = regexp.MustCompile(`(?i)^(standard|widescreen|[0-9]+x[0-9]+)$`)

// InfographicProvider defines the provider implementation.
type InfographicProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// InfographicProviderModel describes the provider data model.
type InfographicProviderModel struct {
	DefaultPalette types.String `tfsdk:"default_palette"`
	DefaultFont    types.String `tfsdk:"default_font"`
	DefaultSize    types.String `tfsdk:"default_size"`
	PaletteFile    types.String `tfsdk:"palette_file"`
}

func (p *InfographicProvider) Metadata(ctx context.Context, req provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "infographic"
	resp.Version = p.version
}

func (p *InfographicProvider) Schema(ctx context.Context, req provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Description: "The Infographic provider turns plain text into infographic images: it classifies the text, picks a layout and renders it to PNG or JPEG.",
		Attributes: map[string]schema.Attribute{
			"default_palette": schema.StringAttribute{
				Description: "Palette used when a resource does not set one. Defaults to \"Ocean Blue\".",
				Optional:    true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"default_font": schema.StringAttribute{
				Description: "Font family used when a resource does not set one. Defaults to \"Arial\".",
				Optional:    true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"default_size": schema.StringAttribute{
				Description: "Canvas size used when a resource does not set one: 'standard' (800x600), 'widescreen' (1280x720) or WIDTHxHEIGHT.",
				Optional:    true,
				Validators: []validator.String{
					stringvalidator.RegexMatches(sizePattern, "must be 'standard', 'widescreen' or WIDTHxHEIGHT"),
				},
			},
			"palette_file": schema.StringAttribute{
				Description: "HCL file of palette blocks made available to every resource.",
				Optional:    true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
		},
	}
}

func (p *InfographicProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data InfographicProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	pd, err := newProviderData(ctx, data, generator.New(nil))
	if err != nil {
		resp.Diagnostics.AddAttributeError(
			path.Root("palette_file"),
			"Failed to load palette file",
			apperrors.UserMessage(err),
		)
		return
	}
	tflog.Debug(ctx, "configured infographic provider", map[string]interface{}{
		"default_palette": pd.defaults.Palette,
		"default_size":    pd.defaults.Size,
		"custom_palettes": len(pd.palettes),
	})

	resp.DataSourceData = pd
	resp.ResourceData = pd
}

func (p *InfographicProvider) Resources(ctx context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		NewImageResource,
	}
}

func (p *InfographicProvider) DataSources(ctx context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewContentDataSource,
		NewTemplatesDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &InfographicProvider{
			version: version,
		}
	}
}
