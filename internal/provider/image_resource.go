package provider

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"regexp"

	"github.com/google/uuid"
	"github.com/hashicorp/terraform-plugin-framework-validators/resourcevalidator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/samber/lo"

	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	"github.com/ankek/terraform-provider-infographic/internal/generator"
	"github.com/ankek/terraform-provider-infographic/internal/renderer"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &ImageResource{}
var _ resource.ResourceWithConfigure = &ImageResource{}
var _ resource.ResourceWithConfigValidators = &ImageResource{}

func NewImageResource() resource.Resource {
	return &ImageResource{}
}

// ImageResource defines the resource implementation.
type ImageResource struct {
	data *providerData
}

// ImageResourceModel describes the resource data model.
type ImageResourceModel struct {
	ID          types.String `tfsdk:"id"`
	Text        types.String `tfsdk:"text"`
	TextFile    types.String `tfsdk:"text_file"`
	SourceURL   types.String `tfsdk:"source_url"`
	SourceToken types.String `tfsdk:"source_token"`
	Template    types.String `tfsdk:"template"`
	Palette     types.String `tfsdk:"palette"`
	PaletteFile types.String `tfsdk:"palette_file"`
	FontFamily  types.String `tfsdk:"font_family"`
	Glyph       types.String `tfsdk:"glyph"`
	Size        types.String `tfsdk:"size"`
	Format      types.String `tfsdk:"format"`
	OutputPath  types.String `tfsdk:"output_path"`

	Category   types.String `tfsdk:"category"`
	Title      types.String `tfsdk:"title"`
	TemplateID types.String `tfsdk:"template_id"`
	ItemCount  types.Int64  `tfsdk:"item_count"`
	SHA256     types.String `tfsdk:"sha256"`
}

// rasterFormats lists the format names an image can be written as
func rasterFormats() []string {
	return lo.Filter(renderer.Formats, func(name string, _ int) bool {
		f, err := renderer.ParseFormat(name)
		return err == nil && f.Raster()
	})
}

func (r *ImageResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_image"
}

func (r *ImageResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Generates an infographic image from text. The text is classified (steps, statistics, bullets, timeline or generic), a layout template is picked and the result is written to `output_path`.",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Resource identifier",
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"text": schema.StringAttribute{
				MarkdownDescription: "Inline text. The first non-blank line is the title.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"text_file": schema.StringAttribute{
				MarkdownDescription: "Path of a file holding the text.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"source_url": schema.StringAttribute{
				MarkdownDescription: "http(s) URL the text is fetched from.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.RegexMatches(regexp.MustCompile(`^https?://`), "must be an http or https URL"),
				},
			},
			"source_token": schema.StringAttribute{
				MarkdownDescription: "Bearer token sent when fetching `source_url`.",
				Optional:            true,
				Sensitive:           true,
				Validators: []validator.String{
					stringvalidator.AlsoRequires(path.MatchRoot("source_url")),
				},
			},
			"template": schema.StringAttribute{
				MarkdownDescription: "Layout template id, or `auto` to use the suggested template. Default is `auto`.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(append(catalog.IDs(), catalog.Auto)...),
				},
			},
			"palette": schema.StringAttribute{
				MarkdownDescription: "Palette name. Defaults to the provider's `default_palette`.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"palette_file": schema.StringAttribute{
				MarkdownDescription: "HCL file of palette blocks searched before the provider palettes.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"font_family": schema.StringAttribute{
				MarkdownDescription: "Font family. Monospace families render with Go Mono, everything else with Go Regular.",
				Optional:            true,
			},
			"glyph": schema.StringAttribute{
				MarkdownDescription: "Decorative glyph drawn on statistics cards.",
				Optional:            true,
			},
			"size": schema.StringAttribute{
				MarkdownDescription: "Canvas size: 'standard' (800x600), 'widescreen' (1280x720) or WIDTHxHEIGHT.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.RegexMatches(sizePattern, "must be 'standard', 'widescreen' or WIDTHxHEIGHT"),
				},
			},
			"format": schema.StringAttribute{
				MarkdownDescription: "Output format: 'png', 'jpeg' or 'jpg'. Default is 'png'.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(rasterFormats()...),
				},
			},
			"output_path": schema.StringAttribute{
				MarkdownDescription: "Path where the image will be saved. The directory must exist.",
				Required:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"category": schema.StringAttribute{
				MarkdownDescription: "Detected content category.",
				Computed:            true,
			},
			"title": schema.StringAttribute{
				MarkdownDescription: "Detected title.",
				Computed:            true,
			},
			"template_id": schema.StringAttribute{
				MarkdownDescription: "Template the image was rendered with.",
				Computed:            true,
			},
			"item_count": schema.Int64Attribute{
				MarkdownDescription: "Number of extracted items.",
				Computed:            true,
			},
			"sha256": schema.StringAttribute{
				MarkdownDescription: "SHA-256 of the written file.",
				Computed:            true,
			},
		},
	}
}

func (r *ImageResource) ConfigValidators(ctx context.Context) []resource.ConfigValidator {
	return []resource.ConfigValidator{
		resourcevalidator.ExactlyOneOf(
			path.MatchRoot("text"),
			path.MatchRoot("text_file"),
			path.MatchRoot("source_url"),
		),
	}
}

func (r *ImageResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	r.data = configureData(req.ProviderData, &resp.Diagnostics)
}

func (r *ImageResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data ImageResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if !r.generate(ctx, &data, &resp.Diagnostics) {
		return
	}
	data.ID = types.StringValue(uuid.NewString())

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *ImageResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data ImageResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Check if output file still exists
	if _, err := os.Stat(data.OutputPath.ValueString()); errors.Is(err, fs.ErrNotExist) {
		tflog.Info(ctx, "infographic file is gone, removing from state", map[string]interface{}{
			"output_path": data.OutputPath.ValueString(),
		})
		resp.State.RemoveResource(ctx)
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *ImageResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var data, state ImageResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	resp.Diagnostics.Append(req.State.Get(ctx, &state)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if !r.generate(ctx, &data, &resp.Diagnostics) {
		return
	}
	data.ID = state.ID

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *ImageResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data ImageResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if err := os.Remove(data.OutputPath.ValueString()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		resp.Diagnostics.AddError("Failed to remove infographic", err.Error())
	}
}

// generate renders data to its output path and fills the computed attributes
func (r *ImageResource) generate(ctx context.Context, data *ImageResourceModel, diags *diag.Diagnostics) bool {
	pd := r.data
	if pd == nil {
		pd = defaultProviderData(generator.New(nil))
	}

	cfg := data.generatorConfig(pd)
	tflog.Debug(ctx, "generating infographic", map[string]interface{}{
		"output_path": cfg.OutputPath,
		"template":    cfg.Template,
		"palette":     cfg.Palette,
		"size":        cfg.Size,
	})

	res, err := pd.generator.Generate(ctx, cfg)
	if err != nil {
		addGenerateError(diags, err)
		return false
	}
	data.applyResult(res)
	return true
}
