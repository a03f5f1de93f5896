package provider

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/samber/lo"

	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
	"github.com/ankek/terraform-provider-infographic/internal/validation"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &ContentDataSource{}

// ContentDataSource exposes the classifier.
type ContentDataSource struct{}

func NewContentDataSource() datasource.DataSource {
	return &ContentDataSource{}
}

// ContentDataSourceModel describes the data source data model.
type ContentDataSourceModel struct {
	ID                types.String `tfsdk:"id"`
	Text              types.String `tfsdk:"text"`
	Category          types.String `tfsdk:"category"`
	Title             types.String `tfsdk:"title"`
	Items             types.List   `tfsdk:"items"`
	Stats             types.List   `tfsdk:"stats"`
	SuggestedTemplate types.String `tfsdk:"suggested_template"`
}

// statModel is one element of the stats list
type statModel struct {
	Label types.String `tfsdk:"label"`
	Value types.String `tfsdk:"value"`
}

var statAttrTypes = map[string]attr.Type{
	"label": types.StringType,
	"value": types.StringType,
}

func (d *ContentDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_content"
}

func (d *ContentDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Classifies text the way `infographic_image` does, without rendering anything.",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Data source identifier",
			},
			"text": schema.StringAttribute{
				MarkdownDescription: "Text to classify.",
				Required:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"category": schema.StringAttribute{
				MarkdownDescription: "One of steps, statistics, bullets, timeline or generic.",
				Computed:            true,
			},
			"title": schema.StringAttribute{
				MarkdownDescription: "First non-blank line of the text.",
				Computed:            true,
			},
			"items": schema.ListAttribute{
				MarkdownDescription: "Extracted items. Empty for statistics.",
				ElementType:         types.StringType,
				Computed:            true,
			},
			"stats": schema.ListNestedAttribute{
				MarkdownDescription: "Extracted label/value pairs. Only set for statistics.",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"label": schema.StringAttribute{Computed: true},
						"value": schema.StringAttribute{Computed: true},
					},
				},
			},
			"suggested_template": schema.StringAttribute{
				MarkdownDescription: "Template id `auto` would pick.",
				Computed:            true,
			},
		},
	}
}

func (d *ContentDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data ContentDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	text := data.Text.ValueString()
	if err := validation.ValidateText(text); err != nil {
		resp.Diagnostics.AddAttributeError(path.Root("text"), "Invalid text", apperrors.UserMessage(err))
		return
	}

	m := content.Classify(strings.TrimSpace(text))
	resp.Diagnostics.Append(data.fromModel(ctx, m)...)
	if resp.Diagnostics.HasError() {
		return
	}
	tflog.Trace(ctx, "classified text", map[string]interface{}{
		"category": data.Category.ValueString(),
		"items":    m.Len(),
	})

	// Generate ID based on content
	hash := sha256.Sum256([]byte(text))
	data.ID = types.StringValue(fmt.Sprintf("%x", hash[:8]))

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// fromModel copies a classified model into the data source attributes
func (data *ContentDataSourceModel) fromModel(ctx context.Context, m *content.Model) diag.Diagnostics {
	var diags diag.Diagnostics

	doc := m.Document()
	data.Category = types.StringValue(string(doc.Category))
	data.Title = types.StringValue(doc.Title)
	data.SuggestedTemplate = types.StringValue(string(catalog.Suggest(m).ID))

	items, d := types.ListValueFrom(ctx, types.StringType, append([]string{}, doc.Items...))
	diags.Append(d...)
	data.Items = items

	stats := lo.Map(doc.Stats, func(s content.Stat, _ int) statModel {
		return statModel{Label: types.StringValue(s.Label), Value: types.StringValue(s.Value)}
	})
	statList, d := types.ListValueFrom(ctx, types.ObjectType{AttrTypes: statAttrTypes}, stats)
	diags.Append(d...)
	data.Stats = statList

	return diags
}
