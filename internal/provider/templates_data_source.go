package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/samber/lo"

	"github.com/ankek/terraform-provider-infographic/internal/catalog"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &TemplatesDataSource{}

// TemplatesDataSource lists the template catalog.
type TemplatesDataSource struct{}

func NewTemplatesDataSource() datasource.DataSource {
	return &TemplatesDataSource{}
}

// TemplatesDataSourceModel describes the data source data model.
type TemplatesDataSourceModel struct {
	ID        types.String `tfsdk:"id"`
	Templates types.List   `tfsdk:"templates"`
}

type templateModel struct {
	ID          types.String `tfsdk:"id"`
	Name        types.String `tfsdk:"name"`
	Description types.String `tfsdk:"description"`
	Icon        types.String `tfsdk:"icon"`
	SampleText  types.String `tfsdk:"sample_text"`
}

var templateAttrTypes = map[string]attr.Type{
	"id":          types.StringType,
	"name":        types.StringType,
	"description": types.StringType,
	"icon":        types.StringType,
	"sample_text": types.StringType,
}

func (d *TemplatesDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_templates"
}

func (d *TemplatesDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Lists the layout templates in display order.",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Data source identifier",
			},
			"templates": schema.ListNestedAttribute{
				MarkdownDescription: "Every template of the catalog.",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"id":          schema.StringAttribute{Computed: true},
						"name":        schema.StringAttribute{Computed: true},
						"description": schema.StringAttribute{Computed: true},
						"icon":        schema.StringAttribute{Computed: true},
						"sample_text": schema.StringAttribute{Computed: true},
					},
				},
			},
		},
	}
}

func (d *TemplatesDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data TemplatesDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	templates := lo.Map(catalog.All(), func(t catalog.Template, _ int) templateModel {
		return templateModel{
			ID:          types.StringValue(string(t.ID)),
			Name:        types.StringValue(t.Name),
			Description: types.StringValue(t.Description),
			Icon:        types.StringValue(t.Icon),
			SampleText:  types.StringValue(t.SampleText),
		}
	})
	list, diags := types.ListValueFrom(ctx, types.ObjectType{AttrTypes: templateAttrTypes}, templates)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	data.ID = types.StringValue("templates")
	data.Templates = list

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
