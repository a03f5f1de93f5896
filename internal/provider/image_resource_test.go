package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/tfsdk"
	"github.com/hashicorp/terraform-plugin-framework/types"

	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	"github.com/ankek/terraform-provider-infographic/internal/generator"
)

func imageSchema(t *testing.T) resource.SchemaResponse {
	t.Helper()
	var resp resource.SchemaResponse
	NewImageResource().Schema(context.Background(), resource.SchemaRequest{}, &resp)
	if resp.Diagnostics.HasError() {
		t.Fatalf("Schema() diagnostics: %v", resp.Diagnostics)
	}
	return resp
}

// planFor encodes model as a plan of the image resource schema
func planFor(t *testing.T, model ImageResourceModel) tfsdk.Plan {
	t.Helper()
	ctx := context.Background()
	sch := imageSchema(t).Schema

	state := tfsdk.State{Schema: sch}
	if diags := state.Set(ctx, &model); diags.HasError() {
		t.Fatalf("State.Set() = %v", diags)
	}
	return tfsdk.Plan{Schema: sch, Raw: state.Raw}
}

func newImageModel(text, outputPath string) ImageResourceModel {
	return ImageResourceModel{
		ID:         types.StringUnknown(),
		Text:       types.StringValue(text),
		OutputPath: types.StringValue(outputPath),
		Category:   types.StringUnknown(),
		Title:      types.StringUnknown(),
		TemplateID: types.StringUnknown(),
		ItemCount:  types.Int64Unknown(),
		SHA256:     types.StringUnknown(),
	}
}

func configuredImageResource() *ImageResource {
	return &ImageResource{data: defaultProviderData(generator.New(nil))}
}

func TestImageResourceSchema(t *testing.T) {
	ctx := context.Background()
	resp := imageSchema(t)
	if diags := resp.Schema.ValidateImplementation(ctx); diags.HasError() {
		t.Fatalf("ValidateImplementation() = %v", diags)
	}

	var meta resource.MetadataResponse
	NewImageResource().Metadata(ctx, resource.MetadataRequest{ProviderTypeName: "infographic"}, &meta)
	if meta.TypeName != "infographic_image" {
		t.Errorf("TypeName = %q, want infographic_image", meta.TypeName)
	}

	for _, name := range []string{"id", "category", "title", "template_id", "item_count", "sha256"} {
		attr, ok := resp.Schema.Attributes[name]
		if !ok {
			t.Errorf("schema is missing %q", name)
			continue
		}
		if !attr.IsComputed() {
			t.Errorf("%q should be computed", name)
		}
	}
	if !resp.Schema.Attributes["source_token"].IsSensitive() {
		t.Error("source_token should be sensitive")
	}
}

func TestImageResourceCreate(t *testing.T) {
	ctx := context.Background()
	sch := imageSchema(t).Schema
	outputPath := filepath.Join(t.TempDir(), "steps.png")

	model := newImageModel("How to Bake\nStep 1: Mix\nStep 2: Bake\nStep 3: Serve", outputPath)
	model.Palette = types.StringValue("Forest Green")

	r := configuredImageResource()
	resp := resource.CreateResponse{State: tfsdk.State{Schema: sch}}
	r.Create(ctx, resource.CreateRequest{Plan: planFor(t, model)}, &resp)
	if resp.Diagnostics.HasError() {
		t.Fatalf("Create() diagnostics: %v", resp.Diagnostics)
	}

	var got ImageResourceModel
	if diags := resp.State.Get(ctx, &got); diags.HasError() {
		t.Fatalf("State.Get() = %v", diags)
	}
	if got.ID.IsUnknown() || got.ID.ValueString() == "" {
		t.Error("Create() should set an id")
	}
	if got.Category.ValueString() != "steps" {
		t.Errorf("category = %q, want steps", got.Category.ValueString())
	}
	if got.Title.ValueString() != "How to Bake" {
		t.Errorf("title = %q, want How to Bake", got.Title.ValueString())
	}
	if got.TemplateID.ValueString() != string(catalog.ProcessFlow) {
		t.Errorf("template_id = %q, want %s", got.TemplateID.ValueString(), catalog.ProcessFlow)
	}
	if got.ItemCount.ValueInt64() != 3 {
		t.Errorf("item_count = %d, want 3", got.ItemCount.ValueInt64())
	}
	if len(got.SHA256.ValueString()) != 64 {
		t.Errorf("sha256 = %q, want a hex digest", got.SHA256.ValueString())
	}
	if !got.Format.IsNull() {
		t.Error("format should stay null when not configured")
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Errorf("Create() did not write %s: %v", outputPath, err)
	}
}

func TestImageResourceCreateErrors(t *testing.T) {
	ctx := context.Background()
	sch := imageSchema(t).Schema
	tmpDir := t.TempDir()

	tests := []struct {
		name   string
		modify func(m *ImageResourceModel)
	}{
		{
			name:   "unknown palette",
			modify: func(m *ImageResourceModel) { m.Palette = types.StringValue("Nope") },
		},
		{
			name:   "extension does not match format",
			modify: func(m *ImageResourceModel) { m.Format = types.StringValue("jpeg") },
		},
		{
			name: "output directory does not exist",
			modify: func(m *ImageResourceModel) {
				m.OutputPath = types.StringValue(filepath.Join(tmpDir, "missing", "out.png"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := newImageModel("Title\n- one", filepath.Join(tmpDir, "out.png"))
			tt.modify(&model)

			resp := resource.CreateResponse{State: tfsdk.State{Schema: sch}}
			configuredImageResource().Create(ctx, resource.CreateRequest{Plan: planFor(t, model)}, &resp)
			if !resp.Diagnostics.HasError() {
				t.Fatal("Create() should fail")
			}
		})
	}
}

func TestImageResourceReadRemovesMissingFile(t *testing.T) {
	ctx := context.Background()
	sch := imageSchema(t).Schema
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		createFile  bool
		wantRemoved bool
	}{
		{"file present", true, false},
		{"file gone", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath := filepath.Join(tmpDir, tt.name+".png")
			if tt.createFile {
				if err := os.WriteFile(outputPath, []byte("png"), 0644); err != nil {
					t.Fatalf("Failed to create output file: %v", err)
				}
			}

			model := newImageModel("Title", outputPath)
			model.ID = types.StringValue("abc")
			model.Category = types.StringValue("generic")
			model.Title = types.StringValue("Title")
			model.TemplateID = types.StringValue(string(catalog.CircularDiagram))
			model.ItemCount = types.Int64Value(0)
			model.SHA256 = types.StringValue("00")

			state := tfsdk.State{Schema: sch}
			if diags := state.Set(ctx, &model); diags.HasError() {
				t.Fatalf("State.Set() = %v", diags)
			}

			resp := resource.ReadResponse{State: state}
			configuredImageResource().Read(ctx, resource.ReadRequest{State: state}, &resp)
			if resp.Diagnostics.HasError() {
				t.Fatalf("Read() diagnostics: %v", resp.Diagnostics)
			}
			if removed := resp.State.Raw.IsNull(); removed != tt.wantRemoved {
				t.Errorf("removed = %v, want %v", removed, tt.wantRemoved)
			}
		})
	}
}

func TestImageResourceDelete(t *testing.T) {
	ctx := context.Background()
	sch := imageSchema(t).Schema
	outputPath := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(outputPath, []byte("png"), 0644); err != nil {
		t.Fatalf("Failed to create output file: %v", err)
	}

	model := newImageModel("Title", outputPath)
	model.ID = types.StringValue("abc")
	state := tfsdk.State{Schema: sch}
	if diags := state.Set(ctx, &model); diags.HasError() {
		t.Fatalf("State.Set() = %v", diags)
	}

	for i := 0; i < 2; i++ {
		resp := resource.DeleteResponse{State: state}
		configuredImageResource().Delete(ctx, resource.DeleteRequest{State: state}, &resp)
		if resp.Diagnostics.HasError() {
			t.Fatalf("Delete() #%d diagnostics: %v", i+1, resp.Diagnostics)
		}
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Errorf("Delete() should remove %s", outputPath)
	}
}

func TestDataSources(t *testing.T) {
	ctx := context.Background()

	t.Run("content", func(t *testing.T) {
		ds := NewContentDataSource()
		var sresp datasource.SchemaResponse
		ds.Schema(ctx, datasource.SchemaRequest{}, &sresp)
		if diags := sresp.Schema.ValidateImplementation(ctx); diags.HasError() {
			t.Fatalf("ValidateImplementation() = %v", diags)
		}

		config := tfsdk.State{Schema: sresp.Schema}
		in := ContentDataSourceModel{
			Text:  types.StringValue("Sales Report\nRevenue: $2.5M\nGrowth: 25%"),
			Items: types.ListNull(types.StringType),
			Stats: types.ListNull(types.ObjectType{AttrTypes: statAttrTypes}),
		}
		if diags := config.Set(ctx, &in); diags.HasError() {
			t.Fatalf("State.Set() = %v", diags)
		}

		resp := datasource.ReadResponse{State: tfsdk.State{Schema: sresp.Schema}}
		ds.Read(ctx, datasource.ReadRequest{Config: tfsdk.Config{Schema: sresp.Schema, Raw: config.Raw}}, &resp)
		if resp.Diagnostics.HasError() {
			t.Fatalf("Read() diagnostics: %v", resp.Diagnostics)
		}

		var out ContentDataSourceModel
		if diags := resp.State.Get(ctx, &out); diags.HasError() {
			t.Fatalf("State.Get() = %v", diags)
		}
		if out.Category.ValueString() != "statistics" {
			t.Errorf("category = %q, want statistics", out.Category.ValueString())
		}
		if out.SuggestedTemplate.ValueString() != string(catalog.Statistics) {
			t.Errorf("suggested_template = %q", out.SuggestedTemplate.ValueString())
		}
		if len(out.Stats.Elements()) != 2 {
			t.Errorf("stats = %d, want 2", len(out.Stats.Elements()))
		}
		if len(out.Items.Elements()) != 0 {
			t.Errorf("items = %d, want 0 for statistics", len(out.Items.Elements()))
		}

		var stats []statModel
		if diags := out.Stats.ElementsAs(ctx, &stats, false); diags.HasError() {
			t.Fatalf("ElementsAs() = %v", diags)
		}
		if stats[0].Label.ValueString() != "Revenue" || stats[0].Value.ValueString() != "$2.5M" {
			t.Errorf("stats[0] = %v", stats[0])
		}
	})

	t.Run("templates", func(t *testing.T) {
		ds := NewTemplatesDataSource()
		var sresp datasource.SchemaResponse
		ds.Schema(ctx, datasource.SchemaRequest{}, &sresp)
		if diags := sresp.Schema.ValidateImplementation(ctx); diags.HasError() {
			t.Fatalf("ValidateImplementation() = %v", diags)
		}

		config := tfsdk.State{Schema: sresp.Schema}
		in := TemplatesDataSourceModel{Templates: types.ListNull(types.ObjectType{AttrTypes: templateAttrTypes})}
		if diags := config.Set(ctx, &in); diags.HasError() {
			t.Fatalf("State.Set() = %v", diags)
		}

		resp := datasource.ReadResponse{State: tfsdk.State{Schema: sresp.Schema}}
		ds.Read(ctx, datasource.ReadRequest{Config: tfsdk.Config{Schema: sresp.Schema, Raw: config.Raw}}, &resp)
		if resp.Diagnostics.HasError() {
			t.Fatalf("Read() diagnostics: %v", resp.Diagnostics)
		}

		var out TemplatesDataSourceModel
		if diags := resp.State.Get(ctx, &out); diags.HasError() {
			t.Fatalf("State.Get() = %v", diags)
		}
		if got := len(out.Templates.Elements()); got != len(catalog.All()) {
			t.Errorf("templates = %d, want %d", got, len(catalog.All()))
		}
	})
}
