package interfaces

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ankek/terraform-provider-infographic/internal/generator"
	"github.com/ankek/terraform-provider-infographic/internal/source"
	"github.com/ankek/terraform-provider-infographic/internal/validation"
)

func TestInterfacesAreSatisfied(t *testing.T) {
	var loader TextLoader = source.NewLoader()
	var validator PathValidator = validation.Validator{}
	var gen Generator = generator.New(nil)

	text, err := loader.Load(context.Background(), source.Input{Text: "Hello"})
	if err != nil || text != "Hello" {
		t.Errorf("Load() = %q, %v", text, err)
	}

	tmpDir := t.TempDir()
	if err := validator.ValidateOutputPath(filepath.Join(tmpDir, "out.png")); err != nil {
		t.Errorf("ValidateOutputPath() error = %v", err)
	}
	if err := validator.ValidateInputPath(tmpDir, true); err != nil {
		t.Errorf("ValidateInputPath() error = %v", err)
	}

	result, err := gen.Render(context.Background(), generator.Config{Text: "Hello\nWorld"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(result.Data) == 0 {
		t.Error("Render() returned no image data")
	}
}

// mockGenerator is the kind of fake the provider and server tests inject
type mockGenerator struct {
	calls int
}

func (m *mockGenerator) Render(_ context.Context, cfg generator.Config) (*generator.Result, error) {
	m.calls++
	return &generator.Result{Data: []byte(cfg.Text)}, nil
}

func (m *mockGenerator) Generate(ctx context.Context, cfg generator.Config) (*generator.Result, error) {
	result, _ := m.Render(ctx, cfg)
	result.OutputPath = cfg.OutputPath
	return result, os.WriteFile(cfg.OutputPath, result.Data, 0644)
}

func TestMockGenerator(t *testing.T) {
	mock := &mockGenerator{}
	var gen Generator = mock

	out := filepath.Join(t.TempDir(), "out.png")
	result, err := gen.Generate(context.Background(), generator.Config{Text: "x", OutputPath: out})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.OutputPath != out || mock.calls != 1 {
		t.Errorf("result = %+v, calls = %d", result, mock.calls)
	}
}
