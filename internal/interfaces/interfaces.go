// Package interfaces defines interfaces for dependency injection and testing
package interfaces

import (
	"context"

	"github.com/ankek/terraform-provider-infographic/internal/generator"
	"github.com/ankek/terraform-provider-infographic/internal/source"
	"github.com/ankek/terraform-provider-infographic/internal/validation"
)

// TextLoader defines the interface for loading input text
type TextLoader interface {
	// Load returns the text of an inline, file or URL source
	Load(ctx context.Context, in source.Input) (string, error)
}

// PathValidator defines the interface for validating file paths
type PathValidator interface {
	// ValidateOutputPath validates an output path for security and accessibility
	ValidateOutputPath(path string) error

	// ValidateInputPath validates an input path (text or palette file)
	ValidateInputPath(path string, mustBeDir bool) error
}

// Generator defines the interface for generating infographics
type Generator interface {
	// Render produces the encoded image in memory
	Render(ctx context.Context, cfg generator.Config) (*generator.Result, error)

	// Generate renders and writes the image to cfg.OutputPath
	Generate(ctx context.Context, cfg generator.Config) (*generator.Result, error)
}

var (
	_ TextLoader    = (*source.Loader)(nil)
	_ PathValidator = validation.Validator{}
	_ Generator     = (*generator.Generator)(nil)
)
