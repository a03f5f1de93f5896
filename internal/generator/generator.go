// Package generator is the one-shot pipeline shared by the provider, the CLI
// and the HTTP shell: load text, build the style, generate through a Session
// and encode the image.
package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
	"github.com/ankek/terraform-provider-infographic/internal/renderer"
	"github.com/ankek/terraform-provider-infographic/internal/session"
	"github.com/ankek/terraform-provider-infographic/internal/source"
	"github.com/ankek/terraform-provider-infographic/internal/style"
	"github.com/ankek/terraform-provider-infographic/internal/validation"
)

// textLoader is satisfied by *source.Loader
type textLoader interface {
	Load(ctx context.Context, in source.Input) (string, error)
}

// pathValidator is satisfied by validation.Validator
type pathValidator interface {
	ValidateOutputPath(path string) error
	ValidateInputPath(path string, mustBeDir bool) error
}

// Config contains everything needed to generate one infographic
type Config struct {
	// Exactly one of Text, TextFile and SourceURL
	Text        string
	TextFile    string
	SourceURL   string
	SourceToken string

	Template       string // catalog id, "auto" or empty
	Palette        string
	PaletteFile    string
	CustomPalettes []style.Palette
	FontFamily     string
	Glyph          string
	Size           string
	Format         string
	OutputPath     string

	// Delay is the simulated processing time; zero skips it
	Delay time.Duration
}

// Result describes a generated infographic
type Result struct {
	Model      *content.Model
	Template   catalog.Template
	Palette    string
	Size       canvas.Size
	Format     renderer.Format
	Data       []byte
	OutputPath string
	SHA256     string
}

// Generator runs the pipeline. The zero value is not usable; call New.
type Generator struct {
	Loader textLoader
	Paths  pathValidator
	Logger *log.Logger
}

// New returns a generator fetching text with a default source.Loader
func New(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		Loader: source.NewLoader(),
		Paths:  validation.Validator{},
		Logger: logger,
	}
}

// Render produces the encoded image in memory.
// It respects the provided context for cancellation.
func (g *Generator) Render(ctx context.Context, cfg Config) (*Result, error) {
	result, snap, err := g.render(ctx, cfg)
	if err != nil {
		return nil, err
	}

	data, err := renderer.EncodeBytes(snap.Image, result.Format)
	if err != nil {
		return nil, err
	}
	result.setData(data)
	return result, nil
}

// Generate renders and writes the image to cfg.OutputPath.
// It performs the following steps:
//  1. Validates the output path and its extension
//  2. Loads the text and resolves template, palette, font and size
//  3. Classifies and renders through a Session
//  4. Encodes the image and writes it atomically
func (g *Generator) Generate(ctx context.Context, cfg Config) (*Result, error) {
	format, err := renderer.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	if err := g.Paths.ValidateOutputPath(cfg.OutputPath); err != nil {
		return nil, err
	}
	if err := validation.ValidateOutputExtension(cfg.OutputPath, format.Extensions()...); err != nil {
		return nil, err
	}

	result, snap, err := g.render(ctx, cfg)
	if err != nil {
		return nil, err
	}

	data, err := renderer.ExportFile(ctx, snap.Image, cfg.OutputPath, result.Format)
	if err != nil {
		return nil, err
	}
	result.setData(data)
	result.OutputPath = cfg.OutputPath

	g.Logger.Info("wrote infographic", "path", cfg.OutputPath, "bytes", len(data), "template", result.Template.ID)
	return result, nil
}

func (g *Generator) render(ctx context.Context, cfg Config) (*Result, *session.Snapshot, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	format, err := renderer.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nil, err
	}
	if !format.Raster() {
		return nil, nil, apperrors.New(apperrors.ErrCodeUnsupported, "%s export is not supported, use png or jpeg", format)
	}

	size, err := canvas.ParseSize(cfg.Size)
	if err != nil {
		return nil, nil, err
	}

	st, err := g.style(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	text, err := g.Loader.Load(ctx, source.Input{
		Text:  cfg.Text,
		File:  cfg.TextFile,
		URL:   cfg.SourceURL,
		Token: cfg.SourceToken,
	})
	if err != nil {
		return nil, nil, err
	}

	delay := cfg.Delay
	sess, err := session.New(session.Options{
		Template: catalog.ID(cfg.Template),
		Style:    &st,
		Size:     size,
		Delay:    &delay,
		Logger:   g.Logger,
	})
	if err != nil {
		return nil, nil, err
	}

	task, err := sess.Generate(text)
	if err != nil {
		return nil, nil, err
	}
	g.Logger.Debug("waiting for generation", "task", task.ID)

	snap, err := task.Wait(ctx)
	if err != nil {
		return nil, nil, err
	}

	return &Result{
		Model:    snap.Model,
		Template: snap.Template,
		Palette:  st.Palette,
		Size:     size,
		Format:   format,
	}, snap, nil
}

// style resolves the palette, loading the palette file when one is set
func (g *Generator) style(ctx context.Context, cfg Config) (style.Context, error) {
	custom := append([]style.Palette{}, cfg.CustomPalettes...)
	if cfg.PaletteFile != "" {
		if err := g.Paths.ValidateInputPath(cfg.PaletteFile, false); err != nil {
			return style.Context{}, err
		}
		fromFile, err := style.LoadPaletteFile(ctx, cfg.PaletteFile)
		if err != nil {
			return style.Context{}, err
		}
		g.Logger.Debug("loaded palette file", "path", cfg.PaletteFile, "palettes", len(fromFile))
		custom = append(fromFile, custom...)
	}

	p, err := style.LookupPalette(cfg.Palette, custom...)
	if err != nil {
		return style.Context{}, err
	}
	return style.New(p, cfg.FontFamily, cfg.Glyph)
}

func (r *Result) setData(data []byte) {
	sum := sha256.Sum256(data)
	r.Data = data
	r.SHA256 = hex.EncodeToString(sum[:])
}
