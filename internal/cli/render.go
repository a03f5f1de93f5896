package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankek/terraform-provider-infographic/internal/generator"
	"github.com/ankek/terraform-provider-infographic/internal/renderer"
)

// renderOpts holds the flags of the render command. Empty values fall back
// to the config file.
type renderOpts struct {
	inputFlags
	output      string
	template    string
	palette     string
	paletteFile string
	font        string
	glyph       string
	size        string
	format      string
	delay       time.Duration
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render text to an infographic image",
		Example: `  infographic render notes.txt -o notes.png
  printf 'Launch\nStep 1: Plan\nStep 2: Build' | infographic render - --palette "Forest Green"
  infographic render --text $'Q3\nRevenue: $2.5M\nGrowth: 25%' --size widescreen`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.input(cmd, args)
			if err != nil {
				return err
			}

			cfg, err := c.generatorConfig(cmd, &opts)
			if err != nil {
				return err
			}
			cfg.Text, cfg.TextFile, cfg.SourceURL, cfg.SourceToken = in.Text, in.File, in.URL, in.Token

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			res, err := c.newGenerator(logger).Generate(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %s", res.Template.ID))

			w := cmd.OutOrStdout()
			printSuccess(w, "%s · %s · %d items", res.Model.Category(), res.Template.Name, res.Model.Len())
			printFile(w, res.OutputPath)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default infographic-<unix millis>.<ext>)")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "template id or auto")
	cmd.Flags().StringVarP(&opts.palette, "palette", "p", "", "palette name")
	cmd.Flags().StringVar(&opts.paletteFile, "palette-file", "", "HCL file of extra palettes")
	cmd.Flags().StringVar(&opts.font, "font", "", "font family")
	cmd.Flags().StringVar(&opts.glyph, "glyph", "", "decorative glyph for statistics cards")
	cmd.Flags().StringVarP(&opts.size, "size", "s", "", "standard, widescreen or WIDTHxHEIGHT")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "png or jpeg (default from the output extension)")
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "simulated processing time")

	return cmd
}

// generatorConfig merges the flags over the config file
func (c *CLI) generatorConfig(cmd *cobra.Command, opts *renderOpts) (generator.Config, error) {
	format, err := resolveFormat(opts.format, opts.output, c.cfg.Format)
	if err != nil {
		return generator.Config{}, err
	}

	output := opts.output
	if output == "" {
		output = defaultOutputName(time.Now(), format)
	}

	delay := c.cfg.Delay.Duration
	if cmd.Flags().Changed("delay") {
		delay = opts.delay
	}

	return generator.Config{
		Template:       or(opts.template, c.cfg.Template),
		Palette:        or(opts.palette, c.cfg.Palette),
		PaletteFile:    or(opts.paletteFile, c.cfg.PaletteFile),
		CustomPalettes: c.cfg.Palettes,
		FontFamily:     or(opts.font, c.cfg.Font),
		Glyph:          or(opts.glyph, c.cfg.Glyph),
		Size:           or(opts.size, c.cfg.Size),
		Format:         string(format),
		OutputPath:     output,
		Delay:          delay,
	}, nil
}

// resolveFormat picks the --format flag, then the output extension, then the
// configured format.
func resolveFormat(flag, output, fallback string) (renderer.Format, error) {
	if flag != "" {
		return renderer.ParseFormat(flag)
	}
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
		if f, err := renderer.ParseFormat(ext); err == nil {
			return f, nil
		}
	}
	return renderer.ParseFormat(fallback)
}

// defaultOutputName mirrors the browser download name
func defaultOutputName(now time.Time, format renderer.Format) string {
	return fmt.Sprintf("infographic-%d.%s", now.UnixMilli(), format.Extension())
}

func or(v, fallback string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
