package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ankek/terraform-provider-infographic/internal/canvas"
	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	"github.com/ankek/terraform-provider-infographic/internal/style"
)

func (c *CLI) templatesCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List layout templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := catalog.All()
			if output != "" {
				return writeDocument(cmd, output, templates)
			}

			w := cmd.OutOrStdout()
			for _, t := range templates {
				fmt.Fprintln(w, t.Icon+" "+styleID.Render(string(t.ID))+styleName.Render(t.Name)+styleDim.Render(t.Description))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "print as yaml or json")
	return cmd
}

func (c *CLI) palettesCommand() *cobra.Command {
	var (
		output      string
		paletteFile string
	)

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List colour palettes with swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palettes, err := c.palettes(cmd.Context(), or(paletteFile, c.cfg.PaletteFile))
			if err != nil {
				return err
			}
			if output != "" {
				return writeDocument(cmd, output, palettes)
			}

			w := cmd.OutOrStdout()
			for _, p := range palettes {
				fmt.Fprintln(w, swatch(p.Primary)+swatch(p.Secondary)+swatch(p.Accent)+"  "+
					styleName.Render(p.Name)+styleDim.Render(strings.Join([]string{p.Primary, p.Secondary, p.Accent}, " ")))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "print as yaml or json")
	cmd.Flags().StringVar(&paletteFile, "palette-file", "", "HCL file of extra palettes")
	return cmd
}

// palettes returns every selectable palette in lookup order: palette file,
// config file, built-ins.
func (c *CLI) palettes(ctx context.Context, paletteFile string) ([]style.Palette, error) {
	var out []style.Palette
	if paletteFile != "" {
		fromFile, err := style.LoadPaletteFile(ctx, paletteFile)
		if err != nil {
			return nil, err
		}
		out = append(out, fromFile...)
	}
	out = append(out, c.cfg.Palettes...)
	return append(out, style.Palettes()...), nil
}

func (c *CLI) glyphsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "glyphs",
		Short: "List decorative glyphs by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := style.GlyphCategories()
			if output != "" {
				return writeDocument(cmd, output, categories)
			}

			w := cmd.OutOrStdout()
			for _, gc := range categories {
				printKeyValue(w, gc.Name, strings.Join(gc.Glyphs, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "print as yaml or json")
	return cmd
}

func (c *CLI) sizesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "List canvas size presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			printHeading(w, "Sizes")
			for _, s := range canvas.Sizes() {
				printKeyValue(w, s.Name, s.String())
			}
			return nil
		},
	}
}
