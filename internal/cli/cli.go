// Package cli implements the infographic command-line interface.
//
// # Commands
//
//   - render: classify text and write an infographic image
//   - classify: print the classified content as YAML or JSON
//   - templates, palettes, glyphs, sizes: list the pickers' data
//   - serve: run the HTTP API
//
// All commands support --verbose (-v) for debug-level logging and --config
// to read a TOML file other than $XDG_CONFIG_HOME/infographic/config.toml.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ankek/terraform-provider-infographic/internal/config"
	"github.com/ankek/terraform-provider-infographic/internal/generator"
	"github.com/ankek/terraform-provider-infographic/internal/interfaces"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds state shared by all commands
type CLI struct {
	stderr     io.Writer
	verbose    bool
	configPath string
	cfg        config.Config

	// newGenerator builds the pipeline once the logger is known
	newGenerator func(*log.Logger) interfaces.Generator
}

// New returns a CLI logging to stderr
func New(stderr io.Writer) *CLI {
	return &CLI{
		stderr: stderr,
		cfg:    config.Default(),
		newGenerator: func(l *log.Logger) interfaces.Generator {
			return generator.New(l)
		},
	}
}

// RootCommand creates the root command with every subcommand registered
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "infographic",
		Short:         "Turn plain text into infographic images",
		Long:          `infographic classifies text as steps, statistics, bullets, a timeline or generic content, picks a layout and renders it to PNG or JPEG.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if c.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(c.stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			logger.Debug("loaded config", "path", c.configPath, "template", cfg.Template, "palette", cfg.Palette)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("infographic %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/infographic/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.classifyCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.palettesCommand())
	root.AddCommand(c.glyphsCommand())
	root.AddCommand(c.sizesCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// Execute runs the CLI with os.Args
func Execute(ctx context.Context) error {
	return New(os.Stderr).RootCommand().ExecuteContext(ctx)
}
