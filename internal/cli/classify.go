package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ankek/terraform-provider-infographic/internal/catalog"
	"github.com/ankek/terraform-provider-infographic/internal/content"
	"github.com/ankek/terraform-provider-infographic/internal/source"
	"github.com/ankek/terraform-provider-infographic/internal/validation"
)

// classification is the printed result of the classify command
type classification struct {
	content.Document  `yaml:",inline"`
	SuggestedTemplate catalog.ID `json:"suggested_template" yaml:"suggested_template"`
}

func (c *CLI) classifyCommand() *cobra.Command {
	var (
		in     inputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "classify [file|-]",
		Short: "Print how text would be classified",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := in.input(cmd, args)
			if err != nil {
				return err
			}
			text, err := source.NewLoader().Load(cmd.Context(), input)
			if err != nil {
				return err
			}
			if err := validation.ValidateText(text); err != nil {
				return err
			}

			m := content.Classify(strings.TrimSpace(text))
			loggerFromContext(cmd.Context()).Debug("classified", "category", m.Category(), "items", m.Len())

			result := classification{Document: m.Document(), SuggestedTemplate: catalog.Suggest(m).ID}
			return writeDocument(cmd, output, result)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")

	return cmd
}

// writeDocument encodes v to the command output as YAML or JSON
func writeDocument(cmd *cobra.Command, format string, v any) error {
	w := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("invalid output format: %s (must be 'yaml' or 'json')", format)
	}
}
