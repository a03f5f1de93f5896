package cli

import (
	"io"

	"github.com/spf13/cobra"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
	"github.com/ankek/terraform-provider-infographic/internal/source"
	"github.com/ankek/terraform-provider-infographic/internal/validation"
)

// inputFlags select where the text comes from: a file argument, "-" for
// stdin, --text or --url.
type inputFlags struct {
	text  string
	url   string
	token string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.text, "text", "", "inline text instead of a file")
	cmd.Flags().StringVar(&f.url, "url", "", "fetch the text from an http(s) URL")
	cmd.Flags().StringVar(&f.token, "token", "", "bearer token sent with --url")
}

// input resolves the flags and the optional positional argument
func (f *inputFlags) input(cmd *cobra.Command, args []string) (source.Input, error) {
	in := source.Input{Text: f.text, URL: f.url, Token: f.token}
	if len(args) == 0 {
		return in, nil
	}

	if args[0] != "-" {
		in.File = args[0]
		return in, nil
	}
	if in.Text != "" {
		return source.Input{}, apperrors.New(apperrors.ErrCodeInvalidSource, "cannot read stdin and --text together")
	}
	data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), validation.MaxTextBytes+1))
	if err != nil {
		return source.Input{}, apperrors.Wrap(apperrors.ErrCodeInvalidSource, err, "failed to read stdin")
	}
	in.Text = string(data)
	return in, nil
}
