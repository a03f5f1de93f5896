package cli

import (
	"github.com/spf13/cobra"

	"github.com/ankek/terraform-provider-infographic/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}

			logger := loggerFromContext(cmd.Context())
			srv := server.New(c.newGenerator(logger), cfg, logger)
			return srv.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
