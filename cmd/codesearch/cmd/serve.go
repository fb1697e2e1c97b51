package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aman-cerp/codesearch/internal/mcpservice"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			srv := mcpservice.NewServer(a.indexer, a.engine, a.resolver, a.cfg.ProjectRoot)
			return srv.Serve(c.Context())
		},
	}
}
