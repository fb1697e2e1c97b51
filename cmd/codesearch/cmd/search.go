package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aman-cerp/codesearch/internal/output"
)

func newSearchCmd() *cobra.Command {
	var extensions string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the full-text index",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.indexer.Refresh(c.Context()); err != nil {
				return fmt.Errorf("refresh index: %w", err)
			}

			results, err := a.engine.Search(c.Context(), args[0], extensions, limit)
			if err != nil {
				return err
			}

			w := output.New(c.OutOrStdout(), asJSON)
			return w.SearchResults(results)
		},
	}

	cmd.Flags().StringVar(&extensions, "extensions", "", "comma-separated file extensions to filter by (default project setting)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (default project setting)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "force JSON output")

	return cmd
}
