package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aman-cerp/codesearch/internal/output"
)

func newDefineCmd() *cobra.Command {
	var language string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "define <symbol>",
		Short: "Find where a symbol is defined",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			locs, err := a.resolver.GetDefinition(c.Context(), a.cfg.ProjectRoot, args[0], language)
			if err != nil {
				return err
			}

			w := output.New(c.OutOrStdout(), asJSON)
			return w.Locations(locs)
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "symbol's source language: python or typescript")
	cmd.Flags().BoolVar(&asJSON, "json", false, "force JSON output")
	cmd.MarkFlagRequired("language")
	return cmd
}

func newRefsCmd() *cobra.Command {
	var language string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "refs <symbol>",
		Short: "Find references to a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			locs, err := a.resolver.GetReferences(c.Context(), a.cfg.ProjectRoot, args[0], language)
			if err != nil {
				return err
			}

			w := output.New(c.OutOrStdout(), asJSON)
			return w.Locations(locs)
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "symbol's source language: python or typescript")
	cmd.Flags().BoolVar(&asJSON, "json", false, "force JSON output")
	cmd.MarkFlagRequired("language")
	return cmd
}
