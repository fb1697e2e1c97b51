package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aman-cerp/codesearch/internal/output"
)

func newIndexCmd() *cobra.Command {
	var rebuild bool

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Refresh the full-text index for changed files",
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			start := time.Now()
			if rebuild {
				s, err := a.indexer.Rebuild(c.Context())
				if err != nil {
					return fmt.Errorf("rebuild index: %w", err)
				}
				w := output.New(c.OutOrStdout(), false)
				return w.RebuildStats(s.IndexedFiles, s.Chunks, int(time.Since(start).Milliseconds()))
			}

			s, err := a.indexer.Refresh(c.Context())
			if err != nil {
				return fmt.Errorf("refresh index: %w", err)
			}
			w := output.New(c.OutOrStdout(), false)
			return w.RebuildStats(s.IndexedFiles, s.Chunks, int(time.Since(start).Milliseconds()))
		},
	}

	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "drop the index and rebuild it from scratch")
	cmd.AddCommand(newIndexInfoCmd())
	return cmd
}

func newIndexInfoCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show index size and location without triggering a refresh",
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			paths, err := a.store.AllPaths(c.Context())
			if err != nil {
				return fmt.Errorf("list indexed files: %w", err)
			}

			chunks := 0
			for p := range paths {
				meta, err := a.store.GetFileMeta(c.Context(), p)
				if err != nil {
					return fmt.Errorf("read file metadata: %w", err)
				}
				if meta != nil {
					chunks += meta.ChunkCount
				}
			}

			var dbSizeBytes int64
			if info, err := os.Stat(a.cfg.Store.DBPath); err == nil {
				dbSizeBytes = info.Size()
			}

			if asJSON {
				w := output.New(c.OutOrStdout(), true)
				return w.IndexInfo(a.cfg.Store.DBPath, len(paths), chunks, dbSizeBytes)
			}

			fmt.Fprintf(c.OutOrStdout(), "project root:  %s\n", a.cfg.ProjectRoot)
			fmt.Fprintf(c.OutOrStdout(), "db path:       %s\n", a.cfg.Store.DBPath)
			fmt.Fprintf(c.OutOrStdout(), "indexed files: %d\n", len(paths))
			fmt.Fprintf(c.OutOrStdout(), "chunks:        %d\n", chunks)
			fmt.Fprintf(c.OutOrStdout(), "db size:       %d bytes\n", dbSizeBytes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "force JSON output")
	return cmd
}
