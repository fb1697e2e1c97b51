// Package cmd provides the CLI commands for codesearch.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aman-cerp/codesearch/internal/logging"
	"github.com/aman-cerp/codesearch/pkg/version"
)

var (
	projectRoot string
	dbPath      string
	debugMode   bool

	loggingCleanup func()
)

// NewRootCmd creates the root command for the codesearch CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "codesearch",
		Short:   "Local, per-repository code search over an incremental full-text index",
		Version: version.Version,
	}
	cmd.SetVersionTemplate("codesearch version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&projectRoot, "project-root", ".", "root of the tree to index")
	cmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "index database path (default <project-root>/.code_search.db)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging to ~/.codesearch/logs/")

	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRunE = stopLogging

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newDefineCmd())
	cmd.AddCommand(newRefsCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

func startLogging(_ *cobra.Command, _ []string) error {
	cfg := logging.DefaultConfig()
	if debugMode {
		cfg = logging.DebugConfig()
	}
	logger, cleanup, err := logging.Setup(cfg)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	return nil
}

func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func resolvedProjectRoot() (string, error) {
	if projectRoot == "" || projectRoot == "." {
		return os.Getwd()
	}
	return projectRoot, nil
}
