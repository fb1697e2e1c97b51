package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aman-cerp/codesearch/internal/preflight"
)

type doctorError struct{ message string }

func (e *doctorError) Error() string { return e.message }

func newDoctorCmd() *cobra.Command {
	var verbose bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that this environment can index and serve the project",
		Long: `Run environment diagnostics before indexing or serving a project.

Checks:
  - Disk space (100MB minimum)
  - Write permissions on the project root
  - File descriptor limit (1024 minimum)
  - Index store can be opened
  - Symbol resolver backends (non-critical)`,
		RunE: func(c *cobra.Command, _ []string) error {
			root, err := resolvedProjectRoot()
			if err != nil {
				return err
			}

			checker := preflight.New(
				preflight.WithVerbose(verbose),
				preflight.WithOutput(c.OutOrStdout()),
			)
			results := checker.RunAll(c.Context(), root)

			if jsonOutput {
				return writeDoctorJSON(c, checker, results)
			}
			checker.PrintResults(results)

			if checker.HasCriticalFailures(results) {
				return &doctorError{message: "system check failed"}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed diagnostic info")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

type doctorJSON struct {
	Status string             `json:"status"`
	Checks []preflight.Result `json:"checks"`
}

func writeDoctorJSON(cmd *cobra.Command, checker *preflight.Checker, results []preflight.Result) error {
	out := doctorJSON{Status: checker.SummaryStatus(results), Checks: results}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	if checker.HasCriticalFailures(results) {
		return &doctorError{message: "system check failed"}
	}
	return nil
}
