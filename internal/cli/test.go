package cli

import (
	"fmt"
	"path/filepath"

	"github.com/haldane-labs/nysm-stn/internal/harness"
	"github.com/spf13/cobra"
)

// ScenarioReport is the per-scenario outcome printed by "nysm-stn test".
type ScenarioReport struct {
	Name string `json:"name"`
	Pass bool   `json:"pass"`
}

// NewTestCommand implements "nysm-stn test <scenarios-dir>", the
// CLI-callable form of the conformance harness.
func NewTestCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "run every harness scenario under a directory and report pass/fail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatterFor(opts, cmd)

			paths, err := filepath.Glob(filepath.Join(args[0], "*.yaml"))
			if err != nil {
				return WrapExitError(ExitCommandError, "glob scenarios dir", err)
			}
			if len(paths) == 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("no scenario files found under %s", args[0]))
			}

			var reports []ScenarioReport
			anyFailed := false
			for _, path := range paths {
				scenario, err := harness.Load(path)
				if err != nil {
					reports = append(reports, ScenarioReport{Name: filepath.Base(path), Pass: false})
					anyFailed = true
					out.VerboseLog("%s: failed to load: %v", path, err)
					continue
				}

				result, err := harness.Run(scenario)
				if err != nil {
					reports = append(reports, ScenarioReport{Name: scenario.Name, Pass: false})
					anyFailed = true
					out.VerboseLog("%s: failed to run: %v", scenario.Name, err)
					continue
				}

				reports = append(reports, ScenarioReport{Name: scenario.Name, Pass: result.Pass})
				if !result.Pass {
					anyFailed = true
				}
			}

			if err := out.Success(reports); err != nil {
				return err
			}
			if anyFailed {
				return NewExitError(ExitFailure, "one or more scenarios failed")
			}
			return nil
		},
	}
}
