package cli

import (
	"os"
	"path/filepath"

	"github.com/haldane-labs/nysm-stn/internal/compiler"
	"github.com/spf13/cobra"
)

// NewBuildCommand implements "nysm-stn build <schedule.yaml>".
func NewBuildCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build <schedule.yaml>",
		Short: "compile and build a schedule, printing event windows and episode durations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatterFor(opts, cmd)

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "read schedule file", err)
			}

			def, errs := compiler.Compile(raw)
			if len(errs) > 0 {
				return reportValidationErrors(out, errs)
			}

			id := filepath.Base(args[0])
			sched, events, episodes, err := def.Build(id, nil)
			if err != nil {
				return WrapExitError(ExitCommandError, "build schedule", err)
			}
			if err := sched.Compile(); err != nil {
				return WrapExitError(ExitFailure, "schedule is infeasible", err)
			}

			report, err := buildReport(sched, events, episodes)
			if err != nil {
				return WrapExitError(ExitCommandError, "query built schedule", err)
			}
			return out.Success(report)
		},
	}
}
