package cli

import (
	"os"

	"github.com/haldane-labs/nysm-stn/internal/compiler"
	"github.com/spf13/cobra"
)

// DistanceRow is one row of the printed distance matrix.
type DistanceRow struct {
	From string             `json:"from"`
	To   map[string]float64 `json:"to"`
}

// NewTraceCommand implements "nysm-stn trace <schedule.yaml>".
func NewTraceCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <schedule.yaml>",
		Short: "print the full signed distance matrix after compile, for debugging infeasibility",
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

			sched, events, _, err := def.Build("trace", nil)
			if err != nil {
				return WrapExitError(ExitCommandError, "build schedule", err)
			}

			compileErr := sched.Compile()

			names := sortedKeys(events)
			rows := make([]DistanceRow, 0, len(names))
			for _, fromName := range names {
				row := DistanceRow{From: fromName, To: make(map[string]float64, len(names))}
				for _, toName := range names {
					d, err := sched.EventDistance(events[fromName], events[toName])
					if err != nil {
						continue
					}
					row.To[toName] = d
				}
				rows = append(rows, row)
			}

			if compileErr != nil {
				out.VerboseLog("schedule is infeasible: %v", compileErr)
			}
			return out.Success(rows)
		},
	}
}
