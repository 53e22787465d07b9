package cli

import (
	"context"

	"github.com/haldane-labs/nysm-stn/internal/store"
	"github.com/spf13/cobra"
)

// NewReplayCommand implements "nysm-stn replay <db> --schedule <id>".
func NewReplayCommand(opts *RootOptions) *cobra.Command {
	var scheduleID string

	cmd := &cobra.Command{
		Use:   "replay <db>",
		Short: "replay a schedule's audit log and print its reconstructed windows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatterFor(opts, cmd)
			if scheduleID == "" {
				return NewExitError(ExitCommandError, "--schedule is required")
			}

			st, err := store.Open(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "open database", err)
			}
			defer st.Close()

			sched, err := st.Replay(context.Background(), scheduleID)
			if err != nil {
				return WrapExitError(ExitCommandError, "replay schedule", err)
			}
			if err := sched.Compile(); err != nil {
				return WrapExitError(ExitFailure, "replayed schedule is infeasible", err)
			}

			report := make([]EventReport, 0, len(sched.Events()))
			for _, e := range sched.Events() {
				w, err := sched.Window(e)
				if err != nil {
					return WrapExitError(ExitCommandError, "query replayed schedule", err)
				}
				report = append(report, EventReport{ID: eventID(e), Window: [2]float64{w.Lower(), w.Upper()}})
			}
			return out.Success(report)
		},
	}

	cmd.Flags().StringVar(&scheduleID, "schedule", "", "schedule id to replay")
	return cmd
}
