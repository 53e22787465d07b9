package cli

import (
	"context"

	"github.com/haldane-labs/nysm-stn/internal/ir"
	"github.com/haldane-labs/nysm-stn/internal/queryir"
	"github.com/haldane-labs/nysm-stn/internal/store"
	"github.com/spf13/cobra"
)

// NewQueryCommand implements
// "nysm-stn query <db> --schedule <id> [--kind K] [--min-lo N] [--max-hi N]".
func NewQueryCommand(opts *RootOptions) *cobra.Command {
	var scheduleID, kind string
	var minLo, maxHi float64
	var hasMinLo, hasMaxHi bool

	cmd := &cobra.Command{
		Use:   "query <db>",
		Short: "query recorded mutations for a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatterFor(opts, cmd)
			if scheduleID == "" {
				return NewExitError(ExitCommandError, "--schedule is required")
			}

			hasMinLo = cmd.Flags().Changed("min-lo")
			hasMaxHi = cmd.Flags().Changed("max-hi")

			predicates := []queryir.Predicate{queryir.Equals{Field: "schedule_id", Value: ir.IRString(scheduleID)}}
			if kind != "" {
				predicates = append(predicates, queryir.Equals{Field: "kind", Value: ir.IRString(kind)})
			}
			if hasMinLo {
				predicates = append(predicates, queryir.Range{Field: "lo", Min: minLo, HasMin: true})
			}
			if hasMaxHi {
				predicates = append(predicates, queryir.Range{Field: "hi", Max: maxHi, HasMax: true})
			}

			q := queryir.Select{
				Filter: queryir.And{Predicates: predicates},
				Bindings: map[string]string{
					"seq": "seq", "kind": "kind", "event_a": "event_a", "event_b": "event_b",
					"lo": "lo", "hi": "hi", "commit_time": "commit_time",
				},
			}
			if result := queryir.Validate(q); !result.IsPortable {
				out.VerboseLog("query is not fully portable: %v", result.Warnings)
			}

			st, err := store.Open(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "open database", err)
			}
			defer st.Close()

			rows, err := st.Query(context.Background(), q)
			if err != nil {
				return WrapExitError(ExitCommandError, "run query", err)
			}
			return out.Success(rows)
		},
	}

	cmd.Flags().StringVar(&scheduleID, "schedule", "", "schedule id to query")
	cmd.Flags().StringVar(&kind, "kind", "", "filter by mutation kind")
	cmd.Flags().Float64Var(&minLo, "min-lo", 0, "filter to mutations with lo >= this value")
	cmd.Flags().Float64Var(&maxHi, "max-hi", 0, "filter to mutations with hi <= this value")
	return cmd
}
