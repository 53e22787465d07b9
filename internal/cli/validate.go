package cli

import (
	"fmt"
	"os"

	"github.com/haldane-labs/nysm-stn/internal/compiler"
	"github.com/spf13/cobra"
)

// NewValidateCommand implements "nysm-stn validate <schedule.yaml>".
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schedule.yaml>",
		Short: "validate a schedule definition without building it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatterFor(opts, cmd)

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "read schedule file", err)
			}

			_, errs := compiler.Compile(raw)
			if len(errs) > 0 {
				return reportValidationErrors(out, errs)
			}
			return out.Success(fmt.Sprintf("%s is valid", args[0]))
		},
	}
}
