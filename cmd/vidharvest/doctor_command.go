package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidharvest/internal/preflight"
	"vidharvest/internal/textutil"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check directories and external binaries before a run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg)
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				state := textutil.Ternary(result.OK, "ok", "fail")
				if result.Warning {
					state = "warn"
				}
				rows = append(rows, []string{result.Name, state, result.Detail})
			}
			out := renderTable(
				[]string{"Check", "State", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if preflight.Failed(results) {
				return fmt.Errorf("preflight failed")
			}
			return nil
		},
	}
}
