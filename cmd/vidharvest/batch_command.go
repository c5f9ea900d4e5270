package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidharvest/internal/inputlist"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "batch <list-file>",
		Short: "Download every URL in a prepared list (xlsx, csv, or plain text)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := inputlist.Read(args[0])
			if err != nil {
				return fmt.Errorf("read input list: %w", err)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Input list contains no downloadable items")
				return nil
			}

			runner, led, err := ctx.newRunner(force)
			if err != nil {
				return err
			}
			defer led.Close()

			stats, err := runner.RunList(cmd.Context(), items)
			printRunSummary(cmd, stats)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-download items the ledger already records as succeeded")
	return cmd
}
