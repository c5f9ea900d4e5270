package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidharvest/internal/pipeline"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "search <keyword>...",
		Short: "Search a platform by keyword and download the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := strings.TrimSpace(strings.Join(args, " "))
			if keyword == "" {
				return fmt.Errorf("keyword must not be empty")
			}

			runner, led, err := ctx.newRunner(force)
			if err != nil {
				return err
			}
			defer led.Close()

			stats, err := runner.RunSearch(cmd.Context(), keyword)
			printRunSummary(cmd, stats)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-download items the ledger already records as succeeded")
	return cmd
}

func printRunSummary(cmd *cobra.Command, stats pipeline.Stats) {
	fmt.Fprintf(cmd.OutOrStdout(),
		"Run complete: %d item(s), %d succeeded, %d failed, %d skipped, %d already recorded\n",
		stats.Total, stats.Succeeded, stats.Failed, stats.Skipped, stats.Deduped)
}
