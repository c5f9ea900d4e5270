package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidharvest/internal/ledger"
	"vidharvest/internal/media"
	"vidharvest/internal/textutil"
)

func newLedgerCommand(ctx *commandContext) *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger utilities",
	}

	ledgerCmd.AddCommand(newLedgerShowCommand(ctx))
	ledgerCmd.AddCommand(newLedgerExportCommand(ctx))

	return ledgerCmd
}

func newLedgerShowCommand(ctx *commandContext) *cobra.Command {
	var statusFilter string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List recorded acquisition attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := ctx.openLedger()
			if err != nil {
				return err
			}
			defer led.Close()

			entries, err := led.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("read ledger: %w", err)
			}
			entries = filterEntries(entries, statusFilter)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Ledger is empty")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					truncateCell(entry.Title, 48),
					string(entry.Platform),
					textutil.Ternary(entry.DurationSeconds > 0, ledger.FormatDuration(entry.DurationSeconds), "-"),
					string(entry.Status),
					entry.DownloadedAt.Local().Format("2006-01-02 15:04"),
					truncateCell(entry.Error, 40),
				})
			}
			out := renderTable(
				[]string{"Title", "Platform", "Duration", "Status", "Recorded", "Error"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFilter, "status", "", "Only show entries with this status (success, failed, skipped)")
	return cmd
}

func newLedgerExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Rebuild the spreadsheet mirror from the ledger database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := ctx.openLedger()
			if err != nil {
				return err
			}
			defer led.Close()

			if err := led.Finalize(cmd.Context()); err != nil {
				return fmt.Errorf("rebuild spreadsheet mirror: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", led.XLSXPath())
			return nil
		},
	}
}

func filterEntries(entries []ledger.Entry, status string) []ledger.Entry {
	status = strings.TrimSpace(strings.ToLower(status))
	if status == "" {
		return entries
	}
	filtered := entries[:0]
	for _, entry := range entries {
		if entry.Status == media.OutcomeStatus(status) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func truncateCell(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max-1]) + "…"
}
