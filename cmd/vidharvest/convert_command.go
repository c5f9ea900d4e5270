package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidharvest/internal/subtitle"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [dir]",
		Short: "Convert downloaded .vtt subtitle files to plain text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				dir = cfg.Paths.OutputDir
			}

			converted, err := subtitle.ConvertDir(dir)
			if err != nil {
				return fmt.Errorf("convert subtitles in %s: %w", dir, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %d subtitle file(s) in %s\n", converted, dir)
			return nil
		},
	}
}
