package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdlocklin-backyard/photo-organizing/internal/catalog"
	"github.com/jdlocklin-backyard/photo-organizing/internal/config"
	"github.com/jdlocklin-backyard/photo-organizing/internal/organize"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var destFlag string
	var moveFlag bool
	var dryRunFlag bool

	cmd := &cobra.Command{
		Use:   "organize <source>",
		Short: "Sort photos into a YYYY/YYYYMMDD/EXT library by capture date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			dest := ""
			if destFlag != "" {
				if dest, err = config.ExpandPath(destFlag); err != nil {
					return err
				}
			}

			move := moveFlag
			if !cmd.Flags().Changed("move") {
				move = !cfg.Organize.CopyByDefault
			}

			org := organize.New(cfg.Organize, catalog.NewExtensionSet(cfg.Scan.Extensions), ctx.ensureLogger())
			stats, err := org.Run(cmd.Context(), organize.Options{
				Source:      source,
				Destination: dest,
				Move:        move,
				DryRun:      dryRunFlag,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			action := "Copied"
			if move {
				action = "Moved"
			}
			if dryRunFlag {
				action = "Would organize"
			}
			fmt.Fprintf(out, "Destination: %s\n", stats.Destination)
			fmt.Fprintf(out, "%s %d of %d media file%s.\n", action, stats.Organized, stats.Found, pluralSuffix(stats.Found, "", "s"))
			if stats.Skipped > 0 {
				fmt.Fprintf(out, "Skipped %d file%s:\n", stats.Skipped, pluralSuffix(stats.Skipped, "", "s"))
				for _, msg := range stats.Errors {
					fmt.Fprintf(out, "  - %s\n", msg)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&destFlag, "dest", "", "Destination library root (default: Organized inside the source)")
	cmd.Flags().BoolVar(&moveFlag, "move", false, "Move files instead of copying them")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report what would happen without touching any file")
	return cmd
}
