package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdlocklin-backyard/photo-organizing/internal/cleanup"
	"github.com/jdlocklin-backyard/photo-organizing/internal/config"
)

func newCleanupCommand(ctx *commandContext) *cobra.Command {
	var excludeFlag string
	var dryRunFlag bool
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "cleanup <folder>",
		Short: "Delete junk files and empty folders left behind by editing tools",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			folder, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			excluded := ""
			if excludeFlag != "" {
				if excluded, err = config.ExpandPath(excludeFlag); err != nil {
					return err
				}
			}

			cleaner := cleanup.New(cfg.Cleanup.JunkPatterns, ctx.ensureLogger())
			out := cmd.OutOrStdout()

			if !dryRunFlag && !yesFlag && stdinIsTerminal() {
				junk, err := cleaner.FindJunk(folder, excluded)
				if err != nil {
					return err
				}
				if len(junk) > 0 {
					fmt.Fprintf(out, "Junk files to delete (%d):\n", len(junk))
					for _, file := range junk {
						fmt.Fprintf(out, "  - %s\n", file)
					}
				}
				if !confirm(cmd.InOrStdin(), out, "Delete junk files and empty folders now?") {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			stats, err := cleaner.Run(cleanup.Options{
				Folder:   folder,
				Excluded: excluded,
				DryRun:   dryRunFlag,
			})
			if err != nil {
				return err
			}

			verb := "Deleted"
			if dryRunFlag {
				verb = "Would delete"
			}
			fmt.Fprintf(out, "%s %d junk file%s and %d empty folder%s.\n",
				verb,
				len(stats.JunkFiles), pluralSuffix(len(stats.JunkFiles), "", "s"),
				len(stats.EmptyFolders), pluralSuffix(len(stats.EmptyFolders), "", "s"))
			if dryRunFlag {
				for _, file := range stats.JunkFiles {
					fmt.Fprintf(out, "  junk: %s\n", file)
				}
				for _, dir := range stats.EmptyFolders {
					fmt.Fprintf(out, "  empty: %s\n", dir)
				}
			}
			if len(stats.Errors) > 0 {
				fmt.Fprintf(out, "%d entr%s could not be removed:\n", len(stats.Errors), pluralSuffix(len(stats.Errors), "y", "ies"))
				for _, msg := range stats.Errors {
					fmt.Fprintf(out, "  - %s\n", msg)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&excludeFlag, "exclude", "", "Subtree to leave untouched")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report what would be deleted without deleting anything")
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
