package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdlocklin-backyard/photo-organizing/internal/catalog"
	"github.com/jdlocklin-backyard/photo-organizing/internal/config"
	"github.com/jdlocklin-backyard/photo-organizing/internal/dedupe"
	"github.com/jdlocklin-backyard/photo-organizing/internal/logging"
	"github.com/jdlocklin-backyard/photo-organizing/internal/report"
)

type duplicateGroupView struct {
	Extension string   `json:"extension"`
	SizeBytes int64    `json:"size_bytes"`
	Size      string   `json:"size"`
	Files     []string `json:"files"`
}

type duplicatesView struct {
	Folder  string               `json:"folder"`
	Skipped int                  `json:"skipped_entries"`
	Groups  []duplicateGroupView `json:"groups"`
}

func newDuplicatesCommand(ctx *commandContext) *cobra.Command {
	var excludeFlag string
	var thresholdFlag float64
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "duplicates <folder>",
		Short: "Scan one folder for duplicate photo candidates",
		Long: "Scan a single folder (no recursion) and group files that are probably\n" +
			"redundant copies: same extension, same byte size, and near-identical\n" +
			"filenames. Grouping is advisory; nothing is deleted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.ensureLogger(), "duplicates")

			folder, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			threshold := cfg.Scan.SimilarityThreshold
			if cmd.Flags().Changed("threshold") {
				if thresholdFlag <= 0 || thresholdFlag > 1 {
					return fmt.Errorf("threshold must be in (0, 1], got %v", thresholdFlag)
				}
				threshold = thresholdFlag
			}

			eligible := catalog.NewExtensionSet(cfg.Scan.Extensions)
			snap, err := catalog.Build(folder, eligible)
			if err != nil {
				return err
			}

			var excluded []catalog.Record
			if excludeFlag != "" {
				excludePath, err := config.ExpandPath(excludeFlag)
				if err != nil {
					return err
				}
				excludeSnap, err := catalog.Build(excludePath, eligible)
				if err != nil {
					return err
				}
				excluded = excludeSnap.Records
			}

			groups := dedupe.Find(snap.Records, excluded, dedupe.Options{
				Threshold:       threshold,
				ProtectedMarker: cfg.Scan.ProtectedMarker,
			})
			summary := report.Summarize(groups)
			logger.Info("scan complete",
				logging.String("folder", snap.Folder),
				logging.Int("files", len(snap.Records)),
				logging.Int("skipped", snap.Skipped),
				logging.Int("groups", summary.Groups),
			)

			out := cmd.OutOrStdout()

			if jsonFlag {
				return writeJSON(cmd, buildDuplicatesView(snap, groups))
			}

			if snap.Skipped > 0 {
				fmt.Fprintf(out, "Warning: %d entr%s could not be read and %s skipped.\n",
					snap.Skipped, pluralSuffix(snap.Skipped, "y", "ies"), pluralSuffix(snap.Skipped, "was", "were"))
			}
			if len(groups) == 0 {
				fmt.Fprintln(out, "No duplicate candidates found.")
				return nil
			}

			if stdoutIsTerminal() {
				fmt.Fprintln(out, report.Table(groups))
			} else {
				fmt.Fprint(out, report.Plain(groups))
			}
			fmt.Fprintf(out, "\n%d group%s, %d file%s total. Review before deleting anything.\n",
				summary.Groups, pluralSuffix(summary.Groups, "", "s"),
				summary.Files, pluralSuffix(summary.Files, "", "s"))
			return nil
		},
	}

	cmd.Flags().StringVar(&excludeFlag, "exclude", "", "Folder whose files (by name and size) are dropped from the scan")
	cmd.Flags().Float64Var(&thresholdFlag, "threshold", 0, "Override the filename similarity threshold (0-1]")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON instead of text")
	return cmd
}

func buildDuplicatesView(snap *catalog.Snapshot, groups []dedupe.Group) duplicatesView {
	view := duplicatesView{
		Folder:  snap.Folder,
		Skipped: snap.Skipped,
		Groups:  make([]duplicateGroupView, 0, len(groups)),
	}
	for _, g := range groups {
		files := make([]string, 0, len(g.Members))
		for _, m := range g.Members {
			files = append(files, m.Name)
		}
		view.Groups = append(view.Groups, duplicateGroupView{
			Extension: g.Key.Ext,
			SizeBytes: g.Key.Size,
			Size:      report.FormatSize(g.Key.Size),
			Files:     files,
		})
	}
	return view
}

func pluralSuffix(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
