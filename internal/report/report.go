package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jdlocklin-backyard/photo-organizing/internal/dedupe"
)

var upper = cases.Upper(language.Und)

// Summary aggregates counts across all reported groups.
type Summary struct {
	Groups int
	Files  int
}

// Summarize returns group and file totals for the given groups.
func Summarize(groups []dedupe.Group) Summary {
	s := Summary{Groups: len(groups)}
	for _, g := range groups {
		s.Files += len(g.Members)
	}
	return s
}

// Table renders groups as a rounded table, one row per member file.
func Table(groups []dedupe.Group) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Group", "Type", "Size", "File"})

	for i, g := range groups {
		for j, m := range g.Members {
			label := ""
			typeCol := ""
			sizeCol := ""
			if j == 0 {
				label = fmt.Sprintf("%d", i+1)
				typeCol = ExtensionLabel(g.Key.Ext)
				sizeCol = FormatSize(g.Key.Size)
			}
			tw.AppendRow(table.Row{label, typeCol, sizeCol, m.Name})
		}
		if i < len(groups)-1 {
			tw.AppendSeparator()
		}
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// Plain renders groups as indented text for non-terminal output.
func Plain(groups []dedupe.Group) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[Group %d] Type: %s | Size: %s\n", i+1, ExtensionLabel(g.Key.Ext), FormatSize(g.Key.Size))
		for _, m := range g.Members {
			fmt.Fprintf(&b, "  - %s\n", m.Name)
		}
	}
	return b.String()
}

// FormatSize renders a byte count using the decimal convention (kB, MB, GB).
func FormatSize(size int64) string {
	return humanize.Bytes(uint64(size))
}

// ExtensionLabel is the display form of a bucket extension: uppercased, with
// a placeholder for extensionless files.
func ExtensionLabel(ext string) string {
	if ext == "" {
		return "(none)"
	}
	return upper.String(ext)
}
