package report_test

import (
	"strings"
	"testing"

	"github.com/jdlocklin-backyard/photo-organizing/internal/catalog"
	"github.com/jdlocklin-backyard/photo-organizing/internal/dedupe"
	"github.com/jdlocklin-backyard/photo-organizing/internal/report"
)

func sampleGroups() []dedupe.Group {
	return []dedupe.Group{
		{
			Key: dedupe.Key{Ext: "jpg", Size: 5_200_000},
			Members: []catalog.Record{
				{Name: "img_0001.jpg", Stem: "img_0001", Ext: "jpg", Size: 5_200_000},
				{Name: "img_0001_copy.jpg", Stem: "img_0001_copy", Ext: "jpg", Size: 5_200_000},
			},
		},
		{
			Key: dedupe.Key{Ext: "", Size: 1000},
			Members: []catalog.Record{
				{Name: "scan-a", Stem: "scan-a", Size: 1000},
				{Name: "scan-b", Stem: "scan-b", Size: 1000},
			},
		},
	}
}

func TestPlainContainsMembersAndKey(t *testing.T) {
	out := report.Plain(sampleGroups())

	for _, fragment := range []string{
		"[Group 1]",
		"JPG",
		"5.2 MB",
		"img_0001.jpg",
		"img_0001_copy.jpg",
		"[Group 2]",
		"(none)",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("plain output missing %q:\n%s", fragment, out)
		}
	}
}

func TestPlainStableAcrossRuns(t *testing.T) {
	groups := sampleGroups()
	if report.Plain(groups) != report.Plain(groups) {
		t.Fatal("plain rendering is not reproducible")
	}
}

func TestTableContainsMembers(t *testing.T) {
	out := report.Table(sampleGroups())
	for _, fragment := range []string{"img_0001.jpg", "img_0001_copy.jpg", "JPG", "5.2 MB"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("table output missing %q:\n%s", fragment, out)
		}
	}
}

func TestFormatSizeDecimal(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{999, "999 B"},
		{1000, "1.0 kB"},
		{5_200_000, "5.2 MB"},
		{1_000_000_000, "1.0 GB"},
	}

	for _, tt := range tests {
		if got := report.FormatSize(tt.size); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestExtensionLabel(t *testing.T) {
	if got := report.ExtensionLabel("cr2"); got != "CR2" {
		t.Errorf("ExtensionLabel(cr2) = %q", got)
	}
	if got := report.ExtensionLabel(""); got != "(none)" {
		t.Errorf("ExtensionLabel(empty) = %q", got)
	}
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(sampleGroups())
	if s.Groups != 2 || s.Files != 4 {
		t.Fatalf("Summarize = %+v, want {Groups:2 Files:4}", s)
	}
}
