package dedupe

import (
	"sort"
	"strings"

	"github.com/jdlocklin-backyard/photo-organizing/internal/catalog"
	"github.com/jdlocklin-backyard/photo-organizing/internal/textutil"
)

// DefaultThreshold is the minimum stem similarity ratio for two files to be
// considered the same logical photo.
const DefaultThreshold = 0.80

// DefaultProtectedMarker marks names that represent a deliberate decision to
// keep exactly one version; such files are never grouped.
const DefaultProtectedMarker = "final"

// Key is the exact-match bucket key. Files with different extensions or
// different byte sizes are never compared for similarity.
type Key struct {
	Ext  string
	Size int64
}

// Group is one set of candidate duplicates sharing a Key. Members is always
// at least two records, sorted by name.
type Group struct {
	Key     Key
	Members []catalog.Record
}

// Options tunes the grouping pipeline. Zero values fall back to the package
// defaults.
type Options struct {
	Threshold       float64
	ProtectedMarker string
}

func (o Options) threshold() float64 {
	if o.Threshold <= 0 {
		return DefaultThreshold
	}
	return o.Threshold
}

func (o Options) marker() string {
	if o.ProtectedMarker == "" {
		return DefaultProtectedMarker
	}
	return strings.ToLower(o.ProtectedMarker)
}

// Find runs the full grouping pipeline over records: exclusion filtering,
// exact bucketing, similarity grouping. excluded holds the records of the
// optional exclude folder; any primary record matching one of them by exact
// name and size is dropped. The result is deterministic for a given input.
func Find(records []catalog.Record, excluded []catalog.Record, opts Options) []Group {
	filtered := Exclude(records, excluded, opts.marker())

	groups := make([]Group, 0)
	for key, bucket := range Buckets(filtered) {
		for _, members := range similarSets(bucket, opts.threshold()) {
			groups = append(groups, Group{Key: key, Members: members})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Key.Ext != b.Key.Ext {
			return a.Key.Ext < b.Key.Ext
		}
		if a.Key.Size != b.Key.Size {
			return a.Key.Size < b.Key.Size
		}
		return a.Members[0].Name < b.Members[0].Name
	})
	return groups
}

// Exclude removes records whose name contains the protected marker
// (case-insensitive) and records present in the exclude set by exact
// name+size match. The input slices are not modified.
func Exclude(records []catalog.Record, excluded []catalog.Record, marker string) []catalog.Record {
	type nameSize struct {
		name string
		size int64
	}
	drop := make(map[nameSize]struct{}, len(excluded))
	for _, rec := range excluded {
		drop[nameSize{rec.Name, rec.Size}] = struct{}{}
	}

	marker = strings.ToLower(marker)
	out := make([]catalog.Record, 0, len(records))
	for _, rec := range records {
		if marker != "" && strings.Contains(strings.ToLower(rec.Name), marker) {
			continue
		}
		if _, ok := drop[nameSize{rec.Name, rec.Size}]; ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Buckets partitions records by (extension, size). Buckets of size 1 cannot
// form a group and are dropped immediately; the exact key is a cheap
// prefilter before the more expensive similarity comparison.
func Buckets(records []catalog.Record) map[Key][]catalog.Record {
	buckets := make(map[Key][]catalog.Record)
	for _, rec := range records {
		key := Key{Ext: rec.Ext, Size: rec.Size}
		buckets[key] = append(buckets[key], rec)
	}
	for key, bucket := range buckets {
		if len(bucket) < 2 {
			delete(buckets, key)
		}
	}
	return buckets
}

// similarSets clusters a bucket into connected components of the similarity
// graph: nodes are records, edges connect pairs whose normalized stems score
// at or above threshold. Components of size 1 are discarded. Each returned
// set is sorted by name; the sets themselves are ordered by their first
// member's name.
func similarSets(bucket []catalog.Record, threshold float64) [][]catalog.Record {
	if len(bucket) < 2 {
		return nil
	}

	stems := make([]string, len(bucket))
	for i, rec := range bucket {
		stems[i] = textutil.NormalizeStem(rec.Stem)
	}

	uf := newUnionFind(len(bucket))
	for i := 0; i < len(bucket); i++ {
		for j := i + 1; j < len(bucket); j++ {
			if textutil.Ratio(stems[i], stems[j]) >= threshold {
				uf.union(i, j)
			}
		}
	}

	components := make(map[int][]catalog.Record)
	for i, rec := range bucket {
		root := uf.find(i)
		components[root] = append(components[root], rec)
	}

	sets := make([][]catalog.Record, 0, len(components))
	for _, members := range components {
		if len(members) < 2 {
			continue
		}
		sort.Slice(members, func(a, b int) bool { return members[a].Name < members[b].Name })
		sets = append(sets, members)
	}
	sort.Slice(sets, func(a, b int) bool { return sets[a][0].Name < sets[b][0].Name })
	return sets
}
