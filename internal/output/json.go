// internal/output/json.go
package output

import (
	"io"
	"sort"

	"orifind/internal/jsonutil"
	"orifind/pkg/api"
)

// ToAPIAnalysis converts a Report to the stable wire schema (v1). Clump
// windows are emitted sorted by start coordinate with sorted k-mer lists so
// the rendering is deterministic regardless of map iteration order. The
// region sequence is attached only when includeSeq is set.
func ToAPIAnalysis(r Report, includeSeq bool) api.AnalysisV1 {
	v := api.AnalysisV1{
		SequenceID:   r.SequenceID,
		OriStart:     r.OriStart,
		OriEnd:       r.OriEnd,
		RegionLength: len(r.OriSeq),
		Clumps:       make([]api.ClumpWindowV1, 0, len(r.Clumps)),
		SourceFile:   r.SourceFile,
	}
	if includeSeq {
		v.OriSeq = r.OriSeq
	}
	for w, set := range r.Clumps {
		v.Clumps = append(v.Clumps, api.ClumpWindowV1{Start: w.Start, End: w.End, Kmers: set.Sorted()})
	}
	sort.Slice(v.Clumps, func(i, j int) bool {
		if v.Clumps[i].Start != v.Clumps[j].Start {
			return v.Clumps[i].Start < v.Clumps[j].Start
		}
		return v.Clumps[i].End < v.Clumps[j].End
	})
	return v
}

func toAPIAnalyses(list []Report, includeSeq bool) []api.AnalysisV1 {
	out := make([]api.AnalysisV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIAnalysis(r, includeSeq))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 analyses (pretty-indented).
func WriteJSON(w io.Writer, list []Report, includeSeq bool) error {
	return jsonutil.EncodePretty(w, toAPIAnalyses(list, includeSeq))
}
