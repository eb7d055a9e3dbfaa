// internal/common/sort.go
package common

import (
	"sort"

	"orifind/internal/output"
)

// LessReport defines a stable order for reports (for -sort).
func LessReport(a, b output.Report) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	if a.SequenceID != b.SequenceID {
		return a.SequenceID < b.SequenceID
	}
	return a.OriStart < b.OriStart
}

func SortReports(rs []output.Report) {
	sort.Slice(rs, func(i, j int) bool { return LessReport(rs[i], rs[j]) })
}
