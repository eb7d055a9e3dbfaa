// internal/output/types.go
package output

import "orifind-core/analysis"

// Report pairs one analysis result with the record and file it came from.
type Report struct {
	SequenceID string
	SourceFile string
	analysis.Result
}
