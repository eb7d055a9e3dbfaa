// pkg/api/analysis_v1.go
package api

// ClumpWindowV1 is one clump-scan window and its frequent k-mers. Start/End
// are relative to the extracted ori region, not the source sequence.
type ClumpWindowV1 struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Kmers []string `json:"kmers"`
}

// AnalysisV1 is the stable JSON/JSONL schema for analysis results.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
//
// ori_start/ori_end are absolute coordinates in the analyzed sequence while
// clump windows are region-relative; both conventions are part of the schema.
type AnalysisV1 struct {
	SequenceID   string          `json:"sequence_id"`
	OriStart     int             `json:"ori_start"`
	OriEnd       int             `json:"ori_end"`
	RegionLength int             `json:"region_length"`
	OriSeq       string          `json:"ori_seq,omitempty"`
	Clumps       []ClumpWindowV1 `json:"clumps"`
	SourceFile   string          `json:"source_file,omitempty"`
}
