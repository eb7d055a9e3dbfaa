// internal/output/common.go
package output

// TSVHeader is the canonical header row for analysis text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tsequence_id\tori_start\tori_end\tregion_length\tclump_windows\tdistinct_kmers"

// SkewTSVHeader is the header row for the per-window skew dump.
const SkewTSVHeader = "sequence_id\twindow\tstart\tend\tskew\tcumulative"

// ClumpTSVHeader is the header row for the standalone clump scan.
const ClumpTSVHeader = "sequence_id\tstart\tend\tkmers"
