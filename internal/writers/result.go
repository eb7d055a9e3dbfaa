// internal/writers/result.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"orifind/internal/common"
	"orifind/internal/jsonlutil"
	"orifind/internal/output"
)

// StartResultWriter spins up a writer goroutine for analysis reports.
// Formats: text (TSV), json (pretty array), jsonl (one object per line),
// fasta (extracted ori regions). With sort set, results are buffered and
// ordered by (source file, sequence ID) before rendering; otherwise text,
// jsonl, and fasta stream as reports arrive.
func StartResultWriter(out io.Writer, format string, sort, header, includeSeq bool, bufSize int) (chan<- output.Report, <-chan error) {
	if format == "jsonl" {
		// Sorting is meaningless for a line stream; keep it streaming.
		return jsonlutil.Start[output.Report](out, bufSize,
			func(enc *json.Encoder, r output.Report) error {
				return enc.Encode(output.ToAPIAnalysis(r, includeSeq))
			},
			IsBrokenPipe,
		)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []output.Report
			for r := range in {
				buf = append(buf, r)
			}
			if sort {
				common.SortReports(buf)
			}
			err = output.WriteJSON(out, buf, includeSeq)

		case "fasta":
			if sort {
				var buf []output.Report
				for r := range in {
					buf = append(buf, r)
				}
				common.SortReports(buf)
				err = output.WriteFASTA(out, buf)
			} else {
				err = output.StreamFASTA(out, in)
			}

		case "text":
			if sort {
				var buf []output.Report
				for r := range in {
					buf = append(buf, r)
				}
				common.SortReports(buf)
				err = output.WriteTSV(out, buf, header)
			} else {
				err = output.StreamTSV(out, in, header)
			}

		default:
			// Drain so senders never block on an unknown format.
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}
