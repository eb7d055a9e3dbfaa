// internal/output/fasta.go
package output

import (
	"fmt"
	"io"
)

// StreamFASTA streams extracted ori regions as FASTA records.
func StreamFASTA(w io.Writer, in <-chan Report) error {
	for r := range in {
		if r.OriSeq == "" {
			continue
		}
		if _, err := fmt.Fprintf(
			w,
			">%s_ori start=%d end=%d len=%d source_file=%s\n%s\n",
			r.SequenceID, r.OriStart, r.OriEnd, len(r.OriSeq), r.SourceFile, r.OriSeq,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA writes a slice of reports as FASTA records to the writer.
func WriteFASTA(w io.Writer, list []Report) error {
	for _, r := range list {
		if r.OriSeq == "" {
			continue
		}
		if _, err := fmt.Fprintf(
			w,
			">%s_ori start=%d end=%d len=%d source_file=%s\n%s\n",
			r.SequenceID, r.OriStart, r.OriEnd, len(r.OriSeq), r.SourceFile, r.OriSeq,
		); err != nil {
			return err
		}
	}
	return nil
}
