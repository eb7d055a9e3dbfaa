// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// distinctKmers counts the unique frequent k-mers across all clump windows.
func distinctKmers(r Report) int {
	seen := make(map[string]struct{})
	for _, set := range r.Clumps {
		for kmer := range set {
			seen[kmer] = struct{}{}
		}
	}
	return len(seen)
}

func writeRow(w io.Writer, r Report) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
		r.SourceFile, r.SequenceID,
		r.OriStart, r.OriEnd, len(r.OriSeq),
		len(r.Clumps), distinctKmers(r),
	)
	return err
}

// WriteTSV writes one summary row per report.
func WriteTSV(w io.Writer, list []Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV streams summary rows from a channel to the writer.
func StreamTSV(w io.Writer, in <-chan Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeRow(w, r); err != nil {
			return err
		}
	}
	return nil
}
