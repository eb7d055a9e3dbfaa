// internal/output/skew.go
package output

import (
	"fmt"
	"io"
)

// WriteSkewTSV dumps a per-window skew profile alongside its running sum,
// one row per window. prof and cum must have equal length; window bounds are
// reconstructed from windowSize.
func WriteSkewTSV(w io.Writer, seqID string, windowSize int, prof, cum []float64, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SkewTSVHeader); err != nil {
			return err
		}
	}
	for i := range prof {
		start := i * windowSize
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%g\t%g\n",
			seqID, i, start, start+windowSize, prof[i], cum[i],
		); err != nil {
			return err
		}
	}
	return nil
}
