// core/ori/ori.go
package ori

import (
	"errors"
	"fmt"

	"orifind-core/skew"
)

// ErrEmptyProfile is returned when the sequence is shorter than one skew
// window, leaving no cumulative profile to take a minimum over.
var ErrEmptyProfile = errors.New("ori: empty cumulative skew profile")

// Region is a flanked slice of the source sequence. Start and End are
// absolute coordinates in the source; End-Start == len(Seq) always holds.
type Region struct {
	Seq   string
	Start int
	End   int
}

// FindPosition locates the skew window whose cumulative GC skew is minimal
// and returns its bounds in sequence coordinates (start = index*windowSize,
// end = start+windowSize). When several windows share the minimal value the
// lowest index wins, so repeated runs are reproducible.
func FindPosition(seq string, windowSize int) (int, int, error) {
	prof, err := skew.Profile(seq, windowSize)
	if err != nil {
		return 0, 0, err
	}
	cum := skew.Cumulative(prof)
	if len(cum) == 0 {
		return 0, 0, ErrEmptyProfile
	}
	minIdx := 0
	for i, v := range cum {
		// Strict < keeps the first occurrence of the minimum.
		if v < cum[minIdx] {
			minIdx = i
		}
	}
	start := minIdx * windowSize
	return start, start + windowSize, nil
}

// ExtractRegion returns the subsequence of radius flank around the center of
// the minimal-skew window, clamped to [0, len(seq)]. Near either boundary
// the region is shorter than 2*flank; that is a normal outcome.
func ExtractRegion(seq string, windowSize, flank int) (Region, error) {
	if flank <= 0 {
		return Region{}, fmt.Errorf("ori: flank must be positive, got %d", flank)
	}
	oriStart, _, err := FindPosition(seq, windowSize)
	if err != nil {
		return Region{}, err
	}
	center := oriStart + windowSize/2
	start := center - flank
	if start < 0 {
		start = 0
	}
	end := center + flank
	if end > len(seq) {
		end = len(seq)
	}
	return Region{Seq: seq[start:end], Start: start, End: end}, nil
}
