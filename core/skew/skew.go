// core/skew/skew.go
package skew

import (
	"fmt"
	"strings"
)

// Profile computes the GC skew (count of 'G' minus count of 'C') over
// consecutive non-overlapping windows of windowSize bases, left to right from
// offset 0. A trailing partial window is dropped rather than padded, so the
// profile holds exactly len(seq)/windowSize values; a windowSize larger than
// the sequence yields an empty profile, which is a valid outcome and not an
// error. Counting is case-sensitive and expects uppercase input.
func Profile(seq string, windowSize int) ([]float64, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("skew: window size must be positive, got %d", windowSize)
	}
	out := make([]float64, 0, len(seq)/windowSize)
	for i := 0; i+windowSize <= len(seq); i += windowSize {
		w := seq[i : i+windowSize]
		g := strings.Count(w, "G")
		c := strings.Count(w, "C")
		if g == 0 && c == 0 {
			// Pinned to exactly 0.0 so a normalized variant of this signal
			// can never divide by zero on a G/C-free window.
			out = append(out, 0.0)
			continue
		}
		out = append(out, float64(g-c))
	}
	return out, nil
}

// Cumulative returns the running sum of values: element i is the sum of
// values[0..i] inclusive. The result has the same length as the input.
func Cumulative(values []float64) []float64 {
	out := make([]float64, len(values))
	total := 0.0
	for i, v := range values {
		total += v
		out[i] = total
	}
	return out
}
