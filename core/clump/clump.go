// core/clump/clump.go
package clump

import (
	"fmt"
	"sort"
)

// Window is a half-open [Start, End) span over the scanned sequence. When the
// caller scans an extracted region rather than a whole genome, coordinates
// are relative to that region.
type Window struct {
	Start int
	End   int
}

// Set holds the frequent k-mers of one window.
type Set map[string]struct{}

// Sorted returns the set's k-mers in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for kmer := range s {
		out = append(out, kmer)
	}
	sort.Strings(out)
	return out
}

// Map records, per qualifying window, the k-mers that occurred at least the
// requested number of times inside it. Windows with no qualifying k-mer are
// absent entirely.
type Map map[Window]Set

// Find slides a window of width windowLen across seq at every offset and
// reports each window that contains at least one k-mer repeated
// minOccurrence times or more, mapped to that window's frequent k-mer set.
// K-mers may overlap one another within a window, and ambiguity codes such
// as 'N' count like any other base.
//
// A windowLen longer than seq, or a k longer than windowLen, produces an
// empty map — a valid outcome, not an error. Non-positive parameters are
// rejected up front.
//
// Scanning every unit-stride window is inherently
// O(len(seq) × windowLen) work; the counts here are maintained
// incrementally (drop the k-mer leaving on the left, add the one entering on
// the right), which avoids re-tallying each window while producing exactly
// the same per-window output.
func Find(seq string, k, windowLen, minOccurrence int) (Map, error) {
	if k <= 0 {
		return nil, fmt.Errorf("clump: k must be positive, got %d", k)
	}
	if windowLen <= 0 {
		return nil, fmt.Errorf("clump: window length must be positive, got %d", windowLen)
	}
	if minOccurrence <= 0 {
		return nil, fmt.Errorf("clump: min occurrence must be positive, got %d", minOccurrence)
	}

	clumps := make(Map)
	if windowLen > len(seq) || k > windowLen {
		return clumps, nil
	}

	counts := make(map[string]int, windowLen)
	frequent := make(Set)

	add := func(kmer string) {
		counts[kmer]++
		if counts[kmer] == minOccurrence {
			frequent[kmer] = struct{}{}
		}
	}
	drop := func(kmer string) {
		counts[kmer]--
		if counts[kmer] == minOccurrence-1 {
			delete(frequent, kmer)
		}
		if counts[kmer] == 0 {
			delete(counts, kmer)
		}
	}
	record := func(start int) {
		if len(frequent) == 0 {
			return
		}
		set := make(Set, len(frequent))
		for kmer := range frequent {
			set[kmer] = struct{}{}
		}
		clumps[Window{Start: start, End: start + windowLen}] = set
	}

	// Prime the first window, then slide one base at a time.
	for j := 0; j+k <= windowLen; j++ {
		add(seq[j : j+k])
	}
	record(0)
	for i := 1; i+windowLen <= len(seq); i++ {
		drop(seq[i-1 : i-1+k])
		add(seq[i+windowLen-k : i+windowLen])
		record(i)
	}
	return clumps, nil
}
