// internal/output/clumps.go
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"orifind-core/clump"
)

// WriteClumpTSV writes one row per qualifying window, ordered by start
// coordinate, with the window's frequent k-mers as a sorted CSV list.
func WriteClumpTSV(w io.Writer, seqID string, m clump.Map, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ClumpTSVHeader); err != nil {
			return err
		}
	}
	windows := make([]clump.Window, 0, len(m))
	for win := range m {
		windows = append(windows, win)
	}
	sort.Slice(windows, func(i, j int) bool {
		if windows[i].Start != windows[j].Start {
			return windows[i].Start < windows[j].Start
		}
		return windows[i].End < windows[j].End
	})
	for _, win := range windows {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
			seqID, win.Start, win.End, strings.Join(m[win].Sorted(), ","),
		); err != nil {
			return err
		}
	}
	return nil
}
