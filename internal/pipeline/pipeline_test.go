package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"orifind-core/analysis"
	"orifind/internal/output"
)

func testParams() analysis.Params {
	return analysis.Params{
		SkewWindow:    50,
		Flank:         100,
		K:             3,
		ClumpWindow:   60,
		MinOccurrence: 4,
	}
}

func writeFasta(t *testing.T, records ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(path, []byte(strings.Join(records, "")), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func genome() string {
	return strings.Repeat("GGGGATAT", 25) + strings.Repeat("CCCCATAT", 25) + strings.Repeat("ATGATGAT", 25)
}

func TestForEachResultOneReportPerRecord(t *testing.T) {
	fa := writeFasta(t, ">r1\n"+genome()+"\n", ">r2\n"+genome()+"\n")

	var got []output.Report
	err := ForEachResult(context.Background(), Config{Threads: 1, Params: testParams()}, []string{fa},
		func(r output.Report) error {
			got = append(got, r)
			return nil
		})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(got))
	}
	ids := map[string]bool{}
	for _, r := range got {
		ids[r.SequenceID] = true
		if r.SourceFile != fa {
			t.Errorf("source file %q, want %q", r.SourceFile, fa)
		}
		if r.OriSeq == "" {
			t.Errorf("record %s: empty ori region", r.SequenceID)
		}
	}
	if !ids["r1"] || !ids["r2"] {
		t.Fatalf("missing record IDs: %v", ids)
	}
}

func TestForEachResultMissingFile(t *testing.T) {
	err := ForEachResult(context.Background(), Config{Threads: 2, Params: testParams()},
		[]string{filepath.Join(t.TempDir(), "absent.fa")},
		func(output.Report) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestForEachResultRecordErrorPropagates(t *testing.T) {
	// Second record is shorter than one skew window.
	fa := writeFasta(t, ">ok\n"+genome()+"\n", ">short\nACGT\n")
	err := ForEachResult(context.Background(), Config{Threads: 1, Params: testParams()}, []string{fa},
		func(output.Report) error { return nil })
	if err == nil {
		t.Fatal("expected the short-record error to surface")
	}
}

func TestForEachResultCanceledContext(t *testing.T) {
	fa := writeFasta(t, ">r1\n"+genome()+"\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachResult(ctx, Config{Threads: 2, Params: testParams()}, []string{fa},
		func(output.Report) error { return nil })
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestForEachResultParallelMatchesSerial(t *testing.T) {
	fa := writeFasta(t,
		">r1\n"+genome()+"\n",
		">r2\n"+strings.Repeat("ATG", 200)+"\n",
		">r3\n"+genome()+"\n",
	)

	collect := func(threads int) map[string]output.Report {
		m := make(map[string]output.Report)
		err := ForEachResult(context.Background(), Config{Threads: threads, Params: testParams()}, []string{fa},
			func(r output.Report) error {
				m[r.SequenceID] = r
				return nil
			})
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		return m
	}

	serial := collect(1)
	parallel := collect(4)
	if len(serial) != len(parallel) {
		t.Fatalf("report counts differ: %d vs %d", len(serial), len(parallel))
	}
	for id, a := range serial {
		b, ok := parallel[id]
		if !ok {
			t.Fatalf("record %s missing from parallel run", id)
		}
		if a.OriStart != b.OriStart || a.OriEnd != b.OriEnd || a.OriSeq != b.OriSeq {
			t.Errorf("record %s: parallel result differs from serial", id)
		}
		if len(a.Clumps) != len(b.Clumps) {
			t.Errorf("record %s: clump maps differ", id)
		}
	}
}
