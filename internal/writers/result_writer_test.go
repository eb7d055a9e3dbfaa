package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"orifind-core/analysis"
	"orifind-core/clump"
	"orifind/internal/output"
)

func report(id, file string, start int) output.Report {
	return output.Report{
		SequenceID: id,
		SourceFile: file,
		Result: analysis.Result{
			OriStart: start,
			OriEnd:   start + 10,
			OriSeq:   "ATGATGATGA",
			Clumps:   clump.Map{{Start: 0, End: 5}: {"ATG": {}}},
		},
	}
}

func drain(t *testing.T, in chan<- output.Report, errCh <-chan error, list ...output.Report) {
	t.Helper()
	for _, r := range list {
		in <- r
	}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
}

func TestTextWriterSorts(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartResultWriter(&buf, "text", true, false, false, 4)
	drain(t, in, errCh, report("b", "x.fa", 0), report("a", "x.fa", 0))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "\ta\t") || !strings.Contains(lines[1], "\tb\t") {
		t.Errorf("rows not sorted by sequence ID:\n%s", buf.String())
	}
}

func TestJSONLWriterEmitsOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartResultWriter(&buf, "jsonl", false, false, false, 4)
	drain(t, in, errCh, report("a", "x.fa", 0), report("b", "x.fa", 10))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSONL lines, got %d", len(lines))
	}
	for i, ln := range lines {
		var v map[string]any
		if err := json.Unmarshal([]byte(ln), &v); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestFASTAWriterEmitsRegions(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartResultWriter(&buf, "fasta", false, false, true, 4)
	drain(t, in, errCh, report("a", "x.fa", 5))

	if !strings.HasPrefix(buf.String(), ">a_ori start=5 end=15") {
		t.Fatalf("unexpected fasta output: %q", buf.String())
	}
}

func TestUnknownFormatFails(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartResultWriter(&buf, "yaml", false, true, false, 4)
	in <- report("a", "x.fa", 0)
	close(in)
	if err := <-errCh; err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
