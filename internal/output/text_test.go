package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, []Report{sampleReport()}, true); err != nil {
		t.Fatalf("write tsv: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != TSVHeader {
		t.Errorf("header %q, want %q", lines[0], TSVHeader)
	}
	// 2 windows, 2 distinct k-mers (ATG shared between windows).
	if lines[1] != "g.fa\tchr\t100\t160\t60\t2\t2" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestWriteTSVNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, []Report{sampleReport()}, false); err != nil {
		t.Fatalf("write tsv: %v", err)
	}
	if strings.Contains(buf.String(), "source_file") {
		t.Fatal("header emitted despite header=false")
	}
}

func TestWriteFASTA(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFASTA(&buf, []Report{sampleReport()}); err != nil {
		t.Fatalf("write fasta: %v", err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, ">chr_ori start=100 end=160 len=60 source_file=g.fa\n") {
		t.Errorf("unexpected fasta header: %q", got)
	}
	if !strings.HasSuffix(strings.TrimRight(got, "\n"), sampleReport().OriSeq) {
		t.Errorf("fasta body missing region sequence")
	}
}
