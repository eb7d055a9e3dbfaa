// core/fasta/records_ctx.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// StreamRecordsPathCtx opens `path`, scans FASTA, and emits one Record per
// entry with headers stripped, whitespace removed, and the sequence
// uppercased. Cancellation via ctx is honored between lines and between
// records.
//
// emit is called once per record. Return a non-nil error (e.g. ctx.Err()) to
// stop early.
func StreamRecordsPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id  string
		seq = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if id == "" && len(seq) == 0 {
			return nil
		}
		return emit(Record{ID: id, Seq: bytes.ToUpper(append([]byte(nil), seq...))})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if id != "" || len(seq) > 0 {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if id != "" || len(seq) > 0 {
		if err := flush(); err != nil {
			return err
		}
	}
	return nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
