// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"strings"
)

// Record represents a parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// StreamRecordsCtx is the ctx-aware channel wrapper around
// StreamRecordsPathCtx. Semantics preserved:
//   - gzip/zstd and "-" for stdin are handled the same way (early open error
//     for non-stdin)
//   - channel-based API
//   - scan-time errors are not propagated through the channel
func StreamRecordsCtx(ctx context.Context, path string) (<-chan Record, error) {
	// Preserve immediate error reporting for non-stdin paths.
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	go func() {
		defer close(out)
		_ = StreamRecordsPathCtx(ctx, path, func(r Record) error {
			out <- r
			return nil
		})
	}()
	return out, nil
}

// StreamRecords is the helper that uses a background context.
func StreamRecords(path string) (<-chan Record, error) {
	return StreamRecordsCtx(context.Background(), path)
}

// ReadPath reads every record in a FASTA file and returns the concatenated
// sequence as a single uppercase string with headers and whitespace
// stripped. This is the whole-genome entry point; callers that care about
// record boundaries use StreamRecords instead.
func ReadPath(path string) (string, error) {
	var b strings.Builder
	err := StreamRecordsPathCtx(context.Background(), path, func(r Record) error {
		b.Write(r.Seq)
		return nil
	})
	if err != nil {
		return "", err
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("fasta: no sequence in %s", path)
	}
	return b.String(), nil
}
