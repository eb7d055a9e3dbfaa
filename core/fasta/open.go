// core/fasta/open.go
package fasta

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader handles plain, gzip, and zstd inputs plus "-" for stdin.
// Compression is detected by magic number (1F 8B for gzip, 28 B5 2F FD for
// zstd) or by file suffix, so misnamed files still open correctly.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [4]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	switch {
	case (n >= 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	case (n == 4 && sig[0] == 0x28 && sig[1] == 0xb5 && sig[2] == 0x2f && sig[3] == 0xfd) || strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		zrc := zr.IOReadCloser()
		return &multiReadCloser{Reader: zrc, closers: []io.Closer{zrc, fh}}, nil
	}
	return fh, nil
}
