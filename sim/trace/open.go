package trace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

// Open opens a trace file for reading, transparently decompressing by file
// extension: .lz4 (LZ4 frame format) and .sz/.snappy (snappy stream format).
// Anything else is read as plain text. Close releases the underlying file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	switch {
	case strings.HasSuffix(path, ".lz4"):
		return &decompressedFile{r: lz4.NewReader(f), f: f}, nil
	case strings.HasSuffix(path, ".sz"), strings.HasSuffix(path, ".snappy"):
		return &decompressedFile{r: snappy.NewReader(f), f: f}, nil
	default:
		return f, nil
	}
}

// decompressedFile pairs a decompressing reader with the file it wraps, so
// Close reaches the file descriptor.
type decompressedFile struct {
	r io.Reader
	f *os.File
}

func (d *decompressedFile) Read(p []byte) (int, error) {
	return d.r.Read(p)
}

func (d *decompressedFile) Close() error {
	return d.f.Close()
}
