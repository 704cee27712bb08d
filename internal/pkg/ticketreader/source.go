package ticketreader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Opener wraps a raw file stream, e.g. with a decompressor.
type Opener func(r io.Reader) (io.ReadCloser, error)

// SourceFactory picks an Opener by file extension. Unknown extensions are read as-is.
type SourceFactory struct {
	Opener map[string]Opener
}

func NewSourceFactory() *SourceFactory {
	return &SourceFactory{
		Opener: make(map[string]Opener),
	}
}

// DefaultSourceFactory understands gzip, zstd and lz4 compressed documents.
func DefaultSourceFactory() *SourceFactory {
	factory := NewSourceFactory()
	factory.AddOpener(".gz", func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	})
	factory.AddOpener(".zst", func(r io.Reader) (io.ReadCloser, error) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	})
	factory.AddOpener(".lz4", func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(lz4.NewReader(r)), nil
	})

	return factory
}

func (f *SourceFactory) AddOpener(ext string, opener Opener) {
	f.Opener[strings.ToLower(ext)] = opener
}

func (f *SourceFactory) GetOpener(ext string) Opener {
	return f.Opener[strings.ToLower(ext)]
}

// Open returns a stream over the decoded contents of path. Closing it closes the file.
func (f *SourceFactory) Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	opener := f.GetOpener(filepath.Ext(path))
	if opener == nil {
		return file, nil
	}

	decoded, err := opener(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("open %s stream: %w", filepath.Ext(path), err)
	}

	return &source{ReadCloser: decoded, file: file}, nil
}

type source struct {
	io.ReadCloser
	file *os.File
}

func (s *source) Close() error {
	return errors.Join(s.ReadCloser.Close(), s.file.Close())
}
