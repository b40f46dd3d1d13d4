package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/multierr"
)

// Compression identifies how a source is encoded.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

const readBufferSize = 1 << 16

// Sniff reports the compression of the data at the head of br without
// consuming it.
func Sniff(br *bufio.Reader) Compression {
	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// readCloser closes every layer of a decoding chain, innermost last.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (rc *readCloser) Close() error {
	var err error
	for _, c := range rc.closers {
		err = multierr.Append(err, c())
	}
	return err
}

// decode wraps r in the decompressor its content calls for. closeSource
// closes the underlying source and may be nil.
func decode(r io.Reader, closeSource func() error) (io.ReadCloser, Compression, error) {
	br := bufio.NewReaderSize(r, readBufferSize)
	kind := Sniff(br)

	var closers []func() error
	var out io.Reader = br

	switch kind {
	case CompressionGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, kind, multierr.Append(fmt.Errorf("opening gzip stream: %w", err), callClose(closeSource))
		}
		out = zr
		closers = append(closers, zr.Close)
	case CompressionZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, kind, multierr.Append(fmt.Errorf("opening zstd stream: %w", err), callClose(closeSource))
		}
		out = zr
		closers = append(closers, func() error {
			zr.Close()
			return nil
		})
	}

	if closeSource != nil {
		closers = append(closers, closeSource)
	}
	return &readCloser{Reader: out, closers: closers}, kind, nil
}

func callClose(fn func() error) error {
	if fn == nil {
		return nil
	}
	return fn()
}
