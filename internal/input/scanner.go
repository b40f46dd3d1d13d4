package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Stdin is the file name that selects the stdin reader.
const Stdin = "-"

// MaxLineSize is the longest line the scanner returns. Longer lines are
// consumed and reported through Oversize.
const MaxLineSize = 1 << 20

// ErrNoInput is returned by Open when there is nothing to read.
var ErrNoInput = errors.New("no input given")

// Scanner reads lines from a sequence of files as one stream.
type Scanner struct {
	files []string
	stdin io.Reader
	next  int

	file     string
	kind     Compression
	src      io.ReadCloser
	br       *bufio.Reader
	buf      []byte
	oversize bool
	lineNo   int
	total    int
	err      error
	onStart  func(file string, kind Compression)
}

// Open prepares a Scanner over files. stdin is read for the "-" entry and
// may be nil when no entry uses it.
func Open(files []string, stdin io.Reader) (*Scanner, error) {
	if len(files) == 0 {
		return nil, ErrNoInput
	}
	return &Scanner{files: files, stdin: stdin}, nil
}

// OnFileStart registers a callback run each time a new source is opened.
func (s *Scanner) OnFileStart(fn func(file string, kind Compression)) {
	s.onStart = fn
}

// Scan advances to the next line across all files. It returns false at the
// end of the last file or on the first error. A line longer than MaxLineSize
// does not stop the scan; it is returned empty with Oversize set.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for {
		if s.br == nil {
			if s.next >= len(s.files) {
				return false
			}
			if err := s.openNext(); err != nil {
				s.err = err
				return false
			}
		}
		ok, err := s.readLine()
		if err != nil {
			s.err = fmt.Errorf("reading %s: %w", s.file, err)
			_ = s.closeCurrent()
			return false
		}
		if ok {
			s.lineNo++
			s.total++
			return true
		}
		if err := s.closeCurrent(); err != nil {
			s.err = fmt.Errorf("closing %s: %w", s.file, err)
			return false
		}
	}
}

// readLine reads up to the next newline or the end of the current source.
// It reports false when the source had no bytes left.
func (s *Scanner) readLine() (bool, error) {
	s.buf = s.buf[:0]
	s.oversize = false
	read := 0
	for {
		chunk, err := s.br.ReadSlice('\n')
		read += len(chunk)
		if err == nil {
			chunk = chunk[:len(chunk)-1]
		}
		if !s.oversize {
			if len(s.buf)+len(chunk) > MaxLineSize {
				s.oversize = true
				s.buf = s.buf[:0]
			} else {
				s.buf = append(s.buf, chunk...)
			}
		}

		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, bufio.ErrBufferFull):
			// The line continues past the reader's buffer.
		case errors.Is(err, io.EOF):
			return read > 0, nil
		default:
			return false, err
		}
	}
}

func (s *Scanner) openNext() error {
	name := s.files[s.next]
	s.next++

	var r io.Reader
	var closeSource func() error
	if name == Stdin {
		if s.stdin == nil {
			return fmt.Errorf("reading %s: %w", name, ErrNoInput)
		}
		r = s.stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		r = f
		closeSource = f.Close
	}

	src, kind, err := decode(r, closeSource)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	s.file = name
	s.kind = kind
	s.src = src
	s.lineNo = 0
	s.br = bufio.NewReaderSize(src, readBufferSize)

	if s.onStart != nil {
		s.onStart(name, kind)
	}
	return nil
}

func (s *Scanner) closeCurrent() error {
	s.br = nil
	if s.src == nil {
		return nil
	}
	err := s.src.Close()
	s.src = nil
	return err
}

// Text returns the current line without its terminator. A trailing carriage
// return is dropped as well.
func (s *Scanner) Text() string {
	return string(bytes.TrimSuffix(s.buf, []byte{'\r'}))
}

// Oversize reports whether the current line exceeded MaxLineSize. Its
// content was discarded and Text is empty.
func (s *Scanner) Oversize() bool {
	return s.oversize
}

// File returns the name of the file the current line came from.
func (s *Scanner) File() string {
	return s.file
}

// Line returns the 1-based number of the current line within its file.
func (s *Scanner) Line() int {
	return s.lineNo
}

// Compression returns the encoding of the current file.
func (s *Scanner) Compression() Compression {
	return s.kind
}

// Lines returns the number of lines read so far across all files.
func (s *Scanner) Lines() int {
	return s.total
}

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Close releases the current source, if one is open.
func (s *Scanner) Close() error {
	return s.closeCurrent()
}
