// Package stream defines the byte source contract EventIO decoding consumes
// and the two concrete sources every caller needs: an
// in-memory byte slice and anything implementing io.ReadSeeker.
//
// A byte slice plus an integer offset is an implicit cursor; here it is made
// explicit and pluggable so the walker can seek forward over skipped
// payloads without the caller ever loading a whole stream into memory.
package stream

import (
	"io"

	"github.com/go-iact/eventio/errs"
)

// Source is the byte source contract the decoder consumes: read exactly n
// bytes (failing on short read), report the current absolute position, and
// seek to an absolute position. Seeking forward past skipped payloads must
// be supported; seeking is never required to go backward by the walker, but
// implementations should support it for random inspection by callers.
type Source interface {
	// ReadFull reads exactly len(p) bytes into p, advancing the cursor.
	// Returns errs.ErrUnexpectedEndOfStream if fewer bytes are available.
	ReadFull(p []byte) error
	// Pos returns the current absolute byte position.
	Pos() int64
	// Seek moves the cursor to an absolute byte position.
	Seek(pos int64) error
}

// BytesSource is a Source backed by an in-memory byte slice, the common case
// for decoding a stream that has already been read into memory (or memory
// mapped) by the caller.
type BytesSource struct {
	data []byte
	pos  int64
}

// NewBytesSource wraps data as a Source starting at position 0.
func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{data: data}
}

func (s *BytesSource) ReadFull(p []byte) error {
	if s.pos < 0 || s.pos > int64(len(s.data)) {
		return errs.ErrSeekOutOfRange
	}

	n := copy(p, s.data[s.pos:])
	s.pos += int64(n)
	if n < len(p) {
		return errs.ErrUnexpectedEndOfStream
	}

	return nil
}

func (s *BytesSource) Pos() int64 {
	return s.pos
}

func (s *BytesSource) Seek(pos int64) error {
	if pos < 0 || pos > int64(len(s.data)) {
		return errs.ErrSeekOutOfRange
	}

	s.pos = pos

	return nil
}

// Len returns the total number of bytes available in the underlying slice.
func (s *BytesSource) Len() int64 {
	return int64(len(s.data))
}

// Bytes returns the n bytes starting at the current position and advances
// the cursor past them, without copying. The returned slice aliases the
// source's backing array and must not be retained past the next mutation of
// the source.
func (s *BytesSource) Bytes(n int) ([]byte, error) {
	if s.pos < 0 || s.pos+int64(n) > int64(len(s.data)) {
		return nil, errs.ErrUnexpectedEndOfStream
	}

	b := s.data[s.pos : s.pos+int64(n)]
	s.pos += int64(n)

	return b, nil
}

// Peek returns the next n bytes starting at the current position without
// advancing the cursor. The returned slice aliases the source's backing
// array; callers must not modify it or retain it past the next mutation of
// the source.
func (s *BytesSource) Peek(n int) ([]byte, error) {
	if s.pos < 0 || s.pos+int64(n) > int64(len(s.data)) {
		return nil, errs.ErrUnexpectedEndOfStream
	}

	return s.data[s.pos : s.pos+int64(n)], nil
}

// ReaderSource adapts any io.ReadSeeker (an *os.File, a decompressing
// reader, ...) to the Source contract. Unlike BytesSource it always copies
// into the caller-provided buffer; there is no zero-copy path.
type ReaderSource struct {
	r   io.ReadSeeker
	pos int64
}

// NewReaderSource wraps r as a Source. Pos() and Seek() use r's absolute
// offsets; Pos() starts at r's current position when it is wrapped.
func NewReaderSource(r io.ReadSeeker) (*ReaderSource, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	return &ReaderSource{r: r, pos: pos}, nil
}

func (s *ReaderSource) ReadFull(p []byte) error {
	n, err := io.ReadFull(s.r, p)
	s.pos += int64(n)
	if err != nil {
		return errs.ErrUnexpectedEndOfStream
	}

	return nil
}

func (s *ReaderSource) Pos() int64 {
	return s.pos
}

func (s *ReaderSource) Seek(pos int64) error {
	newPos, err := s.r.Seek(pos, io.SeekStart)
	if err != nil {
		return err
	}

	s.pos = newPos

	return nil
}

// Peek returns the next n bytes without advancing the cursor. Implemented as
// a read followed by a seek back, since io.ReadSeeker has no native peek.
func (s *ReaderSource) Peek(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := s.ReadFull(buf); err != nil {
		return nil, err
	}

	if err := s.Seek(s.pos - int64(n)); err != nil {
		return nil, err
	}

	return buf, nil
}

// Peeker is implemented by sources that can look ahead without consuming
// bytes. The codec package's optimized differential-vector decoder uses this
// to decode a whole run of samples from one contiguous slice instead of
// issuing one read per sample.
type Peeker interface {
	Peek(n int) ([]byte, error)
}

var (
	_ Peeker = (*BytesSource)(nil)
	_ Peeker = (*ReaderSource)(nil)
)
