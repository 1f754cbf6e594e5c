// Package codec implements the primitive decoding layer: the
// fixed-width little-endian scalars, typed array reads, length-prefixed
// strings, the scount variable-length signed integer, timestamps, and the
// differential/optimized ADC vector decoder.
//
// Each decode operation reads from a cursor and advances it, using an
// endian.EndianEngine rather than encoding/binary's Reader helpers.
package codec

import (
	"math"

	"github.com/go-iact/eventio/endian"
	"github.com/go-iact/eventio/errs"
	"github.com/go-iact/eventio/stream"
)

// Reader decodes primitives from a bounded region of a stream.Source: the
// current object's payload view, [base, base+length). It is the "scoped
// view over the payload bytes, with an independent cursor —
// reads advance the cursor, seeks are relative to the payload start, and a
// read that would cross base+length fails with a typed error instead of
// touching bytes outside the object's declared bounds.
type Reader struct {
	src    stream.Source
	engine endian.EndianEngine
	base   int64
	length int64
}

// NewReader creates a Reader over src scoped to [base, base+length). The
// source's cursor must already be positioned at base; NewReader does not
// seek on construction, matching how the walker hands a freshly-seeked
// source to each object in turn.
func NewReader(src stream.Source, engine endian.EndianEngine, base, length int64) *Reader {
	return &Reader{src: src, engine: engine, base: base, length: length}
}

// Pos returns the cursor position relative to the payload start.
func (r *Reader) Pos() int64 {
	return r.src.Pos() - r.base
}

// Remaining returns the number of unread bytes in the payload view.
func (r *Reader) Remaining() int64 {
	return r.base + r.length - r.src.Pos()
}

// Seek moves the cursor to an offset relative to the payload start.
func (r *Reader) Seek(relOffset int64) error {
	if relOffset < 0 || relOffset > r.length {
		return errs.ErrSeekOutOfRange
	}

	return r.src.Seek(r.base + relOffset)
}

// SkipRemaining advances the cursor to the end of the payload view, the
// state the walker expects after skipping an object it did not parse.
func (r *Reader) SkipRemaining() error {
	return r.src.Seek(r.base + r.length)
}

// Peek returns the next n bytes without advancing the cursor. It uses the
// source's own Peek when available (stream.BytesSource, stream.ReaderSource)
// and falls back to a read-then-seek-back otherwise, so callers like
// DiffVectorOptimized work regardless of the concrete source type.
func (r *Reader) Peek(n int) ([]byte, error) {
	if p, ok := r.src.(stream.Peeker); ok {
		return p.Peek(n)
	}

	b, err := r.bytes(n)
	if err != nil {
		return nil, err
	}

	if err := r.src.Seek(r.src.Pos() - int64(n)); err != nil {
		return nil, err
	}

	return b, nil
}

// checkBound verifies that reading n more bytes stays within the payload
// view, returning errKind (either ErrPayloadBoundsExceeded for fixed reads
// or ErrOversizedArray for count-derived reads) if not.
func (r *Reader) checkBound(n int64, errKind error) error {
	if n < 0 || r.src.Pos()+n > r.base+r.length {
		return errKind
	}

	return nil
}

func (r *Reader) bytes(n int) ([]byte, error) {
	if err := r.checkBound(int64(n), errs.ErrPayloadBoundsExceeded); err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	if err := r.src.ReadFull(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// Bytes reads n raw bytes and returns a fresh copy.
func (r *Reader) Bytes(n int) ([]byte, error) {
	return r.bytes(n)
}

func (r *Reader) Uint8() (uint8, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err //nolint:gosec
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err //nolint:gosec
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err //nolint:gosec
}

func (r *Reader) Uint64() (uint64, error) {
	b, err := r.bytes(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err //nolint:gosec
}

func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

func (r *Reader) Float64() (float64, error) {
	v, err := r.Uint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// arrayBytes reads count*elemSize bytes, capping the allocation to what the
// payload can actually hold ("SHOULD cap allocations to
// payload_remaining / element_size") before allocating anything.
func (r *Reader) arrayBytes(count, elemSize int) ([]byte, error) {
	if count < 0 {
		return nil, errs.ErrOversizedArray
	}

	n := int64(count) * int64(elemSize)
	if err := r.checkBound(n, errs.ErrOversizedArray); err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	if err := r.src.ReadFull(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// Uint8Slice reads count unsigned bytes.
func (r *Reader) Uint8Slice(count int) ([]uint8, error) {
	b, err := r.arrayBytes(count, 1)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Int16Slice reads count little-endian signed 16-bit integers.
func (r *Reader) Int16Slice(count int) ([]int16, error) {
	b, err := r.arrayBytes(count, 2)
	if err != nil {
		return nil, err
	}

	out := make([]int16, count)
	for i := range out {
		out[i] = int16(r.engine.Uint16(b[i*2 : i*2+2])) //nolint:gosec
	}

	return out, nil
}

// Uint16Slice reads count little-endian unsigned 16-bit integers.
func (r *Reader) Uint16Slice(count int) ([]uint16, error) {
	b, err := r.arrayBytes(count, 2)
	if err != nil {
		return nil, err
	}

	out := make([]uint16, count)
	for i := range out {
		out[i] = r.engine.Uint16(b[i*2 : i*2+2])
	}

	return out, nil
}

// Int32Slice reads count little-endian signed 32-bit integers.
func (r *Reader) Int32Slice(count int) ([]int32, error) {
	b, err := r.arrayBytes(count, 4)
	if err != nil {
		return nil, err
	}

	out := make([]int32, count)
	for i := range out {
		out[i] = int32(r.engine.Uint32(b[i*4 : i*4+4])) //nolint:gosec
	}

	return out, nil
}

// Uint32Slice reads count little-endian unsigned 32-bit integers.
func (r *Reader) Uint32Slice(count int) ([]uint32, error) {
	b, err := r.arrayBytes(count, 4)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, count)
	for i := range out {
		out[i] = r.engine.Uint32(b[i*4 : i*4+4])
	}

	return out, nil
}

// Float32Slice reads count little-endian IEEE-754 32-bit floats.
func (r *Reader) Float32Slice(count int) ([]float32, error) {
	b, err := r.arrayBytes(count, 4)
	if err != nil {
		return nil, err
	}

	out := make([]float32, count)
	for i := range out {
		out[i] = math.Float32frombits(r.engine.Uint32(b[i*4 : i*4+4]))
	}

	return out, nil
}

// String reads a length-prefixed string: a 16-bit length L followed by L
// bytes, treated as UTF-8 but not validated as such.
func (r *Reader) String() (string, error) {
	l, err := r.Uint16()
	if err != nil {
		return "", err
	}

	b, err := r.arrayBytes(int(l), 1)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Timestamp is an absolute time as two little-endian 32-bit unsigned
// integers.
type Timestamp struct {
	Seconds     uint32
	Nanoseconds uint32
}

// Timestamp reads a (seconds, nanoseconds) pair.
func (r *Reader) Timestamp() (Timestamp, error) {
	sec, err := r.Uint32()
	if err != nil {
		return Timestamp{}, err
	}

	nsec, err := r.Uint32()
	if err != nil {
		return Timestamp{}, err
	}

	return Timestamp{Seconds: sec, Nanoseconds: nsec}, nil
}
