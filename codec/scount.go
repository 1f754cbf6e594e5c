package codec

import (
	"github.com/go-iact/eventio/errs"
)

// maxSCountBytes bounds the number of continuation bytes a single scount
// value may occupy: 9 groups of 7 bits cover only 63 bits, so the 10th
// group carries the top bit of the 64-bit zigzag-encoded magnitude, and any
// stream claiming more is corrupt rather than merely large.
const maxSCountBytes = 10

// decodeSCountBytes decodes one scount value starting at b[0], returning the
// decoded value and the number of bytes consumed. The slice-at-once
// DiffVectorOptimized path calls it; the byte-at-a-time Reader.SCount runs
// the same loop itself, one source read per byte.
func decodeSCountBytes(b []byte) (int64, int, error) {
	var u uint64

	for i := 0; i < maxSCountBytes; i++ {
		if i >= len(b) {
			return 0, 0, errs.ErrUnexpectedEndOfStream
		}

		c := b[i]
		u |= uint64(c&0x7f) << (7 * uint(i))

		if c&0x80 == 0 {
			return unzigzag(u), i + 1, nil
		}
	}

	return 0, 0, errs.ErrCorruptEncoding
}

func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// encodeSCount appends the scount encoding of v to dst, used by tests to
// build fixtures and by round-trip properties.
func encodeSCount(dst []byte, v int64) []byte {
	u := zigzag(v)
	for {
		c := byte(u & 0x7f)
		u >>= 7

		if u != 0 {
			dst = append(dst, c|0x80)
			continue
		}

		dst = append(dst, c)

		return dst
	}
}

// SCount reads one scount-encoded signed integer one byte at a time off the
// underlying source. This is the reference path: correct and simple, at the
// cost of one source read per byte.
func (r *Reader) SCount() (int64, error) {
	var u uint64

	for i := 0; i < maxSCountBytes; i++ {
		c, err := r.Uint8()
		if err != nil {
			return 0, err
		}

		u |= uint64(c&0x7f) << (7 * uint(i))

		if c&0x80 == 0 {
			return unzigzag(u), nil
		}
	}

	return 0, errs.ErrCorruptEncoding
}

// DiffVectorRef decodes n differentially-encoded uint16 samples starting
// from the given base value: out[i] = base + sum(deltas[0..i]), each delta
// read as a scount. This is the byte-at-a-time reference decoder; it
// reads one scount at a time through Reader.SCount.
func (r *Reader) DiffVectorRef(base uint16, n int) ([]uint16, error) {
	if n < 0 {
		return nil, errs.ErrOversizedArray
	}

	out := make([]uint16, n)
	cur := int64(base)

	for i := 0; i < n; i++ {
		delta, err := r.SCount()
		if err != nil {
			return nil, err
		}

		cur += delta
		out[i] = uint16(cur) //nolint:gosec
	}

	return out, nil
}

// DiffVectorOptimized decodes the same value as DiffVectorRef, but by
// peeking the remaining payload as one contiguous slice and decoding all n
// scount deltas from it directly, then seeking the source forward by
// exactly the number of bytes consumed. This avoids the per-sample source
// read overhead of DiffVectorRef for the long ADC sample vectors this
// §9 describes, while being required to produce byte-identical output.
//
// peek must return the next n bytes without advancing the cursor;
// Reader.Peek does so for any source.
func (r *Reader) DiffVectorOptimized(peek func(n int) ([]byte, error), base uint16, n int) ([]uint16, error) {
	if n < 0 {
		return nil, errs.ErrOversizedArray
	}

	remaining := int(r.Remaining())

	block, err := peek(remaining)
	if err != nil {
		return nil, err
	}

	out := make([]uint16, n)
	cur := int64(base)
	consumed := 0

	for i := 0; i < n; i++ {
		if consumed >= len(block) {
			return nil, errs.ErrUnexpectedEndOfStream
		}

		delta, width, err := decodeSCountBytes(block[consumed:])
		if err != nil {
			return nil, err
		}

		consumed += width
		cur += delta
		out[i] = uint16(cur) //nolint:gosec
	}

	if err := r.skip(consumed); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Reader) skip(n int) error {
	_, err := r.bytes(n)
	return err
}
