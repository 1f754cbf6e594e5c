package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-iact/eventio/endian"
	"github.com/go-iact/eventio/stream"
)

func newTestReader(t *testing.T, data []byte) (*Reader, *stream.BytesSource) {
	t.Helper()
	src := stream.NewBytesSource(data)
	return NewReader(src, endian.GetLittleEndianEngine(), 0, int64(len(data))), src
}

func TestReaderFixedScalars(t *testing.T) {
	data := []byte{
		0x01,                   // uint8
		0x34, 0x12,             // uint16 = 0x1234
		0x78, 0x56, 0x34, 0x12, // uint32 = 0x12345678
	}
	r, _ := newTestReader(t, data)

	v8, err := r.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(1), v8)

	v16, err := r.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v16)

	v32, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), v32)
}

func TestReaderPayloadBounds(t *testing.T) {
	r, _ := newTestReader(t, []byte{1, 2})
	_, err := r.Uint32()
	require.Error(t, err)
}

func TestReaderString(t *testing.T) {
	data := []byte{3, 0, 'a', 'b', 'c'}
	r, _ := newTestReader(t, data)

	s, err := r.String()
	require.NoError(t, err)
	require.Equal(t, "abc", s)
}

func TestReaderStringOversized(t *testing.T) {
	data := []byte{0xff, 0xff, 'a'}
	r, _ := newTestReader(t, data)

	_, err := r.String()
	require.Error(t, err)
}

func TestReaderTimestamp(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
	}
	r, _ := newTestReader(t, data)

	ts, err := r.Timestamp()
	require.NoError(t, err)
	require.Equal(t, Timestamp{Seconds: 1, Nanoseconds: 2}, ts)
}

func TestSCountKnownVectors(t *testing.T) {
	cases := []struct {
		value   int64
		encoded []byte
	}{
		{-1, []byte{0x01}},
		{1, []byte{0x02}},
		{64, []byte{0x80, 0x01}},
		{0, []byte{0x00}},
	}

	for _, c := range cases {
		r, _ := newTestReader(t, c.encoded)
		got, err := r.SCount()
		require.NoError(t, err)
		require.Equal(t, c.value, got)
	}
}

func TestSCountRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		v := int64(rng.Uint64())
		enc := encodeSCount(nil, v)
		r, _ := newTestReader(t, enc)

		got, err := r.SCount()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestSCountCorruptEncoding(t *testing.T) {
	data := make([]byte, 11)
	for i := range data {
		data[i] = 0x80
	}

	r, _ := newTestReader(t, data)
	_, err := r.SCount()
	require.Error(t, err)
}

func TestDiffVectorExample(t *testing.T) {
	var enc []byte
	enc = encodeSCount(enc, 5)
	enc = encodeSCount(enc, 0)
	enc = encodeSCount(enc, -2)

	r, _ := newTestReader(t, enc)
	out, err := r.DiffVectorRef(0, 3)
	require.NoError(t, err)
	require.Equal(t, []uint16{5, 5, 3}, out)
}

func TestDiffVectorRefAndOptimizedAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(32)
		base := uint16(rng.Intn(1000))

		var enc []byte
		cur := int64(base)
		deltas := make([]int64, n)

		for i := 0; i < n; i++ {
			// keep the running value within uint16 range so both decoders
			// produce comparable output without wraparound ambiguity.
			d := int64(rng.Intn(2001) - 1000)
			if cur+d < 0 {
				d = -cur
			} else if cur+d > 60000 {
				d = 60000 - cur
			}

			deltas[i] = d
			cur += d
			enc = encodeSCount(enc, d)
		}

		refSrc := stream.NewBytesSource(enc)
		refReader := NewReader(refSrc, endian.GetLittleEndianEngine(), 0, int64(len(enc)))
		refOut, err := refReader.DiffVectorRef(base, n)
		require.NoError(t, err)

		optSrc := stream.NewBytesSource(enc)
		optReader := NewReader(optSrc, endian.GetLittleEndianEngine(), 0, int64(len(enc)))
		optOut, err := optReader.DiffVectorOptimized(optSrc.Peek, base, n)
		require.NoError(t, err)

		require.Equal(t, refOut, optOut)
		require.Equal(t, refReader.Pos(), optReader.Pos())
	}
}

func TestReaderArraySlices(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x02, 0x00, 0x03, 0x00,
	}
	r, _ := newTestReader(t, data)

	out, err := r.Uint16Slice(3)
	require.NoError(t, err)
	require.Equal(t, []uint16{1, 2, 3}, out)
}

func TestReaderArrayOversized(t *testing.T) {
	r, _ := newTestReader(t, []byte{1, 2})
	_, err := r.Uint32Slice(10)
	require.Error(t, err)
}

func TestReaderSeekAndSkip(t *testing.T) {
	r, _ := newTestReader(t, []byte{1, 2, 3, 4, 5})

	require.NoError(t, r.Seek(2))
	require.Equal(t, int64(2), r.Pos())

	require.NoError(t, r.SkipRemaining())
	require.Equal(t, int64(0), r.Remaining())

	require.Error(t, r.Seek(-1))
	require.Error(t, r.Seek(100))
}
