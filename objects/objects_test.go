package objects

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/endian"
	"github.com/go-iact/eventio/errs"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
	"github.com/go-iact/eventio/registry"
	"github.com/go-iact/eventio/stream"
)

func le32(v uint32) []byte { return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)} }
func le16(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func leF32(v float32) []byte { return le32(math.Float32bits(v)) }

func encodeSCountForTest(v int64) []byte {
	u := uint64((v << 1) ^ (v >> 63))

	var out []byte
	for {
		c := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			out = append(out, c|0x80)
			continue
		}
		out = append(out, c)
		return out
	}
}

func newReaderOverPayload(t *testing.T, payload []byte) *codec.Reader {
	t.Helper()
	src := stream.NewBytesSource(payload)
	return codec.NewReader(src, endian.GetLittleEndianEngine(), 0, int64(len(payload)))
}

func TestCamSettingsSeedExample(t *testing.T) {
	var payload []byte
	payload = append(payload, le32(2)...) // n_pixels
	payload = append(payload, leF32(5.0)...)
	payload = append(payload, leF32(0.0)...)
	payload = append(payload, leF32(1.0)...)
	payload = append(payload, leF32(0.0)...)
	payload = append(payload, leF32(1.0)...)

	r := newReaderOverPayload(t, payload)
	h := header.Header{ID: 1}

	c, err := parseCamSettings(h, r)
	require.NoError(t, err)
	require.Equal(t, 1, c.TelescopeID)
	require.Equal(t, int32(2), c.NumPixels)
	require.Equal(t, float32(5.0), c.FocalLength)
	require.Equal(t, []float32{0.0, 1.0}, c.PixelX)
	require.Equal(t, []float32{0.0, 1.0}, c.PixelY)
}

func TestTrackEventSeedExample(t *testing.T) {
	var payload []byte
	payload = append(payload, leF32(10.0)...) // az_raw
	payload = append(payload, leF32(20.0)...) // alt_raw
	payload = append(payload, leF32(30.0)...) // az_cor
	payload = append(payload, leF32(40.0)...) // alt_cor

	r := newReaderOverPayload(t, payload)
	h := header.Header{Type: 2101, ID: 0x00000301}

	e, err := parseTrackEvent(h, r)
	require.NoError(t, err)
	require.Equal(t, 1, e.TelescopeID)
	require.True(t, e.HasRaw)
	require.True(t, e.HasCor)
	require.Equal(t, float32(10.0), e.AzimuthRaw)
	require.Equal(t, float32(20.0), e.AltitudeRaw)
	require.Equal(t, float32(30.0), e.AzimuthCor)
	require.Equal(t, float32(40.0), e.AltitudeCor)
}

func TestTrackEventMismatch(t *testing.T) {
	r := newReaderOverPayload(t, nil)
	h := header.Header{Type: 2101, ID: 0x00000002} // id encodes telid 2, type encodes 1
	_, err := parseTrackEvent(h, r)
	require.Error(t, err)
}

func TestCentralEventV2SeedExample(t *testing.T) {
	var payload []byte
	payload = append(payload, make([]byte, 16)...) // cpu_time, gps_time
	payload = append(payload, le32(0)...)           // trigger_pattern
	payload = append(payload, le32(0)...)           // data_pattern
	payload = append(payload, le16(1)...)           // tels_trigger
	payload = append(payload, le16(7)...)           // triggered_telescopes[0] = 7
	payload = append(payload, leF32(0)...)          // trigger_times[0]
	payload = append(payload, le16(0)...)           // tels_data
	payload = append(payload, []byte{0b011}...)     // teltrg_type_mask[0]
	payload = append(payload, leF32(1.5)...)        // bit 0 time
	payload = append(payload, leF32(2.5)...)        // bit 1 time

	r := newReaderOverPayload(t, payload)
	h := header.Header{Version: 2}

	e, err := parseCentralEvent(h, r)
	require.NoError(t, err)
	require.Equal(t, map[int]float32{0: 1.5, 1: 2.5}, e.TeltrgTimeByType[7])
}

func TestTelADCSampZeroSuppressed(t *testing.T) {
	var payload []byte
	payload = append(payload, le32(4)...) // num_pixels
	payload = append(payload, le16(1)...) // num_gains
	payload = append(payload, le16(3)...) // num_samples

	enc := encodeSCountForTest

	payload = append(payload, enc(1)...) // list_size = 1
	payload = append(payload, enc(0)...) // start = 0
	payload = append(payload, enc(1)...) // end = 1 -> range [0,1]

	// pixel 0: deltas 0,0,0 -> all zero
	payload = append(payload, enc(0)...)
	payload = append(payload, enc(0)...)
	payload = append(payload, enc(0)...)
	// pixel 1: deltas 0,0,0
	payload = append(payload, enc(0)...)
	payload = append(payload, enc(0)...)
	payload = append(payload, enc(0)...)

	flags := uint32(1) // zero_sup_mode = 1, rest zero
	h := header.Header{Version: 3, ID: flags}

	r := newReaderOverPayload(t, payload)
	a, err := parseTelADCSamp(h, r)
	require.NoError(t, err)
	require.Len(t, a.Samples, 1)
	require.Len(t, a.Samples[0], 4)
	require.Equal(t, []uint16{0, 0, 0}, a.Samples[0][0])
	require.Equal(t, []uint16{0, 0, 0}, a.Samples[0][1])
	require.Equal(t, []uint16{0, 0, 0}, a.Samples[0][2])
	require.Equal(t, []uint16{0, 0, 0}, a.Samples[0][3])
}

func TestMCPeSumAppendsPairs(t *testing.T) {
	var payload []byte
	payload = append(payload, le32(0)...) // shower_num
	payload = append(payload, le32(1)...) // num_tel
	payload = append(payload, le32(2)...) // num_pe[0]
	payload = append(payload, le32(2)...) // num_pixels[0]
	payload = append(payload, le16(2)...) // non_empty
	payload = append(payload, le16(uint16(5))...)
	payload = append(payload, le16(uint16(6))...)
	payload = append(payload, le32(10)...)
	payload = append(payload, le32(20)...)
	payload = append(payload, leF32(0)...) // photons
	payload = append(payload, leF32(0)...) // photons_atm
	payload = append(payload, leF32(0)...) // photons_atm_3_6
	payload = append(payload, leF32(0)...) // photons_atm_qe
	payload = append(payload, leF32(0)...) // photons_atm_400

	h := header.Header{Version: 2, ID: 99}
	r := newReaderOverPayload(t, payload)

	m, err := parseMCPeSum(h, r)
	require.NoError(t, err)
	require.Len(t, m.PixPE, 1)
	require.Equal(t, []int16{5, 6}, m.PixPE[0].PixelID)
	require.Equal(t, []int32{10, 20}, m.PixPE[0].PE)
}

func TestResolveAndParseOpaque(t *testing.T) {
	resolved := registry.Resolve(uint32(format.TypeEvent))
	r := newReaderOverPayload(t, []byte{1, 2, 3})
	h := header.Header{Type: uint32(format.TypeEvent)}

	rec, err := Parse(resolved, h, r)
	require.NoError(t, err)
	raw, ok := rec.(Raw)
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, raw.Data)
}

func TestParseWrapsErrorInDecodeError(t *testing.T) {
	h := header.Header{Type: uint32(format.TypeMCRunHeader), Version: 1, PayloadOffset: 16}
	resolved := registry.Resolve(h.Type)
	r := newReaderOverPayload(t, nil)

	_, err := Parse(resolved, h, r)
	require.Error(t, err)

	var decodeErr *errs.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.Equal(t, h.Type, decodeErr.Type)
	require.Equal(t, h.Version, decodeErr.Version)
	require.Equal(t, h.PayloadOffset, decodeErr.Offset)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}
