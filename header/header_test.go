package header

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-iact/eventio/endian"
	"github.com/go-iact/eventio/errs"
	"github.com/go-iact/eventio/stream"
)

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func buildHeader(typeCode uint16, version uint8, extended, onlySub bool, id, length uint32) []byte {
	var typeWord uint32 = uint32(typeCode)
	typeWord |= uint32(version&0x1f) << versionShift

	if extended {
		typeWord |= extendedBit
	}

	if onlySub {
		typeWord |= onlySubObjBit
	}

	buf := append([]byte{}, le32(SyncMarker)...)
	buf = append(buf, le32(typeWord)...)
	buf = append(buf, le32(id)...)
	buf = append(buf, le32(length)...)

	return buf
}

func TestReadBasicHeader(t *testing.T) {
	data := buildHeader(2002, 3, false, false, 7, 42)
	src := stream.NewBytesSource(data)

	h, err := Read(src, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Equal(t, uint32(2002), h.Type)
	require.Equal(t, uint8(3), h.Version)
	require.Equal(t, uint32(7), h.ID)
	require.Equal(t, int64(42), h.Length)
	require.False(t, h.OnlySubObjects)
	require.Equal(t, int64(16), h.PayloadOffset)
}

func TestReadOnlySubObjects(t *testing.T) {
	data := buildHeader(2000, 0, false, true, 0, 0)
	src := stream.NewBytesSource(data)

	h, err := Read(src, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.True(t, h.OnlySubObjects)
}

func TestReadExtendedLength(t *testing.T) {
	data := buildHeader(2013, 3, true, false, 1, 5)
	data = append(data, le32(3)...) // high-order length word

	src := stream.NewBytesSource(data)
	h, err := Read(src, endian.GetLittleEndianEngine())
	require.NoError(t, err)

	want := int64(3)<<30 | int64(5)
	require.Equal(t, want, h.Length)
	require.Equal(t, int64(20), h.PayloadOffset)
}

func TestReadInvalidSyncMarker(t *testing.T) {
	data := make([]byte, 16)
	src := stream.NewBytesSource(data)

	_, err := Read(src, endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidSyncMarker)
}

func TestReadTruncated(t *testing.T) {
	data := le32(SyncMarker)
	src := stream.NewBytesSource(data)

	_, err := Read(src, endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrUnexpectedEndOfStream)
}
