package walker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-iact/eventio/endian"
	"github.com/go-iact/eventio/header"
	"github.com/go-iact/eventio/stream"
)

func le32(v uint32) []byte { return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)} }

func buildObject(typeCode uint16, version uint8, onlySub bool, id uint32, payload []byte) []byte {
	var typeWord uint32 = uint32(typeCode)
	typeWord |= uint32(version&0x1f) << 23
	if onlySub {
		typeWord |= 1 << 22
	}

	buf := append([]byte{}, le32(header.SyncMarker)...)
	buf = append(buf, le32(typeWord)...)
	buf = append(buf, le32(id)...)
	buf = append(buf, le32(uint32(len(payload)))...)
	buf = append(buf, payload...)

	return buf
}

func TestWalkForwardProgress(t *testing.T) {
	var data []byte
	data = append(data, buildObject(2002, 0, false, 1, []byte{1, 2, 3, 4})...)
	data = append(data, buildObject(2002, 0, false, 2, []byte{5, 6, 7, 8, 9, 10})...)
	data = append(data, buildObject(70, 0, false, 0, nil)...)

	src := stream.NewBytesSource(data)

	var seen []uint32
	for obj, err := range Walk(src, endian.GetLittleEndianEngine()) {
		require.NoError(t, err)
		seen = append(seen, obj.Header.ID)
	}

	require.Equal(t, []uint32{1, 2, 0}, seen)
	require.Equal(t, int64(len(data)), src.Pos())
}

func TestWalkSkipsWithoutConsuming(t *testing.T) {
	var data []byte
	data = append(data, buildObject(2002, 0, false, 1, []byte{1, 2, 3, 4, 5, 6, 7, 8})...)
	data = append(data, buildObject(2002, 0, false, 2, nil)...)

	src := stream.NewBytesSource(data)

	count := 0
	for obj, err := range Walk(src, endian.GetLittleEndianEngine()) {
		require.NoError(t, err)
		count++
		_ = obj
		// Deliberately do not read any payload bytes.
	}

	require.Equal(t, 2, count)
	require.Equal(t, int64(len(data)), src.Pos())
}

func TestWalkRecursion(t *testing.T) {
	child := buildObject(2002, 0, false, 9, []byte{1, 2})
	container := buildObject(2000, 0, true, 1, child)

	var data []byte
	data = append(data, container...)

	src := stream.NewBytesSource(data)

	var types []uint32
	var depths []int
	for obj, err := range Walk(src, endian.GetLittleEndianEngine(), WithRecursion()) {
		require.NoError(t, err)
		types = append(types, obj.Header.Type)
		depths = append(depths, obj.Depth)
	}

	require.Equal(t, []uint32{2000, 2002}, types)
	require.Equal(t, []int{0, 1}, depths)
	require.Equal(t, int64(len(data)), src.Pos())
}

func TestWalkRecursionStopsAtParentBoundary(t *testing.T) {
	// The child's framed bytes exactly fill the container's declared
	// payload, and a sibling top-level object follows immediately after.
	// Without a boundary on the recursive descent, the nested walk would
	// keep reading past the container and misparse the sibling's header as
	// a grandchild.
	child := buildObject(2002, 0, false, 9, []byte{1, 2})
	container := buildObject(2000, 0, true, 1, child)
	sibling := buildObject(2002, 0, false, 3, []byte{7, 8, 9})

	var data []byte
	data = append(data, container...)
	data = append(data, sibling...)

	src := stream.NewBytesSource(data)

	var types []uint32
	var depths []int
	for obj, err := range Walk(src, endian.GetLittleEndianEngine(), WithRecursion()) {
		require.NoError(t, err)
		types = append(types, obj.Header.Type)
		depths = append(depths, obj.Depth)
	}

	require.Equal(t, []uint32{2000, 2002, 2002}, types)
	require.Equal(t, []int{0, 1, 0}, depths)
	require.Equal(t, int64(len(data)), src.Pos())
}

func TestWalkMaxDepth(t *testing.T) {
	grandchild := buildObject(2002, 0, false, 9, []byte{1})
	child := buildObject(2000, 0, true, 5, grandchild)
	container := buildObject(2000, 0, true, 1, child)

	src := stream.NewBytesSource(container)

	var types []uint32
	for obj, err := range Walk(src, endian.GetLittleEndianEngine(), WithRecursion(), WithMaxDepth(1)) {
		require.NoError(t, err)
		types = append(types, obj.Header.Type)
	}

	require.Equal(t, []uint32{2000, 2000}, types)
}

func TestWalkEarlyStop(t *testing.T) {
	var data []byte
	data = append(data, buildObject(2002, 0, false, 1, nil)...)
	data = append(data, buildObject(2002, 0, false, 2, nil)...)

	src := stream.NewBytesSource(data)

	count := 0
	for range Walk(src, endian.GetLittleEndianEngine()) {
		count++
		break
	}

	require.Equal(t, 1, count)
}
