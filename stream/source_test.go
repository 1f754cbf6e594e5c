package stream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesSourceReadFull(t *testing.T) {
	src := NewBytesSource([]byte{1, 2, 3, 4, 5})

	buf := make([]byte, 3)
	require.NoError(t, src.ReadFull(buf))
	require.Equal(t, []byte{1, 2, 3}, buf)
	require.Equal(t, int64(3), src.Pos())

	buf2 := make([]byte, 3)
	err := src.ReadFull(buf2)
	require.Error(t, err)
}

func TestBytesSourceSeek(t *testing.T) {
	src := NewBytesSource([]byte{1, 2, 3, 4, 5})

	require.NoError(t, src.Seek(2))
	require.Equal(t, int64(2), src.Pos())

	b, err := src.Bytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{3, 4}, b)

	require.Error(t, src.Seek(-1))
	require.Error(t, src.Seek(100))
}

func TestBytesSourceBytesOutOfRange(t *testing.T) {
	src := NewBytesSource([]byte{1, 2, 3})
	_, err := src.Bytes(10)
	require.Error(t, err)
}

func TestReaderSource(t *testing.T) {
	r := bytes.NewReader([]byte{9, 8, 7, 6})
	src, err := NewReaderSource(r)
	require.NoError(t, err)

	buf := make([]byte, 2)
	require.NoError(t, src.ReadFull(buf))
	require.Equal(t, []byte{9, 8}, buf)
	require.Equal(t, int64(2), src.Pos())

	require.NoError(t, src.Seek(0))
	require.NoError(t, src.ReadFull(buf))
	require.Equal(t, []byte{9, 8}, buf)
}
