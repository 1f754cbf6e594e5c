// Package endian provides the byte order abstraction EventIO decoding reads
// through.
//
// EventIO streams are little-endian-fixed on the wire, but the codec
// package still reads through this engine abstraction rather than calling
// binary.LittleEndian directly, so a big-endian source (e.g. one re-wrapped
// by a caller) can be decoded by swapping the engine at construction time.
//
// # Basic Usage
//
//	import "github.com/go-iact/eventio/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	r := codec.NewReader(src, engine, 0, length)
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
