// Package header parses the EventIO object header: the
// sync marker, the packed type_word, the id, and the (possibly extended)
// length_word. It is the framing layer the walker and registry build on.
package header

import (
	"github.com/go-iact/eventio/endian"
	"github.com/go-iact/eventio/errs"
	"github.com/go-iact/eventio/stream"
)

// SyncMarker is the 32-bit little-endian sentinel that starts every
// top-level object.
const SyncMarker uint32 = 0xD41F8A37

const (
	typeMask        = 0x0000ffff
	userBit         = 1 << 20
	extendedBit     = 1 << 21
	onlySubObjBit   = 1 << 22
	versionShift    = 23
	versionMask     = 0x1f
	lengthExtFlag   = 1 << 30
	lengthValueMask = (1 << 30) - 1
)

// Header is the immutable descriptor produced by reading one object frame.
// Once returned it is never mutated; PayloadOffset plus Length fully
// describes the scoped view a Reader will open over the payload.
type Header struct {
	Type           uint32
	Version        uint8
	ID             uint32
	Length         int64
	PayloadOffset  int64
	OnlySubObjects bool
}

// Read parses one object header from src starting at the current position,
// using engine for multi-byte field decoding. src's cursor is left just
// past the sync marker through length_word (and, for extended headers, the
// high-order length word); PayloadOffset records where the payload begins.
func Read(src stream.Source, engine endian.EndianEngine) (Header, error) {
	var buf [16]byte
	if err := src.ReadFull(buf[:]); err != nil {
		return Header{}, errs.ErrUnexpectedEndOfStream
	}

	sync := engine.Uint32(buf[0:4])
	if sync != SyncMarker {
		return Header{}, errs.ErrInvalidSyncMarker
	}

	typeWord := engine.Uint32(buf[4:8])
	id := engine.Uint32(buf[8:12])
	lengthWord := engine.Uint32(buf[12:16])

	h := Header{
		Type:           typeWord & typeMask,
		Version:        uint8((typeWord >> versionShift) & versionMask), //nolint:gosec
		ID:             id,
		OnlySubObjects: typeWord&onlySubObjBit != 0,
	}

	extended := typeWord&extendedBit != 0
	length := int64(lengthWord & lengthValueMask)

	if extended {
		var high [4]byte
		if err := src.ReadFull(high[:]); err != nil {
			return Header{}, errs.ErrUnexpectedEndOfStream
		}

		highWord := int64(engine.Uint32(high[:]))
		length = (highWord << 30) | length
	}

	h.Length = length
	h.PayloadOffset = src.Pos()

	return h, nil
}
