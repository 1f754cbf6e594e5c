// Package errs defines the sentinel error values returned by the eventio
// decoder. Packages in this module return them either directly or wrapped
// with fmt.Errorf("%w: ...") to add context; callers that need to distinguish
// failure kinds should use errors.Is against the sentinels here rather than
// comparing error strings.
package errs

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidSyncMarker is returned when an object header does not start
	// with the expected 0xD41F8A37 sentinel.
	ErrInvalidSyncMarker = errors.New("eventio: invalid sync marker")

	// ErrUnexpectedEndOfStream is returned when the underlying source
	// returned fewer bytes than requested.
	ErrUnexpectedEndOfStream = errors.New("eventio: unexpected end of stream")

	// ErrUnsupportedVersion is returned when an object's version fails a
	// type's version gate.
	ErrUnsupportedVersion = errors.New("eventio: unsupported version")

	// ErrUnsupportedCombination is returned when a flag combination falls
	// outside the implemented subset of a type's behavior.
	ErrUnsupportedCombination = errors.New("eventio: unsupported flag combination")

	// ErrTelescopeIDMismatch is returned when the telescope ID derived from
	// an object's type code disagrees with the one derived from its id word.
	ErrTelescopeIDMismatch = errors.New("eventio: telescope id mismatch between type and id")

	// ErrOversizedArray is returned when a decoded count implies more bytes
	// than remain in the current payload view.
	ErrOversizedArray = errors.New("eventio: array size exceeds remaining payload")

	// ErrCorruptEncoding is returned when a scount or differential vector
	// violates its continuation-bit invariants or overruns the payload.
	ErrCorruptEncoding = errors.New("eventio: corrupt variable-length encoding")

	// ErrSeekOutOfRange is returned when a seek targets a position outside
	// the bounds the caller is permitted to address.
	ErrSeekOutOfRange = errors.New("eventio: seek out of range")

	// ErrPayloadBoundsExceeded is returned when a read would advance the
	// cursor past the end of the current object's declared payload length.
	ErrPayloadBoundsExceeded = errors.New("eventio: read exceeds payload bounds")
)

// DecodeError wraps a sentinel error with the object context in which it
// occurred, so callers can report precisely where decoding failed without
// the decoder needing a logging dependency of its own.
type DecodeError struct {
	// Type is the object's type code (post telescope-ID normalization is
	// left to the caller; this records the raw header type).
	Type uint32
	// Version is the object's header version.
	Version uint8
	// Offset is the absolute offset of the object's payload start.
	Offset int64
	// Err is the underlying sentinel error.
	Err error
}

func (e *DecodeError) Error() string {
	return "eventio: type=" + strconv.FormatInt(int64(e.Type), 10) +
		" version=" + strconv.FormatInt(int64(e.Version), 10) +
		" offset=" + strconv.FormatInt(e.Offset, 10) + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
