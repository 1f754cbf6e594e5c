// Package objects implements the per-type payload parsers:
// one parser per supported EventIO object type, each reading through a
// codec.Reader scoped to the object's payload and returning a concrete,
// named struct rather than an untyped map — the tagged-variant style
// a tagged-variant design preferred over dynamic lookup by number.
package objects

import (
	"fmt"

	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/errs"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
	"github.com/go-iact/eventio/registry"
)

// Record is implemented by every parsed payload type. ObjectType reports
// the fixed or telescope-ID-normalized type the record was parsed as.
type Record interface {
	ObjectType() format.TypeCode
}

// Raw is the payload of an opaque object: several
// fixed codes as "recognized but unparsed" — these surface as header plus
// the untouched payload bytes so a caller can add its own parser later
// without the framing layer changing shape.
type Raw struct {
	Type format.TypeCode
	Data []byte
}

func (r Raw) ObjectType() format.TypeCode { return r.Type }

func readRaw(t format.TypeCode, r *codec.Reader) (Raw, error) {
	data, err := r.Bytes(int(r.Remaining()))
	if err != nil {
		return Raw{}, err
	}

	return Raw{Type: t, Data: data}, nil
}

// Parse dispatches on resolved.Kind/resolved.Type to the matching per-type
// parser. Unknown fixed codes and explicitly opaque codes both come back as
// Raw; the distinction only matters to callers that inspect resolved.Opaque
// themselves via the registry.
//
// Any parser error is wrapped in an *errs.DecodeError carrying the object's
// type, version, and payload offset, so a caller logging a decode failure
// does not need to thread that context through itself. errors.Is against the
// package's sentinels still works through the wrapped error.
func Parse(resolved registry.Resolved, h header.Header, r *codec.Reader) (Record, error) {
	rec, err := dispatch(resolved, h, r)
	if err != nil {
		return nil, &errs.DecodeError{
			Type:    h.Type,
			Version: h.Version,
			Offset:  h.PayloadOffset,
			Err:     err,
		}
	}

	return rec, nil
}

func dispatch(resolved registry.Resolved, h header.Header, r *codec.Reader) (Record, error) {
	switch resolved.Kind {
	case format.KindTrackEvent:
		return parseTrackEvent(h, r)
	case format.KindTelEvent:
		return parseTelEvent(h, r)
	case format.KindUnknown:
		return readRaw(resolved.Type, r)
	}

	if resolved.Opaque {
		return readRaw(resolved.Type, r)
	}

	switch resolved.Type {
	case format.TypeHistory:
		return readRaw(resolved.Type, r)
	case format.TypeHistoryCommand:
		return parseHistoryLine(format.TypeHistoryCommand, r)
	case format.TypeHistoryConfig:
		return parseHistoryLine(format.TypeHistoryConfig, r)
	case format.TypeRunHeader:
		return parseRunHeader(h, r)
	case format.TypeMCRunHeader:
		return parseMCRunHeader(h, r)
	case format.TypeCamSettings:
		return parseCamSettings(h, r)
	case format.TypeCamOrgan:
		return parseCamOrgan(h, r)
	case format.TypePixelset:
		return parsePixelset(h, r)
	case format.TypePixelDisable:
		return parsePixelDisable(h, r)
	case format.TypeCamSoftSet:
		return parseCamSoftSet(h, r)
	case format.TypePointingCor:
		return parsePointingCor(h, r)
	case format.TypeTrackSet:
		return parseTrackSet(h, r)
	case format.TypeCentralEvent:
		return parseCentralEvent(h, r)
	case format.TypeTelEventHeader:
		return parseTelEventHeader(h, r)
	case format.TypeTelADCSamp:
		return parseTelADCSamp(h, r)
	case format.TypeTelImage:
		return parseTelImage(h, r)
	case format.TypeShower:
		return parseShower(h, r)
	case format.TypeMCEvent:
		return parseMCEvent(h, r)
	case format.TypeTelMoni:
		return parseTelMoni(h, r)
	case format.TypeLasCal:
		return parseLasCal(h, r)
	case format.TypeMCPeSum:
		return parseMCPeSum(h, r)
	case format.TypePixelList:
		return parsePixelList(h, r)
	default:
		return readRaw(resolved.Type, r)
	}
}

func versionError(t format.TypeCode, h header.Header) error {
	return fmt.Errorf("%w: %s version %d", errs.ErrUnsupportedVersion, t, h.Version)
}

func telescopeIDFromHeader(id uint32) int {
	return registry.TelescopeIDFromID(id)
}
