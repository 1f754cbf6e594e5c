package objects

import (
	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/format"
)

// HistoryLine is the payload of HistoryCommandLine (71) and HistoryConfig
// (72): a leading timestamp followed by one length-prefixed string. In the
// original, the timestamp is read once during object construction and the
// data-field parser seeks back over it before reading the string; here both
// reads happen in one pass since codec.Reader has no separate "object init"
// step.
type HistoryLine struct {
	Type      format.TypeCode
	Timestamp uint32
	Line      string
}

func (h HistoryLine) ObjectType() format.TypeCode { return h.Type }

func parseHistoryLine(t format.TypeCode, r *codec.Reader) (HistoryLine, error) {
	ts, err := r.Uint32()
	if err != nil {
		return HistoryLine{}, err
	}

	line, err := r.String()
	if err != nil {
		return HistoryLine{}, err
	}

	return HistoryLine{Type: t, Timestamp: ts, Line: line}, nil
}
