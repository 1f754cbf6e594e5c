package objects

import (
	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
)

// PixelList is the payload of type 2027, version 0 only. Code and
// Telescope are recovered from the header id: code = id / 1e6,
// telescope = id % 1e6.
type PixelList struct {
	Code      uint32
	Telescope uint32
	Pixels    int16
	PixelIDs  []int16
}

func (PixelList) ObjectType() format.TypeCode { return format.TypePixelList }

func parsePixelList(h header.Header, r *codec.Reader) (PixelList, error) {
	if h.Version != 0 {
		return PixelList{}, versionError(format.TypePixelList, h)
	}

	p := PixelList{
		Code:      h.ID / 1_000_000,
		Telescope: h.ID % 1_000_000,
	}

	var err error
	if p.Pixels, err = r.Int16(); err != nil {
		return PixelList{}, err
	}
	if p.PixelIDs, err = r.Int16Slice(int(p.Pixels)); err != nil {
		return PixelList{}, err
	}

	return p, nil
}
