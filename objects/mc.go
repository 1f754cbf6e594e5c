package objects

import (
	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
)

// MCEvent is the payload of type 2021, version 1 only.
type MCEvent struct {
	Event     uint32
	ShowerNum int32
	Xcore     float32
	Ycore     float32
}

func (MCEvent) ObjectType() format.TypeCode { return format.TypeMCEvent }

func parseMCEvent(h header.Header, r *codec.Reader) (MCEvent, error) {
	if h.Version != 1 {
		return MCEvent{}, versionError(format.TypeMCEvent, h)
	}

	e := MCEvent{Event: h.ID}

	var err error
	if e.ShowerNum, err = r.Int32(); err != nil {
		return MCEvent{}, err
	}
	if e.Xcore, err = r.Float32(); err != nil {
		return MCEvent{}, err
	}
	if e.Ycore, err = r.Float32(); err != nil {
		return MCEvent{}, err
	}

	return e, nil
}

// PixelPE is one telescope's sparse photo-electron record within MCPeSum:
// parallel PixelID/PE slices, one entry per non-empty pixel.
type PixelPE struct {
	PixelID []int16
	PE      []int32
}

// MCPeSum is the payload of type 2026, version 2 only.
//
// The original implementation calls `pix_pe.append(pixel_id, pe)` —
// list.append with two positional arguments, which raises at runtime rather
// than appending a (pixel_id, pe) tuple. This is a bug in the reference
// decoder; here it is implemented as the evidently intended
// `append((pixel_id, pe))`, so PixPE accumulates one PixelPE per telescope
// with a non-empty sample instead of failing.
type MCPeSum struct {
	Event          uint32
	ShowerNum      int32
	NumTel         int32
	NumPE          []int32
	NumPixels      []int32
	PixPE          []PixelPE
	Photons        []float32
	PhotonsAtm     []float32
	PhotonsAtm36   []float32
	PhotonsAtmQE   []float32
	PhotonsAtm400  []float32
}

func (MCPeSum) ObjectType() format.TypeCode { return format.TypeMCPeSum }

func parseMCPeSum(h header.Header, r *codec.Reader) (MCPeSum, error) {
	if h.Version != 2 {
		return MCPeSum{}, versionError(format.TypeMCPeSum, h)
	}

	m := MCPeSum{Event: h.ID}

	var err error
	if m.ShowerNum, err = r.Int32(); err != nil {
		return MCPeSum{}, err
	}
	if m.NumTel, err = r.Int32(); err != nil {
		return MCPeSum{}, err
	}
	if m.NumPE, err = r.Int32Slice(int(m.NumTel)); err != nil {
		return MCPeSum{}, err
	}
	if m.NumPixels, err = r.Int32Slice(int(m.NumTel)); err != nil {
		return MCPeSum{}, err
	}

	for t := 0; t < int(m.NumTel); t++ {
		nPE, nPixels := m.NumPE[t], m.NumPixels[t]
		if nPE <= 0 || nPixels <= 0 {
			continue
		}

		nonEmpty, err := r.Int16()
		if err != nil {
			return MCPeSum{}, err
		}

		pixelID, err := r.Int16Slice(int(nonEmpty))
		if err != nil {
			return MCPeSum{}, err
		}

		pe, err := r.Int32Slice(int(nonEmpty))
		if err != nil {
			return MCPeSum{}, err
		}

		m.PixPE = append(m.PixPE, PixelPE{PixelID: pixelID, PE: pe})
	}

	if m.Photons, err = r.Float32Slice(int(m.NumTel)); err != nil {
		return MCPeSum{}, err
	}
	if m.PhotonsAtm, err = r.Float32Slice(int(m.NumTel)); err != nil {
		return MCPeSum{}, err
	}
	if m.PhotonsAtm36, err = r.Float32Slice(int(m.NumTel)); err != nil {
		return MCPeSum{}, err
	}
	if m.PhotonsAtmQE, err = r.Float32Slice(int(m.NumTel)); err != nil {
		return MCPeSum{}, err
	}
	if m.PhotonsAtm400, err = r.Float32Slice(int(m.NumTel)); err != nil {
		return MCPeSum{}, err
	}

	return m, nil
}
