package objects

import (
	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
)

// LasCal is the payload of type 2023, version 2 only.
type LasCal struct {
	TelescopeID   int
	LasCalID      int32
	Calib         [][]float32
	MaxIntFrac    []float32
	MaxPixtmFrac  []float32
	TMCalib       [][]float32
}

func (LasCal) ObjectType() format.TypeCode { return format.TypeLasCal }

func parseLasCal(h header.Header, r *codec.Reader) (LasCal, error) {
	if h.Version != 2 {
		return LasCal{}, versionError(format.TypeLasCal, h)
	}

	numPixels, err := r.Int16()
	if err != nil {
		return LasCal{}, err
	}
	numGains, err := r.Int16()
	if err != nil {
		return LasCal{}, err
	}

	l := LasCal{TelescopeID: int(h.ID)}

	if l.LasCalID, err = r.Int32(); err != nil {
		return LasCal{}, err
	}

	calibFlat, err := r.Float32Slice(int(numGains) * int(numPixels))
	if err != nil {
		return LasCal{}, err
	}
	l.Calib = reshapeFloat32(calibFlat, int(numGains), int(numPixels))

	tmp, err := r.Float32Slice(int(numGains) * 2)
	if err != nil {
		return LasCal{}, err
	}
	l.MaxIntFrac = make([]float32, numGains)
	l.MaxPixtmFrac = make([]float32, numGains)
	for i := 0; i < int(numGains); i++ {
		l.MaxIntFrac[i] = tmp[i*2]
		l.MaxPixtmFrac[i] = tmp[i*2+1]
	}

	tmCalibFlat, err := r.Float32Slice(int(numGains) * int(numPixels))
	if err != nil {
		return LasCal{}, err
	}
	l.TMCalib = reshapeFloat32(tmCalibFlat, int(numGains), int(numPixels))

	return l, nil
}
