package objects

import (
	"fmt"

	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/errs"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
)

// PixelRange is an inclusive range of pixel IDs, [Start, End].
type PixelRange struct {
	Start int
	End   int
}

// TelADCSamp is the payload of type 2013, version 3 only. Samples is a
// [NumGains][NumPixels][NumSamples] tensor; pixels outside the declared
// ranges under zero-suppression stay at their zero value.
type TelADCSamp struct {
	TelescopeID  int
	ZeroSupMode  int
	DataRedMode  int
	ListKnown    bool
	NumPixels    int32
	NumGains     int16
	NumSamples   int16
	PixelRanges  []PixelRange
	Samples      [][][]uint16
}

func (TelADCSamp) ObjectType() format.TypeCode { return format.TypeTelADCSamp }

func parseTelADCSamp(h header.Header, r *codec.Reader) (TelADCSamp, error) {
	flags := h.ID
	zeroSupMode := int(flags & 0x1f)
	dataRedMode := int((flags >> 5) & 0x1f)
	listKnown := (flags>>10)&1 != 0
	telescopeID := int((flags >> 12) & 0xffff)

	if (zeroSupMode != 0 && h.Version < 3) || dataRedMode != 0 || listKnown {
		return TelADCSamp{}, fmt.Errorf(
			"%w: zero_sup_mode=%d data_red_mode=%d list_known=%v version=%d",
			errs.ErrUnsupportedCombination, zeroSupMode, dataRedMode, listKnown, h.Version,
		)
	}

	if h.Version != 3 {
		return TelADCSamp{}, versionError(format.TypeTelADCSamp, h)
	}

	a := TelADCSamp{
		TelescopeID: telescopeID,
		ZeroSupMode: zeroSupMode,
		DataRedMode: dataRedMode,
		ListKnown:   listKnown,
	}

	var err error
	if a.NumPixels, err = r.Int32(); err != nil {
		return TelADCSamp{}, err
	}
	if a.NumGains, err = r.Int16(); err != nil {
		return TelADCSamp{}, err
	}
	if a.NumSamples, err = r.Int16(); err != nil {
		return TelADCSamp{}, err
	}

	numGains, numPixels, numSamples := int(a.NumGains), int(a.NumPixels), int(a.NumSamples)

	samples := make([][][]uint16, numGains)
	for g := range samples {
		samples[g] = make([][]uint16, numPixels)
		for p := range samples[g] {
			samples[g][p] = make([]uint16, numSamples)
		}
	}
	a.Samples = samples

	if zeroSupMode != 0 {
		listSize, err := r.SCount()
		if err != nil {
			return TelADCSamp{}, err
		}

		ranges := make([]PixelRange, listSize)
		for i := range ranges {
			start, err := r.SCount()
			if err != nil {
				return TelADCSamp{}, err
			}

			if start < 0 {
				pixel := int(-start - 1)
				ranges[i] = PixelRange{Start: pixel, End: pixel}
				continue
			}

			end, err := r.SCount()
			if err != nil {
				return TelADCSamp{}, err
			}

			ranges[i] = PixelRange{Start: int(start), End: int(end)}
		}
		a.PixelRanges = ranges

		for g := 0; g < numGains; g++ {
			for _, rng := range ranges {
				for pix := rng.Start; pix <= rng.End; pix++ {
					vec, err := readDiffVector(r, numSamples)
					if err != nil {
						return TelADCSamp{}, err
					}
					a.Samples[g][pix] = vec
				}
			}
		}

		return a, nil
	}

	for g := 0; g < numGains; g++ {
		for p := 0; p < numPixels; p++ {
			vec, err := readDiffVector(r, numSamples)
			if err != nil {
				return TelADCSamp{}, err
			}
			a.Samples[g][p] = vec
		}
	}

	return a, nil
}

// readDiffVector decodes one scount-differential ADC sample vector via the
// optimized path, peeking through codec.Reader.Peek, which works whether or
// not the underlying source implements stream.Peeker; see
// codec.Reader.DiffVectorOptimized.
func readDiffVector(r *codec.Reader, n int) ([]uint16, error) {
	return r.DiffVectorOptimized(r.Peek, 0, n)
}
