package objects

import (
	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
	"github.com/go-iact/eventio/registry"
)

// TelImage is the payload of type 2014, version 5 only. Flags comes from
// the header id, whose bits gate the optional field groups below; ClipAmp
// is gated by NumSat > 0 instead.
type TelImage struct {
	Flags       uint32
	TelescopeID int
	CutID       uint32
	Pixels      int16
	NumSat      int16
	ClipAmp     float32
	Amplitude   float32
	X           float32
	Y           float32
	Phi         float32
	L           float32
	W           float32
	NumConc     int16
	Concentration float32

	HasShapeErr bool
	XErr, YErr, PhiErr, LErr, WErr float32

	HasMoments bool
	Skewness, SkewnessErr, Kurtosis, KurtosisErr float32

	HasHotPixels bool
	NumHot     int16
	HotAmp     []float32
	HotPixel   []int16

	HasTiming bool
	TMSlope, TMResidual, TMWidth1, TMWidth2, TMRise float32
}

func (TelImage) ObjectType() format.TypeCode { return format.TypeTelImage }

func parseTelImage(h header.Header, r *codec.Reader) (TelImage, error) {
	if h.Version != 5 {
		return TelImage{}, versionError(format.TypeTelImage, h)
	}

	flags := h.ID
	img := TelImage{
		Flags:       flags,
		TelescopeID: registry.TelescopeIDFromID(flags),
		CutID:       (flags & 0xff000) >> 12,
	}

	var err error
	if img.Pixels, err = r.Int16(); err != nil {
		return TelImage{}, err
	}
	if img.NumSat, err = r.Int16(); err != nil {
		return TelImage{}, err
	}

	if img.NumSat > 0 {
		if img.ClipAmp, err = r.Float32(); err != nil {
			return TelImage{}, err
		}
	}

	for _, dst := range []*float32{
		&img.Amplitude, &img.X, &img.Y, &img.Phi, &img.L, &img.W,
	} {
		if *dst, err = r.Float32(); err != nil {
			return TelImage{}, err
		}
	}

	if img.NumConc, err = r.Int16(); err != nil {
		return TelImage{}, err
	}
	if img.Concentration, err = r.Float32(); err != nil {
		return TelImage{}, err
	}

	if flags&0x100 != 0 {
		img.HasShapeErr = true
		for _, dst := range []*float32{&img.XErr, &img.YErr, &img.PhiErr, &img.LErr, &img.WErr} {
			if *dst, err = r.Float32(); err != nil {
				return TelImage{}, err
			}
		}
	}

	if flags&0x200 != 0 {
		img.HasMoments = true
		for _, dst := range []*float32{&img.Skewness, &img.SkewnessErr, &img.Kurtosis, &img.KurtosisErr} {
			if *dst, err = r.Float32(); err != nil {
				return TelImage{}, err
			}
		}
	}

	if flags&0x400 != 0 {
		img.HasHotPixels = true
		if img.NumHot, err = r.Int16(); err != nil {
			return TelImage{}, err
		}
		if img.HotAmp, err = r.Float32Slice(int(img.NumHot)); err != nil {
			return TelImage{}, err
		}
		if img.HotPixel, err = r.Int16Slice(int(img.NumHot)); err != nil {
			return TelImage{}, err
		}
	}

	if flags&0x800 != 0 {
		img.HasTiming = true
		for _, dst := range []*float32{
			&img.TMSlope, &img.TMResidual, &img.TMWidth1, &img.TMWidth2, &img.TMRise,
		} {
			if *dst, err = r.Float32(); err != nil {
				return TelImage{}, err
			}
		}
	}

	return img, nil
}

// Shower is the payload of type 2015, version 1 only. ResultBits comes
// from the header id and gates every optional field.
type Shower struct {
	ResultBits uint32
	NumTrg     int16
	NumRead    int16
	NumImg     int16
	ImgPattern int32

	HasDirection bool
	Az, Alt float32

	HasDirErr bool
	ErrDir1, ErrDir2, ErrDir3 float32

	HasCore bool
	Xc, Yc float32

	HasCoreErr bool
	ErrCore1, ErrCore2, ErrCore3 float32

	HasMSc bool
	Mscl, Mscw float32

	HasMScErr bool
	ErrMscl, ErrMscw float32

	HasEnergy bool
	Energy float32

	HasEnergyErr bool
	ErrEnergy float32

	HasXmax bool
	Xmax float32

	HasXmaxErr bool
	ErrXmax float32
}

func (Shower) ObjectType() format.TypeCode { return format.TypeShower }

func parseShower(h header.Header, r *codec.Reader) (Shower, error) {
	if h.Version != 1 {
		return Shower{}, versionError(format.TypeShower, h)
	}

	resultBits := h.ID
	s := Shower{ResultBits: resultBits}

	var err error
	if s.NumTrg, err = r.Int16(); err != nil {
		return Shower{}, err
	}
	if s.NumRead, err = r.Int16(); err != nil {
		return Shower{}, err
	}
	if s.NumImg, err = r.Int16(); err != nil {
		return Shower{}, err
	}
	if s.ImgPattern, err = r.Int32(); err != nil {
		return Shower{}, err
	}

	type gate struct {
		bit  uint32
		has  *bool
		dsts []*float32
	}

	gates := []gate{
		{0x01, &s.HasDirection, []*float32{&s.Az, &s.Alt}},
		{0x02, &s.HasDirErr, []*float32{&s.ErrDir1, &s.ErrDir2, &s.ErrDir3}},
		{0x04, &s.HasCore, []*float32{&s.Xc, &s.Yc}},
		{0x08, &s.HasCoreErr, []*float32{&s.ErrCore1, &s.ErrCore2, &s.ErrCore3}},
		{0x10, &s.HasMSc, []*float32{&s.Mscl, &s.Mscw}},
		{0x20, &s.HasMScErr, []*float32{&s.ErrMscl, &s.ErrMscw}},
		{0x40, &s.HasEnergy, []*float32{&s.Energy}},
		{0x80, &s.HasEnergyErr, []*float32{&s.ErrEnergy}},
		{0x0100, &s.HasXmax, []*float32{&s.Xmax}},
		{0x0200, &s.HasXmaxErr, []*float32{&s.ErrXmax}},
	}

	for _, g := range gates {
		if resultBits&g.bit == 0 {
			continue
		}

		*g.has = true

		for _, dst := range g.dsts {
			if *dst, err = r.Float32(); err != nil {
				return Shower{}, err
			}
		}
	}

	return s, nil
}
