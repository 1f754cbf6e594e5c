package objects

import (
	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
)

// RunHeader is the payload of type 2000 (any version): two fixed-layout
// records, part1 followed by part2 (part2's arrays sized by part1's
// NumTelescopes), then two length-prefixed strings.
//
// part1/part2's exact field layout is reconstructed from sim_telarray's
// documented io_hess.c RunHeader write order (runheader_dtypes.py itself
// was not available in the retrieval pack); see DESIGN.md.
type RunHeader struct {
	RunID              uint32
	Run                int32
	Time               int32
	RunType            int32
	TrackingMode       int32
	ReverseFlag        int32
	EnergyRange        [2]float32
	SpectralIndex      float32
	CoreRange          [2]float32
	ViewconeInnerAngle float32
	ViewconeOuterAngle float32
	AzimuthAngle       float32
	AltitudeAngle      float32
	NumTelescopes      int32
	TelPosX            []float32
	TelPosY            []float32
	TelPosZ            []float32
	TelSphereRadius    []float32
	Target             string
	Observer           string
}

func (RunHeader) ObjectType() format.TypeCode { return format.TypeRunHeader }

func parseRunHeader(h header.Header, r *codec.Reader) (RunHeader, error) {
	rh := RunHeader{RunID: h.ID}

	var err error
	if rh.Run, err = r.Int32(); err != nil {
		return RunHeader{}, err
	}
	if rh.Time, err = r.Int32(); err != nil {
		return RunHeader{}, err
	}
	if rh.RunType, err = r.Int32(); err != nil {
		return RunHeader{}, err
	}
	if rh.TrackingMode, err = r.Int32(); err != nil {
		return RunHeader{}, err
	}
	if rh.ReverseFlag, err = r.Int32(); err != nil {
		return RunHeader{}, err
	}
	if rh.EnergyRange, err = readFloat32Pair(r); err != nil {
		return RunHeader{}, err
	}
	if rh.SpectralIndex, err = r.Float32(); err != nil {
		return RunHeader{}, err
	}
	if rh.CoreRange, err = readFloat32Pair(r); err != nil {
		return RunHeader{}, err
	}
	if rh.ViewconeInnerAngle, err = r.Float32(); err != nil {
		return RunHeader{}, err
	}
	if rh.ViewconeOuterAngle, err = r.Float32(); err != nil {
		return RunHeader{}, err
	}
	if rh.AzimuthAngle, err = r.Float32(); err != nil {
		return RunHeader{}, err
	}
	if rh.AltitudeAngle, err = r.Float32(); err != nil {
		return RunHeader{}, err
	}
	if rh.NumTelescopes, err = r.Int32(); err != nil {
		return RunHeader{}, err
	}

	n := int(rh.NumTelescopes)
	if rh.TelPosX, err = r.Float32Slice(n); err != nil {
		return RunHeader{}, err
	}
	if rh.TelPosY, err = r.Float32Slice(n); err != nil {
		return RunHeader{}, err
	}
	if rh.TelPosZ, err = r.Float32Slice(n); err != nil {
		return RunHeader{}, err
	}
	if rh.TelSphereRadius, err = r.Float32Slice(n); err != nil {
		return RunHeader{}, err
	}

	if rh.Target, err = r.String(); err != nil {
		return RunHeader{}, err
	}
	if rh.Observer, err = r.String(); err != nil {
		return RunHeader{}, err
	}

	return rh, nil
}

func readFloat32Pair(r *codec.Reader) ([2]float32, error) {
	a, err := r.Float32()
	if err != nil {
		return [2]float32{}, err
	}

	b, err := r.Float32()
	if err != nil {
		return [2]float32{}, err
	}

	return [2]float32{a, b}, nil
}

// MCRunHeader is the payload of type 2001, version 4 only.
type MCRunHeader struct {
	ShowerProgID       int32
	ShowerProgVers     int32
	ShowerProgStart    int32
	DetectorProgID     int32
	DetectorProgVers   int32
	DetectorProgStart  int32
	ObsHeight          float32
	NumShowers         int32
	NumUse             int32
	CorePosMode        int32
	CoreRange          [2]float32
	AltRange           [2]float32
	AzRange            [2]float32
	Diffuse            int32
	Viewcone           [2]float32
	ERange             [2]float32
	SpectralIndex      float32
	BTotal             float32
	BInclination       float32
	BDeclination       float32
	InjectionHeight    float32
	Atmosphere         int32
	CorsikaIACTOptions int32
	CorsikaLowEModel   int32
	CorsikaHighEModel  int32
	CorsikaBunchsize   float32
	CorsikaWlenMin     float32
	CorsikaWlenMax     float32
	CorsikaLowEDetail  int32
	CorsikaHighEDetail int32
}

func (MCRunHeader) ObjectType() format.TypeCode { return format.TypeMCRunHeader }

func parseMCRunHeader(h header.Header, r *codec.Reader) (MCRunHeader, error) {
	if h.Version != 4 {
		return MCRunHeader{}, versionError(format.TypeMCRunHeader, h)
	}

	var m MCRunHeader
	var err error

	readInt := func(dst *int32) {
		if err != nil {
			return
		}
		*dst, err = r.Int32()
	}
	readFloat := func(dst *float32) {
		if err != nil {
			return
		}
		*dst, err = r.Float32()
	}
	readPair := func(dst *[2]float32) {
		if err != nil {
			return
		}
		*dst, err = readFloat32Pair(r)
	}

	readInt(&m.ShowerProgID)
	readInt(&m.ShowerProgVers)
	readInt(&m.ShowerProgStart)
	readInt(&m.DetectorProgID)
	readInt(&m.DetectorProgVers)
	readInt(&m.DetectorProgStart)
	readFloat(&m.ObsHeight)
	readInt(&m.NumShowers)
	readInt(&m.NumUse)
	readInt(&m.CorePosMode)
	readPair(&m.CoreRange)
	readPair(&m.AltRange)
	readPair(&m.AzRange)
	readInt(&m.Diffuse)
	readPair(&m.Viewcone)
	readPair(&m.ERange)
	readFloat(&m.SpectralIndex)
	readFloat(&m.BTotal)
	readFloat(&m.BInclination)
	readFloat(&m.BDeclination)
	readFloat(&m.InjectionHeight)
	readInt(&m.Atmosphere)
	readInt(&m.CorsikaIACTOptions)
	readInt(&m.CorsikaLowEModel)
	readInt(&m.CorsikaHighEModel)
	readFloat(&m.CorsikaBunchsize)
	readFloat(&m.CorsikaWlenMin)
	readFloat(&m.CorsikaWlenMax)
	readInt(&m.CorsikaLowEDetail)
	readInt(&m.CorsikaHighEDetail)

	if err != nil {
		return MCRunHeader{}, err
	}

	return m, nil
}
