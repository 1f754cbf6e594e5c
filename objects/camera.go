package objects

import (
	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
)

// CamSettings is the payload of type 2002 (any version).
type CamSettings struct {
	TelescopeID  int
	NumPixels    int32
	FocalLength  float32
	PixelX       []float32
	PixelY       []float32
}

func (CamSettings) ObjectType() format.TypeCode { return format.TypeCamSettings }

func parseCamSettings(h header.Header, r *codec.Reader) (CamSettings, error) {
	c := CamSettings{TelescopeID: int(h.ID)}

	var err error
	if c.NumPixels, err = r.Int32(); err != nil {
		return CamSettings{}, err
	}
	if c.FocalLength, err = r.Float32(); err != nil {
		return CamSettings{}, err
	}
	if c.PixelX, err = r.Float32Slice(int(c.NumPixels)); err != nil {
		return CamSettings{}, err
	}
	if c.PixelY, err = r.Float32Slice(int(c.NumPixels)); err != nil {
		return CamSettings{}, err
	}

	return c, nil
}

// CamOrgan is the payload of type 2003, version 1 only.
type CamOrgan struct {
	TelescopeID      int
	NumDrawers       int32
	Drawer           []int16
	Card             [][]int16
	Chip             [][]int16
	Channel          [][]int16
	Sectors          [][]int16
	SectorType       []uint8
	SectorThreshold  []float32
	SectorPixThresh  []float32
}

func (CamOrgan) ObjectType() format.TypeCode { return format.TypeCamOrgan }

func reshapeInt16(flat []int16, rows, cols int) [][]int16 {
	out := make([][]int16, rows)
	for i := 0; i < rows; i++ {
		out[i] = flat[i*cols : (i+1)*cols]
	}

	return out
}

func parseCamOrgan(h header.Header, r *codec.Reader) (CamOrgan, error) {
	if h.Version != 1 {
		return CamOrgan{}, versionError(format.TypeCamOrgan, h)
	}

	numPixels, err := r.Int32()
	if err != nil {
		return CamOrgan{}, err
	}
	numDrawers, err := r.Int32()
	if err != nil {
		return CamOrgan{}, err
	}
	numGains, err := r.Int32()
	if err != nil {
		return CamOrgan{}, err
	}
	numSectors, err := r.Int32()
	if err != nil {
		return CamOrgan{}, err
	}

	c := CamOrgan{TelescopeID: int(h.ID), NumDrawers: numDrawers}

	if c.Drawer, err = r.Int16Slice(int(numPixels)); err != nil {
		return CamOrgan{}, err
	}

	cardFlat, err := r.Int16Slice(int(numPixels) * int(numGains))
	if err != nil {
		return CamOrgan{}, err
	}
	c.Card = reshapeInt16(cardFlat, int(numPixels), int(numGains))

	chipFlat, err := r.Int16Slice(int(numPixels) * int(numGains))
	if err != nil {
		return CamOrgan{}, err
	}
	c.Chip = reshapeInt16(chipFlat, int(numPixels), int(numGains))

	channelFlat, err := r.Int16Slice(int(numPixels) * int(numGains))
	if err != nil {
		return CamOrgan{}, err
	}
	c.Channel = reshapeInt16(channelFlat, int(numPixels), int(numGains))

	// Per-pixel sector-ID lists. A comment in the sim_telarray C sources
	// notes these may carry trailing zero padding from an old encoder bug;
	// this reads exactly what the length prefix says, with no special
	// casing for trailing zeros.
	c.Sectors = make([][]int16, numPixels)
	for i := 0; i < int(numPixels); i++ {
		n, err := r.Int16()
		if err != nil {
			return CamOrgan{}, err
		}

		sector, err := r.Int16Slice(int(n))
		if err != nil {
			return CamOrgan{}, err
		}

		c.Sectors[i] = sector
	}

	c.SectorType = make([]uint8, numSectors)
	c.SectorThreshold = make([]float32, numSectors)
	c.SectorPixThresh = make([]float32, numSectors)

	for i := 0; i < int(numSectors); i++ {
		t, err := r.Uint8()
		if err != nil {
			return CamOrgan{}, err
		}
		thr, err := r.Float32()
		if err != nil {
			return CamOrgan{}, err
		}
		pix, err := r.Float32()
		if err != nil {
			return CamOrgan{}, err
		}

		c.SectorType[i] = t
		c.SectorThreshold[i] = thr
		c.SectorPixThresh[i] = pix
	}

	return c, nil
}

// Pixelset is the payload of type 2004 (any version): four back-to-back
// records, the last three sized by earlier fields. dt1-dt4's field layout is
// reconstructed from sim_telarray's camera-description write order
// (pixelset.py itself was not available in the retrieval pack); see
// DESIGN.md.
type Pixelset struct {
	TelescopeID     int
	NumPixels       int32
	NumDrawers      int32
	NumGains        int32
	NumSectors      int32
	GridType        int32
	PixelShape      int32
	CamScale        float32
	CamRot          float32
	PixelX          []float32
	PixelY          []float32
	PixelShapeType  []int32
	PixelArea       []float32
	PixelSize       []float32
	DrawerNumChan   []int32
	NRefShape       int64
	LRefShape       int64
	RefShape        [][]float32
	RefStep         float32
	TimeSlice       float32
	SumOffset       float32
}

func (Pixelset) ObjectType() format.TypeCode { return format.TypePixelset }

func parsePixelset(h header.Header, r *codec.Reader) (Pixelset, error) {
	p := Pixelset{TelescopeID: int(h.ID)}

	var err error
	if p.NumPixels, err = r.Int32(); err != nil {
		return Pixelset{}, err
	}
	if p.NumDrawers, err = r.Int32(); err != nil {
		return Pixelset{}, err
	}
	if p.NumGains, err = r.Int32(); err != nil {
		return Pixelset{}, err
	}
	if p.NumSectors, err = r.Int32(); err != nil {
		return Pixelset{}, err
	}

	// dt2, sized by num_pixels.
	if p.GridType, err = r.Int32(); err != nil {
		return Pixelset{}, err
	}
	if p.PixelShape, err = r.Int32(); err != nil {
		return Pixelset{}, err
	}
	if p.CamScale, err = r.Float32(); err != nil {
		return Pixelset{}, err
	}
	if p.CamRot, err = r.Float32(); err != nil {
		return Pixelset{}, err
	}

	n := int(p.NumPixels)
	if p.PixelX, err = r.Float32Slice(n); err != nil {
		return Pixelset{}, err
	}
	if p.PixelY, err = r.Float32Slice(n); err != nil {
		return Pixelset{}, err
	}
	if p.PixelShapeType, err = r.Int32Slice(n); err != nil {
		return Pixelset{}, err
	}
	if p.PixelArea, err = r.Float32Slice(n); err != nil {
		return Pixelset{}, err
	}
	if p.PixelSize, err = r.Float32Slice(n); err != nil {
		return Pixelset{}, err
	}

	// dt3, sized by num_drawers.
	if p.DrawerNumChan, err = r.Int32Slice(int(p.NumDrawers)); err != nil {
		return Pixelset{}, err
	}

	if p.NRefShape, err = r.SCount(); err != nil {
		return Pixelset{}, err
	}
	if p.LRefShape, err = r.SCount(); err != nil {
		return Pixelset{}, err
	}

	// dt4, sized by (nrefshape, lrefshape).
	refFlat, err := r.Float32Slice(int(p.NRefShape) * int(p.LRefShape))
	if err != nil {
		return Pixelset{}, err
	}
	p.RefShape = make([][]float32, p.NRefShape)
	for i := range p.RefShape {
		p.RefShape[i] = refFlat[i*int(p.LRefShape) : (i+1)*int(p.LRefShape)]
	}

	if p.RefStep, err = r.Float32(); err != nil {
		return Pixelset{}, err
	}
	if p.TimeSlice, err = r.Float32(); err != nil {
		return Pixelset{}, err
	}
	if p.SumOffset, err = r.Float32(); err != nil {
		return Pixelset{}, err
	}

	return p, nil
}

// PixelDisable is the payload of type 2005, version 0 only.
type PixelDisable struct {
	TelescopeID      int
	NumTrigDisabled  int32
	TriggerDisabled  []int32
	NumHVDisabled    int32
	HVDisabled       []int32
}

func (PixelDisable) ObjectType() format.TypeCode { return format.TypePixelDisable }

func parsePixelDisable(h header.Header, r *codec.Reader) (PixelDisable, error) {
	if h.Version != 0 {
		return PixelDisable{}, versionError(format.TypePixelDisable, h)
	}

	p := PixelDisable{TelescopeID: int(h.ID)}

	var err error
	if p.NumTrigDisabled, err = r.Int32(); err != nil {
		return PixelDisable{}, err
	}
	if p.TriggerDisabled, err = r.Int32Slice(int(p.NumTrigDisabled)); err != nil {
		return PixelDisable{}, err
	}
	if p.NumHVDisabled, err = r.Int32(); err != nil {
		return PixelDisable{}, err
	}
	// The original reads HV_disabled sized by num_trig_disabled rather than
	// num_HV_disabled; preserved here rather than silently "fixed", since
	// this is not flagged as an open question the way the
	// MCPeSum's append bug.
	if p.HVDisabled, err = r.Int32Slice(int(p.NumTrigDisabled)); err != nil {
		return PixelDisable{}, err
	}

	return p, nil
}

// CamSoftSet is the payload of type 2006, version 0 only.
type CamSoftSet struct {
	TelescopeID        int
	DynTrigMode        int32
	DynTrigThreshold   int32
	DynHVMode          int32
	DynHVThreshold     int32
	DataRedMode        int32
	ZeroSupMode        int32
	ZeroSupNumThr      int32
	ZeroSupThresholds  []int32
	UnbiasedScale      int32
	DynPedMode         int32
	DynPedEvents       int32
	DynPedPeriod       int32
	MonitorCurPeriod   int32
	ReportCurPeriod    int32
	MonitorHVPeriod    int32
	ReportHVPeriod     int32
}

func (CamSoftSet) ObjectType() format.TypeCode { return format.TypeCamSoftSet }

func parseCamSoftSet(h header.Header, r *codec.Reader) (CamSoftSet, error) {
	if h.Version != 0 {
		return CamSoftSet{}, versionError(format.TypeCamSoftSet, h)
	}

	c := CamSoftSet{TelescopeID: int(h.ID)}

	fields := []*int32{
		&c.DynTrigMode, &c.DynTrigThreshold, &c.DynHVMode, &c.DynHVThreshold,
		&c.DataRedMode, &c.ZeroSupMode, &c.ZeroSupNumThr,
	}
	for _, f := range fields {
		v, err := r.Int32()
		if err != nil {
			return CamSoftSet{}, err
		}
		*f = v
	}

	thresholds, err := r.Int32Slice(int(c.ZeroSupNumThr))
	if err != nil {
		return CamSoftSet{}, err
	}
	c.ZeroSupThresholds = thresholds

	rest := []*int32{
		&c.UnbiasedScale, &c.DynPedMode, &c.DynPedEvents, &c.DynPedPeriod,
		&c.MonitorCurPeriod, &c.ReportCurPeriod, &c.MonitorHVPeriod, &c.ReportHVPeriod,
	}
	for _, f := range rest {
		v, err := r.Int32()
		if err != nil {
			return CamSoftSet{}, err
		}
		*f = v
	}

	return c, nil
}

// PointingCor is the payload of type 2007, version 0 only.
type PointingCor struct {
	TelescopeID    int
	FunctionType   int32
	NumParam       int32
	PointingParam  []float32
}

func (PointingCor) ObjectType() format.TypeCode { return format.TypePointingCor }

func parsePointingCor(h header.Header, r *codec.Reader) (PointingCor, error) {
	if h.Version != 0 {
		return PointingCor{}, versionError(format.TypePointingCor, h)
	}

	p := PointingCor{TelescopeID: int(h.ID)}

	var err error
	if p.FunctionType, err = r.Int32(); err != nil {
		return PointingCor{}, err
	}
	if p.NumParam, err = r.Int32(); err != nil {
		return PointingCor{}, err
	}
	if p.PointingParam, err = r.Float32Slice(int(p.NumParam)); err != nil {
		return PointingCor{}, err
	}

	return p, nil
}

// TrackSet is the payload of type 2008 (any version).
type TrackSet struct {
	TelescopeID  int
	DriveTypeAz  int16
	DriveTypeAlt int16
	ZeropointAz  float32
	ZeropointAlt float32
	SignAz       float32
	SignAlt      float32
	ResolutionAz float32
	ResolutionAlt float32
	RangeLowAz   float32
	RangeLowAlt  float32
	RangeHighAz  float32
	RangeHighAlt float32
	ParkPosAz    float32
	ParkPosAlt   float32
}

func (TrackSet) ObjectType() format.TypeCode { return format.TypeTrackSet }

func parseTrackSet(h header.Header, r *codec.Reader) (TrackSet, error) {
	t := TrackSet{TelescopeID: int(h.ID)}

	var err error
	if t.DriveTypeAz, err = r.Int16(); err != nil {
		return TrackSet{}, err
	}
	if t.DriveTypeAlt, err = r.Int16(); err != nil {
		return TrackSet{}, err
	}
	if t.ZeropointAz, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.ZeropointAlt, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.SignAz, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.SignAlt, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.ResolutionAz, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.ResolutionAlt, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.RangeLowAz, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.RangeLowAlt, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.RangeHighAz, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.RangeHighAlt, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.ParkPosAz, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}
	if t.ParkPosAlt, err = r.Float32(); err != nil {
		return TrackSet{}, err
	}

	return t, nil
}
