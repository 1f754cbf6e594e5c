package objects

import (
	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
	"github.com/go-iact/eventio/registry"
)

// TelMoni is the payload of type 2022, version 0 only. What is a bitmask
// read out of the header id; each of bits 0-6 that is set triggers one of
// seven sub-parsers, applied in ascending bit order, and bit 7 has no
// sub-parser and is ignored. The dimension fields read from the payload
// are named ns/np/nd/ng in the original source (np collides with
// numpy's common alias there; this module spells them out instead).
type TelMoni struct {
	TelescopeID int
	What        uint32
	Known       int16
	NewParts    int16
	MonitorID   int32
	MoniTime    codec.Timestamp

	NumSectors int16
	NumPixels  int16
	NumDrawers int16
	NumGains   int16

	StatusTime  *codec.Timestamp
	StatusBits  int32

	TrigTime        *codec.Timestamp
	CoincCount      int32
	EventCount      int32
	TriggerRate     float32
	SectorRate      []float32
	EventRate       float32
	DataRate        float32
	MeanSignificant float32

	PedNoiseTime *codec.Timestamp
	NumPedSlices int16
	Pedestal     [][]float32
	Noise        [][]float32

	HVTempTime     *codec.Timestamp
	NumDrawerTemp  int16
	NumCameraTemp  int16
	HVVMon         []int16
	HVIMon         []int16
	HVStat         []uint8
	DrawerTemp     [][]int16
	CameraTemp     []int16

	DCRateTime *codec.Timestamp
	Current    []uint16
	Scaler     []uint16

	HVThrTime *codec.Timestamp
	HVDac     []uint16
	ThreshDac []uint16
	HVSet     []uint8
	TrigSet   []uint8

	SetDaqTime   *codec.Timestamp
	DaqConf      uint16
	DaqScalerWin uint16
	DaqND        uint16
	DaqAcc       uint16
	DaqNL        uint16
}

func (TelMoni) ObjectType() format.TypeCode { return format.TypeTelMoni }

func parseTelMoni(h header.Header, r *codec.Reader) (TelMoni, error) {
	if h.Version != 0 {
		return TelMoni{}, versionError(format.TypeTelMoni, h)
	}

	m := TelMoni{
		TelescopeID: registry.TelescopeIDFromID(h.ID),
		What:        (h.ID & 0xffff00) >> 8,
	}

	var err error
	if m.Known, err = r.Int16(); err != nil {
		return TelMoni{}, err
	}
	if m.NewParts, err = r.Int16(); err != nil {
		return TelMoni{}, err
	}
	if m.MonitorID, err = r.Int32(); err != nil {
		return TelMoni{}, err
	}
	if m.MoniTime, err = r.Timestamp(); err != nil {
		return TelMoni{}, err
	}

	if m.NumSectors, err = r.Int16(); err != nil {
		return TelMoni{}, err
	}
	if m.NumPixels, err = r.Int16(); err != nil {
		return TelMoni{}, err
	}
	if m.NumDrawers, err = r.Int16(); err != nil {
		return TelMoni{}, err
	}
	if m.NumGains, err = r.Int16(); err != nil {
		return TelMoni{}, err
	}

	for bit := 0; bit < 8; bit++ {
		if m.What&(1<<uint(bit)) == 0 {
			continue
		}

		if err := m.applyPart(bit, r); err != nil {
			return TelMoni{}, err
		}
	}

	return m, nil
}

func (m *TelMoni) applyPart(bit int, r *codec.Reader) error {
	switch bit {
	case 0:
		return m.parseStatus(r)
	case 1:
		return m.parseCountsAndRates(r)
	case 2:
		return m.parsePedestalAndNoise(r)
	case 3:
		return m.parseHVAndTemp(r)
	case 4:
		return m.parsePixelScalers(r)
	case 5:
		return m.parseHVThresholds(r)
	case 6:
		return m.parseDAQConfig(r)
	default:
		return nil
	}
}

func (m *TelMoni) parseStatus(r *codec.Reader) error {
	ts, err := r.Timestamp()
	if err != nil {
		return err
	}
	m.StatusTime = &ts

	if m.StatusBits, err = r.Int32(); err != nil {
		return err
	}

	return nil
}

func (m *TelMoni) parseCountsAndRates(r *codec.Reader) error {
	ts, err := r.Timestamp()
	if err != nil {
		return err
	}
	m.TrigTime = &ts

	if m.CoincCount, err = r.Int32(); err != nil {
		return err
	}
	if m.EventCount, err = r.Int32(); err != nil {
		return err
	}
	if m.TriggerRate, err = r.Float32(); err != nil {
		return err
	}
	if m.SectorRate, err = r.Float32Slice(int(m.NumSectors)); err != nil {
		return err
	}
	if m.EventRate, err = r.Float32(); err != nil {
		return err
	}
	if m.DataRate, err = r.Float32(); err != nil {
		return err
	}
	if m.MeanSignificant, err = r.Float32(); err != nil {
		return err
	}

	return nil
}

func reshapeFloat32(flat []float32, rows, cols int) [][]float32 {
	out := make([][]float32, rows)
	for i := 0; i < rows; i++ {
		out[i] = flat[i*cols : (i+1)*cols]
	}

	return out
}

func (m *TelMoni) parsePedestalAndNoise(r *codec.Reader) error {
	ts, err := r.Timestamp()
	if err != nil {
		return err
	}
	m.PedNoiseTime = &ts

	if m.NumPedSlices, err = r.Int16(); err != nil {
		return err
	}

	pedFlat, err := r.Float32Slice(int(m.NumGains) * int(m.NumPixels))
	if err != nil {
		return err
	}
	m.Pedestal = reshapeFloat32(pedFlat, int(m.NumGains), int(m.NumPixels))

	noiseFlat, err := r.Float32Slice(int(m.NumGains) * int(m.NumPixels))
	if err != nil {
		return err
	}
	m.Noise = reshapeFloat32(noiseFlat, int(m.NumGains), int(m.NumPixels))

	return nil
}

func (m *TelMoni) parseHVAndTemp(r *codec.Reader) error {
	ts, err := r.Timestamp()
	if err != nil {
		return err
	}
	m.HVTempTime = &ts

	if m.NumDrawerTemp, err = r.Int16(); err != nil {
		return err
	}
	if m.NumCameraTemp, err = r.Int16(); err != nil {
		return err
	}
	if m.HVVMon, err = r.Int16Slice(int(m.NumPixels)); err != nil {
		return err
	}
	if m.HVIMon, err = r.Int16Slice(int(m.NumPixels)); err != nil {
		return err
	}
	if m.HVStat, err = r.Uint8Slice(int(m.NumPixels)); err != nil {
		return err
	}

	drawerFlat, err := r.Int16Slice(int(m.NumDrawers) * int(m.NumDrawerTemp))
	if err != nil {
		return err
	}
	m.DrawerTemp = reshapeInt16(drawerFlat, int(m.NumDrawers), int(m.NumDrawerTemp))

	if m.CameraTemp, err = r.Int16Slice(int(m.NumCameraTemp)); err != nil {
		return err
	}

	return nil
}

func (m *TelMoni) parsePixelScalers(r *codec.Reader) error {
	ts, err := r.Timestamp()
	if err != nil {
		return err
	}
	m.DCRateTime = &ts

	if m.Current, err = r.Uint16Slice(int(m.NumPixels)); err != nil {
		return err
	}
	if m.Scaler, err = r.Uint16Slice(int(m.NumPixels)); err != nil {
		return err
	}

	return nil
}

func (m *TelMoni) parseHVThresholds(r *codec.Reader) error {
	ts, err := r.Timestamp()
	if err != nil {
		return err
	}
	m.HVThrTime = &ts

	if m.HVDac, err = r.Uint16Slice(int(m.NumPixels)); err != nil {
		return err
	}
	if m.ThreshDac, err = r.Uint16Slice(int(m.NumDrawers)); err != nil {
		return err
	}
	if m.HVSet, err = r.Uint8Slice(int(m.NumPixels)); err != nil {
		return err
	}
	if m.TrigSet, err = r.Uint8Slice(int(m.NumPixels)); err != nil {
		return err
	}

	return nil
}

func (m *TelMoni) parseDAQConfig(r *codec.Reader) error {
	ts, err := r.Timestamp()
	if err != nil {
		return err
	}
	m.SetDaqTime = &ts

	var err2 error
	if m.DaqConf, err2 = r.Uint16(); err2 != nil {
		return err2
	}
	if m.DaqScalerWin, err2 = r.Uint16(); err2 != nil {
		return err2
	}
	if m.DaqND, err2 = r.Uint16(); err2 != nil {
		return err2
	}
	if m.DaqAcc, err2 = r.Uint16(); err2 != nil {
		return err2
	}
	if m.DaqNL, err2 = r.Uint16(); err2 != nil {
		return err2
	}

	return nil
}
