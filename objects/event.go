package objects

import (
	"fmt"

	"github.com/go-iact/eventio/codec"
	"github.com/go-iact/eventio/errs"
	"github.com/go-iact/eventio/format"
	"github.com/go-iact/eventio/header"
	"github.com/go-iact/eventio/registry"
)

// CentralEvent is the payload of type 2009, versions 0-2.
type CentralEvent struct {
	GlobalCount         uint32
	CPUTime             codec.Timestamp
	GPSTime             codec.Timestamp
	TriggerPattern      int32
	DataPattern         int32
	TriggeredTelescopes []int16
	TriggerTimes        []float32
	TelescopesWithData  []int16
	TeltrgTypeMask      []uint8
	TeltrgTimeByType    map[int16]map[int]float32
}

func (CentralEvent) ObjectType() format.TypeCode { return format.TypeCentralEvent }

func parseCentralEvent(h header.Header, r *codec.Reader) (CentralEvent, error) {
	if h.Version > 2 {
		return CentralEvent{}, versionError(format.TypeCentralEvent, h)
	}

	e := CentralEvent{GlobalCount: h.ID}

	var err error
	if e.CPUTime, err = r.Timestamp(); err != nil {
		return CentralEvent{}, err
	}
	if e.GPSTime, err = r.Timestamp(); err != nil {
		return CentralEvent{}, err
	}
	if e.TriggerPattern, err = r.Int32(); err != nil {
		return CentralEvent{}, err
	}
	if e.DataPattern, err = r.Int32(); err != nil {
		return CentralEvent{}, err
	}

	if h.Version < 1 {
		return e, nil
	}

	telsTrigger, err := r.Int16()
	if err != nil {
		return CentralEvent{}, err
	}
	if e.TriggeredTelescopes, err = r.Int16Slice(int(telsTrigger)); err != nil {
		return CentralEvent{}, err
	}
	if e.TriggerTimes, err = r.Float32Slice(int(telsTrigger)); err != nil {
		return CentralEvent{}, err
	}

	telsData, err := r.Int16()
	if err != nil {
		return CentralEvent{}, err
	}
	if e.TelescopesWithData, err = r.Int16Slice(int(telsData)); err != nil {
		return CentralEvent{}, err
	}

	if h.Version < 2 {
		return e, nil
	}

	mask, err := r.Uint8Slice(int(telsTrigger))
	if err != nil {
		return CentralEvent{}, err
	}
	for _, m := range mask {
		if m >= 128 {
			return CentralEvent{}, fmt.Errorf("%w: teltrg_type_mask byte %d", errs.ErrCorruptEncoding, m)
		}
	}
	e.TeltrgTypeMask = mask

	e.TeltrgTimeByType = make(map[int16]map[int]float32)
	for i, telID := range e.TriggeredTelescopes {
		m := mask[i]
		if m == 0b001 || m == 0b010 || m == 0b100 {
			continue
		}

		times := make(map[int]float32)
		for bit := 0; bit < 3; bit++ {
			if m&(1<<uint(bit)) == 0 {
				continue
			}

			t, err := r.Float32()
			if err != nil {
				return CentralEvent{}, err
			}

			times[bit] = t
		}

		e.TeltrgTimeByType[telID] = times
	}

	return e, nil
}

// TrackEvent is the payload of the telescope-ID-encoded 2100+ type range.
type TrackEvent struct {
	Type        format.TypeCode
	TelescopeID int
	HasRaw      bool
	HasCor      bool
	AzimuthRaw  float32
	AltitudeRaw float32
	AzimuthCor  float32
	AltitudeCor float32
}

func (t TrackEvent) ObjectType() format.TypeCode { return t.Type }

func parseTrackEvent(h header.Header, r *codec.Reader) (TrackEvent, error) {
	telFromType := registry.TypeToTelID(h.Type, 2100)
	telFromID := telescopeIDFromHeader(h.ID)

	if telFromType != telFromID {
		return TrackEvent{}, fmt.Errorf("%w: type=%d id=%d", errs.ErrTelescopeIDMismatch, telFromType, telFromID)
	}

	e := TrackEvent{
		Type:        format.TypeCode(h.Type),
		TelescopeID: telFromType,
		HasRaw:      h.ID&0x100 != 0,
		HasCor:      h.ID&0x200 != 0,
	}

	var err error
	if e.HasRaw {
		if e.AzimuthRaw, err = r.Float32(); err != nil {
			return TrackEvent{}, err
		}
		if e.AltitudeRaw, err = r.Float32(); err != nil {
			return TrackEvent{}, err
		}
	}
	if e.HasCor {
		if e.AzimuthCor, err = r.Float32(); err != nil {
			return TrackEvent{}, err
		}
		if e.AltitudeCor, err = r.Float32(); err != nil {
			return TrackEvent{}, err
		}
	}

	return e, nil
}

// TelEvent is the payload of the telescope-ID-encoded 2200+ type range.
// The original carries no data-field parser of its own (its children, not
// enumerated as fixed types, carry the actual event data); this surfaces
// the same header-derived identity with the remaining bytes left raw.
type TelEvent struct {
	Type        format.TypeCode
	TelescopeID int
	GlobalCount uint32
	Data        []byte
}

func (t TelEvent) ObjectType() format.TypeCode { return t.Type }

func parseTelEvent(h header.Header, r *codec.Reader) (TelEvent, error) {
	data, err := r.Bytes(int(r.Remaining()))
	if err != nil {
		return TelEvent{}, err
	}

	return TelEvent{
		Type:        format.TypeCode(h.Type),
		TelescopeID: registry.TypeToTelID(h.Type, 2200),
		GlobalCount: h.ID,
		Data:        data,
	}, nil
}

// TelEventHeader is the payload of type 2011.
type TelEventHeader struct {
	TelescopeID    int
	LocCount       int32
	GlobCount      int32
	CPUTime        codec.Timestamp
	GPSTime        codec.Timestamp
	TrgSource      uint8
	ListTrgsect    []int64
	TimeTrgsect    []float32
	PhysAddr       []int64
}

func (TelEventHeader) ObjectType() format.TypeCode { return format.TypeTelEventHeader }

func parseTelEventHeader(h header.Header, r *codec.Reader) (TelEventHeader, error) {
	e := TelEventHeader{TelescopeID: int(h.ID)}

	var err error
	if e.LocCount, err = r.Int32(); err != nil {
		return TelEventHeader{}, err
	}
	if e.GlobCount, err = r.Int32(); err != nil {
		return TelEventHeader{}, err
	}
	if e.CPUTime, err = r.Timestamp(); err != nil {
		return TelEventHeader{}, err
	}
	if e.GPSTime, err = r.Timestamp(); err != nil {
		return TelEventHeader{}, err
	}

	t, err := r.Int16()
	if err != nil {
		return TelEventHeader{}, err
	}
	e.TrgSource = uint8(t & 0xff) //nolint:gosec

	var numListTrgsect int

	if t&0x100 != 0 {
		if h.Version <= 1 {
			n, err := r.Int16()
			if err != nil {
				return TelEventHeader{}, err
			}
			numListTrgsect = int(n)

			list, err := r.Int16Slice(numListTrgsect)
			if err != nil {
				return TelEventHeader{}, err
			}
			e.ListTrgsect = widenInt16(list)
		} else {
			n, err := r.SCount()
			if err != nil {
				return TelEventHeader{}, err
			}
			numListTrgsect = int(n)

			e.ListTrgsect = make([]int64, numListTrgsect)
			for i := range e.ListTrgsect {
				v, err := r.SCount()
				if err != nil {
					return TelEventHeader{}, err
				}
				e.ListTrgsect[i] = v
			}
		}

		if h.Version >= 1 && t&0x400 != 0 {
			if e.TimeTrgsect, err = r.Float32Slice(numListTrgsect); err != nil {
				return TelEventHeader{}, err
			}
		}
	}

	if t&0x200 != 0 {
		var numPhysAddr int

		if h.Version <= 1 {
			n, err := r.Int16()
			if err != nil {
				return TelEventHeader{}, err
			}
			numPhysAddr = int(n)

			list, err := r.Int16Slice(numPhysAddr)
			if err != nil {
				return TelEventHeader{}, err
			}
			e.PhysAddr = widenInt16(list)
		} else {
			n, err := r.SCount()
			if err != nil {
				return TelEventHeader{}, err
			}
			numPhysAddr = int(n)

			e.PhysAddr = make([]int64, numPhysAddr)
			for i := range e.PhysAddr {
				v, err := r.SCount()
				if err != nil {
					return TelEventHeader{}, err
				}
				e.PhysAddr[i] = v
			}
		}
	}

	return e, nil
}

func widenInt16(in []int16) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}

	return out
}
