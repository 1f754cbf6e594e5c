// Package registry implements type-code dispatch: a direct
// table for fixed codes plus the telescope-ID-encoded range math for the
// 2100+ (TrackEvent) and 2200+ (TelEvent) families. It normalizes a raw
// header type code into an abstract Kind and, for the encoded ranges, the
// telescope ID carried by the type code itself.
package registry

import "github.com/go-iact/eventio/format"

const (
	trackEventBase = 2100
	telEventBase   = 2200
)

// Resolved is the outcome of normalizing a header's type code.
type Resolved struct {
	Kind        format.Kind
	Type        format.TypeCode
	TelescopeID int
	// Opaque is true for fixed codes documented as header-only.
	Opaque bool
}

// TypeToTelID applies the forward mapping: the telescope ID
// encoded by a type code in the family of blocks base..base+99,
// base+1000..base+1099, and so on.
func TypeToTelID(t uint32, base uint32) int {
	d := t - base
	return int(d%1000 + 100*(d/1000))
}

// TelIDToType applies the inverse mapping: the type code that
// encodes telescope id within the given family base.
func TelIDToType(id int, base uint32) uint32 {
	return base + uint32(id%100) + 1000*uint32(id/100) //nolint:gosec
}

// inRange reports whether t is a telescope-encoded code of the given base:
// one of the blocks [base, base+99], [base+1000, base+1099], etc., decoding
// to a telescope ID in [0, 9999].
func inRange(t, base uint32) bool {
	if t < base {
		return false
	}

	telid := TypeToTelID(t, base)

	return telid >= 0 && telid <= 9999 && TelIDToType(telid, base) == t
}

// Resolve normalizes a raw header type code into a Resolved dispatch
// target. Fixed codes are looked up directly; anything else is checked
// against the TrackEvent and TelEvent telescope-ID-encoded ranges in turn.
// A type matching neither yields KindUnknown so the caller can still treat
// the object as opaque raw bytes.
func Resolve(t uint32) Resolved {
	tc := format.TypeCode(t)
	if _, ok := fixedNames[tc]; ok {
		return Resolved{Kind: format.KindFixed, Type: tc, Opaque: format.OpaqueTypes[tc]}
	}

	if inRange(t, trackEventBase) {
		return Resolved{Kind: format.KindTrackEvent, Type: tc, TelescopeID: TypeToTelID(t, trackEventBase)}
	}

	if inRange(t, telEventBase) {
		return Resolved{Kind: format.KindTelEvent, Type: tc, TelescopeID: TypeToTelID(t, telEventBase)}
	}

	return Resolved{Kind: format.KindUnknown, Type: tc, Opaque: true}
}

// fixedNames is the direct table of fixed type codes
// enumerates; presence in this map, not any particular value, is what
// Resolve tests.
var fixedNames = map[format.TypeCode]struct{}{
	format.TypeHistory:        {},
	format.TypeHistoryCommand: {},
	format.TypeHistoryConfig:  {},
	format.TypeRunHeader:      {},
	format.TypeMCRunHeader:    {},
	format.TypeCamSettings:    {},
	format.TypeCamOrgan:       {},
	format.TypePixelset:       {},
	format.TypePixelDisable:   {},
	format.TypeCamSoftSet:     {},
	format.TypePointingCor:    {},
	format.TypeTrackSet:       {},
	format.TypeCentralEvent:   {},
	format.TypeEvent:          {},
	format.TypeTelEventHeader: {},
	format.TypeTelADCSum:      {},
	format.TypeTelADCSamp:     {},
	format.TypeTelImage:       {},
	format.TypeShower:         {},
	format.TypePixelTiming:    {},
	format.TypePixelCalib:     {},
	format.TypeMCShower:       {},
	format.TypeMCEvent:        {},
	format.TypeTelMoni:        {},
	format.TypeLasCal:         {},
	format.TypeRunStat:        {},
	format.TypeMCRunStat:      {},
	format.TypeMCPeSum:        {},
	format.TypePixelList:      {},
	format.TypeCalibEvent:     {},
}

// TelescopeIDFromID recovers a telescope ID packed into a header id word,
// telescope_id = (id & 0xff) | ((id & 0x3f000000) >> 16).
func TelescopeIDFromID(id uint32) int {
	return int((id & 0xff) | ((id & 0x3f000000) >> 16))
}
