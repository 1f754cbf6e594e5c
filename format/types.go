// Package format defines the EventIO object type codes and the small enum
// types used to classify them: tiny, dependency-free value types with a
// String() method, shared by every other package in this module.
package format

// TypeCode is the numeric object type code carried in an EventIO object
// header's type_word. Values in the blocks 2100-2199, 3100-3199, ... and
// 2200-2299, 3200-3299, ... additionally encode a telescope ID; see the
// registry package for that decomposition.
type TypeCode uint32

// Fixed type codes with no telescope-ID encoding. These never carry an
// encoded telescope ID.
const (
	TypeHistory        TypeCode = 70
	TypeHistoryCommand TypeCode = 71
	TypeHistoryConfig  TypeCode = 72
	TypeRunHeader      TypeCode = 2000
	TypeMCRunHeader    TypeCode = 2001
	TypeCamSettings    TypeCode = 2002
	TypeCamOrgan       TypeCode = 2003
	TypePixelset       TypeCode = 2004
	TypePixelDisable   TypeCode = 2005
	TypeCamSoftSet     TypeCode = 2006
	TypePointingCor    TypeCode = 2007
	TypeTrackSet       TypeCode = 2008
	TypeCentralEvent   TypeCode = 2009
	TypeEvent          TypeCode = 2010 // opaque
	TypeTelEventHeader TypeCode = 2011
	TypeTelADCSum      TypeCode = 2012 // opaque
	TypeTelADCSamp     TypeCode = 2013
	TypeTelImage       TypeCode = 2014
	TypeShower         TypeCode = 2015
	TypePixelTiming    TypeCode = 2016 // opaque
	TypePixelCalib     TypeCode = 2017 // opaque
	TypeMCShower       TypeCode = 2020 // opaque
	TypeMCEvent        TypeCode = 2021
	TypeTelMoni        TypeCode = 2022
	TypeLasCal         TypeCode = 2023
	TypeRunStat        TypeCode = 2024 // opaque
	TypeMCRunStat      TypeCode = 2025 // opaque
	TypeMCPeSum        TypeCode = 2026
	TypePixelList      TypeCode = 2027
	TypeCalibEvent     TypeCode = 2028 // opaque
)

// OpaqueTypes lists the fixed type codes documented as
// "opaque": recognized by the registry, but with no payload parser. They
// surface with header only; the payload is exposed as raw bytes. This
// matches the original Python implementation, where these classes have no
// parse_data_field override either.
var OpaqueTypes = map[TypeCode]bool{
	TypeEvent:       true,
	TypeTelADCSum:   true,
	TypePixelTiming: true,
	TypePixelCalib:  true,
	TypeMCShower:    true,
	TypeRunStat:     true,
	TypeMCRunStat:   true,
	TypeCalibEvent:  true,
}

// Kind identifies the abstract object kind after telescope-ID normalization.
// TrackEvent and TelEvent never appear as a fixed TypeCode; they're only
// reached by decoding the 2100+/2200+ ranges through the registry package.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindFixed
	KindTrackEvent
	KindTelEvent
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "Fixed"
	case KindTrackEvent:
		return "TrackEvent"
	case KindTelEvent:
		return "TelEvent"
	default:
		return "Unknown"
	}
}

func (t TypeCode) String() string {
	switch t {
	case TypeHistory:
		return "History"
	case TypeHistoryCommand:
		return "HistoryCommandLine"
	case TypeHistoryConfig:
		return "HistoryConfig"
	case TypeRunHeader:
		return "RunHeader"
	case TypeMCRunHeader:
		return "MCRunHeader"
	case TypeCamSettings:
		return "CamSettings"
	case TypeCamOrgan:
		return "CamOrgan"
	case TypePixelset:
		return "Pixelset"
	case TypePixelDisable:
		return "PixelDisable"
	case TypeCamSoftSet:
		return "CamSoftSet"
	case TypePointingCor:
		return "PointingCor"
	case TypeTrackSet:
		return "TrackSet"
	case TypeCentralEvent:
		return "CentralEvent"
	case TypeEvent:
		return "Event"
	case TypeTelEventHeader:
		return "TelEventHeader"
	case TypeTelADCSum:
		return "TelADCSum"
	case TypeTelADCSamp:
		return "TelADCSamp"
	case TypeTelImage:
		return "TelImage"
	case TypeShower:
		return "Shower"
	case TypePixelTiming:
		return "PixelTiming"
	case TypePixelCalib:
		return "PixelCalib"
	case TypeMCShower:
		return "MCShower"
	case TypeMCEvent:
		return "MCEvent"
	case TypeTelMoni:
		return "TelMoni"
	case TypeLasCal:
		return "LasCal"
	case TypeRunStat:
		return "RunStat"
	case TypeMCRunStat:
		return "MCRunStat"
	case TypeMCPeSum:
		return "MCPeSum"
	case TypePixelList:
		return "PixelList"
	case TypeCalibEvent:
		return "CalibEvent"
	default:
		return "Unknown"
	}
}
