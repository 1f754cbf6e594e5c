package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-iact/eventio/format"
)

func TestResolveFixedCode(t *testing.T) {
	r := Resolve(uint32(format.TypeCamSettings))
	require.Equal(t, format.KindFixed, r.Kind)
	require.False(t, r.Opaque)

	r = Resolve(uint32(format.TypeEvent))
	require.True(t, r.Opaque)
}

func TestResolveTrackEvent(t *testing.T) {
	r := Resolve(2101)
	require.Equal(t, format.KindTrackEvent, r.Kind)
	require.Equal(t, 1, r.TelescopeID)
}

func TestResolveTelEvent(t *testing.T) {
	r := Resolve(2205)
	require.Equal(t, format.KindTelEvent, r.Kind)
	require.Equal(t, 5, r.TelescopeID)
}

func TestResolveUnknown(t *testing.T) {
	r := Resolve(999999)
	require.Equal(t, format.KindUnknown, r.Kind)
	require.True(t, r.Opaque)
}

func TestTelIDRoundTrip(t *testing.T) {
	for _, base := range []uint32{trackEventBase, telEventBase} {
		for telid := 0; telid <= 9999; telid += 37 {
			tp := TelIDToType(telid, base)
			got := TypeToTelID(tp, base)
			require.Equal(t, telid, got, "base=%d telid=%d", base, telid)
		}
	}
}

func TestTelescopeIDFromID(t *testing.T) {
	// low byte 1, high nibble bits set at 0x3f000000 contributes telescope
	// id bits shifted down by 16.
	id := uint32(0x00000001) | uint32(0x01000000)
	got := TelescopeIDFromID(id)
	require.Equal(t, 0x101, got)
}
