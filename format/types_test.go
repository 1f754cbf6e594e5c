package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeCodeString(t *testing.T) {
	require.Equal(t, "RunHeader", TypeRunHeader.String())
	require.Equal(t, "TelADCSamp", TypeTelADCSamp.String())
	require.Equal(t, "Unknown", TypeCode(9999).String())
}

func TestOpaqueTypes(t *testing.T) {
	require.True(t, OpaqueTypes[TypeEvent])
	require.True(t, OpaqueTypes[TypeCalibEvent])
	require.False(t, OpaqueTypes[TypeRunHeader])
}

func TestKindString(t *testing.T) {
	require.Equal(t, "TrackEvent", KindTrackEvent.String())
	require.Equal(t, "TelEvent", KindTelEvent.String())
	require.Equal(t, "Fixed", KindFixed.String())
	require.Equal(t, "Unknown", KindUnknown.String())
}
