package sites

import (
	"testing"

	"ayat-atlas/internal/api"

	"github.com/stretchr/testify/require"
)

func TestForTag(t *testing.T) {
	mecca := ForTag(api.TagMeccan)
	require.Equal(t, "Mecca", mecca.Name)
	require.Equal(t, 21.4225, mecca.Point.Lat)
	require.Equal(t, 39.8262, mecca.Point.Lon)

	medina := ForTag(api.TagMedinan)
	require.Equal(t, "Medina", medina.Name)
	require.Equal(t, 24.5247, medina.Point.Lat)
	require.Equal(t, 39.5692, medina.Point.Lon)
}
