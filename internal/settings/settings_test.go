package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_NoConfigIsZeroValue(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := Load()
	require.NoError(t, err)
	require.Equal(t, Settings{}, s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Settings{
		DatasetPath:  "data/verses.csv",
		CurrentTheme: "dracula",
		ShowLabels:   true,
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
