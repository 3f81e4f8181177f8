package cwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCRangeRoundTrip(t *testing.T) {
	want := Range[int64]{Start: 42, End: 64}

	var r CRange[int64]
	require.NoError(t, r.FromOwned(want))
	require.EqualValues(t, 42, r.Start)
	require.EqualValues(t, 64, r.End)

	got, err := r.ToOwned()
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, r.Release())
}

func TestCRangeFloat(t *testing.T) {
	var r CRange[float32]
	require.NoError(t, r.FromOwned(Range[float32]{Start: 0.5, End: 1.5}))

	got, err := r.ToOwned()
	require.NoError(t, err)
	require.Equal(t, Range[float32]{Start: 0.5, End: 1.5}, got)
}

func TestCBool(t *testing.T) {
	require.EqualValues(t, 1, CBoolOf(true))
	require.EqualValues(t, 0, CBoolOf(false))
	require.True(t, CBool(1).Bool())
	require.True(t, CBool(255).Bool())
	require.False(t, CBool(0).Bool())
}
