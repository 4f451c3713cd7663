package room

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasureFullAndEmpty(t *testing.T) {
	full, _, err := Initialize(3, PatternFull)
	require.NoError(t, err)
	got := Measure(full)
	require.Equal(t, Fitness{
		Monotone: true, Filling: 1,
		XFull: 9, XEmpty: 0,
		YFull: 9, YEmpty: 0,
		ZFull: 9, ZEmpty: 0,
	}, got)

	empty, _, err := Initialize(3, PatternEmpty)
	require.NoError(t, err)
	got = Measure(empty)
	require.Equal(t, Fitness{
		Monotone: true, Filling: 0,
		XFull: 0, XEmpty: 9,
		YFull: 0, YEmpty: 9,
		ZFull: 0, ZEmpty: 9,
	}, got)
}

func TestMeasureStaircase(t *testing.T) {
	f, _, err := Poles(4, 4, 0)
	require.NoError(t, err)
	got := Measure(f)
	require.True(t, got.Monotone)
	require.InDelta(t, 20.0/64.0, got.Filling, 1e-12)
	require.Equal(t, 1, got.XFull)
	require.Equal(t, 16-10, got.XEmpty)
	require.Equal(t, 1, got.YFull)
	require.Equal(t, 16-10, got.YEmpty)
	require.Equal(t, 1, got.ZFull)
	require.Equal(t, 6, got.ZEmpty)
	require.Contains(t, got.String(), "Monotony: true")
}

func TestMeasureFlagsNonMonotone(t *testing.T) {
	f := fieldFromRows(t, [][]int{{0, 1}, {0, 0}})
	require.False(t, Measure(f).Monotone)
}
