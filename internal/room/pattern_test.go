package room

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	for _, p := range Patterns() {
		got, err := ParsePattern(string(p))
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	_, err := ParsePattern("half_full")
	require.ErrorIs(t, err, ErrUnknownPattern)
	require.Len(t, Patterns(), 6)
}

func TestInitializeUnknownPatternReturnsNothing(t *testing.T) {
	f, e, err := Initialize(4, Pattern("spiral"))
	require.ErrorIs(t, err, ErrUnknownPattern)
	require.Nil(t, f)
	require.Nil(t, e)

	f, e, err = Initialize(0, PatternEmpty)
	require.ErrorIs(t, err, ErrInvalidSize)
	require.Nil(t, f)
	require.Nil(t, e)
}

func TestInitializeMapsMatchOracle(t *testing.T) {
	for _, p := range Patterns() {
		for n := 1; n <= 9; n++ {
			f, e, err := Initialize(n, p)
			require.NoError(t, err)
			require.True(t, f.Monotone(), "%s n=%d monotone", p, n)
			require.True(t, f.InRange(), "%s n=%d in range", p, n)
			assertMapsMatchOracle(t, f, e, fmt.Sprintf("%s n=%d", p, n))
		}
	}
}

func TestInitializeEmptyN2(t *testing.T) {
	f, e, err := Initialize(2, PatternEmpty)
	require.NoError(t, err)
	if diff := cmp.Diff([][]int{{0, 0}, {0, 0}}, f.Rows()); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]bool{{true, false}, {false, false}}, e.AddableGrid().Rows()); diff != "" {
		t.Fatalf("addable mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]bool{{false, false}, {false, false}}, e.RemovableGrid().Rows()); diff != "" {
		t.Fatalf("removable mismatch (-want +got):\n%s", diff)
	}
}

func TestInitializeFullN2(t *testing.T) {
	for _, p := range []Pattern{PatternFull, PatternRandomHalf} {
		f, e, err := Initialize(2, p)
		require.NoError(t, err)
		require.Equal(t, [][]int{{2, 2}, {2, 2}}, f.Rows())
		require.Equal(t, [][]bool{{false, false}, {false, true}}, e.RemovableGrid().Rows())
		require.Equal(t, 0, e.AddableCount())
	}
}

func TestPolesStaircaseN4(t *testing.T) {
	f, _, err := Poles(4, 4, 0)
	require.NoError(t, err)
	want := [][]int{
		{4, 3, 2, 1},
		{3, 2, 1, 0},
		{2, 1, 0, 0},
		{1, 0, 0, 0},
	}
	if diff := cmp.Diff(want, f.Rows()); diff != "" {
		t.Fatalf("staircase mismatch (-want +got):\n%s", diff)
	}
	require.True(t, f.Monotone())

	named, _, err := Initialize(4, PatternPoles2610)
	require.NoError(t, err)
	require.True(t, named.Equal(f))
}

func TestPolesDeterministic(t *testing.T) {
	for _, args := range [][3]int{{6, 6, 0}, {6, 12, 2}, {7, 11, 1}, {5, 3, -1}} {
		f1, e1, err := Poles(args[0], args[1], args[2])
		require.NoError(t, err)
		f2, e2, err := Poles(args[0], args[1], args[2])
		require.NoError(t, err)
		require.True(t, f1.Equal(f2), "fields differ for %v", args)
		require.True(t, e1.Equal(e2), "maps differ for %v", args)
	}
}

func TestArcticCircleThreshold(t *testing.T) {
	// ceil(1.5*5) = 8, offset 1: the corner holds 8-1 clamped to 5.
	f, _, err := Initialize(5, PatternArcticCircle)
	require.NoError(t, err)
	require.Equal(t, 5, f.Height(0, 0))
	require.Equal(t, 0, f.Height(4, 4))
	require.Equal(t, 3, f.Height(2, 2))
}
