package room

import (
	"testing"

	"github.com/stretchr/testify/require"

	"arctic-room/internal/core"
)

var (
	_ core.Sim                       = (*Sim)(nil)
	_ core.ParameterControlsProvider = (*Sim)(nil)
	_ core.IntParameterSetter        = (*Sim)(nil)
)

func TestSimStepAdvancesMovesPerTick(t *testing.T) {
	sim, err := NewSim(seededConfig(4, PatternEmpty, 100))
	require.NoError(t, err)
	require.True(t, sim.SetIntParameter("moves_per_tick", 30))

	require.NoError(t, sim.Step())
	require.Equal(t, 30, sim.Session().Iteration())

	for i := 0; i < 10; i++ {
		require.NoError(t, sim.Step())
	}
	require.Equal(t, 100, sim.Session().Iteration())
	require.True(t, sim.Session().Done())
}

func TestSimParameterBounds(t *testing.T) {
	sim, err := NewSim(seededConfig(3, PatternFull, 10))
	require.NoError(t, err)
	require.Equal(t, defaultMovesPerTick, sim.MovesPerTick())
	require.False(t, sim.SetIntParameter("moves_per_tick", 0))
	require.False(t, sim.SetIntParameter("moves_per_tick", maxMovesPerTick+1))
	require.False(t, sim.SetIntParameter("speed", 4))
	require.Equal(t, defaultMovesPerTick, sim.MovesPerTick())

	controls := sim.ParameterControls()
	require.Len(t, controls, 1)
	require.Equal(t, "moves_per_tick", controls[0].Key)
}

func TestSimCellsScaleHeights(t *testing.T) {
	sim, err := NewSim(seededConfig(2, PatternFull, 1))
	require.NoError(t, err)
	require.Equal(t, []uint8{255, 255, 255, 255}, sim.Cells())
	require.Equal(t, core.Size{W: 2, H: 2}, sim.Size())
	require.Len(t, sim.Palette(), 256)

	_, _, _, ok := sim.LastMoveCell()
	require.False(t, ok)

	require.NoError(t, sim.Step())
	x, y, add, ok := sim.LastMoveCell()
	require.True(t, ok)
	require.False(t, add)
	require.Equal(t, [2]int{1, 1}, [2]int{x, y})
	// the only removable cell of a full room is its far corner
	require.Equal(t, []uint8{255, 255, 255, 127}, sim.Cells())
	require.Equal(t, []bool{false, true, true, true}, sim.RemovableMask())
	require.Equal(t, []bool{false, false, false, true}, sim.AddableMask())
}

func TestSimParametersSnapshot(t *testing.T) {
	sim, err := NewSim(seededConfig(3, PatternEmpty, 5))
	require.NoError(t, err)
	require.NoError(t, sim.Step())

	snap := sim.Parameters()
	p, ok := snap.Lookup("iteration")
	require.True(t, ok)
	require.Equal(t, "5", p.Value)
	p, ok = snap.Lookup("phase")
	require.True(t, ok)
	require.Equal(t, PhaseDone.String(), p.Value)
	p, ok = snap.Lookup("monotone")
	require.True(t, ok)
	require.Equal(t, "true", p.Value)
	_, ok = snap.Lookup("missing")
	require.False(t, ok)
}
