package room

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBudgetFor(t *testing.T) {
	require.Equal(t, Budget{Warmup: 4, Flips: 10, Total: 14}, BudgetFor(2, PatternRandomHalf, 10))
	require.Equal(t, Budget{Warmup: 0, Flips: 27, Total: 27}, BudgetFor(3, PatternEmpty, -1))
	require.Equal(t, Budget{Warmup: 13, Flips: 27, Total: 40}, BudgetFor(3, PatternRandomHalf, -5))
	require.Equal(t, Budget{Warmup: 0, Flips: 0, Total: 0}, BudgetFor(4, PatternFull, 0))
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := seededConfig(4, Pattern("nope"), 10)
	s, err := NewSession(cfg)
	require.ErrorIs(t, err, ErrUnknownPattern)
	require.Nil(t, s)

	cfg = seededConfig(0, PatternEmpty, 10)
	_, err = NewSession(cfg)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestEmptyN2FirstMove(t *testing.T) {
	s, err := NewSessionWithSource(seededConfig(2, PatternEmpty, 5), &stubSource{})
	require.NoError(t, err)

	m, err := s.Step()
	require.NoError(t, err)
	require.Equal(t, Move{X: 0, Y: 0, Kind: MoveAdd}, m)

	snap := s.Snapshot()
	if diff := cmp.Diff([][]int{{1, 0}, {0, 0}}, snap.Field.Rows()); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]bool{{true, true}, {true, false}}, snap.Addable.Rows()); diff != "" {
		t.Fatalf("addable mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]bool{{true, false}, {false, false}}, snap.Removable.Rows()); diff != "" {
		t.Fatalf("removable mismatch (-want +got):\n%s", diff)
	}
}

func TestFullN2RemoveCorner(t *testing.T) {
	s, err := NewSessionWithSource(seededConfig(2, PatternFull, 5), &stubSource{})
	require.NoError(t, err)
	require.NoError(t, s.Apply(Move{X: 1, Y: 1, Kind: MoveRemove}))

	snap := s.Snapshot()
	require.Equal(t, [][]int{{2, 2}, {2, 1}}, snap.Field.Rows())
	// The corner stays removable: at height 1 with no next neighbours it can
	// still drop to 0.
	require.Equal(t, [][]bool{{false, true}, {true, true}}, snap.Removable.Rows())
	require.Equal(t, [][]bool{{false, false}, {false, true}}, snap.Addable.Rows())
	require.Equal(t, 0, snap.Iteration, "Apply must not advance the iteration")
}

func TestWarmupForcesRemovals(t *testing.T) {
	src := &stubSource{floats: []float64{0}}
	s, err := NewSessionWithSource(seededConfig(2, PatternRandomHalf, 3), src)
	require.NoError(t, err)
	require.Equal(t, 4, s.Budget().Warmup)

	for i := 0; i < 4; i++ {
		require.Equal(t, PhaseWarmup, s.Phase(), "move %d", i)
		m, err := s.Step()
		require.NoError(t, err)
		require.Equal(t, MoveRemove, m.Kind, "warm-up move %d", i)
	}
	require.Zero(t, src.floatCalls, "warm-up must not draw a category")
	require.Equal(t, 4, s.field.Volume())

	require.Equal(t, PhaseFree, s.Phase())
	m, err := s.Step()
	require.NoError(t, err)
	require.Equal(t, MoveAdd, m.Kind, "a zero draw picks add once free moves begin")
	require.Equal(t, 1, src.floatCalls)
}

func TestCategoryWeightedByEligibleCounts(t *testing.T) {
	// After the first add on an empty 3x3 room there are 3 addable and 1
	// removable cells, so add has probability 3/4.
	cases := []struct {
		draw float64
		want MoveKind
	}{
		{0.0, MoveAdd},
		{0.74, MoveAdd},
		{0.75, MoveRemove},
		{0.99, MoveRemove},
	}
	for _, tc := range cases {
		src := &stubSource{}
		s, err := NewSessionWithSource(seededConfig(3, PatternEmpty, 10), src)
		require.NoError(t, err)
		_, err = s.Step()
		require.NoError(t, err)
		require.Equal(t, 3, s.elig.AddableCount())
		require.Equal(t, 1, s.elig.RemovableCount())

		src.floats = []float64{tc.draw}
		src.floatCalls = 0
		m, err := s.Step()
		require.NoError(t, err)
		require.Equal(t, tc.want, m.Kind, "draw %v", tc.draw)
	}
}

func TestAddThenRemoveRestoresState(t *testing.T) {
	s, err := NewSession(seededConfig(6, PatternArcticCircle, 200))
	require.NoError(t, err)
	for i := 0; i < 150; i++ {
		_, err := s.Step()
		require.NoError(t, err)
	}
	before := s.Snapshot()
	elig := s.elig.Clone()

	checked := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if !s.elig.Addable(x, y) {
				continue
			}
			require.NoError(t, s.Apply(Move{X: x, Y: y, Kind: MoveAdd}))
			require.True(t, s.elig.Removable(x, y), "freshly added cell must be removable")
			require.NoError(t, s.Apply(Move{X: x, Y: y, Kind: MoveRemove}))
			require.True(t, before.Field.Equal(s.field), "field not restored at (%d,%d)", x, y)
			require.True(t, elig.Equal(s.elig), "maps not restored at (%d,%d)", x, y)
			checked++
		}
	}
	require.Positive(t, checked)
}

func TestApplyRejectsIneligibleMove(t *testing.T) {
	s, err := NewSession(seededConfig(3, PatternEmpty, 5))
	require.NoError(t, err)
	require.ErrorIs(t, s.Apply(Move{X: 1, Y: 1, Kind: MoveAdd}), ErrNotEligible)
	require.ErrorIs(t, s.Apply(Move{X: 0, Y: 0, Kind: MoveRemove}), ErrNotEligible)
	require.ErrorIs(t, s.Apply(Move{X: 5, Y: 0, Kind: MoveAdd}), ErrNotEligible)
	require.NoError(t, s.Err(), "rejected moves are not fatal")
}

func TestStepAfterBudgetFails(t *testing.T) {
	s, err := NewSession(seededConfig(2, PatternEmpty, 2))
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err := s.Step()
		require.NoError(t, err)
	}
	require.True(t, s.Done())
	require.Equal(t, PhaseDone, s.Phase())
	_, err = s.Step()
	require.ErrorIs(t, err, ErrBudgetExhausted)
}

func TestEmptyMapAbortsSession(t *testing.T) {
	s, err := NewSessionWithSource(seededConfig(3, PatternRandomHalf, 5), &stubSource{})
	require.NoError(t, err)
	// Simulate a broken update: the warm-up insists on a removal but the
	// removable map has been wiped.
	s.elig.setRemovable(2, 2, false)
	before := s.Snapshot()

	_, err = s.Step()
	require.ErrorIs(t, err, ErrNoEligibleCells)
	require.ErrorIs(t, s.Err(), ErrNoEligibleCells)

	_, err = s.Step()
	require.ErrorIs(t, err, ErrAborted)
	require.ErrorIs(t, s.Apply(Move{X: 0, Y: 0, Kind: MoveAdd}), ErrAborted)

	after := s.Snapshot()
	require.True(t, before.Field.Equal(after.Field), "failed step must not mutate the field")
	require.Equal(t, 0, after.Iteration)
}

func TestSeededSessionsAreReproducible(t *testing.T) {
	run := func() [][]int {
		s, err := NewSession(seededConfig(5, PatternRandomHalf, 100))
		require.NoError(t, err)
		require.NoError(t, s.Run(context.Background(), 0, nil))
		return s.Snapshot().Field.Rows()
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Fatalf("seeded runs diverged (-first +second):\n%s", diff)
	}
}

func TestRunEmitsCheckpoints(t *testing.T) {
	s, err := NewSession(seededConfig(3, PatternEmpty, 10))
	require.NoError(t, err)

	var marks []int
	err = s.Run(context.Background(), 4, func(snap Snapshot) error {
		require.True(t, snap.Field.Monotone())
		marks = append(marks, snap.Iteration)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 4, 8, 10}, marks)
	require.True(t, s.Done())
}

func TestRunDoesNotRepeatFinalCheckpoint(t *testing.T) {
	s, err := NewSession(seededConfig(3, PatternEmpty, 8))
	require.NoError(t, err)
	var marks []int
	require.NoError(t, s.Run(context.Background(), 4, func(snap Snapshot) error {
		marks = append(marks, snap.Iteration)
		return nil
	}))
	require.Equal(t, []int{0, 4, 8}, marks)
}

func TestRunStopsOnCancel(t *testing.T) {
	s, err := NewSession(seededConfig(4, PatternEmpty, 100))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())

	err = s.Run(ctx, 1, func(snap Snapshot) error {
		if snap.Iteration == 7 {
			cancel()
		}
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 7, s.Iteration())
	require.True(t, s.Snapshot().Field.Monotone())
}

func TestRunPropagatesObserverError(t *testing.T) {
	s, err := NewSession(seededConfig(3, PatternFull, 10))
	require.NoError(t, err)
	boom := errors.New("disk full")
	err = s.Run(context.Background(), 2, func(snap Snapshot) error {
		if snap.Iteration == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, s.Iteration())
}

func TestSnapshotIsACopy(t *testing.T) {
	s, err := NewSession(seededConfig(3, PatternEmpty, 10))
	require.NoError(t, err)
	snap := s.Snapshot()
	_, err = s.Step()
	require.NoError(t, err)
	require.Equal(t, 0, snap.Field.Height(0, 0))
	require.Equal(t, 1, s.field.Height(0, 0))
	require.False(t, snap.HasMove)
	require.True(t, s.Snapshot().HasMove)
}

func TestResetRestartsChain(t *testing.T) {
	s, err := NewSession(seededConfig(3, PatternEmpty, 10))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := s.Step()
		require.NoError(t, err)
	}
	require.NoError(t, s.Reset(99))
	require.Equal(t, 0, s.Iteration())
	require.Equal(t, int64(99), s.Seed())
	require.Equal(t, 0, s.field.Volume())
	assertMapsMatchOracle(t, s.field, s.elig, "after reset")
}
