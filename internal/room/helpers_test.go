package room

import (
	"testing"

	"arctic-room/internal/core"
)

// stubSource replays fixed category draws and always picks slot 0 unless
// pickFn is set.
type stubSource struct {
	floats     []float64
	floatCalls int
	pickFn     func(n int) int
}

func (s *stubSource) Float64() float64 {
	v := 0.0
	if len(s.floats) > 0 {
		v = s.floats[s.floatCalls%len(s.floats)]
	}
	s.floatCalls++
	return v
}

func (s *stubSource) IntN(n int) int {
	if s.pickFn != nil {
		return s.pickFn(n)
	}
	return 0
}

// oracleMaps decides eligibility by trying each unit move on a copy of the
// field and checking the invariants, independently of canAdd/canRemove.
func oracleMaps(f *Field) (add, rmv *core.Grid[bool]) {
	add = core.NewGrid[bool](f.n, f.n)
	rmv = core.NewGrid[bool](f.n, f.n)
	for y := 0; y < f.n; y++ {
		for x := 0; x < f.n; x++ {
			add.Set(x, y, tryShift(f, x, y, 1))
			rmv.Set(x, y, tryShift(f, x, y, -1))
		}
	}
	return add, rmv
}

func tryShift(f *Field, x, y, delta int) bool {
	c := f.Clone()
	if err := c.shift(x, y, delta); err != nil {
		return false
	}
	return c.Monotone()
}

func fieldFromRows(t *testing.T, rows [][]int) *Field {
	t.Helper()
	f, err := NewField(len(rows))
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	for y, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has %d cells, want %d", y, len(row), len(rows))
		}
		for x, v := range row {
			f.h.Set(x, y, v)
		}
	}
	return f
}

func assertMapsMatchOracle(t *testing.T, f *Field, e *Eligibility, context string) {
	t.Helper()
	add, rmv := oracleMaps(f)
	if !core.GridEqual(add, e.addable) {
		t.Fatalf("%s: addable map\n got %v\nwant %v\nfield %v", context, e.addable.Rows(), add.Rows(), f.Rows())
	}
	if !core.GridEqual(rmv, e.removable) {
		t.Fatalf("%s: removable map\n got %v\nwant %v\nfield %v", context, e.removable.Rows(), rmv.Rows(), f.Rows())
	}
	if e.AddableCount() != core.CountTrue(add) || e.RemovableCount() != core.CountTrue(rmv) {
		t.Fatalf("%s: counts (%d,%d), want (%d,%d)", context,
			e.AddableCount(), e.RemovableCount(), core.CountTrue(add), core.CountTrue(rmv))
	}
}

func seededConfig(n int, p Pattern, flips int) Config {
	cfg := DefaultConfig()
	cfg.N = n
	cfg.Pattern = p
	cfg.Flips = flips
	cfg.UseSeed = true
	cfg.Seed = 7
	return cfg
}
