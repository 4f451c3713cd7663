package room

import "arctic-room/internal/core"

// Eligibility tracks which cells can grow (addable) or shrink (removable) by
// one unit without breaking monotonicity or the [0, N] bounds.
//
// A cell is addable iff h < N and h is strictly below each previous
// neighbour (x-1,y), (x,y-1) that exists. It is removable iff h > 0 and h is
// strictly above each next neighbour (x+1,y), (x,y+1) that exists. Missing
// neighbours at the boundary impose no constraint.
type Eligibility struct {
	n         int
	addable   *core.Grid[bool]
	removable *core.Grid[bool]
	addSet    *cellSet
	rmvSet    *cellSet
}

func newEligibility(n int) *Eligibility {
	return &Eligibility{
		n:         n,
		addable:   core.NewGrid[bool](n, n),
		removable: core.NewGrid[bool](n, n),
		addSet:    newCellSet(n * n),
		rmvSet:    newCellSet(n * n),
	}
}

// Recompute derives both maps from scratch by checking every cell against its
// neighbours. It is O(N²); the move loop uses Update instead.
func Recompute(f *Field) *Eligibility {
	e := newEligibility(f.n)
	for y := 0; y < f.n; y++ {
		for x := 0; x < f.n; x++ {
			e.setAddable(x, y, canAdd(f, x, y))
			e.setRemovable(x, y, canRemove(f, x, y))
		}
	}
	return e
}

// Update restores the invariant after the height at (x, y) changed by exactly
// one unit in either direction. Only (x, y) and its four axis neighbours are
// touched: the change can only alter the addable flag of the cell and of its
// next neighbours, and the removable flag of the cell and of its previous
// neighbours.
func (e *Eligibility) Update(f *Field, x, y int) {
	e.setAddable(x, y, canAdd(f, x, y))
	e.setRemovable(x, y, canRemove(f, x, y))

	if x+1 < e.n {
		e.setAddable(x+1, y, canAdd(f, x+1, y))
	}
	if y+1 < e.n {
		e.setAddable(x, y+1, canAdd(f, x, y+1))
	}
	if x > 0 {
		e.setRemovable(x-1, y, canRemove(f, x-1, y))
	}
	if y > 0 {
		e.setRemovable(x, y-1, canRemove(f, x, y-1))
	}
}

// canAdd reports whether h(x,y)+1 keeps the field valid.
func canAdd(f *Field, x, y int) bool {
	h := f.h.At(x, y)
	if h >= f.n {
		return false
	}
	if px, ok := f.lookup(x-1, y); ok && h >= px {
		return false
	}
	if py, ok := f.lookup(x, y-1); ok && h >= py {
		return false
	}
	return true
}

// canRemove reports whether h(x,y)-1 keeps the field valid.
func canRemove(f *Field, x, y int) bool {
	h := f.h.At(x, y)
	if h <= 0 {
		return false
	}
	if nx, ok := f.lookup(x+1, y); ok && h <= nx {
		return false
	}
	if ny, ok := f.lookup(x, y+1); ok && h <= ny {
		return false
	}
	return true
}

func (e *Eligibility) setAddable(x, y int, on bool) {
	e.addable.Set(x, y, on)
	e.addSet.set(e.addable.Index(x, y), on)
}

func (e *Eligibility) setRemovable(x, y int, on bool) {
	e.removable.Set(x, y, on)
	e.rmvSet.set(e.removable.Index(x, y), on)
}

// N returns the side length of both maps.
func (e *Eligibility) N() int { return e.n }

// Addable reports whether (x, y) can grow by one.
func (e *Eligibility) Addable(x, y int) bool { return e.addable.At(x, y) }

// Removable reports whether (x, y) can shrink by one.
func (e *Eligibility) Removable(x, y int) bool { return e.removable.At(x, y) }

// AddableCount returns the number of addable cells.
func (e *Eligibility) AddableCount() int { return e.addSet.len() }

// RemovableCount returns the number of removable cells.
func (e *Eligibility) RemovableCount() int { return e.rmvSet.len() }

// AddableGrid returns a copy of the addable map.
func (e *Eligibility) AddableGrid() *core.Grid[bool] { return e.addable.Clone() }

// RemovableGrid returns a copy of the removable map.
func (e *Eligibility) RemovableGrid() *core.Grid[bool] { return e.removable.Clone() }

// Equal compares map contents cell for cell. Sampling order is ignored.
func (e *Eligibility) Equal(o *Eligibility) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.n == o.n &&
		core.GridEqual(e.addable, o.addable) &&
		core.GridEqual(e.removable, o.removable)
}

// Clone returns a deep copy including the sampling index.
func (e *Eligibility) Clone() *Eligibility {
	return &Eligibility{
		n:         e.n,
		addable:   e.addable.Clone(),
		removable: e.removable.Clone(),
		addSet:    e.addSet.clone(),
		rmvSet:    e.rmvSet.clone(),
	}
}

// pick returns the coordinates of the i-th eligible cell of the chosen map.
func (e *Eligibility) pick(kind MoveKind, i int) (int, int) {
	set := e.rmvSet
	if kind == MoveAdd {
		set = e.addSet
	}
	return e.addable.Coords(set.at(i))
}

// eligible reports whether kind may be applied at (x, y).
func (e *Eligibility) eligible(kind MoveKind, x, y int) bool {
	if kind == MoveAdd {
		return e.addable.At(x, y)
	}
	return e.removable.At(x, y)
}

// count returns the size of the map backing kind.
func (e *Eligibility) count(kind MoveKind) int {
	if kind == MoveAdd {
		return e.addSet.len()
	}
	return e.rmvSet.len()
}
