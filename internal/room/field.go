package room

import (
	"fmt"

	"arctic-room/internal/core"
)

// Field is an N×N grid of stack heights, each in [0, N]. Heights never
// increase along x or y.
type Field struct {
	n int
	h *core.Grid[int]
}

// NewField returns an empty (all zero) field of side n.
func NewField(n int) (*Field, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewField(%d): %w", n, ErrInvalidSize)
	}
	return &Field{n: n, h: newIntGrid(n)}, nil
}

func newIntGrid(n int) *core.Grid[int] { return core.NewGrid[int](n, n) }

// N returns the side length, which is also the maximum height.
func (f *Field) N() int { return f.n }

// Height returns the stack height at column x, row y.
func (f *Field) Height(x, y int) int { return f.h.At(x, y) }

// lookup returns the height at (x, y) and false outside the grid.
func (f *Field) lookup(x, y int) (int, bool) { return f.h.Lookup(x, y) }

// Cells exposes the row-major backing slice. Callers must not modify it.
func (f *Field) Cells() []int { return f.h.Cells() }

// Rows returns a row-major copy, row=y and column=x.
func (f *Field) Rows() [][]int { return f.h.Rows() }

// Volume returns the number of unit cubes stacked in the field.
func (f *Field) Volume() int {
	total := 0
	for _, v := range f.h.Cells() {
		total += v
	}
	return total
}

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	return &Field{n: f.n, h: f.h.Clone()}
}

// Equal reports whether two fields have the same side and heights.
func (f *Field) Equal(o *Field) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.n == o.n && core.GridEqual(f.h, o.h)
}

// InRange reports whether every height lies in [0, N].
func (f *Field) InRange() bool {
	for _, v := range f.h.Cells() {
		if v < 0 || v > f.n {
			return false
		}
	}
	return true
}

// Monotone reports whether heights are non-increasing along both axes.
func (f *Field) Monotone() bool {
	for y := 0; y < f.n; y++ {
		for x := 0; x < f.n; x++ {
			v := f.h.At(x, y)
			if x > 0 && v > f.h.At(x-1, y) {
				return false
			}
			if y > 0 && v > f.h.At(x, y-1) {
				return false
			}
		}
	}
	return true
}

// shift changes the height at (x, y) by delta. The field is left untouched
// when the result would fall outside [0, N].
func (f *Field) shift(x, y, delta int) error {
	if !f.h.InBounds(x, y) {
		return fmt.Errorf("shift (%d,%d): outside %dx%d grid: %w", x, y, f.n, f.n, ErrHeightOutOfRange)
	}
	next := f.h.At(x, y) + delta
	if next < 0 || next > f.n {
		return fmt.Errorf("shift (%d,%d) by %+d: height %d not in [0,%d]: %w", x, y, delta, next, f.n, ErrHeightOutOfRange)
	}
	f.h.Set(x, y, next)
	return nil
}
