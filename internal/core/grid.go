package core

// Grid stores a 2D grid of cell values in row-major order. Coordinates are
// always (x=column, y=row).
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// Coords is the inverse of Index.
func (g *Grid[T]) Coords(idx int) (int, int) { return idx % g.W, idx / g.W }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Out-of-range coordinates panic.
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.W+x] = v }

// Lookup returns the value at (x, y) and false when the coordinates fall
// outside the grid. Callers treat a missing neighbour as "no constraint".
func (g *Grid[T]) Lookup(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.data[y*g.W+x], true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{W: g.W, H: g.H, data: make([]T, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Rows returns a row-major copy of the grid as nested slices.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.H)
	for y := range rows {
		rows[y] = append([]T(nil), g.data[y*g.W:(y+1)*g.W]...)
	}
	return rows
}

// GridEqual reports whether two grids have the same shape and contents.
func GridEqual[T comparable](a, b *Grid[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.W != b.W || a.H != b.H {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// CountTrue returns the number of set cells in a boolean grid.
func CountTrue(g *Grid[bool]) int {
	total := 0
	for _, v := range g.data {
		if v {
			total++
		}
	}
	return total
}
