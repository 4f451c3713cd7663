package room

import (
	"fmt"
	"math"
	"sort"
)

// Pattern selects how a room is seeded before random moves are applied.
type Pattern string

const (
	PatternEmpty        Pattern = "empty"
	PatternFull         Pattern = "full"
	PatternRandomHalf   Pattern = "random_half"
	PatternPoles2610    Pattern = "poles_2_6_10"
	PatternPoles4812    Pattern = "poles_4_8_12"
	PatternArcticCircle Pattern = "arctic_circle"
)

var patterns = map[Pattern]struct{}{
	PatternEmpty:        {},
	PatternFull:         {},
	PatternRandomHalf:   {},
	PatternPoles2610:    {},
	PatternPoles4812:    {},
	PatternArcticCircle: {},
}

// Patterns lists the supported selectors in lexical order.
func Patterns() []Pattern {
	out := make([]Pattern, 0, len(patterns))
	for p := range patterns {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParsePattern validates a selector.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(s)
	if _, ok := patterns[p]; !ok {
		return "", fmt.Errorf("pattern %q: %w", s, ErrUnknownPattern)
	}
	return p, nil
}

// Initialize builds the starting field and its eligibility maps for pattern.
// Maps are computed directly from the pattern, not by replaying moves. On
// error nothing is returned.
func Initialize(n int, pattern Pattern) (*Field, *Eligibility, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("Initialize(%d, %q): %w", n, pattern, ErrInvalidSize)
	}
	switch pattern {
	case PatternEmpty:
		// Only the cube tucked in the corner can be added.
		f, _ := NewField(n)
		e := newEligibility(n)
		e.setAddable(0, 0, true)
		return f, e, nil
	case PatternFull, PatternRandomHalf:
		// Only the outermost cube can be removed.
		f, _ := NewField(n)
		f.h.Fill(n)
		e := newEligibility(n)
		e.setRemovable(n-1, n-1, true)
		return f, e, nil
	case PatternPoles2610:
		return Poles(n, n, 0)
	case PatternPoles4812:
		return Poles(n, 2*n, 2)
	case PatternArcticCircle:
		return Poles(n, int(math.Ceil(1.5*float64(n))), 1)
	default:
		return nil, nil, fmt.Errorf("Initialize(%d, %q): %w", n, pattern, ErrUnknownPattern)
	}
}

// Poles fills the room up to the plane x+y+z = threshold-offset, producing
// frozen corner regions. A cell is addable when the same plane shifted one
// step outwards (offset-1) is strictly higher there, removable when the plane
// shifted inwards (offset+1) is strictly lower.
func Poles(n, threshold, offset int) (*Field, *Eligibility, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("Poles(%d, %d, %d): %w", n, threshold, offset, ErrInvalidSize)
	}
	f := &Field{n: n, h: newIntGrid(n)}
	e := newEligibility(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			h := plane(n, threshold, x+y+offset)
			f.h.Set(x, y, h)
			e.setAddable(x, y, plane(n, threshold, x+y+offset-1) > h)
			e.setRemovable(x, y, plane(n, threshold, x+y+offset+1) < h)
		}
	}
	return f, e, nil
}

func plane(n, threshold, depth int) int {
	return min(max(threshold-depth, 0), n)
}
