package room

import (
	"fmt"
	"strings"
)

// IterationLine describes progress through the budget, splitting warm-up and
// free moves when the pattern has a warm-up.
func (s Snapshot) IterationLine() string {
	if s.Budget.Warmup == 0 {
		return fmt.Sprintf("Iteration: %d/%d", s.Iteration, s.Budget.Total)
	}
	warm := min(s.Iteration, s.Budget.Warmup)
	return fmt.Sprintf("Iteration: %d/%d (Init: %d/%d, Flip: %d/%d)",
		s.Iteration, s.Budget.Total, warm, s.Budget.Warmup, s.Iteration-warm, s.Budget.Flips)
}

// Headline is the multi-line caption of a checkpoint image.
func (s Snapshot) Headline(elapsed string) string {
	n := s.Field.N()
	fit := Measure(s.Field)
	var b strings.Builder
	fmt.Fprintf(&b, "Room (%d x %d x %d) | Elapsed time: %s\n", n, n, n, elapsed)
	b.WriteString(s.IterationLine())
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s | Monotony: %v | Filling: %.4f\nPoles: (%d, %d), (%d, %d), (%d, %d)",
		s.Phase, fit.Monotone, fit.Filling, fit.XFull, fit.XEmpty, fit.YFull, fit.YEmpty, fit.ZFull, fit.ZEmpty)
	return b.String()
}
