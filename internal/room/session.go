package room

import (
	"context"
	"fmt"
	"time"

	"arctic-room/internal/core"
)

// MoveKind is the sign of a unit move.
type MoveKind int8

const (
	MoveRemove MoveKind = -1
	MoveAdd    MoveKind = 1
)

func (k MoveKind) String() string {
	switch k {
	case MoveAdd:
		return "add"
	case MoveRemove:
		return "remove"
	default:
		return fmt.Sprintf("MoveKind(%d)", int8(k))
	}
}

// Move is a single unit change at column X, row Y.
type Move struct {
	X, Y int
	Kind MoveKind
}

// Phase is the state of a session's move loop.
type Phase int

const (
	// PhaseWarmup forces removals until the warm-up budget is spent.
	PhaseWarmup Phase = iota
	// PhaseFree picks add or remove weighted by the eligible cell counts.
	PhaseFree
	// PhaseDone means the iteration budget is exhausted.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseWarmup:
		return "warmup"
	case PhaseFree:
		return "free"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Source is the randomness a session draws from.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Budget holds the iteration counts derived from a configuration.
type Budget struct {
	Warmup int
	Flips  int
	Total  int
}

// BudgetFor derives the budget for a room of side n. A negative flip count
// means one flip per unit of room volume. Only random_half gets a warm-up,
// sized to half the room volume.
func BudgetFor(n int, pattern Pattern, flips int) Budget {
	volume := n * n * n
	if flips < 0 {
		flips = volume
	}
	warmup := 0
	if pattern == PatternRandomHalf {
		warmup = volume / 2
	}
	return Budget{Warmup: warmup, Flips: flips, Total: warmup + flips}
}

// Session owns one Markov chain: the field, its eligibility maps and the RNG.
// It is not safe for concurrent use.
type Session struct {
	cfg    Config
	budget Budget
	seed   int64

	field *Field
	elig  *Eligibility
	rng   Source

	iter    int
	last    Move
	hasLast bool
	err     error
}

// NewSession validates cfg and seeds the room. The RNG is seeded from
// cfg.Seed when cfg.UseSeed is set, otherwise from the clock.
func NewSession(cfg Config) (*Session, error) {
	seed := cfg.Seed
	if !cfg.UseSeed {
		seed = time.Now().UnixNano()
	}
	s, err := NewSessionWithSource(cfg, core.NewRNG(seed))
	if err != nil {
		return nil, err
	}
	s.seed = seed
	return s, nil
}

// NewSessionWithSource is NewSession with an explicit randomness source.
func NewSessionWithSource(cfg Config, src Source) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, elig, err := Initialize(cfg.N, cfg.Pattern)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:    cfg,
		budget: BudgetFor(cfg.N, cfg.Pattern, cfg.Flips),
		seed:   cfg.Seed,
		field:  field,
		elig:   elig,
		rng:    src,
	}, nil
}

// Reset reseeds the room from the configured pattern and a fresh RNG.
func (s *Session) Reset(seed int64) error {
	field, elig, err := Initialize(s.cfg.N, s.cfg.Pattern)
	if err != nil {
		return err
	}
	s.field, s.elig = field, elig
	s.rng = core.NewRNG(seed)
	s.seed = seed
	s.iter = 0
	s.last, s.hasLast = Move{}, false
	s.err = nil
	return nil
}

// Config returns the configuration the session was built from.
func (s *Session) Config() Config { return s.cfg }

// Budget returns the derived iteration budget.
func (s *Session) Budget() Budget { return s.budget }

// Seed returns the seed of the session RNG.
func (s *Session) Seed() int64 { return s.seed }

// Iteration returns the number of moves performed so far.
func (s *Session) Iteration() int { return s.iter }

// Err returns the fatal error that stopped the session, if any.
func (s *Session) Err() error { return s.err }

// Phase reports the current state of the move loop.
func (s *Session) Phase() Phase {
	switch {
	case s.iter >= s.budget.Total:
		return PhaseDone
	case s.cfg.Pattern == PatternRandomHalf && s.iter < s.budget.Warmup:
		return PhaseWarmup
	default:
		return PhaseFree
	}
}

// Done reports whether the iteration budget is exhausted.
func (s *Session) Done() bool { return s.Phase() == PhaseDone }

// Step performs one move of the chain: pick a category, pick a uniformly
// random eligible cell for it, change its height and update the maps.
func (s *Session) Step() (Move, error) {
	if s.err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrAborted, s.err)
	}
	phase := s.Phase()
	if phase == PhaseDone {
		return Move{}, fmt.Errorf("step %d of %d: %w", s.iter, s.budget.Total, ErrBudgetExhausted)
	}

	kind := s.chooseKind(phase)
	count := s.elig.count(kind)
	if count == 0 {
		return Move{}, s.fail(fmt.Errorf("step %d (%s, %s): %w", s.iter, phase, kind, ErrNoEligibleCells))
	}
	x, y := s.elig.pick(kind, s.rng.IntN(count))
	m := Move{X: x, Y: y, Kind: kind}
	if err := s.apply(m); err != nil {
		return Move{}, s.fail(fmt.Errorf("step %d: %w", s.iter, err))
	}
	s.iter++
	return m, nil
}

// chooseKind returns remove during warm-up, and otherwise add with
// probability |addable| / (|addable| + |removable|).
func (s *Session) chooseKind(phase Phase) MoveKind {
	if phase == PhaseWarmup {
		return MoveRemove
	}
	adds := s.elig.AddableCount()
	total := adds + s.elig.RemovableCount()
	if total == 0 {
		return MoveAdd
	}
	if s.rng.Float64() < float64(adds)/float64(total) {
		return MoveAdd
	}
	return MoveRemove
}

// Apply performs an explicit move without advancing the iteration counter.
func (s *Session) Apply(m Move) error {
	if s.err != nil {
		return fmt.Errorf("%w: %v", ErrAborted, s.err)
	}
	if !s.field.h.InBounds(m.X, m.Y) {
		return fmt.Errorf("apply %s at (%d,%d): %w", m.Kind, m.X, m.Y, ErrNotEligible)
	}
	if !s.elig.eligible(m.Kind, m.X, m.Y) {
		return fmt.Errorf("apply %s at (%d,%d): %w", m.Kind, m.X, m.Y, ErrNotEligible)
	}
	if err := s.apply(m); err != nil {
		return s.fail(err)
	}
	return nil
}

func (s *Session) apply(m Move) error {
	if err := s.field.shift(m.X, m.Y, int(m.Kind)); err != nil {
		return err
	}
	s.elig.Update(s.field, m.X, m.Y)
	s.last, s.hasLast = m, true
	return nil
}

func (s *Session) fail(err error) error {
	s.err = err
	return err
}

// Snapshot is a deep copy of the session state taken between moves.
type Snapshot struct {
	Pattern   Pattern
	Seed      int64
	Iteration int
	Budget    Budget
	Phase     Phase
	LastMove  Move
	HasMove   bool
	Field     *Field
	Addable   *core.Grid[bool]
	Removable *core.Grid[bool]
}

// Snapshot copies the current field and maps.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Pattern:   s.cfg.Pattern,
		Seed:      s.seed,
		Iteration: s.iter,
		Budget:    s.budget,
		Phase:     s.Phase(),
		LastMove:  s.last,
		HasMove:   s.hasLast,
		Field:     s.field.Clone(),
		Addable:   s.elig.AddableGrid(),
		Removable: s.elig.RemovableGrid(),
	}
}

// Run steps the session until the budget is exhausted. observe, when non-nil,
// receives a snapshot at iteration 0, after every `every`-th iteration and
// after the final one. Cancellation is honoured between moves.
func (s *Session) Run(ctx context.Context, every int, observe func(Snapshot) error) error {
	emit := func() error {
		if observe == nil {
			return nil
		}
		return observe(s.Snapshot())
	}
	if s.iter == 0 {
		if err := emit(); err != nil {
			return err
		}
	}
	emitted := s.iter == 0
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.Step(); err != nil {
			return err
		}
		emitted = false
		if every > 0 && s.iter%every == 0 {
			if err := emit(); err != nil {
				return err
			}
			emitted = true
		}
	}
	if !emitted {
		return emit()
	}
	return nil
}
