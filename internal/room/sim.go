package room

import "arctic-room/internal/core"

const (
	defaultMovesPerTick = 64
	maxMovesPerTick     = 1 << 16
)

// Sim adapts a Session to the interactive viewer: each Step advances the
// chain by a configurable number of moves.
type Sim struct {
	session      *Session
	movesPerTick int
	display      []uint8
}

// NewSim builds a viewer simulation for cfg.
func NewSim(cfg Config) (*Sim, error) {
	s, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &Sim{
		session:      s,
		movesPerTick: defaultMovesPerTick,
		display:      make([]uint8, cfg.N*cfg.N),
	}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "room" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size {
	n := s.session.cfg.N
	return core.Size{W: n, H: n}
}

// Session exposes the underlying chain.
func (s *Sim) Session() *Session { return s.session }

// Reset restarts the chain from the configured pattern.
func (s *Sim) Reset(seed int64) error { return s.session.Reset(seed) }

// Step applies up to MovesPerTick moves. It is a no-op once the budget is spent.
func (s *Sim) Step() error {
	for i := 0; i < s.movesPerTick && !s.session.Done(); i++ {
		if _, err := s.session.Step(); err != nil {
			return err
		}
	}
	return nil
}

// MovesPerTick returns the number of moves applied per Step.
func (s *Sim) MovesPerTick() int { return s.movesPerTick }

// Cells exposes the display buffer: heights scaled to 0..255.
func (s *Sim) Cells() []uint8 {
	s.rebuildDisplay()
	return s.display
}

// AddableMask returns the addable map in row-major order.
func (s *Sim) AddableMask() []bool { return s.session.elig.addable.Cells() }

// RemovableMask returns the removable map in row-major order.
func (s *Sim) RemovableMask() []bool { return s.session.elig.removable.Cells() }

// ParameterControls lists the HUD-adjustable values.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "moves_per_tick",
			Label:  "Moves per frame",
			Type:   core.ParamTypeInt,
			Step:   16,
			Min:    1,
			Max:    maxMovesPerTick,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetIntParameter updates an integer control.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key != "moves_per_tick" || value < 1 || value > maxMovesPerTick {
		return false
	}
	s.movesPerTick = value
	return true
}

// LastMoveCell reports the cell changed by the most recent move.
func (s *Sim) LastMoveCell() (x, y int, add, ok bool) {
	if !s.session.hasLast {
		return 0, 0, false, false
	}
	m := s.session.last
	return m.X, m.Y, m.Kind == MoveAdd, true
}
