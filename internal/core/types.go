package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the viewer drives. Step reports fatal errors so
// the viewer can stop instead of drawing a corrupted state.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step() error
	Cells() []uint8
}
