package room

import "errors"

var (
	// ErrInvalidSize indicates a non-positive side length.
	ErrInvalidSize = errors.New("room: side length must be positive")
	// ErrUnknownPattern indicates a pattern selector outside the supported set.
	ErrUnknownPattern = errors.New("room: unknown initialization pattern")
	// ErrHeightOutOfRange indicates a mutation that would leave [0, N].
	ErrHeightOutOfRange = errors.New("room: height out of range")
	// ErrNotEligible indicates an explicit move on a cell whose map is unset.
	ErrNotEligible = errors.New("room: cell is not eligible for this move")
	// ErrNoEligibleCells indicates the chosen eligibility map is empty.
	ErrNoEligibleCells = errors.New("room: no eligible cells for chosen move")
	// ErrBudgetExhausted indicates Step was called after the final iteration.
	ErrBudgetExhausted = errors.New("room: iteration budget exhausted")
	// ErrAborted indicates the session already failed and refuses more moves.
	ErrAborted = errors.New("room: session aborted after fatal error")
	// ErrCorruptField indicates serialized data that does not decode to a valid field.
	ErrCorruptField = errors.New("room: corrupt field data")
	// ErrInvalidConfig indicates a configuration value outside its domain.
	ErrInvalidConfig = errors.New("room: invalid configuration")
)
