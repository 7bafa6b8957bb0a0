package energy

import "errors"

var (
	// ErrNegativeIdle indicates a model with PIdle < 0.
	ErrNegativeIdle = errors.New("energy: idle power must be >= 0")

	// ErrMaxNotAboveIdle indicates a model with PMax <= PIdle.
	ErrMaxNotAboveIdle = errors.New("energy: max power must be greater than idle power")
)
