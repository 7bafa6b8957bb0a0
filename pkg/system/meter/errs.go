package meter

import "errors"

var (
	// ErrUnsupported indicates a Scope without a Sampler implementation.
	ErrUnsupported = errors.New("meter: unsupported scope")

	// ErrBadWindow indicates a system sampling window <= 0.
	ErrBadWindow = errors.New("meter: sampling window must be > 0")

	// ErrNoCPU indicates the host returned no aggregate CPU figure.
	ErrNoCPU = errors.New("meter: no cpu figure")
)
