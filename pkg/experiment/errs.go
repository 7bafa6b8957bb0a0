package experiment

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroRepeat indicates Repeat <= 0; the mean over trials is undefined.
	ErrZeroRepeat = errors.New("experiment: repeat count must be > 0")

	// ErrZeroIterations indicates a workload with Iterations <= 0;
	// energy per unit is undefined.
	ErrZeroIterations = errors.New("experiment: iteration count must be > 0")

	// ErrNoWorkloads indicates an empty workload table.
	ErrNoWorkloads = errors.New("experiment: no workloads")
)

// WorkloadError ties a failure to the workload it happened on.
type WorkloadError struct {
	Name string
	Err  error
}

func (e *WorkloadError) Error() string {
	return fmt.Sprintf("workload %q: %v", e.Name, e.Err)
}

func (e *WorkloadError) Unwrap() error { return e.Err }
