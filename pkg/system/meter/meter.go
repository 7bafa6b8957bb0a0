package meter

import (
	"context"
	"fmt"
	"time"
)

// Scope selects whose CPU utilization a Sampler reports.
type Scope int

const (
	Unsupported Scope = iota // no sampler available
	Process                  // this process, accrued since the last Reset
	System                   // whole host, over a blocking window after the loop
)

func (s Scope) String() string {
	switch s {
	case Process:
		return "process"
	case System:
		return "system"
	default:
		return "unsupported"
	}
}

// DefaultWindow is the blocking window used by system-scoped sampling.
const DefaultWindow = time.Second

// Sampler reports CPU utilization in percent of one logical CPU.
// Process-scoped values may exceed 100 when the process runs on several cores.
//
// Reset is called right before the measured interval and Sample right after it.
type Sampler interface {
	Reset(ctx context.Context) error
	Sample(ctx context.Context) (float64, error)
	Scope() Scope
}

// NewSampler returns a Sampler for the given scope.
//   - Process: utilization of the calling process since Reset.
//   - System:  host-wide utilization over DefaultWindow, sampled after the loop.
func NewSampler(scope Scope) (Sampler, error) {
	switch scope {
	case Process:
		return newProcessSampler()
	case System:
		return newSystemSampler(DefaultWindow)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, scope)
	}
}
