package meter

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// systemSampler measures the whole host over a fixed window that starts
// when Sample is called, so it sees ambient load shortly after the loop
// rather than the loop itself. Every Sample blocks for the window.
type systemSampler struct {
	window time.Duration
}

func newSystemSampler(window time.Duration) (Sampler, error) {
	if window <= 0 {
		return nil, ErrBadWindow
	}
	return &systemSampler{window: window}, nil
}

func (s *systemSampler) Scope() Scope { return System }

// Reset is a no-op: the window has no baseline to discard.
func (s *systemSampler) Reset(context.Context) error { return nil }

func (s *systemSampler) Sample(ctx context.Context) (float64, error) {
	pcts, err := cpu.PercentWithContext(ctx, s.window, false)
	if err != nil {
		return 0, fmt.Errorf("meter: sample system cpu: %w", err)
	}
	if len(pcts) == 0 {
		return 0, ErrNoCPU
	}
	return pcts[0], nil
}
