package meter

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// processSampler measures the calling process only:
//   - Reset discards the accrued CPU time baseline (Percent(0) primes it).
//   - Sample returns utilization accrued strictly between Reset and now.
type processSampler struct {
	proc *process.Process
}

func newProcessSampler() (Sampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("meter: open self process: %w", err)
	}
	return &processSampler{proc: p}, nil
}

func (s *processSampler) Scope() Scope { return Process }

func (s *processSampler) Reset(ctx context.Context) error {
	if _, err := s.proc.PercentWithContext(ctx, 0); err != nil {
		return fmt.Errorf("meter: reset process cpu: %w", err)
	}
	return nil
}

func (s *processSampler) Sample(ctx context.Context) (float64, error) {
	pct, err := s.proc.PercentWithContext(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("meter: sample process cpu: %w", err)
	}
	return pct, nil
}
