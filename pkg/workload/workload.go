// Package workload generates synthetic CPU load of a given size and measures
// how long it took and how busy the CPU was while (or right after) it ran.
package workload

import (
	"context"
	"fmt"
	"time"

	"github.com/ja7ad/energystudy/pkg/system/meter"
)

// Spec names a synthetic unit of computation by its iteration count.
type Spec struct {
	Name       string
	Iterations int
}

// Measurement is the outcome of one loop execution.
type Measurement struct {
	ElapsedSec float64
	CPUPercent float64
}

// Requests simulates short, search-like requests and long, inference-like
// requests, each at low, mid and high intensity.
func Requests() []Spec {
	return []Spec{
		{Name: "short_low", Iterations: 500_000},
		{Name: "short_mid", Iterations: 1_000_000},
		{Name: "short_high", Iterations: 2_000_000},
		{Name: "long_low", Iterations: 5_000_000},
		{Name: "long_mid", Iterations: 10_000_000},
		{Name: "long_high", Iterations: 20_000_000},
	}
}

// Probes is the two-point table used by the system-scoped probe.
func Probes() []Spec {
	return []Spec{
		{Name: "short_request", Iterations: 1_000_000},
		{Name: "long_request", Iterations: 10_000_000},
	}
}

// Run resets s, spins n times and samples s.
//
// With a process-scoped sampler the utilization covers the loop itself.
// With a system-scoped sampler Sample blocks for its window after the loop,
// and that window is not part of ElapsedSec.
func Run(ctx context.Context, s meter.Sampler, n int) (Measurement, error) {
	if err := s.Reset(ctx); err != nil {
		return Measurement{}, fmt.Errorf("workload: %w", err)
	}

	start := time.Now()
	Spin(n)
	elapsed := time.Since(start)

	pct, err := s.Sample(ctx)
	if err != nil {
		return Measurement{}, fmt.Errorf("workload: %w", err)
	}

	return Measurement{ElapsedSec: elapsed.Seconds(), CPUPercent: pct}, nil
}
