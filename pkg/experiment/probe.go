package experiment

import (
	"context"
	"log/slog"

	"github.com/ja7ad/energystudy/pkg/system/meter"
	"github.com/ja7ad/energystudy/pkg/workload"
)

// Probe runs each workload once and pairs its loop time with one CPU
// sample from s. Results come back in table order after all workloads ran.
//
// With a system-scoped sampler every workload costs its loop time plus the
// sampling window.
func Probe(ctx context.Context, s meter.Sampler, specs []workload.Spec, log *slog.Logger) ([]ProbeResult, error) {
	if log == nil {
		log = slog.Default()
	}
	out := make([]ProbeResult, 0, len(specs))
	for _, w := range specs {
		m, err := workload.Run(ctx, s, w.Iterations)
		if err != nil {
			return out, &WorkloadError{Name: w.Name, Err: err}
		}
		log.Debug("probe", "workload", w.Name, "time_s", m.ElapsedSec, "cpu_pct", m.CPUPercent)
		out = append(out, ProbeResult{Workload: w.Name, ElapsedSec: m.ElapsedSec, CPUPercent: m.CPUPercent})
	}
	return out, nil
}
