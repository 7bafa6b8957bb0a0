// Package experiment runs repeated energy trials over a workload table and
// aggregates them into per-workload means.
//
// A run is strictly sequential: for each workload, in table order, Repeat
// trials are executed back to back. A trial is one measurement loop
// (workload.Run) priced by the energy model. No trial is retried, and the
// first collaborator error aborts the run.
package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ja7ad/energystudy/pkg/system/meter"
	"github.com/ja7ad/energystudy/pkg/system/util"
	"github.com/ja7ad/energystudy/pkg/workload"
)

// Sink receives each aggregate as soon as its workload finishes.
type Sink interface {
	Add(AggregateResult) error
}

type measureFunc func(ctx context.Context, n int) (workload.Measurement, error)

// Driver executes the intensity experiment for one Config.
type Driver struct {
	cfg     Config
	sampler meter.Sampler
	measure measureFunc
	log     *slog.Logger
}

type Option func(*Driver)

// WithLogger sets the logger used for progress records. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// WithSampler overrides the sampler built from Config.Scope.
func WithSampler(s meter.Sampler) Option {
	return func(d *Driver) { d.sampler = s }
}

// New validates cfg and builds a Driver. Configuration errors are returned
// here, before any trial runs.
func New(cfg Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Workloads = slices.Clone(cfg.Workloads)

	d := &Driver{cfg: cfg, log: slog.Default()}
	for _, o := range opts {
		o(d)
	}

	if d.sampler == nil {
		s, err := meter.NewSampler(cfg.Scope)
		if err != nil {
			return nil, fmt.Errorf("experiment: %w", err)
		}
		d.sampler = s
	}
	d.measure = func(ctx context.Context, n int) (workload.Measurement, error) {
		return workload.Run(ctx, d.sampler, n)
	}
	return d, nil
}

// Config returns the configuration the driver was built with.
func (d *Driver) Config() Config {
	cfg := d.cfg
	cfg.Workloads = slices.Clone(d.cfg.Workloads)
	return cfg
}

// Run executes every workload in table order and returns one aggregate per
// workload, in the same order. Each aggregate is handed to sinks before the
// next workload starts.
func (d *Driver) Run(ctx context.Context, sinks ...Sink) ([]AggregateResult, error) {
	d.log.Info("experiment started",
		"workloads", len(d.cfg.Workloads),
		"repeat", d.cfg.Repeat,
		"scope", d.sampler.Scope().String(),
		"p_idle_w", d.cfg.Model.PIdle,
		"p_max_w", d.cfg.Model.PMax,
	)

	out := make([]AggregateResult, 0, len(d.cfg.Workloads))
	for _, w := range d.cfg.Workloads {
		agg, err := d.RunWorkload(ctx, w)
		if err != nil {
			return out, err
		}
		for _, s := range sinks {
			if err := s.Add(agg); err != nil {
				return out, fmt.Errorf("experiment: sink: %w", err)
			}
		}
		out = append(out, agg)
	}
	return out, nil
}

// RunWorkload executes Repeat trials of w and aggregates them.
func (d *Driver) RunWorkload(ctx context.Context, w workload.Spec) (AggregateResult, error) {
	trials := make([]TrialResult, 0, d.cfg.Repeat)
	for i := 0; i < d.cfg.Repeat; i++ {
		tr, err := d.Trial(ctx, w.Iterations)
		if err != nil {
			return AggregateResult{}, &WorkloadError{Name: w.Name, Err: err}
		}
		d.log.Debug("trial",
			"workload", w.Name,
			"trial", i+1,
			"time_s", tr.ElapsedSec,
			"cpu_pct", tr.CPUPercent,
			"energy_j", tr.EnergyJ,
		)
		trials = append(trials, tr)
	}

	agg := Aggregate(w, trials)
	d.log.Info("workload done",
		"workload", agg.Workload,
		"iterations", agg.Iterations,
		"energy_j", agg.MeanEnergyJ,
	)
	return agg, nil
}

// Trial runs the measurement loop once for n iterations and prices it.
func (d *Driver) Trial(ctx context.Context, n int) (TrialResult, error) {
	m, err := d.measure(ctx, n)
	if err != nil {
		return TrialResult{}, err
	}
	return TrialResult{
		ElapsedSec: m.ElapsedSec,
		CPUPercent: m.CPUPercent,
		EnergyJ:    d.cfg.Model.Energy(m.ElapsedSec, m.CPUPercent),
	}, nil
}

// Aggregate averages trials of w and derives energy per unit as
//
//	EnergyPerUnitJ = MeanEnergyJ / w.Iterations
//
// trials must be non-empty and w.Iterations > 0; Config.Validate ensures
// both for a Driver. Otherwise the figures are not meaningful.
func Aggregate(w workload.Spec, trials []TrialResult) AggregateResult {
	var el, cpu, en util.Mean
	for _, t := range trials {
		el.Add(t.ElapsedSec)
		cpu.Add(t.CPUPercent)
		en.Add(t.EnergyJ)
	}
	return AggregateResult{
		Workload:       w.Name,
		Iterations:     w.Iterations,
		Trials:         len(trials),
		MeanElapsedSec: el.Value(),
		MeanCPUPercent: cpu.Value(),
		MeanEnergyJ:    en.Value(),
		EnergyPerUnitJ: en.Value() / float64(w.Iterations),
	}
}
