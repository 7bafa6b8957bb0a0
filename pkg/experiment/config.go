package experiment

import (
	"github.com/ja7ad/energystudy/pkg/energy"
	"github.com/ja7ad/energystudy/pkg/system/meter"
	"github.com/ja7ad/energystudy/pkg/workload"
)

// Config fixes everything a run depends on. It is copied into the Driver
// at construction, so later changes to the caller's value have no effect.
type Config struct {
	Model     energy.Model
	Repeat    int
	Workloads []workload.Spec
	Scope     meter.Scope
}

// DefaultRepeat is the number of trials averaged per workload.
const DefaultRepeat = 5

// DefaultConfig returns the intensity experiment: the request table,
// a 50 W / 150 W server node, five trials each, process-scoped sampling.
func DefaultConfig() Config {
	return Config{
		Model:     energy.DefaultModel(),
		Repeat:    DefaultRepeat,
		Workloads: workload.Requests(),
		Scope:     meter.Process,
	}
}

// Validate rejects configurations whose averages or per-unit figures
// would divide by zero, plus invalid power models.
func (c Config) Validate() error {
	if c.Repeat <= 0 {
		return ErrZeroRepeat
	}
	if len(c.Workloads) == 0 {
		return ErrNoWorkloads
	}
	for _, w := range c.Workloads {
		if w.Iterations <= 0 {
			return &WorkloadError{Name: w.Name, Err: ErrZeroIterations}
		}
	}
	return c.Model.Validate()
}
