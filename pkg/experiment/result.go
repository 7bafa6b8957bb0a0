package experiment

// TrialResult is one loop execution priced by the energy model.
type TrialResult struct {
	ElapsedSec float64
	CPUPercent float64
	EnergyJ    float64
}

// AggregateResult is the mean over all trials of one workload.
type AggregateResult struct {
	Workload       string  `json:"workload"`
	Iterations     int     `json:"iterations"`
	Trials         int     `json:"trials"`
	MeanElapsedSec float64 `json:"time_s"`
	MeanCPUPercent float64 `json:"cpu_pct"`
	MeanEnergyJ    float64 `json:"energy_j"`
	EnergyPerUnitJ float64 `json:"j_per_request"`
}

// ProbeResult is a single loop timing plus a host-wide CPU sample taken after it.
type ProbeResult struct {
	Workload   string  `json:"workload"`
	ElapsedSec float64 `json:"time_s"`
	CPUPercent float64 `json:"cpu_pct"`
}
