package energy

// Power returns the instantaneous draw in Watts for a CPU utilization
// given in percent:
//
//	P = PIdle + (cpuPercent/100) * (PMax - PIdle)
//
// The percentage is used as-is. Values below 0 or above 100 extrapolate
// the line instead of being clamped.
func (m Model) Power(cpuPercent float64) float64 {
	u := cpuPercent / 100.0
	return m.PIdle + u*(m.PMax-m.PIdle)
}

// Energy returns Joules consumed over elapsedSec seconds at the given
// CPU utilization percent:
//
//	E = Power(cpuPercent) * elapsedSec
//
// No input is validated. A negative duration yields negative energy.
func (m Model) Energy(elapsedSec, cpuPercent float64) float64 {
	return m.Power(cpuPercent) * elapsedSec
}
