package energy

// Model holds the linear power model coefficients.
// Units:
//   - PIdle: Watts drawn at 0% utilization
//   - PMax:  Watts drawn at 100% utilization
//
// A valid model has PMax > PIdle >= 0; see Validate.
type Model struct {
	PIdle float64
	PMax  float64
}

// DefaultModel returns the typical server node assumed by the study.
func DefaultModel() Model {
	return Model{
		PIdle: 50.0,  // W at idle
		PMax:  150.0, // W at full utilization
	}
}

// Validate reports whether the coefficients describe a usable model.
func (m Model) Validate() error {
	if m.PIdle < 0 {
		return ErrNegativeIdle
	}
	if !(m.PMax > m.PIdle) {
		return ErrMaxNotAboveIdle
	}
	return nil
}
