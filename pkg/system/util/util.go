package util

// Mean is a running arithmetic mean.
//
// It updates as m += (v - m) / n, so n identical values average to exactly
// that value instead of drifting through a growing sum.
type Mean struct {
	n int
	m float64
}

func (a *Mean) Add(v float64) float64 {
	a.n++
	if a.n == 1 {
		a.m = v
		return v
	}
	a.m += (v - a.m) / float64(a.n)
	return a.m
}

// Value returns the current mean, 0 if nothing was added.
func (a *Mean) Value() float64 { return a.m }

// Count returns how many values were added.
func (a *Mean) Count() int { return a.n }
