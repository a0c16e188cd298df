// Package uncertainty assigns a confidence radius to every trajectory
// point: a fixed measurement sigma for historical points and a linearly
// growing radius for projections.
package uncertainty

// Model holds the three radius constants. They are configuration, not
// derived quantities.
type Model struct {
	HistoricalSigma float64
	Base            float64
	Rate            float64
}

// Default returns the status-quo projection model.
func Default() Model {
	return Model{
		HistoricalSigma: 0.05,
		Base:            0.10,
		Rate:            0.05,
	}
}

// Intervened returns the model for intervention projections; an active
// protocol makes the outcome more predictable, so the radius grows slower.
func Intervened() Model {
	return Model{
		HistoricalSigma: 0.05,
		Base:            0.08,
		Rate:            0.03,
	}
}

// RadiusAt returns the confidence radius at timeMonths. Non-decreasing
// for all positive times.
func (m Model) RadiusAt(timeMonths float64) float64 {
	if timeMonths <= 0 {
		return m.HistoricalSigma
	}
	return m.Base + m.Rate*timeMonths
}
