package shock

import "math"

// Metadata summarizes one simulation run.
type Metadata struct {
	// TotalVariables is the number of variables in the graph.
	TotalVariables int

	// TotalRelationships is the number of causal edges.
	TotalRelationships int

	// EnhancedRelationships is the number of mechanism overrides.
	EnhancedRelationships int

	// PeriodsRun is the number of periods actually executed, which is
	// less than the requested count when convergence stops the run early.
	PeriodsRun int

	// ShockMagnitude echoes the propagated shock's magnitude.
	ShockMagnitude float64

	// ShockDuration echoes the propagated shock's duration.
	ShockDuration int
}

// PeakEffect locates a variable's largest absolute deviation from its
// initial value: the series entry and the period index it occurred at.
type PeakEffect struct {
	Value  float64
	Period int
}

// PropagationResults is the complete output of one PropagateShock
// call: per-variable time series plus run metadata. It is created
// fresh per call and is read-only by convention once returned.
//
// Every series has length PeriodsRun+1; index 0 is the pre-shock state.
type PropagationResults struct {
	// TimeSeries maps each variable to its value trajectory.
	TimeSeries map[string][]float64

	// UncertaintySeries maps each variable to its uncertainty trajectory.
	UncertaintySeries map[string][]float64

	// Shock is the event that was propagated.
	Shock *ShockEvent

	// NumPeriods is the requested maximum period count.
	NumPeriods int

	// DampeningFactor is the factor the run was executed with.
	DampeningFactor float64

	// ConvergenceAchieved reports whether the run stopped early because
	// raw effects fell below the convergence threshold.
	ConvergenceAchieved bool

	// Metadata carries run statistics.
	Metadata Metadata
}

// Trajectory returns the value series for one variable and whether the
// variable was part of the simulation.
func (r *PropagationResults) Trajectory(variable string) ([]float64, bool) {
	series, ok := r.TimeSeries[variable]

	return series, ok
}

// FinalValues returns the last recorded value of every variable.
func (r *PropagationResults) FinalValues() map[string]float64 {
	out := make(map[string]float64, len(r.TimeSeries))
	for name, series := range r.TimeSeries {
		if len(series) > 0 {
			out[name] = series[len(series)-1]
		}
	}

	return out
}

// PeakEffects returns, per variable, the series entry with the largest
// absolute deviation from the initial value. Ties are broken by the
// earliest period.
func (r *PropagationResults) PeakEffects() map[string]PeakEffect {
	out := make(map[string]PeakEffect, len(r.TimeSeries))
	for name, series := range r.TimeSeries {
		if len(series) == 0 {
			continue
		}
		initial := series[0]
		peak := PeakEffect{Value: series[0], Period: 0}
		best := 0.0
		for i, v := range series {
			if dev := math.Abs(v - initial); dev > best {
				best = dev
				peak = PeakEffect{Value: v, Period: i}
			}
		}
		out[name] = peak
	}

	return out
}

// CumulativeImpact sums the absolute deviations from the initial value
// across the recorded series (entries after index 0), a total-impact
// measure of the shock on one variable. Unknown variables yield 0.
func (r *PropagationResults) CumulativeImpact(variable string) float64 {
	series, ok := r.TimeSeries[variable]
	if !ok || len(series) < 2 {
		return 0
	}
	initial := series[0]
	total := 0.0
	for _, v := range series[1:] {
		total += math.Abs(v - initial)
	}

	return total
}
