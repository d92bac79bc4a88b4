package shock

import "sort"

// SensitivityOptions configures AnalyzeSensitivity sweeps.
type SensitivityOptions struct {
	// Magnitudes are the shock magnitudes to sweep, each run with the
	// base dampening factor.
	Magnitudes []float64

	// Dampenings are the dampening factors to sweep, each run with the
	// base shock magnitude.
	Dampenings []float64

	// NumPeriods is the period cap per run. Positive.
	NumPeriods int
}

// DefaultSensitivityOptions returns the standard sweep: magnitudes
// 0.5–3.0σ and dampening factors 0.8–1.0, 12 periods each.
func DefaultSensitivityOptions() SensitivityOptions {
	return SensitivityOptions{
		Magnitudes: []float64{0.5, 1.0, 1.5, 2.0, 3.0},
		Dampenings: []float64{0.8, 0.9, 0.95, 1.0},
		NumPeriods: 12,
	}
}

// SensitivityRun is one scenario of a sensitivity sweep.
type SensitivityRun struct {
	// Magnitude and Dampening identify the scenario.
	Magnitude float64
	Dampening float64

	// FinalValues holds every variable's end-of-run value.
	FinalValues map[string]float64

	// CumulativeImpacts holds every variable's total absolute
	// deviation from its initial value.
	CumulativeImpacts map[string]float64

	// Converged reports early convergence for this scenario.
	Converged bool
}

// SensitivityReport aggregates all scenarios of one sweep.
type SensitivityReport struct {
	// Base is the reference shock that was varied.
	Base *ShockEvent

	// MagnitudeRuns vary the shock magnitude at the base dampening.
	MagnitudeRuns []SensitivityRun

	// DampeningRuns vary the dampening factor at the base magnitude.
	DampeningRuns []SensitivityRun
}

// AnalyzeSensitivity re-runs the propagation across magnitude and
// dampening ranges and reports final values and cumulative impacts
// per scenario. The base shock itself is never mutated.
//
// Any scenario failure aborts the whole analysis with that error.
// Complexity: O(S·P·(V+E)) for S scenarios.
func (e *Engine) AnalyzeSensitivity(base *ShockEvent, so SensitivityOptions) (*SensitivityReport, error) {
	if base == nil {
		return nil, ErrNilShock
	}
	if so.NumPeriods <= 0 {
		so.NumPeriods = DefaultOptions().NumPeriods
	}

	report := &SensitivityReport{Base: base}

	for _, magnitude := range so.Magnitudes {
		ev := *base
		ev.Magnitude = magnitude
		opts := DefaultOptions()
		opts.NumPeriods = so.NumPeriods
		run, err := e.sensitivityRun(&ev, &opts)
		if err != nil {
			return nil, err
		}
		report.MagnitudeRuns = append(report.MagnitudeRuns, run)
	}

	for _, dampening := range so.Dampenings {
		ev := *base
		opts := DefaultOptions()
		opts.NumPeriods = so.NumPeriods
		opts.DampeningFactor = dampening
		run, err := e.sensitivityRun(&ev, &opts)
		if err != nil {
			return nil, err
		}
		report.DampeningRuns = append(report.DampeningRuns, run)
	}

	return report, nil
}

// sensitivityRun executes one scenario and condenses its results.
func (e *Engine) sensitivityRun(ev *ShockEvent, opts *Options) (SensitivityRun, error) {
	res, err := e.PropagateShock(ev, opts)
	if err != nil {
		return SensitivityRun{}, err
	}
	impacts := make(map[string]float64, len(res.TimeSeries))
	for name := range res.TimeSeries {
		impacts[name] = res.CumulativeImpact(name)
	}

	return SensitivityRun{
		Magnitude:         ev.Magnitude,
		Dampening:         opts.DampeningFactor,
		FinalValues:       res.FinalValues(),
		CumulativeImpacts: impacts,
		Converged:         res.ConvergenceAchieved,
	}, nil
}

// RiskProfile scores one variable as a shock origin.
type RiskProfile struct {
	// Variable is the shocked variable.
	Variable string

	// TotalImpact sums every variable's cumulative impact when
	// Variable is shocked — the system-wide footprint.
	TotalImpact float64

	// AffectedVariables counts other variables with a non-zero
	// cumulative impact.
	AffectedVariables int

	// Converged reports whether the scenario settled early.
	Converged bool
}

// IdentifySystemicRisks shocks every variable in turn with a standard
// magnitude and ranks the variables by total system-wide impact
// (descending), ties broken by name. A nil opts uses DefaultOptions.
//
// Complexity: O(V·P·(V+E))
func (e *Engine) IdentifySystemicRisks(magnitude float64, opts *Options) ([]RiskProfile, error) {
	profiles := make([]RiskProfile, 0, len(e.order))
	for _, name := range e.order {
		res, err := e.PropagateShock(NewShockEvent(name, magnitude), opts)
		if err != nil {
			return nil, err
		}

		p := RiskProfile{Variable: name, Converged: res.ConvergenceAchieved}
		for other := range res.TimeSeries {
			impact := res.CumulativeImpact(other)
			p.TotalImpact += impact
			if other != name && impact > 0 {
				p.AffectedVariables++
			}
		}
		profiles = append(profiles, p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].TotalImpact != profiles[j].TotalImpact {
			return profiles[i].TotalImpact > profiles[j].TotalImpact
		}

		return profiles[i].Variable < profiles[j].Variable
	})

	return profiles, nil
}
