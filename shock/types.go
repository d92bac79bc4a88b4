package shock

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for engine construction, shock validation, and
// propagation.
var (
	// ErrNilGraph indicates a nil causal graph was passed to NewEngine.
	ErrNilGraph = errors.New("shock: causal graph is nil")

	// ErrInvalidGraph indicates the graph failed its structural
	// re-validation (a cycle or inconsistent indexing).
	ErrInvalidGraph = errors.New("shock: causal graph structure is invalid")

	// ErrNilShock indicates a nil shock event.
	ErrNilShock = errors.New("shock: shock event is nil")

	// ErrBadShock indicates invalid shock event parameters.
	ErrBadShock = errors.New("shock: invalid shock event")

	// ErrUnknownShockTarget indicates the shocked variable is not registered.
	ErrUnknownShockTarget = errors.New("shock: shock target variable not found")

	// ErrBadPeriods indicates a non-positive simulation period count.
	ErrBadPeriods = errors.New("shock: number of periods must be positive")

	// ErrBadDampening indicates a dampening factor outside (0, 1].
	ErrBadDampening = errors.New("shock: dampening factor must be in (0, 1]")

	// ErrUnknownRelationship indicates an enhancement for an edge that
	// does not exist in the base graph.
	ErrUnknownRelationship = errors.New("shock: no base relationship for that pair")

	// ErrNumericalInstability indicates a NaN or infinite value arose
	// during propagation; no partial results are returned.
	ErrNumericalInstability = errors.New("shock: propagation produced a non-finite value")
)

// uncertaintyGrowth is the fraction of a raw effect's magnitude added
// to a variable's working uncertainty each period.
const uncertaintyGrowth = 0.1

// convergenceWarmup is the number of initial periods exempt from the
// convergence check, so short-lived transients are not mistaken for
// equilibrium.
const convergenceWarmup = 3

// ShockEvent describes an exogenous disturbance applied to one
// variable, expressed in standard-deviation units.
//
// Duration 0 is a one-time shock active only at period 0. A positive
// Duration keeps the shock active through that period with exponential
// decay: magnitude × (1−DecayRate)^p.
type ShockEvent struct {
	// Variable names the shocked variable.
	Variable string

	// Magnitude is the signed shock size in standard deviations.
	Magnitude float64

	// Duration is the number of periods the shock persists
	// (0 = instantaneous, one-period shock). Non-negative.
	Duration int

	// DecayRate is the per-period decay of a persistent shock, in [0, 1].
	DecayRate float64

	// UncertaintyMultiplier scales the shocked variable's working
	// uncertainty while the shock is active. Non-negative.
	UncertaintyMultiplier float64

	// Description is free-form documentation.
	Description string
}

// NewShockEvent constructs a one-time shock with the neutral
// uncertainty multiplier of 1. Adjust exported fields for persistent
// or uncertainty-amplifying shocks; Validate (or PropagateShock)
// re-checks the invariants.
func NewShockEvent(variable string, magnitude float64) *ShockEvent {
	return &ShockEvent{
		Variable:              variable,
		Magnitude:             magnitude,
		UncertaintyMultiplier: 1.0,
	}
}

// Validate checks the shock event invariants.
// Returns ErrBadShock with detail on any violation.
func (s *ShockEvent) Validate() error {
	if s.Variable == "" {
		return fmt.Errorf("%w: empty variable name", ErrBadShock)
	}
	if math.IsNaN(s.Magnitude) || math.IsInf(s.Magnitude, 0) {
		return fmt.Errorf("%w: magnitude %v is not finite", ErrBadShock, s.Magnitude)
	}
	if s.Duration < 0 {
		return fmt.Errorf("%w: duration %d is negative", ErrBadShock, s.Duration)
	}
	if s.DecayRate < 0 || s.DecayRate > 1 {
		return fmt.Errorf("%w: decay rate %v outside [0, 1]", ErrBadShock, s.DecayRate)
	}
	if s.UncertaintyMultiplier < 0 {
		return fmt.Errorf("%w: uncertainty multiplier %v is negative", ErrBadShock, s.UncertaintyMultiplier)
	}

	return nil
}

// ActiveAt returns the shock magnitude at the given 0-indexed period.
//
// A one-time shock (Duration 0) is active only at period 0. A
// persistent shock decays exponentially, magnitude × (1−DecayRate)^p,
// and stops after its duration.
func (s *ShockEvent) ActiveAt(period int) float64 {
	if period < 0 {
		return 0
	}
	if s.Duration == 0 {
		if period == 0 {
			return s.Magnitude
		}

		return 0
	}
	if period <= s.Duration {
		return s.Magnitude * math.Pow(1-s.DecayRate, float64(period))
	}

	return 0
}

// String renders the shock event for diagnostics.
func (s *ShockEvent) String() string {
	return fmt.Sprintf("ShockEvent(%s, magnitude=%v, duration=%d, decay=%v)",
		s.Variable, s.Magnitude, s.Duration, s.DecayRate)
}

// Options configures a PropagateShock call. Start from DefaultOptions
// and override fields; a nil *Options means defaults.
type Options struct {
	// NumPeriods is the maximum number of periods to simulate. Positive.
	NumPeriods int

	// DampeningFactor scales every per-period effect and the
	// uncertainty growth, in (0, 1]. 1 disables dampening.
	DampeningFactor float64

	// ConvergenceThreshold is the raw-effect magnitude below which the
	// system counts as settled. A non-positive threshold disables
	// early convergence entirely.
	ConvergenceThreshold float64
}

// DefaultOptions returns the standard simulation parameters:
// 12 periods, dampening factor 0.95, convergence threshold 1e-6.
func DefaultOptions() Options {
	return Options{
		NumPeriods:           12,
		DampeningFactor:      0.95,
		ConvergenceThreshold: 1e-6,
	}
}

// validate checks the propagation arguments.
func (o Options) validate() error {
	if o.NumPeriods <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadPeriods, o.NumPeriods)
	}
	if !(o.DampeningFactor > 0 && o.DampeningFactor <= 1) {
		return fmt.Errorf("%w: got %v", ErrBadDampening, o.DampeningFactor)
	}

	return nil
}
