package mechanism

import "errors"

// Kind identifies a causal mechanism family.
type Kind string

const (
	// Linear is the direct proportional transform.
	Linear Kind = "linear"

	// Exponential accelerates (exponent > 1) or decelerates
	// (exponent < 1) effects with compounding.
	Exponential Kind = "exponential"

	// Threshold activates only above a minimum input magnitude.
	Threshold Kind = "threshold"

	// Saturation applies diminishing returns toward a bounded maximum.
	Saturation Kind = "saturation"
)

// Sentinel errors for mechanism construction and evaluation.
var (
	// ErrInvalidParameter indicates a missing or out-of-range
	// construction parameter.
	ErrInvalidParameter = errors.New("mechanism: invalid parameter")

	// ErrStrengthRange indicates a base strength outside [-1, 1].
	ErrStrengthRange = errors.New("mechanism: base strength must be in [-1, 1]")

	// ErrNonFiniteInput indicates a NaN or infinite input or strength.
	ErrNonFiniteInput = errors.New("mechanism: input must be finite")

	// ErrNilRelationship indicates a nil base relationship.
	ErrNilRelationship = errors.New("mechanism: base relationship is nil")

	// ErrNilMechanism indicates a nil mechanism.
	ErrNilMechanism = errors.New("mechanism: mechanism is nil")
)

// ExponentialConfig parameterizes the exponential mechanism.
type ExponentialConfig struct {
	// Exponent is the power applied to |input|. Must be positive.
	// Values above 1 accelerate effects, below 1 decelerate them;
	// exactly 1 reduces to the linear mechanism.
	Exponent float64
}

// DefaultExponentialConfig returns the standard exponential
// parameterization (Exponent = 1.5).
func DefaultExponentialConfig() ExponentialConfig {
	return ExponentialConfig{Exponent: 1.5}
}

// ThresholdConfig parameterizes the threshold mechanism.
type ThresholdConfig struct {
	// Threshold is the minimum |input| for any effect. Non-negative.
	Threshold float64

	// ScaleFactor rescales the excess beyond the threshold. Positive.
	ScaleFactor float64
}

// DefaultThresholdConfig returns the standard threshold
// parameterization (Threshold = 1.0, ScaleFactor = 1.0).
func DefaultThresholdConfig() ThresholdConfig {
	return ThresholdConfig{Threshold: 1.0, ScaleFactor: 1.0}
}

// SaturationConfig parameterizes the saturation mechanism.
type SaturationConfig struct {
	// MaxEffect is the asymptotic output magnitude before strength
	// weighting. Any sign.
	MaxEffect float64

	// HalfSaturation is the |input| at which the output reaches half
	// of MaxEffect. Positive.
	HalfSaturation float64
}

// DefaultSaturationConfig returns the standard saturation
// parameterization (MaxEffect = 1.0, HalfSaturation = 5.0).
func DefaultSaturationConfig() SaturationConfig {
	return SaturationConfig{MaxEffect: 1.0, HalfSaturation: 5.0}
}
