package mechanism

import (
	"fmt"
	"math"
	"strings"
)

// extremeExponent is the soft limit above which exponential growth is
// flagged as numerically unrealistic.
const extremeExponent = 3.0

// sampleStrength is the base strength used by SampleOutputs.
const sampleStrength = 0.5

// Mechanism is a pure, immutable causal transform. Construct one with
// NewLinear, NewExponential, NewThreshold, or NewSaturation; parameters
// are validated once at construction and never change.
type Mechanism struct {
	kind Kind

	exponent       float64
	threshold      float64
	scaleFactor    float64
	maxEffect      float64
	halfSaturation float64

	warnings []string
}

// NewLinear constructs the parameterless linear mechanism.
func NewLinear() *Mechanism {
	return &Mechanism{kind: Linear}
}

// NewExponential constructs an exponential mechanism.
//
// Returns ErrInvalidParameter for a non-positive exponent. An exponent
// above 3 is accepted with a soft warning (see Warnings).
func NewExponential(cfg ExponentialConfig) (*Mechanism, error) {
	if !isFinite(cfg.Exponent) || cfg.Exponent <= 0 {
		return nil, fmt.Errorf("%w: exponent must be positive, got %v", ErrInvalidParameter, cfg.Exponent)
	}
	m := &Mechanism{kind: Exponential, exponent: cfg.Exponent}
	if cfg.Exponent > extremeExponent {
		m.warnings = append(m.warnings,
			fmt.Sprintf("exponent %v > %v may produce unrealistic exponential growth", cfg.Exponent, extremeExponent))
	}

	return m, nil
}

// NewThreshold constructs a threshold mechanism.
//
// Returns ErrInvalidParameter for a negative threshold or a
// non-positive scale factor.
func NewThreshold(cfg ThresholdConfig) (*Mechanism, error) {
	if !isFinite(cfg.Threshold) || cfg.Threshold < 0 {
		return nil, fmt.Errorf("%w: threshold must be non-negative, got %v", ErrInvalidParameter, cfg.Threshold)
	}
	if !isFinite(cfg.ScaleFactor) || cfg.ScaleFactor <= 0 {
		return nil, fmt.Errorf("%w: scale factor must be positive, got %v", ErrInvalidParameter, cfg.ScaleFactor)
	}

	return &Mechanism{kind: Threshold, threshold: cfg.Threshold, scaleFactor: cfg.ScaleFactor}, nil
}

// NewSaturation constructs a saturation mechanism.
//
// Returns ErrInvalidParameter for a non-positive half-saturation point.
// MaxEffect may carry either sign (a negative maximum models inverse
// saturating links such as Okun's law).
func NewSaturation(cfg SaturationConfig) (*Mechanism, error) {
	if !isFinite(cfg.MaxEffect) {
		return nil, fmt.Errorf("%w: max effect must be finite, got %v", ErrInvalidParameter, cfg.MaxEffect)
	}
	if !isFinite(cfg.HalfSaturation) || cfg.HalfSaturation <= 0 {
		return nil, fmt.Errorf("%w: half saturation must be positive, got %v", ErrInvalidParameter, cfg.HalfSaturation)
	}

	return &Mechanism{kind: Saturation, maxEffect: cfg.MaxEffect, halfSaturation: cfg.HalfSaturation}, nil
}

// Kind reports the mechanism family.
func (m *Mechanism) Kind() Kind { return m.kind }

// Warnings returns soft construction warnings (never errors), such as
// an extreme exponent. The returned slice is a copy.
func (m *Mechanism) Warnings() []string {
	if len(m.warnings) == 0 {
		return nil
	}
	out := make([]string, len(m.warnings))
	copy(out, m.warnings)

	return out
}

// Apply transforms input into an effect, weighted by baseStrength.
//
// baseStrength must lie in [-1, 1]; both arguments must be finite.
// Zero input always yields zero effect. The input's sign is preserved
// through every mechanism, so negative causes produce correspondingly
// signed effects.
//
// Returns ErrStrengthRange or ErrNonFiniteInput on invalid arguments.
// Complexity: O(1)
func (m *Mechanism) Apply(input, baseStrength float64) (float64, error) {
	if !isFinite(input) || !isFinite(baseStrength) {
		return 0, fmt.Errorf("%w: input=%v strength=%v", ErrNonFiniteInput, input, baseStrength)
	}
	if baseStrength < -1 || baseStrength > 1 {
		return 0, fmt.Errorf("%w: got %v", ErrStrengthRange, baseStrength)
	}

	switch m.kind {
	case Linear:
		return baseStrength * input, nil
	case Exponential:
		return m.applyExponential(input, baseStrength), nil
	case Threshold:
		return m.applyThreshold(input, baseStrength), nil
	case Saturation:
		return m.applySaturation(input, baseStrength), nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidParameter, m.kind)
	}
}

// applyExponential computes strength × sign(input) × |input|^exponent.
func (m *Mechanism) applyExponential(input, strength float64) float64 {
	if input == 0 {
		return 0
	}

	return strength * sign(input) * math.Pow(math.Abs(input), m.exponent)
}

// applyThreshold zeroes everything up to the threshold and rescales
// only the excess beyond it.
func (m *Mechanism) applyThreshold(input, strength float64) float64 {
	if math.Abs(input) <= m.threshold {
		return 0
	}
	excess := input - sign(input)*m.threshold

	return strength * m.scaleFactor * excess
}

// applySaturation computes the Michaelis–Menten style curve
// strength × sign(input) × (maxEffect × |input|) / (halfSaturation + |input|).
// At |input| = halfSaturation the magnitude is exactly half of
// |strength × maxEffect|; it approaches that product asymptotically.
func (m *Mechanism) applySaturation(input, strength float64) float64 {
	if input == 0 {
		return 0
	}
	abs := math.Abs(input)

	return strength * sign(input) * (m.maxEffect * abs) / (m.halfSaturation + abs)
}

// SampleOutputs evaluates the mechanism over inputs at a standard base
// strength of 0.5, for documentation and curve inspection. Points that
// fail evaluation yield NaN.
func (m *Mechanism) SampleOutputs(inputs []float64) []float64 {
	out := make([]float64, len(inputs))
	for i, x := range inputs {
		v, err := m.Apply(x, sampleStrength)
		if err != nil {
			v = math.NaN()
		}
		out[i] = v
	}

	return out
}

// String renders the mechanism and its parameters for diagnostics.
func (m *Mechanism) String() string {
	var params []string
	switch m.kind {
	case Exponential:
		params = append(params, fmt.Sprintf("exponent=%v", m.exponent))
	case Threshold:
		params = append(params, fmt.Sprintf("threshold=%v", m.threshold), fmt.Sprintf("scale_factor=%v", m.scaleFactor))
	case Saturation:
		params = append(params, fmt.Sprintf("max_effect=%v", m.maxEffect), fmt.Sprintf("half_saturation=%v", m.halfSaturation))
	}

	return fmt.Sprintf("Mechanism(%s%s)", m.kind, prefixed(", ", strings.Join(params, ", ")))
}

// prefixed prepends p to s unless s is empty.
func prefixed(p, s string) string {
	if s == "" {
		return ""
	}

	return p + s
}

// sign returns 1 for non-negative x and -1 otherwise, matching the
// convention used throughout the mechanism formulas.
func sign(x float64) float64 {
	if x >= 0 {
		return 1
	}

	return -1
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
