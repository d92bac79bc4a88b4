package causal

import (
	"fmt"
	"math"
)

// VariableKind classifies economic variables by their nature and
// controllability.
type VariableKind string

const (
	// Exogenous marks external factors not determined within the model
	// (oil prices, natural disasters).
	Exogenous VariableKind = "exogenous"

	// Endogenous marks variables determined by model relationships
	// (GDP, inflation).
	Endogenous VariableKind = "endogenous"

	// Policy marks variables controlled by policy makers
	// (interest rates, tax rates).
	Policy VariableKind = "policy"

	// Market marks variables determined by market forces
	// (stock prices, exchange rates).
	Market VariableKind = "market"

	// Indicator marks derived metrics summarizing economic conditions
	// (composite indices).
	Indicator VariableKind = "indicator"
)

// Kinds lists every VariableKind in declaration order.
func Kinds() []VariableKind {
	return []VariableKind{Exogenous, Endogenous, Policy, Market, Indicator}
}

// Bounds is the optional valid range of a variable. Either end may be
// absent; an unset end imposes no limit.
type Bounds struct {
	Lower, Upper       float64
	HasLower, HasUpper bool
}

// EconomicVariable represents one node of the causal graph.
//
// Name is the unique registry key. Value and Uncertainty describe the
// variable's current state; Uncertainty is interpreted as one standard
// deviation and must be non-negative. The propagation engine never
// mutates a registered variable — it works on private copies seeded
// from Value and Uncertainty.
type EconomicVariable struct {
	// Name uniquely identifies the variable within its graph.
	Name string

	// Kind classifies the variable (exogenous, policy, ...).
	Kind VariableKind

	// Value is the current numerical value.
	Value float64

	// Uncertainty is one standard deviation around Value. Non-negative.
	Uncertainty float64

	// Unit is the measurement unit ("USD", "percent", ...). Documentation only.
	Unit string

	// Description is a human-readable explanation. Documentation only.
	Description string

	bounds Bounds
}

// VariableOption configures optional fields of an EconomicVariable.
type VariableOption func(*EconomicVariable)

// WithBounds sets both ends of the valid range.
func WithBounds(lower, upper float64) VariableOption {
	return func(v *EconomicVariable) {
		v.bounds = Bounds{Lower: lower, Upper: upper, HasLower: true, HasUpper: true}
	}
}

// WithLowerBound sets only the lower end of the valid range.
func WithLowerBound(lower float64) VariableOption {
	return func(v *EconomicVariable) {
		v.bounds.Lower = lower
		v.bounds.HasLower = true
	}
}

// WithUpperBound sets only the upper end of the valid range.
func WithUpperBound(upper float64) VariableOption {
	return func(v *EconomicVariable) {
		v.bounds.Upper = upper
		v.bounds.HasUpper = true
	}
}

// WithUnit sets the measurement unit.
func WithUnit(unit string) VariableOption {
	return func(v *EconomicVariable) { v.Unit = unit }
}

// WithDescription sets the human-readable description.
func WithDescription(desc string) VariableOption {
	return func(v *EconomicVariable) { v.Description = desc }
}

// NewVariable constructs a validated EconomicVariable.
//
// Returns ErrEmptyName, ErrNegativeUncertainty, ErrBadBounds, or
// ErrValueOutOfBounds when the inputs violate the variable invariants.
func NewVariable(name string, kind VariableKind, value, uncertainty float64, opts ...VariableOption) (*EconomicVariable, error) {
	v := &EconomicVariable{
		Name:        name,
		Kind:        kind,
		Value:       value,
		Uncertainty: uncertainty,
	}
	for _, opt := range opts {
		opt(v)
	}
	if err := v.validate(); err != nil {
		return nil, err
	}

	return v, nil
}

// validate re-checks the construction invariants.
func (v *EconomicVariable) validate() error {
	if v.Name == "" {
		return ErrEmptyName
	}
	if v.Uncertainty < 0 {
		return fmt.Errorf("%w: %s has uncertainty %v", ErrNegativeUncertainty, v.Name, v.Uncertainty)
	}
	if v.bounds.HasLower && v.bounds.HasUpper && v.bounds.Lower > v.bounds.Upper {
		return fmt.Errorf("%w: %s has bounds (%v, %v)", ErrBadBounds, v.Name, v.bounds.Lower, v.bounds.Upper)
	}
	if !v.WithinBounds(v.Value) {
		return fmt.Errorf("%w: %s value %v", ErrValueOutOfBounds, v.Name, v.Value)
	}

	return nil
}

// Bounds reports the declared valid range.
func (v *EconomicVariable) Bounds() Bounds { return v.bounds }

// WithinBounds reports whether x lies inside the declared bounds.
// A variable without bounds accepts every value.
func (v *EconomicVariable) WithinBounds(x float64) bool {
	if v.bounds.HasLower && x < v.bounds.Lower {
		return false
	}
	if v.bounds.HasUpper && x > v.bounds.Upper {
		return false
	}

	return true
}

// Clamp saturates x into the declared bounds. With no bounds set, x is
// returned unchanged.
func (v *EconomicVariable) Clamp(x float64) float64 {
	if v.bounds.HasLower {
		x = math.Max(x, v.bounds.Lower)
	}
	if v.bounds.HasUpper {
		x = math.Min(x, v.bounds.Upper)
	}

	return x
}

// String renders the variable for diagnostics.
func (v *EconomicVariable) String() string {
	return fmt.Sprintf("EconomicVariable(%s, %s, value=%v, uncertainty=%v)", v.Name, v.Kind, v.Value, v.Uncertainty)
}

// CausalRelationship represents one directed edge of the causal graph:
// Source causes Target.
//
// Strength is the signed causal effect magnitude in [-1, 1]; its sign
// is the direction of the correlation. Confidence in [0, 1] expresses
// how certain the relationship is. LagPeriods is the number of simulated
// periods between a change in Source and its effect on Target.
type CausalRelationship struct {
	// Source is the causing variable's name.
	Source string

	// Target is the affected variable's name.
	Target string

	// Strength is the signed causal effect magnitude in [-1, 1].
	Strength float64

	// Confidence expresses certainty about the relationship in [0, 1].
	Confidence float64

	// LagPeriods delays the effect by this many simulated periods.
	LagPeriods int

	// Kind is a free-form tag ("linear", "policy", ...). Informational
	// unless an enhanced relationship overrides the effect computation.
	Kind string
}

// RelationshipOption configures optional fields of a CausalRelationship.
type RelationshipOption func(*CausalRelationship)

// WithLag sets the lag in periods between cause and effect.
func WithLag(periods int) RelationshipOption {
	return func(r *CausalRelationship) { r.LagPeriods = periods }
}

// WithKind sets the free-form relationship tag.
func WithKind(kind string) RelationshipOption {
	return func(r *CausalRelationship) { r.Kind = kind }
}

// NewRelationship constructs a validated CausalRelationship with the
// default tag "linear" and zero lag.
//
// Returns ErrEmptyName, ErrStrengthRange, ErrConfidenceRange, or
// ErrNegativeLag when inputs violate the relationship invariants.
func NewRelationship(source, target string, strength, confidence float64, opts ...RelationshipOption) (*CausalRelationship, error) {
	r := &CausalRelationship{
		Source:     source,
		Target:     target,
		Strength:   strength,
		Confidence: confidence,
		Kind:       "linear",
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// validate re-checks the construction invariants.
func (r *CausalRelationship) validate() error {
	if r.Source == "" || r.Target == "" {
		return ErrEmptyName
	}
	if r.Strength < -1 || r.Strength > 1 {
		return fmt.Errorf("%w: %s→%s has strength %v", ErrStrengthRange, r.Source, r.Target, r.Strength)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("%w: %s→%s has confidence %v", ErrConfidenceRange, r.Source, r.Target, r.Confidence)
	}
	if r.LagPeriods < 0 {
		return fmt.Errorf("%w: %s→%s has lag %d", ErrNegativeLag, r.Source, r.Target, r.LagPeriods)
	}

	return nil
}

// EffectMagnitude is the confidence-weighted absolute strength,
// |Strength| × Confidence.
func (r *CausalRelationship) EffectMagnitude() float64 {
	return math.Abs(r.Strength) * r.Confidence
}

// String renders the relationship for diagnostics.
func (r *CausalRelationship) String() string {
	return fmt.Sprintf("CausalRelationship(%s→%s, strength=%v, confidence=%v, lag=%d)",
		r.Source, r.Target, r.Strength, r.Confidence, r.LagPeriods)
}
