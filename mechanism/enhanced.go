package mechanism

import (
	"fmt"

	"github.com/ecodyn/shockgraph/causal"
)

// EnhancedRelationship pairs a base causal relationship with a
// mechanism. Identity properties (source, target, strength, confidence,
// lag) delegate to the base relationship; the effect computation is
// overridden by the mechanism.
//
// When no enhanced relationship is registered for an edge, the
// propagation engine falls back to the plain linear effect
// strength × input.
type EnhancedRelationship struct {
	base *causal.CausalRelationship
	mech *Mechanism
}

// NewEnhanced composes a base relationship with a mechanism.
//
// Returns ErrNilRelationship or ErrNilMechanism on nil input.
func NewEnhanced(base *causal.CausalRelationship, m *Mechanism) (*EnhancedRelationship, error) {
	if base == nil {
		return nil, ErrNilRelationship
	}
	if m == nil {
		return nil, ErrNilMechanism
	}

	return &EnhancedRelationship{base: base, mech: m}, nil
}

// ApplyEffect transforms input through the mechanism using the base
// relationship's strength.
func (e *EnhancedRelationship) ApplyEffect(input float64) (float64, error) {
	return e.mech.Apply(input, e.base.Strength)
}

// Base returns the underlying causal relationship.
func (e *EnhancedRelationship) Base() *causal.CausalRelationship { return e.base }

// Mechanism returns the composed mechanism.
func (e *EnhancedRelationship) Mechanism() *Mechanism { return e.mech }

// Source is the causing variable's name, from the base relationship.
func (e *EnhancedRelationship) Source() string { return e.base.Source }

// Target is the affected variable's name, from the base relationship.
func (e *EnhancedRelationship) Target() string { return e.base.Target }

// Strength is the base relationship's signed strength.
func (e *EnhancedRelationship) Strength() float64 { return e.base.Strength }

// Confidence is the base relationship's confidence.
func (e *EnhancedRelationship) Confidence() float64 { return e.base.Confidence }

// LagPeriods is the base relationship's lag in periods.
func (e *EnhancedRelationship) LagPeriods() int { return e.base.LagPeriods }

// String renders the enhanced relationship for diagnostics.
func (e *EnhancedRelationship) String() string {
	return fmt.Sprintf("EnhancedRelationship(%s→%s, %s)", e.base.Source, e.base.Target, e.mech.kind)
}
