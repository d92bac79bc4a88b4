package mechanism

// Preset mechanisms for well-known economic transmission channels.
// Each wraps empirically motivated parameters; all parameter sets are
// statically valid, so the constructors cannot fail.

// InterestRatePolicy models monetary policy transmission: rate changes
// below 0.25 (percentage points) are absorbed with no measurable
// effect, larger changes are amplified twofold.
func InterestRatePolicy() *Mechanism {
	m, _ := NewThreshold(ThresholdConfig{Threshold: 0.25, ScaleFactor: 2.0})

	return m
}

// OkunLaw models the unemployment–GDP relationship with saturation at
// extreme unemployment levels, where the economy approaches structural
// limits. The negative maximum encodes the inverse link.
func OkunLaw() *Mechanism {
	m, _ := NewSaturation(SaturationConfig{MaxEffect: -0.5, HalfSaturation: 8.0})

	return m
}

// OilPriceShock models cascading oil price effects that compound
// through the economy, particularly during crisis periods.
func OilPriceShock() *Mechanism {
	m, _ := NewExponential(ExponentialConfig{Exponent: 1.3})

	return m
}

// InvestmentReturns models the diminishing marginal productivity of
// capital: early investment pays off strongly, additional capital less so.
func InvestmentReturns() *Mechanism {
	m, _ := NewSaturation(SaturationConfig{MaxEffect: 0.8, HalfSaturation: 10.0})

	return m
}
