// Package mechanism provides the library of non-linear causal
// mechanisms: pure, immutable transforms that map a cause's value and a
// relationship's base strength to an effect.
//
// What:
//
//   - Linear:       effect = strength × input
//   - Exponential:  effect = strength × sign(input) × |input|^exponent
//   - Threshold:    zero until |input| exceeds a threshold, then the
//     excess beyond the threshold is rescaled
//   - Saturation:   Michaelis–Menten style diminishing returns, bounded
//     by |strength × maxEffect|
//   - EnhancedRelationship composes a causal.CausalRelationship with a
//     Mechanism, overriding the plain linear effect computation.
//
// Why:
//
//   - Monetary policy transmission: small rate moves are absorbed,
//     large ones trigger responses (Threshold).
//   - Okun's law: the unemployment–GDP link flattens at extremes
//     (Saturation).
//   - Crisis propagation: shocks compound through financial systems
//     (Exponential).
//
// Configuration follows the per-kind config struct idiom: start from
// DefaultExponentialConfig() (etc.), override fields, and pass the
// struct to the matching constructor. Invalid parameters fail at
// construction, never at Apply time. An exponent above 3 is accepted
// but recorded as a soft warning (Warnings()) since it risks
// numerically unrealistic growth.
//
// All mechanisms are stateless and safe for concurrent use.
//
// Errors:
//
//   - ErrInvalidParameter: missing or out-of-range construction parameter.
//   - ErrStrengthRange: base strength outside [-1, 1] at Apply time.
//   - ErrNonFiniteInput: NaN or ±Inf input or strength at Apply time.
//   - ErrNilRelationship / ErrNilMechanism: bad EnhancedRelationship input.
package mechanism
