// Package shock provides the propagation engine: multi-period
// simulation of how a disturbance to one variable spreads through a
// causal graph.
//
// What:
//
//   - ShockEvent describes the disturbance: target variable, magnitude
//     in standard-deviation units, duration, decay and an uncertainty
//     multiplier.
//   - Engine binds to a read-only causal.CausalGraph, optionally carries
//     per-edge mechanism.EnhancedRelationship overrides, and exposes
//     PropagateShock as the single simulation entry point.
//   - PropagationResults records full value and uncertainty series per
//     variable plus convergence metadata, with accessors for final
//     values, peak effects and cumulative impact.
//
// Per-period algorithm (period p = 1..N):
//
//  1. Shock injection: the active magnitude at p−1 times the shocked
//     variable's registered uncertainty is added to its working value;
//     its working uncertainty is scaled by the uncertainty multiplier.
//  2. Effect resolution: variables are visited in topological order;
//     each direct cause contributes mechanism(input) or the linear
//     fallback strength × input, where input is the cause's current
//     working value for zero-lag edges or the oldest entry of the
//     edge's lag buffer otherwise. Contributions sum into one raw
//     effect per variable, all read from the same pre-update snapshot.
//  3. Update: raw effects are scaled by the global dampening factor and
//     added to working values; uncertainty grows by 0.1×|raw effect|
//     and is then scaled by the dampening factor; values are silently
//     clamped into variable bounds.
//  4. History: each variable's new working value is pushed onto the lag
//     buffers of its outgoing lagged edges (fixed-length FIFO of raw
//     values, seeded with the source's initial value).
//  5. Recording: new values and uncertainties are appended to the
//     per-variable output series.
//  6. Convergence: after period 3, if the largest raw pre-dampening
//     effect magnitude falls below the convergence threshold, the
//     simulation stops early.
//
// Determinism & concurrency: one PropagateShock call owns its working
// state entirely and never mutates the graph or the registry, so
// distinct scenarios may run in parallel on separate Engine instances
// bound to the same read-only graph. There is no internal timeout or
// cancellation point; bound run time with the period count.
//
// Errors:
//
//   - ErrNilGraph / ErrInvalidGraph: engine construction preconditions.
//   - ErrNilShock / ErrUnknownShockTarget / ErrBadShock: shock validation.
//   - ErrBadPeriods / ErrBadDampening: propagation argument validation.
//   - ErrUnknownRelationship: enhancement of a non-existent edge.
//   - ErrNumericalInstability: a NaN or infinite effect or value; the
//     call fails as a whole and returns no partial results.
package shock
