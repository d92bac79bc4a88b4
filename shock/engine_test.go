package shock_test

import (
	"testing"

	"github.com/ecodyn/shockgraph/causal"
	"github.com/ecodyn/shockgraph/mechanism"
	"github.com/ecodyn/shockgraph/shock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addVariable registers a variable built from the given parameters.
func addVariable(t *testing.T, g *causal.CausalGraph, name string, value, uncertainty float64, opts ...causal.VariableOption) {
	t.Helper()
	v, err := causal.NewVariable(name, causal.Endogenous, value, uncertainty, opts...)
	require.NoError(t, err)
	require.NoError(t, g.AddVariable(v))
}

// addRelationship inserts an edge built from the given parameters.
func addRelationship(t *testing.T, g *causal.CausalGraph, source, target string, strength, confidence float64, opts ...causal.RelationshipOption) {
	t.Helper()
	r, err := causal.NewRelationship(source, target, strength, confidence, opts...)
	require.NoError(t, err)
	require.NoError(t, g.AddRelationship(r))
}

// newEngine wraps NewEngine with a test failure on error.
func newEngine(t *testing.T, g *causal.CausalGraph) *shock.Engine {
	t.Helper()
	e, err := shock.NewEngine(g)
	require.NoError(t, err)

	return e
}

// TestNewEngine_NilGraph ensures the nil precondition.
func TestNewEngine_NilGraph(t *testing.T) {
	_, err := shock.NewEngine(nil)
	assert.ErrorIs(t, err, shock.ErrNilGraph)
}

// TestPropagateShock_ArgumentValidation covers every precondition
// failure before any state mutation.
func TestPropagateShock_ArgumentValidation(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 10.0, 1.0)
	e := newEngine(t, g)

	_, err := e.PropagateShock(nil, nil)
	assert.ErrorIs(t, err, shock.ErrNilShock)

	_, err = e.PropagateShock(shock.NewShockEvent("ghost", 2.0), nil)
	assert.ErrorIs(t, err, shock.ErrUnknownShockTarget)

	bad := shock.NewShockEvent("A", 2.0)
	bad.Duration = -1
	_, err = e.PropagateShock(bad, nil)
	assert.ErrorIs(t, err, shock.ErrBadShock)

	opts := shock.DefaultOptions()
	opts.NumPeriods = 0
	_, err = e.PropagateShock(shock.NewShockEvent("A", 2.0), &opts)
	assert.ErrorIs(t, err, shock.ErrBadPeriods)

	opts = shock.DefaultOptions()
	opts.DampeningFactor = 0
	_, err = e.PropagateShock(shock.NewShockEvent("A", 2.0), &opts)
	assert.ErrorIs(t, err, shock.ErrBadDampening)

	opts = shock.DefaultOptions()
	opts.DampeningFactor = 1.2
	_, err = e.PropagateShock(shock.NewShockEvent("A", 2.0), &opts)
	assert.ErrorIs(t, err, shock.ErrBadDampening)
}

// TestPropagateShock_SingleVariable pins the exact single-variable
// trajectory: 10.0 jumps to 12.0 (magnitude × uncertainty) at period 1
// and stays there without self-referencing edges.
func TestPropagateShock_SingleVariable(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 10.0, 1.0, causal.WithBounds(0, 100))
	e := newEngine(t, g)

	opts := shock.Options{NumPeriods: 3, DampeningFactor: 1.0, ConvergenceThreshold: 1e-6}
	res, err := e.PropagateShock(shock.NewShockEvent("A", 2.0), &opts)
	require.NoError(t, err)

	series, ok := res.Trajectory("A")
	require.True(t, ok)
	require.Len(t, series, 4, "index 0 is the pre-shock state")
	assert.Equal(t, 10.0, series[0])
	assert.Equal(t, 12.0, series[1], "10.0 + 2.0 × 1.0")
	assert.Equal(t, 12.0, series[2])
	assert.Equal(t, 12.0, series[3])
	assert.NotEqual(t, series[0], series[len(series)-1], "shock must reach the series")

	// The registry itself is never touched.
	assert.Equal(t, 10.0, g.Variable("A").Value)
	assert.Equal(t, 1.0, g.Variable("A").Uncertainty)
}

// TestPropagateShock_ZeroLagChain ensures zero-lag edges transmit in
// the same period: B moves whenever A moves.
func TestPropagateShock_ZeroLagChain(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 1.0, 1.0)
	addVariable(t, g, "B", 0.0, 0.1)
	addRelationship(t, g, "A", "B", -0.9, 0.8)
	e := newEngine(t, g)

	opts := shock.Options{NumPeriods: 1, DampeningFactor: 1.0, ConvergenceThreshold: 1e-6}
	res, err := e.PropagateShock(shock.NewShockEvent("A", 2.0), &opts)
	require.NoError(t, err)

	a, _ := res.Trajectory("A")
	b, _ := res.Trajectory("B")
	assert.Equal(t, 3.0, a[1], "1.0 + 2.0 × 1.0")
	assert.NotEqual(t, b[0], b[1], "zero-lag edges must not be dropped")
	assert.InDelta(t, -2.7, b[1], 1e-12, "-0.9 × 3.0 from the post-injection snapshot")
}

// TestPropagateShock_LaggedEdgeInertUntilLagElapses verifies the FIFO
// lag buffer semantics: with lag 2, B first reacts at period 3, to A's
// period-1 value.
func TestPropagateShock_LaggedEdgeInertUntilLagElapses(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 0.0, 1.0)
	addVariable(t, g, "B", 0.0, 0.1)
	addRelationship(t, g, "A", "B", 1.0, 1.0, causal.WithLag(2))
	e := newEngine(t, g)

	// Convergence disabled so the zero-effect warmup cannot stop the run.
	opts := shock.Options{NumPeriods: 4, DampeningFactor: 1.0, ConvergenceThreshold: 0}
	res, err := e.PropagateShock(shock.NewShockEvent("A", 1.0), &opts)
	require.NoError(t, err)

	a, _ := res.Trajectory("A")
	b, _ := res.Trajectory("B")
	assert.Equal(t, []float64{0, 1, 1, 1, 1}, a)
	assert.Equal(t, []float64{0, 0, 0, 1, 2}, b,
		"lagged input is the source value from exactly lag periods ago")
}

// TestPropagateShock_DampeningScalesEffects verifies the global
// dampening factor scales the applied (not raw) effect.
func TestPropagateShock_DampeningScalesEffects(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 2.0, 1.0)
	addVariable(t, g, "B", 0.0, 0.1)
	addRelationship(t, g, "A", "B", 0.5, 1.0)
	e := newEngine(t, g)

	opts := shock.Options{NumPeriods: 1, DampeningFactor: 0.5, ConvergenceThreshold: 1e-6}
	res, err := e.PropagateShock(shock.NewShockEvent("A", 0.0), &opts)
	require.NoError(t, err)

	b, _ := res.Trajectory("B")
	assert.InDelta(t, 0.5, b[1], 1e-12, "0.5 × (0.5 × 2.0)")
}

// TestPropagateShock_BoundsClampSilently verifies the saturation policy:
// the working value is clamped into bounds with no error.
func TestPropagateShock_BoundsClampSilently(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 9.0, 1.0, causal.WithBounds(0, 10))
	e := newEngine(t, g)

	opts := shock.Options{NumPeriods: 2, DampeningFactor: 1.0, ConvergenceThreshold: 1e-6}
	res, err := e.PropagateShock(shock.NewShockEvent("A", 5.0), &opts)
	require.NoError(t, err)

	a, _ := res.Trajectory("A")
	assert.Equal(t, 10.0, a[1], "9.0 + 5.0 clamped to the upper bound")
}

// TestPropagateShock_UncertaintyEvolution verifies the multiplier at
// injection and the 0.1×|raw effect| growth plus dampening decay.
func TestPropagateShock_UncertaintyEvolution(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 2.0, 1.0)
	addVariable(t, g, "B", 0.0, 0.5)
	addRelationship(t, g, "A", "B", 0.5, 1.0)
	e := newEngine(t, g)

	ev := shock.NewShockEvent("A", 1.0)
	ev.UncertaintyMultiplier = 2.0
	opts := shock.Options{NumPeriods: 1, DampeningFactor: 1.0, ConvergenceThreshold: 1e-6}
	res, err := e.PropagateShock(ev, &opts)
	require.NoError(t, err)

	ua := res.UncertaintySeries["A"]
	assert.Equal(t, 1.0, ua[0])
	assert.Equal(t, 2.0, ua[1], "doubled at injection, no effects on A")

	ub := res.UncertaintySeries["B"]
	// A's working value after injection is 3.0; raw effect on B is 1.5.
	assert.InDelta(t, 0.5+0.1*1.5, ub[1], 1e-12)
}

// TestPropagateShock_PersistentShockAccumulates verifies multi-period
// injection of a decaying shock.
func TestPropagateShock_PersistentShockAccumulates(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 0.0, 1.0)
	e := newEngine(t, g)

	ev := shock.NewShockEvent("A", 1.0)
	ev.Duration = 2
	ev.DecayRate = 0.5
	opts := shock.Options{NumPeriods: 4, DampeningFactor: 1.0, ConvergenceThreshold: 0}
	res, err := e.PropagateShock(ev, &opts)
	require.NoError(t, err)

	a, _ := res.Trajectory("A")
	assert.InDelta(t, 1.0, a[1], 1e-12, "active(0) = 1.0")
	assert.InDelta(t, 1.5, a[2], 1e-12, "plus active(1) = 0.5")
	assert.InDelta(t, 1.75, a[3], 1e-12, "plus active(2) = 0.25")
	assert.InDelta(t, 1.75, a[4], 1e-12, "inactive past the duration")
}

// TestPropagateShock_ConvergenceStopsEarly verifies early termination
// once raw effects vanish, and the metadata period count.
func TestPropagateShock_ConvergenceStopsEarly(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 10.0, 1.0)
	e := newEngine(t, g)

	res, err := e.PropagateShock(shock.NewShockEvent("A", 2.0), nil)
	require.NoError(t, err)

	assert.True(t, res.ConvergenceAchieved, "no edges: raw effects are zero")
	assert.Equal(t, 4, res.Metadata.PeriodsRun, "first check happens after the warmup")
	a, _ := res.Trajectory("A")
	assert.Len(t, a, 5, "periods run + pre-shock state")
	assert.Equal(t, 12, res.NumPeriods, "requested cap is preserved")
}

// TestPropagateShock_EnhancedOverride verifies the engine consults the
// registered mechanism instead of the linear fallback.
func TestPropagateShock_EnhancedOverride(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 0.0, 1.0)
	addVariable(t, g, "B", 0.0, 0.1)
	addRelationship(t, g, "A", "B", 0.5, 1.0)
	e := newEngine(t, g)

	m, err := mechanism.NewThreshold(mechanism.ThresholdConfig{Threshold: 1.0, ScaleFactor: 2.0})
	require.NoError(t, err)
	require.NoError(t, e.AddEnhancedRelationship("A", "B", m))
	assert.Equal(t, 1, e.EnhancedCount())

	opts := shock.Options{NumPeriods: 1, DampeningFactor: 1.0, ConvergenceThreshold: 1e-6}

	// Below the threshold the mechanism absorbs the move entirely.
	res, err := e.PropagateShock(shock.NewShockEvent("A", 0.5), &opts)
	require.NoError(t, err)
	b, _ := res.Trajectory("B")
	assert.Zero(t, b[1], "0.5 is below the threshold")

	// Above it, only the excess counts: 0.5 × 2.0 × (3.0 − 1.0).
	res, err = e.PropagateShock(shock.NewShockEvent("A", 3.0), &opts)
	require.NoError(t, err)
	b, _ = res.Trajectory("B")
	assert.InDelta(t, 2.0, b[1], 1e-12)
}

// TestAddEnhancedRelationship_UnknownPair ensures enhancement requires
// an existing base edge, and that re-registration overwrites.
func TestAddEnhancedRelationship_UnknownPair(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 0.0, 1.0)
	addVariable(t, g, "B", 0.0, 1.0)
	addRelationship(t, g, "A", "B", 0.5, 1.0)
	e := newEngine(t, g)

	err := e.AddEnhancedRelationship("B", "A", mechanism.NewLinear())
	assert.ErrorIs(t, err, shock.ErrUnknownRelationship)

	require.NoError(t, e.AddEnhancedRelationship("A", "B", mechanism.NewLinear()))
	require.NoError(t, e.AddEnhancedRelationship("A", "B", mechanism.OilPriceShock()))
	assert.Equal(t, 1, e.EnhancedCount(), "re-registration replaces, not accumulates")
}

// TestPropagateShock_Metadata verifies the run statistics.
func TestPropagateShock_Metadata(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 1.0, 1.0)
	addVariable(t, g, "B", 0.0, 0.1)
	addRelationship(t, g, "A", "B", 0.5, 1.0)
	e := newEngine(t, g)
	require.NoError(t, e.AddEnhancedRelationship("A", "B", mechanism.NewLinear()))

	ev := shock.NewShockEvent("A", 1.5)
	ev.Duration = 2
	opts := shock.Options{NumPeriods: 5, DampeningFactor: 0.95, ConvergenceThreshold: 1e-6}
	res, err := e.PropagateShock(ev, &opts)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Metadata.TotalVariables)
	assert.Equal(t, 1, res.Metadata.TotalRelationships)
	assert.Equal(t, 1, res.Metadata.EnhancedRelationships)
	assert.Equal(t, 5, res.Metadata.PeriodsRun, "raw effects stay above threshold")
	assert.Equal(t, 1.5, res.Metadata.ShockMagnitude)
	assert.Equal(t, 2, res.Metadata.ShockDuration)
}

// TestPropagateShock_IndependentRunsAreIdentical verifies that repeated
// runs on one engine reproduce the same series (no leaked state).
func TestPropagateShock_IndependentRunsAreIdentical(t *testing.T) {
	g := causal.NewCausalGraph()
	addVariable(t, g, "A", 1.0, 1.0)
	addVariable(t, g, "B", 0.0, 0.2)
	addRelationship(t, g, "A", "B", 0.7, 0.9, causal.WithLag(1))
	e := newEngine(t, g)

	first, err := e.PropagateShock(shock.NewShockEvent("A", 2.0), nil)
	require.NoError(t, err)
	second, err := e.PropagateShock(shock.NewShockEvent("A", 2.0), nil)
	require.NoError(t, err)

	assert.Equal(t, first.TimeSeries, second.TimeSeries)
	assert.Equal(t, first.UncertaintySeries, second.UncertaintySeries)
}
