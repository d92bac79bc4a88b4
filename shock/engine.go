package shock

import (
	"fmt"
	"math"

	"github.com/ecodyn/shockgraph/causal"
	"github.com/ecodyn/shockgraph/mechanism"
)

// pairKey indexes enhanced relationships and lag buffers by the
// ordered (source, target) pair.
type pairKey struct {
	source, target string
}

// Engine propagates shocks through a causal graph.
//
// The engine holds a reference to the graph and never mutates it; all
// simulation state is private to each PropagateShock call. Build the
// graph fully before constructing the engine — the topological order
// and per-variable cause lists are cached at construction.
type Engine struct {
	graph    *causal.CausalGraph
	order    []string
	causes   map[string][]*causal.CausalRelationship
	enhanced map[pairKey]*mechanism.EnhancedRelationship
}

// NewEngine binds an engine to a causal graph, re-validating the
// structure and caching the topological order.
//
// Returns ErrNilGraph, or ErrInvalidGraph if the graph is not acyclic.
// Complexity: O(V+E)
func NewEngine(g *causal.CausalGraph) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	order := g.TopologicalOrder()
	if len(order) != g.VariableCount() {
		return nil, fmt.Errorf("%w: graph contains a cycle", ErrInvalidGraph)
	}

	causes := make(map[string][]*causal.CausalRelationship, len(order))
	for _, name := range order {
		list, err := g.DirectCauses(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGraph, err)
		}
		causes[name] = list
	}

	return &Engine{
		graph:    g,
		order:    order,
		causes:   causes,
		enhanced: make(map[pairKey]*mechanism.EnhancedRelationship),
	}, nil
}

// Graph returns the bound causal graph.
func (e *Engine) Graph() *causal.CausalGraph { return e.graph }

// AddEnhancedRelationship overrides the effect computation of an
// existing edge with a mechanism. Registering the same pair again
// replaces the previous enhancement.
//
// Returns ErrUnknownRelationship if no base relationship exists for
// the ordered pair, or a mechanism composition error.
func (e *Engine) AddEnhancedRelationship(source, target string, m *mechanism.Mechanism) error {
	base := e.graph.Relationship(source, target)
	if base == nil {
		return fmt.Errorf("%w: %s→%s", ErrUnknownRelationship, source, target)
	}
	enh, err := mechanism.NewEnhanced(base, m)
	if err != nil {
		return err
	}
	e.enhanced[pairKey{source, target}] = enh

	return nil
}

// EnhancedCount reports the number of registered mechanism overrides.
func (e *Engine) EnhancedCount() int { return len(e.enhanced) }

// PropagateShock simulates the shock period by period and returns the
// complete time series for every variable. A nil opts uses
// DefaultOptions.
//
// The call owns all of its working state: neither the graph nor any
// registered variable is mutated, so independent scenarios may run
// concurrently on separate engines bound to the same graph.
//
// Returns ErrNilShock, ErrBadShock, ErrUnknownShockTarget,
// ErrBadPeriods, ErrBadDampening, a mechanism evaluation error, or
// ErrNumericalInstability. On any error no partial results are returned.
// Complexity: O(P·(V+E)) for P executed periods.
func (e *Engine) PropagateShock(ev *ShockEvent, opts *Options) (*PropagationResults, error) {
	if ev == nil {
		return nil, ErrNilShock
	}
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	shocked := e.graph.Variable(ev.Variable)
	if shocked == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShockTarget, ev.Variable)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	st := e.newRunState()
	results := &PropagationResults{
		TimeSeries:        make(map[string][]float64, len(e.order)),
		UncertaintySeries: make(map[string][]float64, len(e.order)),
		Shock:             ev,
		NumPeriods:        o.NumPeriods,
		DampeningFactor:   o.DampeningFactor,
	}
	for name := range st.values {
		results.TimeSeries[name] = append(make([]float64, 0, o.NumPeriods+1), st.values[name])
		results.UncertaintySeries[name] = append(make([]float64, 0, o.NumPeriods+1), st.uncertainties[name])
	}

	periodsRun := 0
	for period := 1; period <= o.NumPeriods; period++ {
		periodsRun = period

		// Step 1: inject the shock into the working state.
		if active := ev.ActiveAt(period - 1); active != 0 {
			st.values[ev.Variable] += active * shocked.Uncertainty
			st.uncertainties[ev.Variable] *= ev.UncertaintyMultiplier
		}

		// Step 2: resolve raw effects from the post-injection snapshot.
		rawEffects, maxRaw, err := e.resolveEffects(st)
		if err != nil {
			return nil, err
		}

		// Step 3: dampen, apply, grow uncertainty, clamp.
		for _, name := range e.order {
			raw := rawEffects[name]
			st.values[name] += raw * o.DampeningFactor
			st.uncertainties[name] += uncertaintyGrowth * math.Abs(raw)
			st.uncertainties[name] *= o.DampeningFactor
			st.values[name] = e.graph.Variable(name).Clamp(st.values[name])
			if math.IsNaN(st.values[name]) || math.IsInf(st.values[name], 0) {
				return nil, fmt.Errorf("%w: variable %q at period %d", ErrNumericalInstability, name, period)
			}
		}

		// Step 4: push the new values onto the lag buffers.
		for key, buf := range st.lagBuffers {
			copy(buf, buf[1:])
			buf[len(buf)-1] = st.values[key.source]
		}

		// Step 5: record the period.
		for _, name := range e.order {
			results.TimeSeries[name] = append(results.TimeSeries[name], st.values[name])
			results.UncertaintySeries[name] = append(results.UncertaintySeries[name], st.uncertainties[name])
		}

		// Step 6: convergence on raw pre-dampening effects only, after
		// the warmup periods.
		if period > convergenceWarmup && o.ConvergenceThreshold > 0 && maxRaw < o.ConvergenceThreshold {
			results.ConvergenceAchieved = true

			break
		}
	}

	results.Metadata = Metadata{
		TotalVariables:        e.graph.VariableCount(),
		TotalRelationships:    e.graph.RelationshipCount(),
		EnhancedRelationships: len(e.enhanced),
		PeriodsRun:            periodsRun,
		ShockMagnitude:        ev.Magnitude,
		ShockDuration:         ev.Duration,
	}

	return results, nil
}

// runState is the private working state of one PropagateShock call.
type runState struct {
	values        map[string]float64
	uncertainties map[string]float64

	// lagBuffers holds, per lagged edge, the source's raw values for
	// the most recent LagPeriods periods; index 0 is the oldest and is
	// what effect resolution reads as the lagged input.
	lagBuffers map[pairKey][]float64
}

// newRunState seeds working values, uncertainties and lag buffers from
// the registry's current state.
func (e *Engine) newRunState() *runState {
	st := &runState{
		values:        make(map[string]float64, len(e.order)),
		uncertainties: make(map[string]float64, len(e.order)),
		lagBuffers:    make(map[pairKey][]float64),
	}
	for _, name := range e.order {
		v := e.graph.Variable(name)
		st.values[name] = v.Value
		st.uncertainties[name] = v.Uncertainty
	}
	for _, name := range e.order {
		for _, r := range e.causes[name] {
			if r.LagPeriods == 0 {
				continue
			}
			buf := make([]float64, r.LagPeriods)
			initial := e.graph.Variable(r.Source).Value
			for i := range buf {
				buf[i] = initial
			}
			st.lagBuffers[pairKey{r.Source, r.Target}] = buf
		}
	}

	return st
}

// resolveEffects computes each variable's raw (pre-dampening) effect
// for the current period in topological order, reading every input
// from the same working-state snapshot. Returns the per-variable
// effects and the largest effect magnitude.
func (e *Engine) resolveEffects(st *runState) (map[string]float64, float64, error) {
	effects := make(map[string]float64, len(e.order))
	maxRaw := 0.0
	for _, name := range e.order {
		total := 0.0
		for _, r := range e.causes[name] {
			input := st.values[r.Source]
			if r.LagPeriods > 0 {
				input = st.lagBuffers[pairKey{r.Source, r.Target}][0]
			}

			var (
				effect float64
				err    error
			)
			if enh, ok := e.enhanced[pairKey{r.Source, r.Target}]; ok {
				effect, err = enh.ApplyEffect(input)
			} else {
				// Plain linear fallback for un-enhanced edges.
				effect = r.Strength * input
			}
			if err != nil {
				return nil, 0, err
			}
			total += effect
		}
		if math.IsNaN(total) || math.IsInf(total, 0) {
			return nil, 0, fmt.Errorf("%w: raw effect on %q", ErrNumericalInstability, name)
		}
		effects[name] = total
		if abs := math.Abs(total); abs > maxRaw {
			maxRaw = abs
		}
	}

	return effects, maxRaw, nil
}
