package causal

import "fmt"

// edgeKey indexes a relationship by its ordered (source, target) pair.
type edgeKey struct {
	source, target string
}

// CausalGraph is the in-memory causal DAG.
//
// It owns the variable registry and the relationship catalog and keeps
// explicit forward (successor) and backward (predecessor) adjacency
// lists. Mutation is add-only; every mutation either succeeds fully or
// leaves the graph untouched, so the acyclicity invariant always holds.
type CausalGraph struct {
	variables     map[string]*EconomicVariable
	relationships map[edgeKey]*CausalRelationship

	// succ and pred hold neighbor names in edge insertion order.
	succ map[string][]string
	pred map[string][]string

	// names preserves variable insertion order for deterministic iteration.
	names []string
}

// NewCausalGraph creates an empty causal graph.
// Complexity: O(1)
func NewCausalGraph() *CausalGraph {
	return &CausalGraph{
		variables:     make(map[string]*EconomicVariable),
		relationships: make(map[edgeKey]*CausalRelationship),
		succ:          make(map[string][]string),
		pred:          make(map[string][]string),
	}
}

// AddVariable registers a variable as an isolated node.
//
// Fields are exported and may have changed since construction, so the
// variable invariants are re-checked at registration.
//
// Returns ErrNilVariable, a construction error, or ErrDuplicateVariable.
// Complexity: O(1)
func (g *CausalGraph) AddVariable(v *EconomicVariable) error {
	if v == nil {
		return ErrNilVariable
	}
	if err := v.validate(); err != nil {
		return err
	}
	if _, ok := g.variables[v.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVariable, v.Name)
	}

	g.variables[v.Name] = v
	g.names = append(g.names, v.Name)

	return nil
}

// AddRelationship inserts a causal edge after checking every structural
// invariant. The cycle probe simulates the insertion by testing
// reachability from the edge's target back to its source; on any
// failure the graph state is exactly as before the call.
//
// Returns ErrNilRelationship, a construction error, ErrUnknownVariable,
// ErrSelfLoop, ErrDuplicateRelationship, or ErrCycle.
// Complexity: O(V+E) (dominated by the cycle probe).
func (g *CausalGraph) AddRelationship(r *CausalRelationship) error {
	if r == nil {
		return ErrNilRelationship
	}
	if err := r.validate(); err != nil {
		return err
	}
	if _, ok := g.variables[r.Source]; !ok {
		return fmt.Errorf("%w: source %q", ErrUnknownVariable, r.Source)
	}
	if _, ok := g.variables[r.Target]; !ok {
		return fmt.Errorf("%w: target %q", ErrUnknownVariable, r.Target)
	}
	if r.Source == r.Target {
		return fmt.Errorf("%w: %q", ErrSelfLoop, r.Source)
	}
	key := edgeKey{r.Source, r.Target}
	if _, ok := g.relationships[key]; ok {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateRelationship, r.Source, r.Target)
	}
	// Adding source→target closes a cycle iff source is already
	// reachable from target. Probe before mutating anything.
	if g.reaches(r.Target, r.Source) {
		return fmt.Errorf("%w: %s→%s", ErrCycle, r.Source, r.Target)
	}

	g.relationships[key] = r
	g.succ[r.Source] = append(g.succ[r.Source], r.Target)
	g.pred[r.Target] = append(g.pred[r.Target], r.Source)

	return nil
}

// reaches reports whether to is reachable from from along directed
// edges, using an iterative DFS over the successor lists.
func (g *CausalGraph) reaches(from, to string) bool {
	if from == to {
		return true
	}
	seen := map[string]bool{from: true}
	stack := []string{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g.succ[cur] {
			if next == to {
				return true
			}
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}

	return false
}

// Variable returns the registered variable by name, or nil if absent.
// Complexity: O(1)
func (g *CausalGraph) Variable(name string) *EconomicVariable {
	return g.variables[name]
}

// Relationship returns the edge for the ordered (source, target) pair,
// or nil if absent.
// Complexity: O(1)
func (g *CausalGraph) Relationship(source, target string) *CausalRelationship {
	return g.relationships[edgeKey{source, target}]
}

// HasVariable reports whether name is registered.
func (g *CausalGraph) HasVariable(name string) bool {
	_, ok := g.variables[name]

	return ok
}

// VariableNames returns every registered name in insertion order.
// The returned slice is a copy.
// Complexity: O(V)
func (g *CausalGraph) VariableNames() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// VariableCount reports the number of registered variables.
func (g *CausalGraph) VariableCount() int { return len(g.variables) }

// RelationshipCount reports the number of causal edges.
func (g *CausalGraph) RelationshipCount() int { return len(g.relationships) }

// DirectCauses returns the edges pointing into name (its immediate
// causal influences), in edge insertion order.
//
// Returns ErrUnknownVariable if name is absent.
// Complexity: O(deg⁻(name))
func (g *CausalGraph) DirectCauses(name string) ([]*CausalRelationship, error) {
	if _, ok := g.variables[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	causes := make([]*CausalRelationship, 0, len(g.pred[name]))
	for _, source := range g.pred[name] {
		causes = append(causes, g.relationships[edgeKey{source, name}])
	}

	return causes, nil
}

// DirectEffects returns the edges leaving name (its immediate causal
// effects), in edge insertion order.
//
// Returns ErrUnknownVariable if name is absent.
// Complexity: O(deg⁺(name))
func (g *CausalGraph) DirectEffects(name string) ([]*CausalRelationship, error) {
	if _, ok := g.variables[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	effects := make([]*CausalRelationship, 0, len(g.succ[name]))
	for _, target := range g.succ[name] {
		effects = append(effects, g.relationships[edgeKey{name, target}])
	}

	return effects, nil
}

// String renders a compact graph summary.
func (g *CausalGraph) String() string {
	return fmt.Sprintf("CausalGraph(variables=%d, relationships=%d)", len(g.variables), len(g.relationships))
}
