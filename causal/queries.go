package causal

import (
	"fmt"
	"sort"
)

// Ancestors returns every variable that causally influences name,
// directly or transitively, as a sorted slice.
//
// Returns ErrUnknownVariable if name is absent.
// Complexity: O(V+E)
func (g *CausalGraph) Ancestors(name string) ([]string, error) {
	return g.reachable(name, g.pred)
}

// Descendants returns every variable causally influenced by name,
// directly or transitively, as a sorted slice.
//
// Returns ErrUnknownVariable if name is absent.
// Complexity: O(V+E)
func (g *CausalGraph) Descendants(name string) ([]string, error) {
	return g.reachable(name, g.succ)
}

// reachable collects everything reachable from name over adj via BFS,
// excluding name itself, and returns the result sorted.
func (g *CausalGraph) reachable(name string, adj map[string][]string) ([]string, error) {
	if _, ok := g.variables[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	seen := map[string]bool{name: true}
	queue := []string{name}
	out := make([]string, 0)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if !seen[next] {
				seen[next] = true
				out = append(out, next)
				queue = append(queue, next)
			}
		}
	}
	sort.Strings(out)

	return out, nil
}

// TopologicalOrder returns a linear extension of the DAG: for every
// edge u→v, u appears before v. Ties between independent variables are
// broken by variable insertion order, so the result is deterministic
// for a given build sequence.
//
// The graph is acyclic by construction, so every variable appears
// exactly once.
// Complexity: O(V+E)
func (g *CausalGraph) TopologicalOrder() []string {
	// Kahn's algorithm with a FIFO frontier seeded in insertion order.
	indegree := make(map[string]int, len(g.variables))
	for _, name := range g.names {
		indegree[name] = len(g.pred[name])
	}

	queue := make([]string, 0, len(g.names))
	for _, name := range g.names {
		if indegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	order := make([]string, 0, len(g.names))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, next := range g.succ[cur] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	return order
}

// Acyclic reports whether every variable is covered by a topological
// order. True for any graph built exclusively through AddRelationship.
// Complexity: O(V+E)
func (g *CausalGraph) Acyclic() bool {
	return len(g.TopologicalOrder()) == len(g.variables)
}

// Validate inspects the structure and reports whether it is sound,
// together with a human-readable issue list (sorted).
//
// Checked: acyclicity, isolated variables (no causal edges at all), and
// index consistency between the relationship catalog and the adjacency
// lists. Isolated variables are reported as issues but are harmless for
// propagation; the engine treats only structural defects as fatal.
// Complexity: O(V+E)
func (g *CausalGraph) Validate() (bool, []string) {
	var issues []string

	if !g.Acyclic() {
		issues = append(issues, "graph contains a cycle")
	}

	var isolated []string
	for _, name := range g.names {
		if len(g.pred[name]) == 0 && len(g.succ[name]) == 0 {
			isolated = append(isolated, name)
		}
	}
	if len(isolated) > 0 {
		issues = append(issues, fmt.Sprintf("isolated variables (no causal relationships): %v", isolated))
	}

	for key, r := range g.relationships {
		if !g.HasVariable(key.source) {
			issues = append(issues, fmt.Sprintf("relationship %s→%s references unregistered source", key.source, key.target))
		}
		if !g.HasVariable(key.target) {
			issues = append(issues, fmt.Sprintf("relationship %s→%s references unregistered target", key.source, key.target))
		}
		if r == nil {
			issues = append(issues, fmt.Sprintf("relationship %s→%s has no payload", key.source, key.target))
		}
	}
	edges := 0
	for source, targets := range g.succ {
		for _, target := range targets {
			edges++
			if g.relationships[edgeKey{source, target}] == nil {
				issues = append(issues, fmt.Sprintf("adjacency entry %s→%s has no relationship", source, target))
			}
		}
	}
	if edges != len(g.relationships) {
		issues = append(issues, fmt.Sprintf("adjacency holds %d edges, catalog holds %d", edges, len(g.relationships)))
	}

	sort.Strings(issues)

	return len(issues) == 0, issues
}
