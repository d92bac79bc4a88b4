package causal

// GraphSummary is a read-only snapshot of structural statistics,
// suitable for diagnostics and admission checks before simulation.
type GraphSummary struct {
	// VariableCount is the number of registered variables.
	VariableCount int

	// RelationshipCount is the number of causal edges.
	RelationshipCount int

	// Acyclic reports whether a full topological order exists.
	Acyclic bool

	// WeakComponents counts connected components when edge direction
	// is ignored.
	WeakComponents int

	// Density is RelationshipCount / (V·(V−1)), the filled fraction of
	// all possible directed edges. Zero for fewer than two variables.
	Density float64

	// KindCounts tallies variables per VariableKind.
	KindCounts map[VariableKind]int
}

// Stats produces a deterministic summary of the graph structure.
// Complexity: O(V+E)
func (g *CausalGraph) Stats() *GraphSummary {
	s := &GraphSummary{
		VariableCount:     len(g.variables),
		RelationshipCount: len(g.relationships),
		Acyclic:           g.Acyclic(),
		WeakComponents:    g.weakComponents(),
		KindCounts:        make(map[VariableKind]int, len(Kinds())),
	}
	for _, kind := range Kinds() {
		s.KindCounts[kind] = 0
	}
	for _, v := range g.variables {
		s.KindCounts[v.Kind]++
	}
	if n := len(g.variables); n > 1 {
		s.Density = float64(len(g.relationships)) / float64(n*(n-1))
	}

	return s
}

// weakComponents counts connected components over the undirected view.
func (g *CausalGraph) weakComponents() int {
	seen := make(map[string]bool, len(g.variables))
	components := 0
	for _, root := range g.names {
		if seen[root] {
			continue
		}
		components++
		seen[root] = true
		stack := []string{root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, next := range g.succ[cur] {
				if !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			}
			for _, next := range g.pred[cur] {
				if !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			}
		}
	}

	return components
}
