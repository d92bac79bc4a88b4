// Package causal provides the economic variable registry and the causal
// graph: a directed acyclic graph whose nodes are named economic
// variables and whose edges are quantified causal relationships.
//
// What:
//
//   - EconomicVariable holds a variable's current value, uncertainty
//     (one standard deviation), optional bounds and documentation.
//   - CausalRelationship connects a source variable to a target with a
//     signed strength in [-1, 1], a confidence in [0, 1] and an integer
//     time lag in periods.
//   - CausalGraph owns both catalogs plus an explicit forward/backward
//     adjacency structure. Mutation is add-only; every insertion that
//     would introduce a self-loop or a cycle is rejected atomically,
//     so the graph is acyclic at all times.
//
// Why:
//
//   - Scenario analysis: "what-if" propagation requires a causal order,
//     which only a DAG can provide.
//   - Structural insight: ancestors, descendants and per-variable cause
//     and effect listings expose the transmission channels of a model.
//
// Determinism:
//
//   - TopologicalOrder breaks ties by variable insertion order, so the
//     same build sequence always yields the same order — simulations on
//     top of it are reproducible.
//   - Ancestors and Descendants return sorted slices.
//
// Complexity:
//
//   - AddVariable: O(1). AddRelationship: O(V+E) (cycle probe).
//   - Ancestors/Descendants: O(V+E). TopologicalOrder: O(V+E).
//
// Errors:
//
//   - ErrDuplicateVariable: a variable with that name is already registered.
//   - ErrUnknownVariable: an endpoint or query names an absent variable.
//   - ErrSelfLoop: a relationship from a variable to itself.
//   - ErrCycle: the insertion would make the graph cyclic.
//   - ErrDuplicateRelationship: an edge for that ordered pair already exists.
//
// Concurrency: a CausalGraph is not synchronized. Build it from a single
// goroutine; once building is done it may be shared read-only across any
// number of goroutines (the shock engine relies on exactly that).
package causal
