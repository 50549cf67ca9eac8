// Package flow implements maximum flow on *core.Graph as a resumable,
// single-augmenting-path-per-call Ford–Fulkerson machine.
//
// Instead of a one-shot function, the computation is a pure state
// transition driven by the caller:
//
//	NotStarted → Running → Running → ... → Finished → NotStarted
//
//   - NotStarted → Running: Step validates the graph (directed,
//     weighted, both endpoints present) and snapshots two private
//     graphs: the capacity graph (a clone plus zero-capacity reverse
//     arcs) and the flow graph (zero-weight forward and reverse arcs).
//     No search happens on this call.
//   - Running → Running | Finished: Step runs exactly one depth-first
//     search for an augmenting path, trying arcs in ascending target
//     order with a per-call visited set. A found path updates the flow
//     graph (forward arcs gain the bottleneck, reverse arcs lose it),
//     records the signed deltas in Data.Path, and accumulates
//     Data.TotalFlow. An empty search finishes the machine with the
//     final Data left in place for inspection.
//   - Finished → NotStarted: unconditional reset; the next call starts
//     from the live graph again.
//
// The step granularity is part of the contract: callers observe every
// intermediate augmenting path (Data.Path, Data.LastFlow), which is why
// the method stays DFS-based Ford–Fulkerson rather than Edmonds–Karp
// or Dinic. Worst-case step count is proportional to the flow value
// on integer networks, not polynomial in the graph size alone.
//
// Run drives a fresh machine to completion for callers that only want
// the final Data.
//
// Error handling (sentinel errors, returned by the NotStarted
// transition only; a Running machine works on its own snapshots):
//
//   - ErrNilGraph - no graph supplied.
//   - ErrNotDirected / ErrNotWeighted - flow needs directed, weighted
//     capacities.
//   - ArgumentError{Index} - malformed source (0) or sink (1) token.
//   - ErrSourceNotFound / ErrSinkNotFound - endpoint not in the graph.
//
// Complexity per Step: one DFS over the ordered adjacency, O(V + E)
// residual lookups; memory O(V) for the visited set and frame stack
// plus the two O(V + E) snapshots held by Data.
//
// The machine and its Data are single-owner values like the graphs
// they reference; drive them from one goroutine.
package flow
