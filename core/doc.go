// Package core provides the in-memory graph type used throughout
// stepflow: a directed or undirected, weighted or unweighted graph
// with ordered adjacency and a strict, atomic mutation API.
//
// Model:
//
//   - Vertices are identified by a single-token string ID, unique per
//     graph, with an optional single-token label. Vertex and adjacency
//     storage iterate in ascending ID order; that order is a contract,
//     not an accident: it fixes which augmenting path the flow engine
//     discovers first and the line order of the text encoding.
//   - Edges are directed arcs stored per source vertex and identified
//     solely by their target: at most one arc from any vertex to any
//     other (self-loops allowed, parallel arcs impossible).
//   - On an undirected graph each logical edge is a pair of mirrored
//     arc records, inserted and removed together by the mutation API;
//     the two records never alias each other.
//   - The directed/weighted flags and the weight kind are fixed at
//     construction. On a weighted graph every edge carries a weight of
//     the graph's kind; on an unweighted graph no edge carries one.
//
// Every mutation validates before touching storage, so a failed call
// leaves the graph exactly as it was.
//
// Error handling (sentinel errors):
//
//   - ErrVertexExists / ErrVertexNotFound - vertex identity rules.
//   - ErrEdgeExists / ErrEdgeNotFound - arc identity rules.
//   - ErrVerticesNotFound - an edge operation named a missing endpoint.
//   - ErrWeightedEdge / ErrUnweightedEdge - weight presence must match
//     the graph's weighted flag.
//   - ErrWeightKind / ErrBadWeight - weight kind must match the graph's
//     kind, and float weights must be finite.
//   - ErrEmptyVertexID / ErrBadVertexID / ErrBadLabel - identifier
//     token rules.
//
// Graphs are not safe for concurrent use: an instance is owned by one
// caller at a time. Hand a Clone across a boundary instead of sharing.
//
// Complexity: vertex and edge lookup/insert/remove are logarithmic in
// the ordered storage; RemoveVertex scans every adjacency set and is
// O(V log V + E); Vertices and Neighbors return freshly allocated
// ordered slices.
package core
