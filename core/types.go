// This file declares Vertex, Edge, Graph, GraphOption, the sentinel
// errors, and the NewGraph constructor.

package core

import (
	"errors"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/katalvlaran/stepflow/weight"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexExists indicates an insert for a vertex ID already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeExists indicates an insert for an arc already present
	// (on undirected graphs, in either orientation).
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrVerticesNotFound indicates an edge operation named one or more
	// missing endpoint vertices.
	ErrVerticesNotFound = errors.New("core: some vertices not found")

	// ErrWeightedEdge indicates a weighted insert into an unweighted graph.
	ErrWeightedEdge = errors.New("core: weighted edge in an unweighted graph")

	// ErrUnweightedEdge indicates an unweighted insert into a weighted graph.
	ErrUnweightedEdge = errors.New("core: unweighted edge in a weighted graph")

	// ErrWeightKind indicates a weight whose kind differs from the graph's kind.
	ErrWeightKind = errors.New("core: weight kind does not match graph weight kind")

	// ErrBadWeight indicates a non-finite float weight.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrEmptyVertexID indicates an empty vertex ID token.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrBadVertexID indicates a vertex ID containing whitespace.
	ErrBadVertexID = errors.New("core: vertex ID must be a single token")

	// ErrBadLabel indicates an empty label or one containing whitespace.
	ErrBadLabel = errors.New("core: vertex label must be a non-empty single token")
)

// Vertex is a node of the graph.
//
// ID uniquely identifies the vertex within its Graph. Label is free
// secondary text; the empty string means "no label". Both are single
// whitespace-free tokens so every vertex survives the text encoding
// unchanged.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Label is optional display text. Empty means absent.
	Label string
}

// Edge is a directed arc stored under its source vertex.
//
// Within one vertex's adjacency set an arc is identified solely by To;
// Weight is meaningful only on weighted graphs and holds the kind the
// graph was created with.
type Edge struct {
	// To is the target vertex ID.
	To string

	// Weight is the arc's weight on weighted graphs; the zero Weight
	// on unweighted ones.
	Weight weight.Weight
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way arcs (true) or mirrored
// pairs (false). Graphs default to undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted declares the graph weighted and fixes the weight kind
// every edge must carry. Graphs default to unweighted.
func WithWeighted(k weight.Kind) GraphOption {
	return func(g *Graph) {
		g.weighted = true
		g.kind = k
	}
}

// Graph is an in-memory graph with ordered vertex and adjacency
// storage. The zero value is not usable; construct with NewGraph.
// Flags are fixed at construction and never change afterwards.
type Graph struct {
	directed bool
	weighted bool
	kind     weight.Kind

	// vertices maps vertex ID → *Vertex in ascending ID order.
	vertices *treemap.Map
	// adjacency maps vertex ID → (treemap of target ID → *Edge),
	// both levels in ascending ID order.
	adjacency *treemap.Map
}

// NewGraph returns an empty graph with the given configuration.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  treemap.NewWithStringComparator(),
		adjacency: treemap.NewWithStringComparator(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way arcs.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edges carry weights.
func (g *Graph) Weighted() bool { return g.weighted }

// WeightKind reports the weight kind fixed at construction.
// Meaningful only when Weighted() is true; unweighted graphs report
// the zero kind.
func (g *Graph) WeightKind() weight.Kind { return g.kind }

// ValidateVertexID checks that id is usable as a vertex key: non-empty
// and free of whitespace. Exposed for the text boundary, which must
// reject malformed ID tokens before consulting the graph.
func ValidateVertexID(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if strings.ContainsAny(id, " \t\r\n") {
		return ErrBadVertexID
	}

	return nil
}

// validateLabel enforces the label token rules; empty labels are
// rejected here because "no label" is expressed by AddVertex.
func validateLabel(label string) error {
	if label == "" || strings.ContainsAny(label, " \t\r\n") {
		return ErrBadLabel
	}

	return nil
}

// adj returns the adjacency treemap for id, or nil when the vertex is absent.
func (g *Graph) adj(id string) *treemap.Map {
	raw, ok := g.adjacency.Get(id)
	if !ok {
		return nil
	}

	return raw.(*treemap.Map)
}
