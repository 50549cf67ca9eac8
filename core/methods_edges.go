// Edge lifecycle and queries.

package core

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/katalvlaran/stepflow/weight"
)

// AddEdge inserts an unweighted arc from→to (and its mirror on
// undirected graphs). Fails with ErrUnweightedEdge on a weighted
// graph, ErrVerticesNotFound when an endpoint is missing, and
// ErrEdgeExists when the arc (in either orientation on undirected
// graphs) is already present.
func (g *Graph) AddEdge(from, to string) error {
	if g.weighted {
		return ErrUnweightedEdge
	}

	return g.insertEdge(from, to, weight.Weight{})
}

// AddWeightedEdge inserts a weighted arc from→to (and its mirror on
// undirected graphs). Fails with ErrWeightedEdge on an unweighted
// graph, ErrWeightKind when w carries the wrong kind, ErrBadWeight
// when w is not finite, and then like AddEdge.
func (g *Graph) AddWeightedEdge(from, to string, w weight.Weight) error {
	if !g.weighted {
		return ErrWeightedEdge
	}
	if err := g.checkWeight(w); err != nil {
		return err
	}

	return g.insertEdge(from, to, w)
}

// checkWeight enforces the construction-time kind and finiteness rules.
func (g *Graph) checkWeight(w weight.Weight) error {
	if w.Kind() != g.kind {
		return ErrWeightKind
	}
	if !w.IsFinite() {
		return ErrBadWeight
	}

	return nil
}

// insertEdge performs the endpoint/duplicate validation and the
// storage writes shared by AddEdge and AddWeightedEdge. All checks run
// before the first write, keeping failed calls free of side effects.
func (g *Graph) insertEdge(from, to string, w weight.Weight) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return ErrVerticesNotFound
	}
	if g.hasArc(from, to) || (!g.directed && g.hasArc(to, from)) {
		return ErrEdgeExists
	}

	g.adj(from).Put(to, &Edge{To: to, Weight: w})
	if !g.directed && from != to {
		// Mirror record: independently owned, same weight.
		g.adj(to).Put(from, &Edge{To: from, Weight: w})
	}

	return nil
}

// RemoveEdge deletes the arc from→to, and on undirected graphs its
// mirror in the same call. A missing endpoint vertex fails with
// ErrVerticesNotFound, a missing arc between existing vertices with
// ErrEdgeNotFound.
func (g *Graph) RemoveEdge(from, to string) error {
	adjFrom := g.adj(from)
	if adjFrom == nil || !g.HasVertex(to) {
		return ErrVerticesNotFound
	}
	if _, ok := adjFrom.Get(to); !ok {
		return ErrEdgeNotFound
	}

	adjFrom.Remove(to)
	if !g.directed && from != to {
		g.adj(to).Remove(from)
	}

	return nil
}

// HasEdge reports whether the arc from→to is stored. On undirected
// graphs the mirror invariant makes the answer orientation-independent.
func (g *Graph) HasEdge(from, to string) bool {
	return g.hasArc(from, to)
}

// GetEdge returns the stored arc from→to. A missing endpoint vertex
// fails with ErrVertexNotFound, a missing arc between existing
// vertices with ErrEdgeNotFound. The returned record is live; treat it
// as read-only.
func (g *Graph) GetEdge(from, to string) (*Edge, error) {
	adjFrom := g.adj(from)
	if adjFrom == nil || !g.HasVertex(to) {
		return nil, ErrVertexNotFound
	}
	raw, ok := adjFrom.Get(to)
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return raw.(*Edge), nil
}

// SetEdgeWeight updates the weight of an existing arc in place, and on
// undirected graphs updates the mirror record in the same call. The
// weight is validated like AddWeightedEdge; lookup failures follow
// GetEdge.
func (g *Graph) SetEdgeWeight(from, to string, w weight.Weight) error {
	if !g.weighted {
		return ErrWeightedEdge
	}
	if err := g.checkWeight(w); err != nil {
		return err
	}
	e, err := g.GetEdge(from, to)
	if err != nil {
		return err
	}

	e.Weight = w
	if !g.directed && from != to {
		if m, merr := g.GetEdge(to, from); merr == nil {
			m.Weight = w
		}
	}

	return nil
}

// Neighbors returns the outgoing arcs of id in ascending target order.
// Fails with ErrVertexNotFound when id is absent.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	adjID := g.adj(id)
	if adjID == nil {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, adjID.Size())
	it := adjID.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*Edge))
	}

	return out, nil
}

// EdgeCount reports the number of logical edges: stored arcs on
// directed graphs, mirrored pairs counted once on undirected ones.
func (g *Graph) EdgeCount() int {
	var n int
	it := g.adjacency.Iterator()
	for it.Next() {
		from := it.Key().(string)
		inner := it.Value().(*treemap.Map).Iterator()
		for inner.Next() {
			if g.directed || from <= inner.Key().(string) {
				n++
			}
		}
	}

	return n
}

// hasArc reports raw storage membership of the arc from→to.
func (g *Graph) hasArc(from, to string) bool {
	adjFrom := g.adj(from)
	if adjFrom == nil {
		return false
	}
	_, ok := adjFrom.Get(to)

	return ok
}
