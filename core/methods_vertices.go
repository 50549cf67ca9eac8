// Vertex lifecycle and queries.

package core

import "github.com/emirpasic/gods/maps/treemap"

// AddVertex inserts an unlabeled vertex with the given ID.
// Returns ErrEmptyVertexID/ErrBadVertexID for a malformed token and
// ErrVertexExists when the ID is already present.
func (g *Graph) AddVertex(id string) error {
	return g.addVertex(&Vertex{ID: id})
}

// AddLabeledVertex inserts a vertex carrying a label.
// The label must be a non-empty single token (ErrBadLabel); use
// AddVertex for an unlabeled vertex.
func (g *Graph) AddLabeledVertex(id, label string) error {
	if err := validateLabel(label); err != nil {
		return err
	}

	return g.addVertex(&Vertex{ID: id, Label: label})
}

// addVertex validates the token, rejects duplicates, and installs the
// vertex together with its empty adjacency set.
func (g *Graph) addVertex(v *Vertex) error {
	if err := ValidateVertexID(v.ID); err != nil {
		return err
	}
	if _, exists := g.vertices.Get(v.ID); exists {
		return ErrVertexExists
	}

	g.vertices.Put(v.ID, v)
	g.adjacency.Put(v.ID, treemap.NewWithStringComparator())

	return nil
}

// RemoveVertex deletes the vertex with the given ID, its own adjacency
// set, and every arc in the rest of the graph that targets it.
// Returns ErrVertexNotFound when the ID is absent.
//
// The incoming-arc sweep visits every remaining adjacency set because
// arcs are stored per source only: O(V log V + E).
func (g *Graph) RemoveVertex(id string) error {
	if _, exists := g.vertices.Get(id); !exists {
		return ErrVertexNotFound
	}

	g.vertices.Remove(id)
	g.adjacency.Remove(id)

	// Strip arcs pointing at the removed vertex from every other set.
	it := g.adjacency.Iterator()
	for it.Next() {
		it.Value().(*treemap.Map).Remove(id)
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	_, exists := g.vertices.Get(id)

	return exists
}

// GetVertex returns the stored vertex for id, or ErrVertexNotFound.
// The returned record is live; treat it as read-only.
func (g *Graph) GetVertex(id string) (*Vertex, error) {
	raw, exists := g.vertices.Get(id)
	if !exists {
		return nil, ErrVertexNotFound
	}

	return raw.(*Vertex), nil
}

// Vertices returns all vertices in ascending ID order.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, g.vertices.Size())
	it := g.vertices.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*Vertex))
	}

	return out
}

// VertexCount reports the number of vertices.
func (g *Graph) VertexCount() int {
	return g.vertices.Size()
}
