// Cloning graph instances.

package core

import "github.com/emirpasic/gods/maps/treemap"

// CloneEmpty returns a new Graph with identical configuration and
// vertices, but no edges. Vertex records are copied, never shared.
//
// Complexity: O(V log V).
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		directed:  g.directed,
		weighted:  g.weighted,
		kind:      g.kind,
		vertices:  treemap.NewWithStringComparator(),
		adjacency: treemap.NewWithStringComparator(),
	}

	it := g.vertices.Iterator()
	for it.Next() {
		v := it.Value().(*Vertex)
		clone.vertices.Put(v.ID, &Vertex{ID: v.ID, Label: v.Label})
		clone.adjacency.Put(v.ID, treemap.NewWithStringComparator())
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices,
// edges, and adjacency. Mutating the clone never touches the source.
//
// Complexity: O(V log V + E log V).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	outer := g.adjacency.Iterator()
	for outer.Next() {
		from := outer.Key().(string)
		target := clone.adj(from)
		inner := outer.Value().(*treemap.Map).Iterator()
		for inner.Next() {
			e := inner.Value().(*Edge)
			target.Put(e.To, &Edge{To: e.To, Weight: e.Weight})
		}
	}

	return clone
}
