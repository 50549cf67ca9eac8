// Textual rendering of a graph.

package core

import "strings"

// String renders the adjacency structure, one vertex per line in
// ascending ID order:
//
//	a: b(3) c(1)
//	s [source]: a(3)
//	x:
//
// Labeled vertices show the label in brackets; weighted arcs show the
// weight in parentheses. Intended for debugging and the REPL's print
// command, not for round-tripping (see graphtext for that).
func (g *Graph) String() string {
	var b strings.Builder

	outer := g.vertices.Iterator()
	for outer.Next() {
		v := outer.Value().(*Vertex)
		b.WriteString(v.ID)
		if v.Label != "" {
			b.WriteString(" [")
			b.WriteString(v.Label)
			b.WriteByte(']')
		}
		b.WriteByte(':')

		inner := g.adj(v.ID).Iterator()
		for inner.Next() {
			e := inner.Value().(*Edge)
			b.WriteByte(' ')
			b.WriteString(e.To)
			if g.weighted {
				b.WriteByte('(')
				b.WriteString(e.Weight.String())
				b.WriteByte(')')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
