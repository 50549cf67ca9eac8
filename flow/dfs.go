// One augmenting-path search over the residual network.

package flow

import (
	"github.com/katalvlaran/stepflow/core"
	"github.com/katalvlaran/stepflow/weight"
)

// frame is one vertex under expansion: its outgoing capacity arcs in
// ascending order, a cursor over them, and the bottleneck collected on
// the way down to it.
type frame struct {
	id     string
	edges  []*core.Edge
	next   int
	budget weight.Weight
}

// augment runs a single depth-first search for an augmenting path from
// d.Source to d.Sink and commits it. It returns the path's bottleneck,
// or zero when no residual path remains; signed per-arc deltas land in
// path only when a path is found.
//
// The search explores arcs in ascending target order and never revisits
// a vertex within one call, so repeated calls enumerate paths in a
// stable order. Residual capacity of an arc is its capacity minus the
// flow already assigned to it; reverse arcs carry negative flow, which
// is what makes cancellation paths visible.
func augment(d *Data, path map[Arc]weight.Weight) (weight.Weight, error) {
	kind := d.Capacity.WeightKind()
	zero := weight.Zero(kind)

	// A source that is its own sink admits an unbounded flow.
	if d.Source == d.Sink {
		return weight.Inf(kind), nil
	}

	root, err := d.Capacity.Neighbors(d.Source)
	if err != nil {
		return zero, err
	}
	used := map[string]struct{}{d.Source: {}}
	stack := []frame{{id: d.Source, edges: root, budget: weight.Inf(kind)}}

	for len(stack) > 0 {
		fr := &stack[len(stack)-1]
		if fr.next == len(fr.edges) {
			stack = stack[:len(stack)-1]

			continue
		}
		e := fr.edges[fr.next]
		fr.next++

		r, err := residual(d, fr.id, e)
		if err != nil {
			return zero, err
		}
		budget := weight.Min(fr.budget, r)
		if budget.IsZero() {
			continue
		}
		if e.To == d.Sink {
			if err := commit(d, path, stack, budget); err != nil {
				return zero, err
			}

			return budget, nil
		}
		if _, ok := used[e.To]; ok {
			continue
		}
		used[e.To] = struct{}{}
		nbrs, err := d.Capacity.Neighbors(e.To)
		if err != nil {
			return zero, err
		}
		stack = append(stack, frame{id: e.To, edges: nbrs, budget: budget})
	}

	return zero, nil
}

// residual is the remaining capacity of the arc from->e.To. Float
// arithmetic can leave negative dust on a saturated arc; clamp it so
// the arc reads as exactly full.
func residual(d *Data, from string, e *core.Edge) (weight.Weight, error) {
	fe, err := d.Flow.GetEdge(from, e.To)
	if err != nil {
		return weight.Weight{}, err
	}
	r := e.Weight.Sub(fe.Weight)
	if r.Less(weight.Zero(r.Kind())) {
		r = weight.Zero(r.Kind())
	}

	return r, nil
}

// commit applies bottleneck f to every arc on the discovered path. Each
// frame's cursor already sits one past the arc it descended through, so
// the path reads off the stack directly: +f on the arc taken, -f on its
// reverse, mirrored into the flow ledger and the recorded deltas.
func commit(d *Data, path map[Arc]weight.Weight, stack []frame, f weight.Weight) error {
	zero := weight.Zero(f.Kind())
	for i := range stack {
		fr := &stack[i]
		e := fr.edges[fr.next-1]

		fwd, err := d.Flow.GetEdge(fr.id, e.To)
		if err != nil {
			return err
		}
		if err := d.Flow.SetEdgeWeight(fr.id, e.To, fwd.Weight.Add(f)); err != nil {
			return err
		}
		back, err := d.Flow.GetEdge(e.To, fr.id)
		if err != nil {
			return err
		}
		if err := d.Flow.SetEdgeWeight(e.To, fr.id, back.Weight.Sub(f)); err != nil {
			return err
		}

		path[Arc{From: fr.id, To: e.To}] = f
		path[Arc{From: e.To, To: fr.id}] = zero.Sub(f)
	}

	return nil
}
