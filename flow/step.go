// The Step state machine and its snapshot builders.

package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepflow/core"
	"github.com/katalvlaran/stepflow/weight"
)

// Step advances the machine by one transition and returns the next
// state. The graph and endpoint arguments are read in the NotStarted
// phase only; a Running machine works entirely on its own snapshots,
// so mutating g mid-computation affects the next fresh start, never
// the current one.
//
// Transitions:
//  1. NotStarted: validate g/source/sink, snapshot the capacity and
//     flow graphs, return Running with zeroed accumulators. No search.
//  2. Running: run one augmenting-path search; apply it and stay
//     Running, or return Finished when no path remains.
//  3. Finished: reset to the zero State, discarding the snapshots.
//
// On error the returned state is the zero NotStarted state.
func Step(st State, g *core.Graph, source, sink string) (State, error) {
	switch st.Status {
	case NotStarted:
		return start(g, source, sink)
	case Running:
		return advance(st.Data)
	case Finished:
		return State{}, nil
	default:
		return State{}, fmt.Errorf("%w: %d", ErrBadStatus, uint8(st.Status))
	}
}

// start validates the preconditions and builds the private snapshots.
func start(g *core.Graph, source, sink string) (State, error) {
	// 1) Graph preconditions.
	if g == nil {
		return State{}, ErrNilGraph
	}
	if !g.Directed() {
		return State{}, ErrNotDirected
	}
	if !g.Weighted() {
		return State{}, ErrNotWeighted
	}

	// 2) Endpoint tokens, then membership.
	if err := core.ValidateVertexID(source); err != nil {
		return State{}, &ArgumentError{Index: 0, Err: err}
	}
	if err := core.ValidateVertexID(sink); err != nil {
		return State{}, &ArgumentError{Index: 1, Err: err}
	}
	if !g.HasVertex(source) {
		return State{}, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return State{}, ErrSinkNotFound
	}

	// 3) Snapshot the arc set once; both builders consume it.
	arcs, err := collectArcs(g)
	if err != nil {
		return State{}, err
	}
	gc, err := capacityGraph(g, arcs)
	if err != nil {
		return State{}, err
	}
	gf, err := flowGraph(g, arcs)
	if err != nil {
		return State{}, err
	}

	zero := weight.Zero(g.WeightKind())

	return State{
		Status: Running,
		Data: &Data{
			Source:    source,
			Sink:      sink,
			Capacity:  gc,
			Flow:      gf,
			LastFlow:  zero,
			TotalFlow: zero,
		},
	}, nil
}

// advance runs one search and folds its result into the data.
func advance(d *Data) (State, error) {
	path := make(map[Arc]weight.Weight)
	f, err := augment(d, path)
	if err != nil {
		return State{}, err
	}

	d.LastFlow = f
	d.TotalFlow = d.TotalFlow.Add(f)

	// No augmenting path left: keep the data in place for inspection.
	if f.IsZero() {
		d.Path = nil

		return State{Status: Finished, Data: d}, nil
	}
	d.Path = path

	return State{Status: Running, Data: d}, nil
}

// collectArcs snapshots the arc list of g in ascending (from, to) order.
func collectArcs(g *core.Graph) ([]Arc, error) {
	arcs := make([]Arc, 0, g.EdgeCount())
	for _, v := range g.Vertices() {
		nbrs, err := g.Neighbors(v.ID)
		if err != nil {
			return nil, err
		}
		for _, e := range nbrs {
			arcs = append(arcs, Arc{From: v.ID, To: e.To})
		}
	}

	return arcs, nil
}

// capacityGraph clones g and gives every arc a zero-capacity reverse
// arc; an already-present reverse arc keeps its real capacity.
func capacityGraph(g *core.Graph, arcs []Arc) (*core.Graph, error) {
	gc := g.Clone()
	zero := weight.Zero(g.WeightKind())
	for _, a := range arcs {
		if err := gc.AddWeightedEdge(a.To, a.From, zero); err != nil && !errors.Is(err, core.ErrEdgeExists) {
			return nil, err
		}
	}

	return gc, nil
}

// flowGraph builds the zero-valued flow ledger for g: the same
// vertices, one zero arc per original arc, then zero reverse arcs
// where absent.
func flowGraph(g *core.Graph, arcs []Arc) (*core.Graph, error) {
	gf := g.CloneEmpty()
	zero := weight.Zero(g.WeightKind())
	for _, a := range arcs {
		if err := gf.AddWeightedEdge(a.From, a.To, zero); err != nil {
			return nil, err
		}
	}
	for _, a := range arcs {
		if err := gf.AddWeightedEdge(a.To, a.From, zero); err != nil && !errors.Is(err, core.ErrEdgeExists) {
			return nil, err
		}
	}

	return gf, nil
}
