// Text codec: Decode's line state machine and Encode's renderer.

package graphtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/stepflow/core"
	"github.com/katalvlaran/stepflow/weight"
)

// Fixed tokens of the format.
const (
	tokDirected   = "directed"
	tokUndirected = "undirected"
	tokWeighted   = "weighted"
	tokUnweighted = "unweighted"
	markVertices  = "vertices"
	markEdges     = "edges"
)

// decodeState sequences the three sections of the format.
type decodeState uint8

const (
	stateHeader decodeState = iota
	stateVerticesMarker
	stateVertices
	stateEdges
)

// Decode parses a graph from the text format. Errors are wrapped with
// the 1-based line they occurred on. An input with no lines at all
// fails with ErrEmptyInput; an input that ends before both section
// markers have appeared fails with the missing marker's error.
func Decode(r io.Reader) (*core.Graph, error) {
	var (
		g     *core.Graph
		state = stateHeader
		line  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		tokens := strings.Fields(sc.Text())

		var err error
		switch state {
		case stateHeader:
			if g, err = parseGraphSpec(tokens); err == nil {
				state = stateVerticesMarker
			}
		case stateVerticesMarker:
			if isMarker(tokens, markVertices) {
				state = stateVertices
			} else {
				err = ErrVerticesHeader
			}
		case stateVertices:
			if isMarker(tokens, markEdges) {
				state = stateEdges
			} else {
				err = addVertexTokens(g, tokens)
			}
		case stateEdges:
			err = addEdgeTokens(g, tokens)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	// Both markers are required even over empty sections.
	switch state {
	case stateHeader:
		return nil, ErrEmptyInput
	case stateVerticesMarker:
		return nil, ErrVerticesHeader
	case stateVertices:
		return nil, ErrEdgesHeader
	}

	return g, nil
}

// Encode renders g in the text format: three-token header, both
// section markers, vertex and edge lines in ascending ID order.
// Undirected edges are written once with from <= to.
func Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNotExist
	}

	bw := bufio.NewWriter(w)

	// 1) Header. The kind token is always written, int for unweighted.
	dir := tokUndirected
	if g.Directed() {
		dir = tokDirected
	}
	wt := tokUnweighted
	if g.Weighted() {
		wt = tokWeighted
	}
	fmt.Fprintf(bw, "%s %s %s\n", dir, wt, g.WeightKind())

	// 2) Vertices.
	fmt.Fprintln(bw, markVertices)
	for _, v := range g.Vertices() {
		if v.Label != "" {
			fmt.Fprintf(bw, "%s %s\n", v.ID, v.Label)
		} else {
			fmt.Fprintln(bw, v.ID)
		}
	}

	// 3) Edges.
	fmt.Fprintln(bw, markEdges)
	for _, v := range g.Vertices() {
		nbrs, err := g.Neighbors(v.ID)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			if !g.Directed() && e.To < v.ID {
				continue
			}
			if g.Weighted() {
				fmt.Fprintf(bw, "%s %s %s\n", v.ID, e.To, e.Weight)
			} else {
				fmt.Fprintf(bw, "%s %s\n", v.ID, e.To)
			}
		}
	}

	return bw.Flush()
}

// isMarker reports whether a line is exactly the given section marker.
func isMarker(tokens []string, marker string) bool {
	return len(tokens) == 1 && tokens[0] == marker
}

// parseGraphSpec builds an empty graph from the header or n-command
// tokens: <directed|undirected> <weighted|unweighted> [int|float].
// The kind token is validated even when the graph is unweighted.
func parseGraphSpec(tokens []string) (*core.Graph, error) {
	if len(tokens) < 2 || len(tokens) > 3 {
		return nil, ErrArgumentCount
	}

	var opts []core.GraphOption
	switch tokens[0] {
	case tokDirected:
		opts = append(opts, core.WithDirected(true))
	case tokUndirected:
	default:
		return nil, &ArgumentError{Index: 1, Err: fmt.Errorf("%q is not directed or undirected", tokens[0])}
	}

	var weighted bool
	switch tokens[1] {
	case tokWeighted:
		weighted = true
	case tokUnweighted:
	default:
		return nil, &ArgumentError{Index: 2, Err: fmt.Errorf("%q is not weighted or unweighted", tokens[1])}
	}

	kind := weight.Int32
	if len(tokens) == 3 {
		k, err := weight.ParseKind(tokens[2])
		if err != nil {
			return nil, &ArgumentError{Index: 3, Err: err}
		}
		kind = k
	}
	if weighted {
		opts = append(opts, core.WithWeighted(kind))
	}

	return core.NewGraph(opts...), nil
}

// addVertexTokens applies one vertex line: <id> [label].
func addVertexTokens(g *core.Graph, tokens []string) error {
	switch len(tokens) {
	case 1:
		return g.AddVertex(tokens[0])
	case 2:
		return g.AddLabeledVertex(tokens[0], tokens[1])
	default:
		return ErrArgumentCount
	}
}

// addEdgeTokens applies one edge line: <from> <to> [weight]. The
// weight literal parses by the graph's kind before the graph is
// touched, so a bad literal reports as an argument error and a
// well-formed one on an unweighted graph as core's flag error.
func addEdgeTokens(g *core.Graph, tokens []string) error {
	switch len(tokens) {
	case 2:
		return g.AddEdge(tokens[0], tokens[1])
	case 3:
		w, err := weight.Parse(g.WeightKind(), tokens[2])
		if err != nil {
			return &ArgumentError{Index: 3, Err: err}
		}

		return g.AddWeightedEdge(tokens[0], tokens[1], w)
	default:
		return ErrArgumentCount
	}
}
