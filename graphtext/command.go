// The mutation command surface over an optional current graph.

package graphtext

import (
	"fmt"

	"github.com/katalvlaran/stepflow/core"
)

// Session owns the current graph of an interactive or scripted editing
// run. The zero value is ready to use; until n or lf succeeds there is
// no graph and mutating commands fail with ErrGraphNotExist.
type Session struct {
	graph *core.Graph
}

// NewSession returns an empty session.
func NewSession() *Session { return &Session{} }

// Graph returns the current graph, nil before n or lf.
func (s *Session) Graph() *core.Graph { return s.graph }

// Apply dispatches one command by mnemonic:
//
//	n  +v  -v  +e  -e  lf  sf
//
// Unknown mnemonics fail with ErrUnknownCommand; everything else
// reports its named operation's errors unchanged.
func (s *Session) Apply(cmd string, args ...string) error {
	switch cmd {
	case "n":
		return s.New(args...)
	case "+v":
		return s.AddVertex(args...)
	case "-v":
		return s.RemoveVertex(args...)
	case "+e":
		return s.AddEdge(args...)
	case "-e":
		return s.RemoveEdge(args...)
	case "lf":
		return s.Load(args...)
	case "sf":
		return s.Save(args...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// New replaces the current graph with a fresh empty one built from
// <directed|undirected> <weighted|unweighted> [int|float] tokens. Any
// previous graph is discarded, saved or not.
func (s *Session) New(args ...string) error {
	g, err := parseGraphSpec(args)
	if err != nil {
		return err
	}
	s.graph = g

	return nil
}

// AddVertex applies +v <id> [label]. Checks run in command order:
// argument count, then the ID token, then the graph's existence.
func (s *Session) AddVertex(args ...string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrArgumentCount
	}
	if err := core.ValidateVertexID(args[0]); err != nil {
		return &ArgumentError{Index: 1, Err: err}
	}
	if s.graph == nil {
		return ErrGraphNotExist
	}

	return addVertexTokens(s.graph, args)
}

// RemoveVertex applies -v <id>, with the same check order as AddVertex.
func (s *Session) RemoveVertex(args ...string) error {
	if len(args) != 1 {
		return ErrArgumentCount
	}
	if err := core.ValidateVertexID(args[0]); err != nil {
		return &ArgumentError{Index: 1, Err: err}
	}
	if s.graph == nil {
		return ErrGraphNotExist
	}

	return s.graph.RemoveVertex(args[0])
}

// AddEdge applies +e <from> <to> [weight]. The graph's existence is
// checked before the tokens: its weight kind decides how the literal
// parses.
func (s *Session) AddEdge(args ...string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrArgumentCount
	}
	if s.graph == nil {
		return ErrGraphNotExist
	}
	if err := core.ValidateVertexID(args[0]); err != nil {
		return &ArgumentError{Index: 1, Err: err}
	}
	if err := core.ValidateVertexID(args[1]); err != nil {
		return &ArgumentError{Index: 2, Err: err}
	}

	return addEdgeTokens(s.graph, args)
}

// RemoveEdge applies -e <from> <to>: count, endpoint tokens, then the
// graph's existence.
func (s *Session) RemoveEdge(args ...string) error {
	if len(args) != 2 {
		return ErrArgumentCount
	}
	if err := core.ValidateVertexID(args[0]); err != nil {
		return &ArgumentError{Index: 1, Err: err}
	}
	if err := core.ValidateVertexID(args[1]); err != nil {
		return &ArgumentError{Index: 2, Err: err}
	}
	if s.graph == nil {
		return ErrGraphNotExist
	}

	return s.graph.RemoveEdge(args[0], args[1])
}

// Load applies lf <path>: the file's graph replaces the current one.
// The current graph survives a failed load untouched.
func (s *Session) Load(args ...string) error {
	if len(args) != 1 {
		return ErrArgumentCount
	}
	g, err := ReadFile(args[0])
	if err != nil {
		return err
	}
	s.graph = g

	return nil
}

// Save applies sf <path>, writing the current graph out.
func (s *Session) Save(args ...string) error {
	if len(args) != 1 {
		return ErrArgumentCount
	}
	if s.graph == nil {
		return ErrGraphNotExist
	}

	return WriteFile(args[0], s.graph)
}
