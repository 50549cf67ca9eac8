// State machine vocabulary and sentinel errors.

package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepflow/core"
	"github.com/katalvlaran/stepflow/weight"
)

// Sentinel errors for the NotStarted→Running preconditions.
var (
	// ErrNilGraph indicates Step was asked to start without a graph.
	ErrNilGraph = errors.New("flow: graph not created")

	// ErrNotDirected indicates the graph must be directed.
	ErrNotDirected = errors.New("flow: graph is not directed")

	// ErrNotWeighted indicates the graph must carry capacities.
	ErrNotWeighted = errors.New("flow: graph is not weighted")

	// ErrSourceNotFound indicates the source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound indicates the sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrBadStatus indicates a State carrying a Status outside the enum.
	ErrBadStatus = errors.New("flow: invalid status")
)

// ArgumentError reports a malformed endpoint token: index 0 is the
// source argument, index 1 the sink.
type ArgumentError struct {
	Index int
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("flow: incorrect argument #%d: %v", e.Index, e.Err)
}

// Unwrap exposes the token-validation cause.
func (e *ArgumentError) Unwrap() error { return e.Err }

// Status enumerates the phases of the resumable computation.
type Status uint8

const (
	// NotStarted is the initial and post-reset phase: the next Step
	// validates preconditions and builds fresh snapshots.
	NotStarted Status = iota

	// Running means snapshots exist; each Step runs one search.
	Running

	// Finished means the last search found no augmenting path; Data
	// holds the final flow for inspection.
	Finished
)

// String returns the phase name.
func (st Status) String() string {
	switch st {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Finished:
		return "Finished"
	default:
		return fmt.Sprintf("Status(%d)", uint8(st))
	}
}

// Arc identifies a directed arc by its endpoints. It keys Data.Path.
type Arc struct {
	From, To string
}

// Data is one computation's working set. Capacity and Flow are private
// snapshots owned by the machine; the source graph is never touched.
type Data struct {
	// Source and Sink are the validated endpoint IDs.
	Source, Sink string

	// Capacity is the capacity graph: a clone of the input augmented
	// with a zero-capacity reverse arc for every arc lacking one.
	Capacity *core.Graph

	// Flow records the pushed flow per arc: zero-initialized forward
	// and reverse arcs; reverse arcs go negative as flow accumulates.
	Flow *core.Graph

	// Path maps every arc touched by the most recent augmenting path to
	// its signed delta (+bottleneck forward, −bottleneck backward).
	// Nil when no search has run yet or the last search found nothing.
	Path map[Arc]weight.Weight

	// LastFlow is the bottleneck pushed by the most recent search: the
	// path's flow while paths keep arriving, zero on the empty search
	// that finishes the machine.
	LastFlow weight.Weight

	// TotalFlow accumulates LastFlow values, saturating at Inf.
	TotalFlow weight.Weight
}

// State is the machine handle callers thread through Step.
// The zero value is the ready NotStarted state.
type State struct {
	// Status selects the transition the next Step performs.
	Status Status

	// Data is nil exactly when Status == NotStarted.
	Data *Data
}
