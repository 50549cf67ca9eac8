package flow

import "github.com/katalvlaran/stepflow/core"

// Run drives a fresh machine to completion and returns its final Data:
// TotalFlow holds the maximum flow from source to sink and Flow the
// per-arc assignment that realizes it. It is the non-interactive
// wrapper over Step; use Step directly to observe individual
// augmenting paths.
//
// A network whose source equals its sink has no finite maximum; Run
// returns as soon as TotalFlow saturates at Inf instead of looping on
// an endless supply of empty paths.
func Run(g *core.Graph, source, sink string) (*Data, error) {
	st, err := Step(State{}, g, source, sink)
	if err != nil {
		return nil, err
	}
	for st.Status == Running {
		if st.Data.Source == st.Data.Sink && st.Data.TotalFlow.IsInf() {
			return st.Data, nil
		}
		if st, err = Step(st, g, source, sink); err != nil {
			return nil, err
		}
	}

	return st.Data, nil
}
