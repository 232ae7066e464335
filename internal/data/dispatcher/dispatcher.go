package dispatcher

import (
	"github.com/atomicstack/locality-picker/internal/backend"
	"github.com/atomicstack/locality-picker/internal/locations"
	"github.com/atomicstack/locality-picker/internal/state"
)

type Result struct {
	Resolved bool
	State    locations.LoadState
}

// Dispatcher routes backend events into the load store.
type Dispatcher struct {
	loads state.LoadStore
}

func New(loads state.LoadStore) *Dispatcher {
	return &Dispatcher{loads: loads}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	next := locations.StateFromResult(evt.Items, evt.Err)
	resolved := d.loads.Resolve(next)
	return Result{Resolved: resolved, State: d.loads.State()}
}
