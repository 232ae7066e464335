package backend

import (
	"context"
	"sync"

	"github.com/atomicstack/locality-picker/internal/locations"
	"github.com/atomicstack/locality-picker/internal/logging/events"
)

// Fetcher retrieves the location list once.
type Fetcher interface {
	Fetch(ctx context.Context) ([]*locations.Item, error)
}

// Event conveys the fetched items or the error from the lookup.
type Event struct {
	Items []*locations.Item
	Err   error
}

// Loader performs the single location lookup on a goroutine and publishes
// exactly one Event before closing its channel.
type Loader struct {
	fetcher Fetcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	once   sync.Once
	wg     sync.WaitGroup
}

// NewLoader prepares a loader; nothing is fetched until Start.
func NewLoader(fetcher Fetcher) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		fetcher: fetcher,
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan Event, 1),
	}
}

// Start launches the lookup. Calls after the first are no-ops.
func (l *Loader) Start() {
	l.once.Do(func() {
		l.wg.Add(1)
		go l.run()
	})
}

func (l *Loader) run() {
	defer l.wg.Done()
	defer close(l.events)

	items, err := l.fetcher.Fetch(l.ctx)
	if err != nil {
		events.Loader.Error(err)
	}
	l.events <- Event{Items: items, Err: err}
}

// Events returns the channel carrying the lookup outcome.
func (l *Loader) Events() <-chan Event {
	return l.events
}

// Stop cancels an in-flight lookup. The event is still delivered, carrying
// the cancellation error.
func (l *Loader) Stop() {
	l.cancel()
}

// Wait blocks until the lookup goroutine has exited.
func (l *Loader) Wait() {
	l.wg.Wait()
}
