package state

import (
	"sync"

	"github.com/atomicstack/locality-picker/internal/locations"
	"github.com/atomicstack/locality-picker/internal/logging/events"
)

// LoadStore holds the loader's published state. It starts in Loading and
// accepts exactly one transition to Error or Ready.
type LoadStore interface {
	State() locations.LoadState
	Resolve(locations.LoadState) bool
	Subscribe(func(locations.LoadState)) func()
}

type loadStore struct {
	mu        sync.Mutex
	state     locations.LoadState
	nextID    int
	listeners map[int]func(locations.LoadState)
}

func NewLoadStore() LoadStore {
	return &loadStore{
		state:     locations.Loading(),
		listeners: make(map[int]func(locations.LoadState)),
	}
}

func (s *loadStore) State() locations.LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Resolve applies next when the store is still loading and next is a
// terminal state. It reports whether the transition happened.
func (s *loadStore) Resolve(next locations.LoadState) bool {
	s.mu.Lock()
	if !s.state.IsLoading() || next.IsLoading() {
		s.mu.Unlock()
		events.Loader.Ignored(next.Phase().String())
		return false
	}
	s.state = next
	listeners := make([]func(locations.LoadState), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	events.Loader.Resolved(next.Phase().String(), next.Message(), len(next.Items()))
	for _, fn := range listeners {
		fn(next)
	}
	return true
}

// Subscribe registers fn to be called after the transition. The returned
// function removes the registration.
func (s *loadStore) Subscribe(fn func(locations.LoadState)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
