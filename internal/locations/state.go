package locations

import "fmt"

// Phase identifies which variant of LoadState holds.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// LoadState is the tagged result published by the loader: Loading, Error
// with a message, or Ready with an ordered list of items.
type LoadState struct {
	phase   Phase
	message string
	items   []*Item
}

// Loading returns the initial state.
func Loading() LoadState {
	return LoadState{phase: PhaseLoading}
}

// Failed returns an Error state carrying message.
func Failed(message string) LoadState {
	return LoadState{phase: PhaseError, message: message}
}

// Ready returns a Ready state holding a copy of items.
func Ready(items []*Item) LoadState {
	dup := make([]*Item, len(items))
	copy(dup, items)
	return LoadState{phase: PhaseReady, items: dup}
}

// StateFromResult collapses a fetch outcome into the matching state.
func StateFromResult(items []*Item, err error) LoadState {
	if err != nil {
		return Failed(err.Error())
	}
	return Ready(items)
}

func (s LoadState) Phase() Phase { return s.phase }

func (s LoadState) IsLoading() bool { return s.phase == PhaseLoading }

func (s LoadState) IsError() bool { return s.phase == PhaseError }

func (s LoadState) IsReady() bool { return s.phase == PhaseReady }

// Message returns the error description; empty unless IsError.
func (s LoadState) Message() string { return s.message }

// Items returns a copy of the ready items; nil unless IsReady.
func (s LoadState) Items() []*Item {
	if s.phase != PhaseReady {
		return nil
	}
	dup := make([]*Item, len(s.items))
	copy(dup, s.items)
	return dup
}
