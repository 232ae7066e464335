package combobox

import (
	"fmt"

	"github.com/atomicstack/locality-picker/internal/logging/events"
)

// EventKind names an interaction the controller understands.
type EventKind int

const (
	EventInputChange EventKind = iota
	EventToggleClick
	EventItemClick
	EventItemHover
	EventArrowDown
	EventArrowUp
	EventHome
	EventEnd
	EventPageUp
	EventPageDown
	EventEnter
	EventEscape
	EventBlur
)

var eventKindNames = map[EventKind]string{
	EventInputChange: "input-change",
	EventToggleClick: "toggle-click",
	EventItemClick:   "item-click",
	EventItemHover:   "item-hover",
	EventArrowDown:   "arrow-down",
	EventArrowUp:     "arrow-up",
	EventHome:        "home",
	EventEnd:         "end",
	EventPageUp:      "page-up",
	EventPageDown:    "page-down",
	EventEnter:       "enter",
	EventEscape:      "escape",
	EventBlur:        "blur",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a single interaction. Index applies to item events; Value and
// Caret apply to input changes.
type Event struct {
	Kind  EventKind
	Index int
	Value string
	Caret int
}

// Dispatch applies ev and reports whether State changed.
func (c *Controller) Dispatch(ev Event) bool {
	events.Combobox.Event(ev.Kind.String(), ev.Index)
	var changed bool
	switch ev.Kind {
	case EventInputChange:
		changed = c.SetInputValue(ev.Value, ev.Caret)
	case EventToggleClick:
		changed = c.Toggle()
	case EventItemClick:
		changed = c.SelectIndex(ev.Index)
	case EventItemHover:
		changed = c.HighlightIndex(ev.Index)
	case EventArrowDown:
		changed = c.ArrowDown()
	case EventArrowUp:
		changed = c.ArrowUp()
	case EventHome:
		changed = c.HighlightFirst()
	case EventEnd:
		changed = c.HighlightLast()
	case EventPageUp:
		changed = c.PageUp()
	case EventPageDown:
		changed = c.PageDown()
	case EventEnter:
		changed = c.SelectHighlighted()
	case EventEscape, EventBlur:
		changed = c.Close()
	}
	if changed && (ev.Kind == EventEnter || ev.Kind == EventItemClick) && c.selected != nil {
		events.Combobox.Select(c.selected.Name())
	}
	return changed
}
