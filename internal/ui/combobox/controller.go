// Package combobox implements the interaction state machine behind a text
// input paired with a filtered, keyboard-navigable dropdown. It knows
// nothing about rendering: callers read state and prop sets, and feed
// interactions back in through Dispatch.
package combobox

import "github.com/atomicstack/locality-picker/internal/locations"

const defaultID = "combobox"

// State is the observable interaction state. HighlightedIndex is -1 when
// nothing is highlighted and always indexes the filtered items otherwise.
type State struct {
	InputValue       string
	IsOpen           bool
	HighlightedIndex int
	SelectedItem     *locations.Item
}

// Controller owns the combobox state. It is not safe for concurrent use;
// all transitions are expected to run on the UI event loop.
type Controller struct {
	id       string
	match    MatchMode
	pageSize int

	full  []*locations.Item
	items []*locations.Item

	input       string
	caret       int
	open        bool
	highlighted int
	selected    *locations.Item

	viewportOffset int

	nextListener int
	listeners    map[int]func(State)
}

// Option customises a Controller.
type Option func(*Controller)

// WithID sets the prefix used for element IDs in prop sets.
func WithID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.id = id
		}
	}
}

// WithMatchMode selects how the input filters items.
func WithMatchMode(mode MatchMode) Option {
	return func(c *Controller) { c.match = mode }
}

// WithPageSize bounds the number of rows visible at once. Zero shows all
// rows and makes page movement jump to the ends.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n < 0 {
			n = 0
		}
		c.pageSize = n
	}
}

// New constructs a closed Controller over items.
func New(items []*locations.Item, opts ...Option) *Controller {
	c := &Controller{
		id:          defaultID,
		highlighted: -1,
		listeners:   make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.full = CloneItems(items)
	c.applyFilter()
	return c
}

// State returns a snapshot of the interaction state.
func (c *Controller) State() State {
	return State{
		InputValue:       c.input,
		IsOpen:           c.open,
		HighlightedIndex: c.highlighted,
		SelectedItem:     c.selected,
	}
}

func (c *Controller) ID() string { return c.id }

func (c *Controller) InputValue() string { return c.input }

func (c *Controller) IsOpen() bool { return c.open }

func (c *Controller) HighlightedIndex() int { return c.highlighted }

func (c *Controller) SelectedItem() *locations.Item { return c.selected }

// Items returns the full item source.
func (c *Controller) Items() []*locations.Item { return CloneItems(c.full) }

// FilteredItems returns the items matching the current input, in source order.
func (c *Controller) FilteredItems() []*locations.Item { return CloneItems(c.items) }

// ShowPlaceholder reports whether the "No results found" row applies: the
// input is empty and there is nothing to list.
func (c *Controller) ShowPlaceholder() bool {
	return c.input == "" && len(c.items) == 0
}

// MenuVisible reports whether a rendering layer should draw the menu.
func (c *Controller) MenuVisible() bool {
	return c.open && (len(c.items) > 0 || c.ShowPlaceholder())
}

// SetItems replaces the item source. The selection is dropped when its item
// is no longer present and the highlight is clamped to the new filtered list.
func (c *Controller) SetItems(items []*locations.Item) {
	before := c.State()
	c.full = CloneItems(items)
	if indexOf(c.full, c.selected) < 0 {
		c.selected = nil
	}
	c.applyFilter()
	c.clampHighlight()
	c.commit(before)
}

// Subscribe registers fn to be called synchronously after every transition
// that changes State. The returned function removes the registration.
func (c *Controller) Subscribe(fn func(State)) func() {
	if fn == nil {
		return func() {}
	}
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *Controller) commit(before State) bool {
	after := c.State()
	if after == before {
		return false
	}
	for id := 0; id < c.nextListener; id++ {
		if fn, ok := c.listeners[id]; ok {
			fn(after)
		}
	}
	return true
}

// SetInputValue replaces the input text and places the caret at caret.
func (c *Controller) SetInputValue(value string, caret int) bool {
	before := c.State()
	c.setInput(value, caret)
	return c.commit(before)
}

// setInput is the input-change transition: refilter, open, drop the highlight.
func (c *Controller) setInput(value string, caret int) {
	c.input = value
	c.caret = clampCaret(caret, value)
	c.applyFilter()
	c.open = true
	c.highlighted = -1
	c.viewportOffset = 0
}

// Toggle flips the menu open or closed.
func (c *Controller) Toggle() bool {
	before := c.State()
	if c.open {
		c.closeMenu()
	} else {
		c.open = true
	}
	return c.commit(before)
}

// Close closes the menu without touching the selection or the input. It
// serves both the escape key and loss of focus.
func (c *Controller) Close() bool {
	before := c.State()
	c.closeMenu()
	return c.commit(before)
}

func (c *Controller) closeMenu() {
	c.open = false
	c.highlighted = -1
	c.viewportOffset = 0
}

// SelectHighlighted commits the highlighted item. It does nothing unless
// the menu is open and an item is highlighted.
func (c *Controller) SelectHighlighted() bool {
	return c.SelectIndex(c.highlighted)
}

// SelectIndex commits the filtered item at index, as a click does.
func (c *Controller) SelectIndex(index int) bool {
	if !c.open || index < 0 || index >= len(c.items) {
		return false
	}
	before := c.State()
	item := c.items[index]
	c.selected = item
	name := item.Name()
	c.input = name
	c.caret = len([]rune(name))
	c.applyFilter()
	c.closeMenu()
	return c.commit(before)
}

func (c *Controller) applyFilter() {
	c.items = FilterItems(c.full, c.input, c.match)
}

func (c *Controller) clampHighlight() {
	n := len(c.items)
	if n == 0 || !c.open {
		c.highlighted = -1
		c.viewportOffset = 0
		return
	}
	if c.highlighted >= n {
		c.highlighted = n - 1
	}
	if c.viewportOffset > n-1 {
		c.viewportOffset = 0
	}
}
