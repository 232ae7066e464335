package combobox

import "strconv"

// Trigger names the interaction a prop set responds to.
type Trigger string

const (
	TriggerClick     Trigger = "click"
	TriggerMouseMove Trigger = "mousemove"
	TriggerChange    Trigger = "change"
	TriggerBlur      Trigger = "blur"
	TriggerArrowDown Trigger = "keydown:ArrowDown"
	TriggerArrowUp   Trigger = "keydown:ArrowUp"
	TriggerEnter     Trigger = "keydown:Enter"
	TriggerEscape    Trigger = "keydown:Escape"
	TriggerHome      Trigger = "keydown:Home"
	TriggerEnd       Trigger = "keydown:End"
	TriggerPageUp    Trigger = "keydown:PageUp"
	TriggerPageDown  Trigger = "keydown:PageDown"
)

// Props describes one rendered element: its identity, accessibility
// attributes and the events its triggers produce.
type Props struct {
	ID    string
	Role  string
	Attrs map[string]string
	On    map[Trigger]Event
}

// Handle returns the event bound to trigger.
func (p Props) Handle(trigger Trigger) (Event, bool) {
	ev, ok := p.On[trigger]
	return ev, ok
}

// Attr returns the named attribute, or "" when unset.
func (p Props) Attr(name string) string {
	return p.Attrs[name]
}

func (c *Controller) LabelID() string  { return c.id + "-label" }
func (c *Controller) InputID() string  { return c.id + "-input" }
func (c *Controller) ToggleID() string { return c.id + "-toggle-button" }
func (c *Controller) MenuID() string   { return c.id + "-menu" }

// ItemID returns the element ID of the filtered item at index.
func (c *Controller) ItemID(index int) string {
	return c.id + "-item-" + strconv.Itoa(index)
}

// LabelProps returns the props for the field label.
func (c *Controller) LabelProps() Props {
	return Props{
		ID:    c.LabelID(),
		Attrs: map[string]string{"for": c.InputID()},
	}
}

// InputProps returns the props for the text input. Change events carry the
// current value; callers replace Value and Caret before dispatching.
func (c *Controller) InputProps() Props {
	attrs := map[string]string{
		"aria-autocomplete": "list",
		"aria-controls":     c.MenuID(),
		"aria-expanded":     strconv.FormatBool(c.open),
		"aria-labelledby":   c.LabelID(),
		"autocomplete":      "off",
		"value":             c.input,
	}
	if c.open && c.highlighted >= 0 {
		attrs["aria-activedescendant"] = c.ItemID(c.highlighted)
	}
	return Props{
		ID:    c.InputID(),
		Role:  "combobox",
		Attrs: attrs,
		On: map[Trigger]Event{
			TriggerChange:    {Kind: EventInputChange, Value: c.input, Caret: c.Caret()},
			TriggerArrowDown: {Kind: EventArrowDown},
			TriggerArrowUp:   {Kind: EventArrowUp},
			TriggerHome:      {Kind: EventHome},
			TriggerEnd:       {Kind: EventEnd},
			TriggerPageUp:    {Kind: EventPageUp},
			TriggerPageDown:  {Kind: EventPageDown},
			TriggerEnter:     {Kind: EventEnter},
			TriggerEscape:    {Kind: EventEscape},
			TriggerBlur:      {Kind: EventBlur},
		},
	}
}

// ToggleButtonProps returns the props for the open/close button.
func (c *Controller) ToggleButtonProps() Props {
	label := "open menu"
	if c.open {
		label = "close menu"
	}
	return Props{
		ID: c.ToggleID(),
		Attrs: map[string]string{
			"aria-controls": c.MenuID(),
			"aria-expanded": strconv.FormatBool(c.open),
			"aria-label":    label,
			"tabindex":      "-1",
		},
		On: map[Trigger]Event{TriggerClick: {Kind: EventToggleClick}},
	}
}

// MenuProps returns the props for the listbox container.
func (c *Controller) MenuProps() Props {
	return Props{
		ID:    c.MenuID(),
		Role:  "listbox",
		Attrs: map[string]string{"aria-labelledby": c.LabelID()},
	}
}

// ItemProps returns the props for the filtered item at index.
func (c *Controller) ItemProps(index int) Props {
	highlighted := c.open && index == c.highlighted
	selected := false
	if index >= 0 && index < len(c.items) {
		selected = c.items[index] == c.selected
	}
	return Props{
		ID:   c.ItemID(index),
		Role: "option",
		Attrs: map[string]string{
			"aria-selected": strconv.FormatBool(highlighted),
			"data-selected": strconv.FormatBool(selected),
		},
		On: map[Trigger]Event{
			TriggerClick:     {Kind: EventItemClick, Index: index},
			TriggerMouseMove: {Kind: EventItemHover, Index: index},
		},
	}
}
