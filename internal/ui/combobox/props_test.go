package combobox

import "testing"

func TestPropIDsAndRoles(t *testing.T) {
	c := New(makeItems("Sakchi", "Kadma"), WithID("locality"))
	if got := c.LabelProps(); got.ID != "locality-label" || got.Attr("for") != "locality-input" {
		t.Fatalf("unexpected label props %+v", got)
	}
	input := c.InputProps()
	if input.ID != "locality-input" || input.Role != "combobox" {
		t.Fatalf("unexpected input props %+v", input)
	}
	if input.Attr("aria-controls") != "locality-menu" || input.Attr("aria-labelledby") != "locality-label" {
		t.Fatalf("unexpected input relations %+v", input.Attrs)
	}
	if input.Attr("aria-expanded") != "false" || input.Attr("autocomplete") != "off" {
		t.Fatalf("unexpected input attrs %+v", input.Attrs)
	}
	if _, ok := input.Attrs["aria-activedescendant"]; ok {
		t.Fatalf("no active descendant expected while closed")
	}
	if got := c.MenuProps(); got.ID != "locality-menu" || got.Role != "listbox" {
		t.Fatalf("unexpected menu props %+v", got)
	}
	if got := c.ItemProps(1); got.ID != "locality-item-1" || got.Role != "option" {
		t.Fatalf("unexpected item props %+v", got)
	}
}

func TestToggleButtonLabelFollowsState(t *testing.T) {
	c := New(makeItems("Sakchi"))
	props := c.ToggleButtonProps()
	if props.Attr("aria-label") != "open menu" || props.Attr("tabindex") != "-1" {
		t.Fatalf("unexpected toggle props %+v", props.Attrs)
	}
	ev, ok := props.Handle(TriggerClick)
	if !ok || ev.Kind != EventToggleClick {
		t.Fatalf("toggle click must dispatch toggle, got %+v", ev)
	}
	c.Dispatch(ev)
	if got := c.ToggleButtonProps().Attr("aria-label"); got != "close menu" {
		t.Fatalf("expected close menu label, got %q", got)
	}
}

func TestItemPropsReflectHighlightAndSelection(t *testing.T) {
	c := New(makeItems("Sakchi", "Bistupur"))
	c.ArrowDown()
	c.ArrowDown()
	if got := c.ItemProps(1).Attr("aria-selected"); got != "true" {
		t.Fatalf("highlighted item must be aria-selected, got %q", got)
	}
	if got := c.InputProps().Attr("aria-activedescendant"); got != c.ItemID(1) {
		t.Fatalf("unexpected active descendant %q", got)
	}
	ev, _ := c.ItemProps(1).Handle(TriggerClick)
	c.Dispatch(ev)
	c.Toggle()
	if got := c.ItemProps(0).Attr("data-selected"); got != "true" {
		t.Fatalf("selected item must be flagged, got %q", got)
	}
	if got := c.ItemProps(0).Attr("aria-selected"); got != "false" {
		t.Fatalf("no item should be highlighted, got %q", got)
	}
}

func TestDispatchThroughProps(t *testing.T) {
	items := makeItems("Sakchi", "Bistupur", "Kadma")
	c := New(items)
	change, _ := c.InputProps().Handle(TriggerChange)
	change.Value, change.Caret = "ka", 2
	if !c.Dispatch(change) {
		t.Fatalf("input change must transition")
	}
	down, _ := c.InputProps().Handle(TriggerArrowDown)
	c.Dispatch(down)
	enter, _ := c.InputProps().Handle(TriggerEnter)
	c.Dispatch(enter)
	if c.SelectedItem() != items[2] || c.InputValue() != "Kadma" {
		t.Fatalf("unexpected state %+v", c.State())
	}
	hover, _ := c.ItemProps(0).Handle(TriggerMouseMove)
	if c.Dispatch(hover) {
		t.Fatalf("hover on closed menu must be ignored")
	}
	blur, _ := c.InputProps().Handle(TriggerBlur)
	if c.Dispatch(blur) {
		t.Fatalf("blur on closed menu must not transition")
	}
}

func TestEventKindString(t *testing.T) {
	if EventArrowDown.String() != "arrow-down" || EventKind(99).String() != "event(99)" {
		t.Fatalf("unexpected names %q %q", EventArrowDown.String(), EventKind(99).String())
	}
}
