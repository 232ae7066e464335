package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestArrowKeysWrap(t *testing.T) {
	h := NewHarness(newReadyModel(t, "Sakchi", "Bistupur", "Kadma"))
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	c := h.Model().Combobox()
	if !c.IsOpen() || c.HighlightedIndex() != 0 {
		t.Fatalf("down must open at first item, got %+v", c.State())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	if c.HighlightedIndex() != 2 {
		t.Fatalf("up from first must wrap to last, got %d", c.HighlightedIndex())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	if c.HighlightedIndex() != 0 {
		t.Fatalf("ctrl+n from last must wrap to first, got %d", c.HighlightedIndex())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	if c.HighlightedIndex() != 2 {
		t.Fatalf("end must jump to last, got %d", c.HighlightedIndex())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyHome})
	if c.HighlightedIndex() != 0 {
		t.Fatalf("home must jump to first, got %d", c.HighlightedIndex())
	}
}

func TestEnterSelectsHighlighted(t *testing.T) {
	h := NewHarness(newReadyModel(t, "Sakchi", "Bistupur", "Kadma"))
	h.Type("ka")
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	c := h.Model().Combobox()
	if c.SelectedItem().Name() != "Kadma" || c.InputValue() != "Kadma" || c.IsOpen() {
		t.Fatalf("unexpected state after enter %+v", c.State())
	}
}

func TestEnterWithClosedMenuQuitsWithSelection(t *testing.T) {
	m := newReadyModel(t, "Sakchi")
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatalf("expected quit on enter with a selection")
	}
	if m.Selection() != "Sakchi" {
		t.Fatalf("expected selection Sakchi, got %q", m.Selection())
	}
}

func TestEnterWithoutSelectionStays(t *testing.T) {
	m := newReadyModel(t, "Sakchi")
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); isQuit(cmd) {
		t.Fatalf("enter without a selection must not quit")
	}
}

func TestEscapeClosesThenQuits(t *testing.T) {
	m := newReadyModel(t, "Sakchi")
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if isQuit(cmd) {
		t.Fatalf("first escape must only close the menu")
	}
	if m.Combobox().IsOpen() {
		t.Fatalf("expected menu closed")
	}
	if _, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc}); !isQuit(cmd) {
		t.Fatalf("escape on a closed menu must quit")
	}
}

func TestTabToggles(t *testing.T) {
	h := NewHarness(newReadyModel(t, "Sakchi"))
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if !h.Model().Combobox().IsOpen() {
		t.Fatalf("tab must open the menu")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if h.Model().Combobox().IsOpen() {
		t.Fatalf("tab must close the menu")
	}
}

func TestCtrlCAborts(t *testing.T) {
	m := newReadyModel(t, "Sakchi")
	m.Combobox().ArrowDown()
	m.Combobox().SelectHighlighted()
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Fatalf("ctrl+c must quit")
	}
	if m.Selection() != "" {
		t.Fatalf("ctrl+c must discard the selection")
	}
}

func TestEscapeQuitsFromErrorScreen(t *testing.T) {
	m := newTestModel(t, Options{})
	m.applyLoaderEvent(backendEventErr("boom"))
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); !isQuit(cmd) {
		t.Fatalf("escape must quit from the error screen")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown}); cmd != nil {
		t.Fatalf("navigation keys must be inert on the error screen")
	}
}

func TestPageKeysMoveByVisibleRows(t *testing.T) {
	m := newReadyModel(t, "a1", "a2", "a3", "a4", "a5", "a6")
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if got := m.Combobox().HighlightedIndex(); got != 3 {
		t.Fatalf("expected highlight 3, got %d", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	if got := m.Combobox().HighlightedIndex(); got != 0 {
		t.Fatalf("expected highlight 0, got %d", got)
	}
}
