package ui

import (
	"testing"

	"github.com/atomicstack/locality-picker/internal/locations"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTypingFiltersItems(t *testing.T) {
	h := NewHarness(newReadyModel(t, "Sakchi", "Bistupur", "Kadma"))
	h.Type("ka")
	c := h.Model().Combobox()
	if c.InputValue() != "ka" {
		t.Fatalf("expected input ka, got %q", c.InputValue())
	}
	if !c.IsOpen() {
		t.Fatalf("typing must open the menu")
	}
	if got := locations.Names(c.FilteredItems()); len(got) != 1 || got[0] != "Kadma" {
		t.Fatalf("unexpected filter %v", got)
	}
}

func TestBackspaceRemovesRune(t *testing.T) {
	h := NewHarness(newReadyModel(t, "Sakchi", "Kadma"))
	h.Type("kad")
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := h.Model().Combobox().InputValue(); got != "ka" {
		t.Fatalf("expected ka, got %q", got)
	}
}

func TestCtrlUClearsInput(t *testing.T) {
	h := NewHarness(newReadyModel(t, "Sakchi", "Kadma"))
	h.Type("sak")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	c := h.Model().Combobox()
	if c.InputValue() != "" || len(c.FilteredItems()) != 2 {
		t.Fatalf("expected cleared input, got %q", c.InputValue())
	}
}

func TestCtrlWDeletesWord(t *testing.T) {
	h := NewHarness(newReadyModel(t, "New Baridih"))
	h.Type("new bar")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	if got := h.Model().Combobox().InputValue(); got != "new " {
		t.Fatalf("expected %q, got %q", "new ", got)
	}
}

func TestCaretKeysMoveWithoutEditing(t *testing.T) {
	h := NewHarness(newReadyModel(t, "Kadma"))
	h.Type("kdma")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlA})
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	c := h.Model().Combobox()
	if c.Caret() != 1 || c.InputValue() != "kdma" {
		t.Fatalf("unexpected caret %d input %q", c.Caret(), c.InputValue())
	}
	h.Type("a")
	if c.InputValue() != "kadma" {
		t.Fatalf("expected insertion at caret, got %q", c.InputValue())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlE})
	if c.Caret() != 5 {
		t.Fatalf("expected caret at end, got %d", c.Caret())
	}
}

func TestTypingIgnoredWhileLoading(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Type("ka")
	if got := h.Model().Combobox().InputValue(); got != "" {
		t.Fatalf("input must be inert while loading, got %q", got)
	}
}
