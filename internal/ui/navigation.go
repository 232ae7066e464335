package ui

import (
	"github.com/atomicstack/locality-picker/internal/ui/combobox"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		m.aborted = true
		return tea.Quit
	}
	if !m.loads.State().IsReady() {
		if key.Matches(keyMsg, m.keys.Close) {
			return tea.Quit
		}
		return nil
	}
	if key.Matches(keyMsg, m.keys.Toggle) {
		m.dispatchToggle()
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Close):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Select):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Down):
		m.dispatchInput(combobox.TriggerArrowDown)
	case key.Matches(keyMsg, m.keys.Up):
		m.dispatchInput(combobox.TriggerArrowUp)
	case key.Matches(keyMsg, m.keys.Home):
		m.dispatchInput(combobox.TriggerHome)
	case key.Matches(keyMsg, m.keys.End):
		m.dispatchInput(combobox.TriggerEnd)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.dispatchInput(combobox.TriggerPageUp)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.dispatchInput(combobox.TriggerPageDown)
	}
	return nil
}

// dispatchInput fires the event the input element binds to trigger.
func (m *Model) dispatchInput(trigger combobox.Trigger) bool {
	ev, ok := m.combo.InputProps().Handle(trigger)
	if !ok {
		return false
	}
	return m.combo.Dispatch(ev)
}

func (m *Model) dispatchToggle() bool {
	ev, ok := m.combo.ToggleButtonProps().Handle(combobox.TriggerClick)
	if !ok {
		return false
	}
	return m.combo.Dispatch(ev)
}

func (m *Model) dispatchItem(index int, trigger combobox.Trigger) bool {
	ev, ok := m.combo.ItemProps(index).Handle(trigger)
	if !ok {
		return false
	}
	return m.combo.Dispatch(ev)
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.combo.IsOpen() {
		m.dispatchInput(combobox.TriggerEscape)
		return nil
	}
	return tea.Quit
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.combo.IsOpen() {
		before := m.combo.Caret()
		if m.dispatchInput(combobox.TriggerEnter) {
			m.noteInputCursorChange(before)
		}
		return nil
	}
	if m.combo.SelectedItem() != nil {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.syncPageSize()
	return nil
}

func (m *Model) syncPageSize() {
	m.combo.SetPageSize(m.maxVisibleItems())
}

// maxVisibleItems returns how many menu rows fit, or 0 for no limit.
func (m *Model) maxVisibleItems() int {
	limit := m.opts.MaxVisible
	if m.height <= 0 {
		return limit
	}
	used := 2 // label + input
	if m.opts.ShowFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		remain = 1
	}
	if limit > 0 && limit < remain {
		return limit
	}
	return remain
}
