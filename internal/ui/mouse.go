package ui

import (
	"github.com/atomicstack/locality-picker/internal/ui/combobox"
	tea "github.com/charmbracelet/bubbletea"
)

type mouseTarget int

const (
	targetNone mouseTarget = iota
	targetInput
	targetToggle
	targetItem
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if !m.loads.State().IsReady() {
		return nil
	}
	target, index := m.mouseTargetAt(ev)
	switch {
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		m.clickTarget(target, index)
	case ev.Action == tea.MouseActionMotion:
		m.hoverTarget(target, index)
	}
	return nil
}

// mouseTargetAt resolves the zone under the pointer.
func (m *Model) mouseTargetAt(ev tea.MouseMsg) (mouseTarget, int) {
	if m.zones.Get(m.combo.ToggleID()).InBounds(ev) {
		return targetToggle, -1
	}
	if m.zones.Get(m.combo.InputID()).InBounds(ev) {
		return targetInput, -1
	}
	if m.combo.MenuVisible() {
		start, end := m.combo.VisibleRange()
		for i := start; i < end; i++ {
			if m.zones.Get(m.combo.ItemID(i)).InBounds(ev) {
				return targetItem, i
			}
		}
	}
	return targetNone, -1
}

func (m *Model) clickTarget(target mouseTarget, index int) {
	switch target {
	case targetToggle:
		m.dispatchToggle()
	case targetItem:
		before := m.combo.Caret()
		if m.dispatchItem(index, combobox.TriggerClick) {
			m.noteInputCursorChange(before)
		}
	case targetNone:
		m.dispatchInput(combobox.TriggerBlur)
	}
}

func (m *Model) hoverTarget(target mouseTarget, index int) {
	if target == targetItem {
		m.dispatchItem(index, combobox.TriggerMouseMove)
	}
}
