package ui

import (
	"unicode"

	"github.com/atomicstack/locality-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateInputCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputCursor, cmd = m.inputCursor.Update(msg)
	return cmd
}

func (m *Model) noteInputCursorChange(before int) {
	if before != m.combo.Caret() {
		m.inputCursorDirty = true
	}
}

// handleTextInput applies editing keys to the combobox input. It reports
// whether the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	c := m.combo
	before := c.Caret()
	switch msg.String() {
	case "ctrl+u":
		if !c.ClearInput() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Cleared()
		return true
	case "ctrl+w":
		if !c.DeleteWordBackward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.WordBackspace(c.InputValue())
		return true
	case "ctrl+a":
		if !c.MoveCaretStart() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Cursor(c.Caret())
		return true
	case "ctrl+e":
		if !c.MoveCaretEnd() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Cursor(c.Caret())
		return true
	case "alt+b":
		if !c.MoveCaretWordBackward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.CursorWord(c.Caret())
		return true
	case "alt+f":
		if !c.MoveCaretWordForward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.CursorWord(c.Caret())
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !c.DeleteRuneBackward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Backspace(c.InputValue())
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToInput(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToInput(" ")
	case tea.KeyLeft:
		if !c.MoveCaretRuneBackward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Cursor(c.Caret())
		return true
	case tea.KeyRight:
		if !c.MoveCaretRuneForward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Cursor(c.Caret())
		return true
	}
	return false
}

func (m *Model) appendToInput(text string) bool {
	before := m.combo.Caret()
	if !m.combo.InsertText(text) {
		return false
	}
	m.noteInputCursorChange(before)
	events.Input.Append(m.combo.InputValue())
	return true
}

// inputLine renders the prompt, the input text with its caret, or the
// placeholder when the input is empty.
func (m *Model) inputLine() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.inputCursor.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		m.inputCursor.TextStyle = styles.Input.Copy()
	} else {
		m.inputCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.InputPrompt, "» ")
	text := m.combo.InputValue()
	if text == "" {
		runes := []rune(m.opts.Placeholder)
		var caretRune, rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.InputPlaceholder != nil {
			m.inputCursor.TextStyle = styles.InputPlaceholder.Copy()
		}
		return prompt + m.renderInputCursor(caretRune) + render(styles.InputPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.combo.Caret()
	before := render(styles.Input, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Input, string(runes[pos+1:]))
	}
	return prompt + before + m.renderInputCursor(caretRune) + after
}

func (m *Model) renderInputCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.inputCursor.SetChar(char)

	base := m.inputCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.inputCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
