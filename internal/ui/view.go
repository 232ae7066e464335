package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	noResultsText = "No results found"
	loadingText   = "Loading..."
	itemIndicator = "▌"
	selectedMark  = "✓"
)

// View implements tea.Model.
func (m *Model) View() string {
	st := m.loads.State()
	var out string
	switch {
	case st.IsLoading():
		out = m.viewLoading()
	case st.IsError():
		out = m.viewError(st.Message())
	default:
		out = m.viewPicker()
	}
	return m.zones.Scan(out)
}

func (m *Model) viewLoading() string {
	text := loadingText
	if styles.Loading != nil {
		text = styles.Loading.Render(text)
	}
	return m.fitWidth(m.spinner.View() + " " + text)
}

func (m *Model) viewError(message string) string {
	text := fmt.Sprintf("Error: %s", message)
	text = m.fitWidth(text)
	if styles.Error != nil {
		text = styles.Error.Render(text)
	}
	return text
}

func (m *Model) viewPicker() string {
	lines := make([]string, 0, 8)
	label := m.fitWidth(m.opts.Label)
	if styles.Label != nil {
		label = styles.Label.Render(label)
	}
	lines = append(lines, m.zones.Mark(m.combo.LabelProps().ID, label))
	lines = append(lines, m.inputRow())
	lines = append(lines, m.menuLines()...)
	if m.opts.ShowFooter {
		lines = append(lines, "")
		footer := m.help.View(m.keys)
		if styles.Footer != nil {
			footer = styles.Footer.Render(footer)
		}
		lines = append(lines, footer)
	}
	return strings.Join(lines, "\n")
}

// inputRow renders the input followed by the toggle button, whose caption
// is its accessible label.
func (m *Model) inputRow() string {
	props := m.combo.ToggleButtonProps()
	arrow := "▾"
	toggleStyle := styles.Toggle
	if m.combo.IsOpen() {
		arrow = "▴"
		toggleStyle = styles.ToggleOpen
	}
	toggle := fmt.Sprintf("[%s %s]", arrow, props.Attr("aria-label"))
	if toggleStyle != nil {
		toggle = toggleStyle.Render(toggle)
	}
	input := m.inputLine()
	if m.width > 0 {
		room := m.width - lipgloss.Width(toggle) - 1
		if room < 1 {
			room = 1
		}
		if lipgloss.Width(input) > room {
			input = truncate.StringWithTail(input, uint(room), "…")
		}
	}
	return m.zones.Mark(m.combo.InputID(), input) + " " + m.zones.Mark(props.ID, toggle)
}

func (m *Model) menuLines() []string {
	if !m.combo.MenuVisible() {
		return nil
	}
	if m.combo.ShowPlaceholder() {
		text := m.fitWidth(noResultsText)
		if styles.Info != nil {
			text = styles.Info.Render(text)
		}
		return []string{m.zones.Mark(m.combo.MenuProps().ID, text)}
	}
	items := m.combo.FilteredItems()
	start, end := m.combo.VisibleRange()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.zones.Mark(m.combo.ItemID(i), m.itemLine(i, items[i].Name())))
	}
	return lines
}

// itemLine renders one menu row. The highlighted row is padded so its
// background spans the full width.
func (m *Model) itemLine(index int, name string) string {
	props := m.combo.ItemProps(index)
	highlighted := props.Attr("aria-selected") == "true"
	selected := props.Attr("data-selected") == "true"

	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	if highlighted {
		indicatorStyle = styles.HighlightedIndicator
		lineStyle = styles.HighlightedItem
	} else if selected {
		lineStyle = styles.SelectedItem
	}
	text := " " + name
	mark := ""
	if selected {
		mark = " " + selectedMark
	}
	if m.width > 0 {
		room := m.width - 1 - lipgloss.Width(mark)
		if room < 1 {
			room = 1
		}
		if lipgloss.Width(text) > room {
			text = truncate.StringWithTail(text, uint(room), "…")
		}
		if highlighted {
			if pad := room - lipgloss.Width(text); pad > 0 {
				text += strings.Repeat(" ", pad)
			}
		}
	}
	indicator := itemIndicator
	if indicatorStyle != nil {
		indicator = indicatorStyle.Render(indicator)
	}
	if lineStyle != nil {
		text = lineStyle.Render(text)
	}
	if mark != "" && styles.SelectedMark != nil {
		mark = styles.SelectedMark.Render(mark)
	}
	return indicator + text + mark
}

func (m *Model) fitWidth(text string) string {
	if m.width <= 0 || lipgloss.Width(text) <= m.width {
		return text
	}
	return truncate.StringWithTail(text, uint(m.width), "…")
}
