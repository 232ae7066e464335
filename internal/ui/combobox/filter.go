package combobox

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/atomicstack/locality-picker/internal/locations"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchMode selects how the input text filters items.
type MatchMode int

const (
	// MatchSubstring keeps items whose name contains the input, ignoring case.
	MatchSubstring MatchMode = iota
	// MatchFuzzy keeps items whose name contains the input's characters in
	// order, ignoring case and diacritics.
	MatchFuzzy
)

func (m MatchMode) String() string {
	switch m {
	case MatchSubstring:
		return "substring"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return fmt.Sprintf("match(%d)", int(m))
	}
}

// ParseMatchMode maps a configuration value to a MatchMode.
func ParseMatchMode(value string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "substring":
		return MatchSubstring, nil
	case "fuzzy":
		return MatchFuzzy, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown match mode %q (want substring or fuzzy)", value)
	}
}

// FilterItems returns the items matching query in source order. An empty
// query matches everything.
func FilterItems(items []*locations.Item, query string, mode MatchMode) []*locations.Item {
	if query == "" {
		return CloneItems(items)
	}
	filtered := make([]*locations.Item, 0, len(items))
	switch mode {
	case MatchFuzzy:
		for _, item := range items {
			if fuzzy.MatchNormalizedFold(query, item.Name()) {
				filtered = append(filtered, item)
			}
		}
	default:
		lower := strings.ToLower(query)
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name()), lower) {
				filtered = append(filtered, item)
			}
		}
	}
	return filtered
}

func clampCaret(caret int, value string) int {
	if caret < 0 {
		return 0
	}
	if n := len([]rune(value)); caret > n {
		return n
	}
	return caret
}

// Caret returns the rune offset of the text caret within the input.
func (c *Controller) Caret() int {
	return clampCaret(c.caret, c.input)
}

// InsertText inserts text at the caret.
func (c *Controller) InsertText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(c.input)
	pos := c.Caret()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	before := c.State()
	c.setInput(string(updated), pos+len(insert))
	c.commit(before)
	return true
}

// DeleteRuneBackward deletes the rune before the caret.
func (c *Controller) DeleteRuneBackward() bool {
	runes := []rune(c.input)
	pos := c.Caret()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	before := c.State()
	c.setInput(string(updated), pos-1)
	c.commit(before)
	return true
}

// DeleteWordBackward deletes the word preceding the caret.
func (c *Controller) DeleteWordBackward() bool {
	runes := []rune(c.input)
	pos := c.Caret()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	updated := append(runes[:i:i], runes[pos:]...)
	before := c.State()
	c.setInput(string(updated), i)
	c.commit(before)
	return true
}

// ClearInput empties the input.
func (c *Controller) ClearInput() bool {
	if c.input == "" {
		return false
	}
	before := c.State()
	c.setInput("", 0)
	c.commit(before)
	return true
}

// MoveCaretStart moves the caret to the start of the input.
func (c *Controller) MoveCaretStart() bool {
	if c.Caret() == 0 {
		return false
	}
	c.caret = 0
	return true
}

// MoveCaretEnd moves the caret to the end of the input.
func (c *Controller) MoveCaretEnd() bool {
	end := len([]rune(c.input))
	if c.Caret() == end {
		return false
	}
	c.caret = end
	return true
}

// MoveCaretWordBackward moves the caret one word backward.
func (c *Controller) MoveCaretWordBackward() bool {
	runes := []rune(c.input)
	pos := c.Caret()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	if i == pos {
		return false
	}
	c.caret = i
	return true
}

// MoveCaretWordForward moves the caret one word forward.
func (c *Controller) MoveCaretWordForward() bool {
	runes := []rune(c.input)
	pos := c.Caret()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	c.caret = i
	return true
}

// MoveCaretRuneBackward moves the caret one rune backward.
func (c *Controller) MoveCaretRuneBackward() bool {
	if c.Caret() == 0 {
		return false
	}
	c.caret = c.Caret() - 1
	return true
}

// MoveCaretRuneForward moves the caret one rune forward.
func (c *Controller) MoveCaretRuneForward() bool {
	pos := c.Caret()
	if pos >= len([]rune(c.input)) {
		return false
	}
	c.caret = pos + 1
	return true
}

func wordStartBefore(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
