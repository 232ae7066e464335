package combobox

import "testing"

func TestParseMatchMode(t *testing.T) {
	cases := map[string]MatchMode{"": MatchSubstring, "substring": MatchSubstring, " Fuzzy ": MatchFuzzy}
	for in, want := range cases {
		got, err := ParseMatchMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMatchMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMatchMode("regex"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestFuzzyFilterKeepsOrder(t *testing.T) {
	items := makeItems("Bistupur", "Baridih", "Sakchi", "Birsanagar")
	got := namesOf(FilterItems(items, "bsr", MatchFuzzy))
	if !equalNames(got, []string{"Bistupur", "Birsanagar"}) {
		t.Fatalf("unexpected fuzzy result %v", got)
	}
	if got := namesOf(FilterItems(items, "bsr", MatchSubstring)); len(got) != 0 {
		t.Fatalf("substring mode must not match subsequences, got %v", got)
	}
}

func TestEmptyQueryReturnsAll(t *testing.T) {
	items := makeItems("Sakchi", "Kadma")
	if got := FilterItems(items, "", MatchFuzzy); len(got) != 2 {
		t.Fatalf("expected all items, got %d", len(got))
	}
}

func TestInsertAndDeleteAtCaret(t *testing.T) {
	c := New(makeItems("Sakchi", "Kadma"))
	c.InsertText("Kdma")
	c.MoveCaretStart()
	c.MoveCaretRuneForward()
	c.InsertText("a")
	if c.InputValue() != "Kadma" || c.Caret() != 2 {
		t.Fatalf("unexpected input %q caret %d", c.InputValue(), c.Caret())
	}
	if got := namesOf(c.FilteredItems()); !equalNames(got, []string{"Kadma"}) {
		t.Fatalf("unexpected filter %v", got)
	}
	c.DeleteRuneBackward()
	if c.InputValue() != "Kdma" || c.Caret() != 1 {
		t.Fatalf("unexpected input %q caret %d", c.InputValue(), c.Caret())
	}
}

func TestDeleteWordBackward(t *testing.T) {
	c := New(nil)
	c.InsertText("new market  ")
	c.DeleteWordBackward()
	if c.InputValue() != "new " {
		t.Fatalf("unexpected input %q", c.InputValue())
	}
	c.DeleteWordBackward()
	if c.InputValue() != "" {
		t.Fatalf("unexpected input %q", c.InputValue())
	}
	if c.DeleteWordBackward() {
		t.Fatalf("empty input must report no change")
	}
}

func TestCaretWordMovement(t *testing.T) {
	c := New(nil)
	c.InsertText("golmuri jugsalai road")
	c.MoveCaretWordBackward()
	if c.Caret() != len("golmuri jugsalai ") {
		t.Fatalf("unexpected caret %d", c.Caret())
	}
	c.MoveCaretWordBackward()
	if c.Caret() != len("golmuri ") {
		t.Fatalf("unexpected caret %d", c.Caret())
	}
	c.MoveCaretWordForward()
	if c.Caret() != len("golmuri jugsalai ") {
		t.Fatalf("unexpected caret %d", c.Caret())
	}
	c.MoveCaretEnd()
	if c.MoveCaretRuneForward() {
		t.Fatalf("caret at end must not advance")
	}
}

func TestCaretMovesDoNotNotify(t *testing.T) {
	c := New(nil)
	c.InsertText("abc")
	calls := 0
	c.Subscribe(func(State) { calls++ })
	c.MoveCaretStart()
	c.MoveCaretWordForward()
	c.MoveCaretRuneBackward()
	if calls != 0 {
		t.Fatalf("caret moves must not notify, got %d", calls)
	}
	c.ClearInput()
	if calls != 1 || c.InputValue() != "" {
		t.Fatalf("clear must notify once, got %d", calls)
	}
}
