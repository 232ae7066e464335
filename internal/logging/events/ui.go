package events

import "github.com/atomicstack/locality-picker/internal/logging"

type ComboboxTracer struct{}

type InputTracer struct{}

var (
	Combobox = ComboboxTracer{}
	Input    = InputTracer{}
)

func (ComboboxTracer) Event(kind string, index int) {
	logging.Trace("combobox.event", map[string]interface{}{"kind": kind, "index": index})
}

func (ComboboxTracer) State(input string, open bool, highlighted int, selected string, visible int) {
	logging.Trace("combobox.state", map[string]interface{}{
		"input":       input,
		"open":        open,
		"highlighted": highlighted,
		"selected":    selected,
		"visible":     visible,
	})
}

func (ComboboxTracer) Select(name string) {
	logging.Trace("combobox.select", map[string]interface{}{"name": name})
}

func (InputTracer) Cleared() {
	logging.Trace("input.clear", nil)
}

func (InputTracer) WordBackspace(value string) {
	logging.Trace("input.word-backspace", map[string]interface{}{"value": value})
}

func (InputTracer) Cursor(pos int) {
	logging.Trace("input.cursor", map[string]interface{}{"cursor": pos})
}

func (InputTracer) CursorWord(pos int) {
	logging.Trace("input.cursor-word", map[string]interface{}{"cursor": pos})
}

func (InputTracer) Append(value string) {
	logging.Trace("input.append", map[string]interface{}{"value": value})
}

func (InputTracer) Backspace(value string) {
	logging.Trace("input.backspace", map[string]interface{}{"value": value})
}
