// Package locations fetches the list of named locations from the
// spreadsheet-backed API and describes the loader's published state.
package locations

// Item is a single selectable location. Items are handed around as pointers
// and compared by identity; the name is never mutated after construction.
type Item struct {
	name string
}

// NewItem constructs an Item with the supplied display name.
func NewItem(name string) *Item {
	return &Item{name: name}
}

// Name returns the display string of the item.
func (i *Item) Name() string {
	if i == nil {
		return ""
	}
	return i.name
}

// String implements fmt.Stringer.
func (i *Item) String() string {
	return i.Name()
}

// Names returns the display strings of items in order.
func Names(items []*Item) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name()
	}
	return names
}
