package combobox

import "github.com/atomicstack/locality-picker/internal/locations"

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []*locations.Item) []*locations.Item {
	dup := make([]*locations.Item, len(items))
	copy(dup, items)
	return dup
}

func indexOf(items []*locations.Item, item *locations.Item) int {
	if item == nil {
		return -1
	}
	for i, candidate := range items {
		if candidate == item {
			return i
		}
	}
	return -1
}
