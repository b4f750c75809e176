package dragselect

import "strconv"

// identity maps item ids to their position in the data and back.
// It is rebuilt whenever the data changes and never mutated afterwards.
type identity struct {
	ids   []string
	index map[string]int
}

func newIdentity[T any](data []T, key func(T) string) *identity {
	t := &identity{
		ids:   make([]string, len(data)),
		index: make(map[string]int, len(data)),
	}
	for i, item := range data {
		id := strconv.Itoa(i)
		if key != nil {
			id = key(item)
		}
		t.ids[i] = id

		// first occurrence wins
		if _, dup := t.index[id]; !mustHold(!dup, "duplicate item id "+strconv.Quote(id)) {
			continue
		}
		t.index[id] = i
	}
	return t
}

func (t *identity) indexOf(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

func (t *identity) idAt(i int) (string, bool) {
	if i < 0 || i >= len(t.ids) {
		return "", false
	}
	return t.ids[i], true
}

func (t *identity) len() int {
	return len(t.ids)
}
