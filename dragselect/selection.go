package dragselect

import "maps"

type selectorState int

const (
	stateIdle selectorState = iota
	stateDragging
)

type anchor struct {
	id    string
	index int
}

// selector is the anchor based range selection. While dragging, the selection
// is kept equal to the range between the anchor and the last resolved index,
// in item order. It is not safe for concurrent use.
type selector struct {
	ids   *identity
	items map[string]int
	post  func(event)

	state         selectorState
	anchor        anchor
	transition    int
	hasTransition bool
}

func newSelector(ids *identity, post func(event)) *selector {
	return &selector{
		ids:   ids,
		items: make(map[string]int),
		post:  post,
	}
}

func (s *selector) dragging() bool {
	return s.state == stateDragging
}

func (s *selector) size() int {
	return len(s.items)
}

func (s *selector) has(id string) bool {
	_, ok := s.items[id]
	return ok
}

func (s *selector) snapshot() map[string]int {
	return maps.Clone(s.items)
}

// begin makes id the anchor of a new drag and selects it.
func (s *selector) begin(id string) bool {
	index, ok := s.ids.indexOf(id)
	if !ok {
		return false
	}
	s.beginAt(index)
	return true
}

func (s *selector) beginAt(index int) {
	id, ok := s.ids.idAt(index)
	if !mustHold(ok, "anchor outside of the data") {
		return
	}
	s.anchor = anchor{id: id, index: index}
	s.state = stateDragging
	s.hasTransition = false
	s.selectIndex(index)
}

// update moves the far end of the range to index to. It reports whether the
// selection changed.
func (s *selector) update(to int) bool {
	if !mustHold(s.state == stateDragging, "drag update without an anchor") {
		return false
	}
	if to < 0 || to >= s.ids.len() {
		return false
	}
	if s.hasTransition && s.transition == to {
		return false
	}

	axis := s.anchor.index
	from := axis
	if s.hasTransition {
		from = s.transition
	}
	lo, hi := min(axis, to), max(axis, to)

	changed := false

	// cells walked back over that fell out of the range
	step := 1
	if to < from {
		step = -1
	}
	for i := from; i != to; i += step {
		if i == axis || (i >= lo && i <= hi) {
			continue
		}
		if s.deselectIndex(i) {
			changed = true
		}
	}

	step = 1
	if to < axis {
		step = -1
	}
	for i := axis; ; i += step {
		if s.selectIndex(i) {
			changed = true
		}
		if i == to {
			break
		}
	}

	s.transition = to
	s.hasTransition = true
	return changed
}

// end finishes a drag. The selection is kept.
func (s *selector) end() {
	s.state = stateIdle
	s.anchor = anchor{}
	s.transition = 0
	s.hasTransition = false
}

// tap toggles id while a selection is active and toggle is set, otherwise it
// reports a press.
func (s *selector) tap(id string, toggle bool) bool {
	index, ok := s.ids.indexOf(id)
	if !ok {
		return false
	}
	if !toggle || len(s.items) == 0 {
		s.post(event{kind: eventPress, id: id, index: index})
		return true
	}
	if s.has(id) {
		return s.deselectIndex(index)
	}
	return s.selectIndex(index)
}

func (s *selector) add(id string) bool {
	index, ok := s.ids.indexOf(id)
	if !ok {
		return false
	}
	return s.selectIndex(index)
}

func (s *selector) remove(id string) bool {
	index, ok := s.items[id]
	if !ok {
		return false
	}
	delete(s.items, id)
	s.post(event{kind: eventDeselect, id: id, index: index})
	return true
}

// clear empties the selection without per item notifications.
func (s *selector) clear() {
	if len(s.items) == 0 {
		return
	}
	s.items = make(map[string]int)
	s.post(event{kind: eventReset})
}

// retain drops everything but keep, without per item notifications.
func (s *selector) retain(keep string) {
	index, kept := s.items[keep]
	if len(s.items) == 0 || (kept && len(s.items) == 1) {
		return
	}
	s.items = make(map[string]int)
	if kept {
		s.items[keep] = index
	}
	s.post(event{kind: eventReset, items: s.snapshot()})
}

// reconcile switches to new identity tables. Selected ids keep their
// membership at their new index, ids that are gone are dropped. A drag whose
// anchor disappeared is ended, otherwise it restarts from the anchor.
func (s *selector) reconcile(ids *identity) {
	s.ids = ids
	for id := range s.items {
		if index, ok := ids.indexOf(id); ok {
			s.items[id] = index
		} else {
			delete(s.items, id)
		}
	}
	s.post(event{kind: eventReset, items: s.snapshot()})

	if s.state != stateDragging {
		return
	}
	if index, ok := ids.indexOf(s.anchor.id); ok {
		s.anchor.index = index
		s.hasTransition = false
		return
	}
	s.end()
}

func (s *selector) selectIndex(i int) bool {
	id, ok := s.ids.idAt(i)
	if !ok || s.has(id) {
		return false
	}
	s.items[id] = i
	s.post(event{kind: eventSelect, id: id, index: i})
	return true
}

func (s *selector) deselectIndex(i int) bool {
	id, ok := s.ids.idAt(i)
	if !ok || !s.has(id) {
		return false
	}
	delete(s.items, id)
	s.post(event{kind: eventDeselect, id: id, index: i})
	return true
}
