package dragselect

// Selection reads and edits the selected items by id.
type Selection interface {
	// Active reports whether anything is selected.
	Active() bool
	Size() int
	// Items maps every selected id to its index in the data.
	Items() map[string]int
	Has(id string) bool
	// Add selects id. It reports false for an id that is not in the data.
	Add(id string) bool
	// Delete deselects id.
	Delete(id string) bool
	// Clear deselects everything. No per item callbacks are made.
	Clear()
}

// Selection returns the selection as seen by the UI goroutine. Changes are
// applied immediately.
func (d *DragSelect[T]) Selection() Selection {
	return syncSelection[T]{d: d}
}

// AsyncSelection returns the selection as seen by the callback goroutine.
// Reads reflect the callbacks delivered so far and changes are scheduled onto
// the UI goroutine, so it is safe to use from inside a callback.
func (d *DragSelect[T]) AsyncSelection() Selection {
	return asyncSelection[T]{d: d}
}

type syncSelection[T any] struct {
	d *DragSelect[T]
}

func (s syncSelection[T]) Active() bool {
	return s.Size() > 0
}

func (s syncSelection[T]) Size() int {
	s.d.lock.Lock()
	defer s.d.lock.Unlock()
	return s.d.sel.size()
}

func (s syncSelection[T]) Items() map[string]int {
	s.d.lock.Lock()
	defer s.d.lock.Unlock()
	return s.d.sel.snapshot()
}

func (s syncSelection[T]) Has(id string) bool {
	s.d.lock.Lock()
	defer s.d.lock.Unlock()
	return s.d.sel.has(id)
}

func (s syncSelection[T]) Add(id string) bool {
	s.d.lock.Lock()
	defer s.d.lock.Unlock()
	return s.d.sel.add(id)
}

func (s syncSelection[T]) Delete(id string) bool {
	s.d.lock.Lock()
	defer s.d.lock.Unlock()
	return s.d.sel.remove(id)
}

func (s syncSelection[T]) Clear() {
	s.d.lock.Lock()
	defer s.d.lock.Unlock()
	s.d.sel.clear()
}

type asyncSelection[T any] struct {
	d *DragSelect[T]
}

func (s asyncSelection[T]) Active() bool {
	return s.d.dispatch.size() > 0
}

func (s asyncSelection[T]) Size() int {
	return s.d.dispatch.size()
}

func (s asyncSelection[T]) Items() map[string]int {
	return s.d.dispatch.items()
}

func (s asyncSelection[T]) Has(id string) bool {
	return s.d.dispatch.has(id)
}

func (s asyncSelection[T]) Add(id string) bool {
	if !s.known(id) {
		return false
	}
	s.d.config.Schedule(func() {
		s.d.Selection().Add(id)
	})
	return true
}

func (s asyncSelection[T]) Delete(id string) bool {
	if !s.d.dispatch.has(id) {
		return false
	}
	s.d.config.Schedule(func() {
		s.d.Selection().Delete(id)
	})
	return true
}

func (s asyncSelection[T]) Clear() {
	s.d.config.Schedule(func() {
		s.d.Selection().Clear()
	})
}

func (s asyncSelection[T]) known(id string) bool {
	s.d.lock.Lock()
	defer s.d.lock.Unlock()
	_, ok := s.d.ids.indexOf(id)
	return ok
}
