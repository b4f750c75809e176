package dragselect

import "sync/atomic"

// cell holds the latest sample written by one goroutine and read by another.
// Intermediate samples are lost, only the most recent one is kept.
type cell[T any] struct {
	p atomic.Pointer[T]
}

func (c *cell[T]) load() (T, bool) {
	if v := c.p.Load(); v != nil {
		return *v, true
	}
	var zero T
	return zero, false
}

func (c *cell[T]) store(v T) {
	c.p.Store(&v)
}

func (c *cell[T]) reset() {
	c.p.Store(nil)
}
