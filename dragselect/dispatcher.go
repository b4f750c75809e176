package dragselect

import (
	"errors"
	"fmt"
	"maps"
	"runtime/debug"
	"sync"

	"fyne.io/fyne/v2"
)

type eventKind int

const (
	eventPress eventKind = iota
	eventSelect
	eventDeselect
	// eventReset replaces the whole mirrored selection without callbacks.
	eventReset
)

type event struct {
	kind  eventKind
	id    string
	index int
	items map[string]int
}

// dispatcher delivers selection events to the user callbacks on its own
// goroutine, in the order they were posted. It also keeps a mirror of the
// selection as seen by that goroutine.
type dispatcher struct {
	queue   []event
	lock    sync.Mutex
	cond    *sync.Cond
	busy    bool
	stopped bool

	mirror     map[string]int
	mirrorLock sync.RWMutex

	onPress      func(string, int)
	onSelected   func(string, int)
	onDeselected func(string, int)
}

func newDispatcher(onPress, onSelected, onDeselected func(string, int)) *dispatcher {
	d := &dispatcher{
		queue:        make([]event, 0, 64),
		mirror:       make(map[string]int),
		onPress:      onPress,
		onSelected:   onSelected,
		onDeselected: onDeselected,
	}
	d.cond = sync.NewCond(&d.lock)
	go d.worker()
	return d
}

func (d *dispatcher) post(e event) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.stopped {
		return
	}
	d.queue = append(d.queue, e)
	d.cond.Broadcast()
}

func (d *dispatcher) worker() {
	for {
		d.lock.Lock()
		for len(d.queue) == 0 && !d.stopped {
			d.cond.Wait()
		}
		if len(d.queue) == 0 {
			d.lock.Unlock()
			return
		}
		// FIFO, events for one item must not overtake each other
		e := d.queue[0]
		d.queue[0] = event{}
		d.queue = d.queue[1:]
		d.busy = true
		d.lock.Unlock()

		d.apply(e)
		d.deliver(e)

		d.lock.Lock()
		d.busy = false
		d.cond.Broadcast()
		d.lock.Unlock()
	}
}

func (d *dispatcher) apply(e event) {
	d.mirrorLock.Lock()
	defer d.mirrorLock.Unlock()

	switch e.kind {
	case eventSelect:
		d.mirror[e.id] = e.index
	case eventDeselect:
		delete(d.mirror, e.id)
	case eventReset:
		d.mirror = maps.Clone(e.items)
		if d.mirror == nil {
			d.mirror = make(map[string]int)
		}
	}
}

func (d *dispatcher) deliver(e event) {
	defer func() {
		if r := recover(); r != nil {
			fyne.LogError(fmt.Sprintf("dragselect: callback for item %q panicked: %v", e.id, r), errors.New(string(debug.Stack())))
		}
	}()

	var callback func(string, int)
	switch e.kind {
	case eventPress:
		callback = d.onPress
	case eventSelect:
		callback = d.onSelected
	case eventDeselect:
		callback = d.onDeselected
	}
	if callback != nil {
		callback(e.id, e.index)
	}
}

func (d *dispatcher) has(id string) bool {
	d.mirrorLock.RLock()
	defer d.mirrorLock.RUnlock()
	_, ok := d.mirror[id]
	return ok
}

func (d *dispatcher) size() int {
	d.mirrorLock.RLock()
	defer d.mirrorLock.RUnlock()
	return len(d.mirror)
}

func (d *dispatcher) items() map[string]int {
	d.mirrorLock.RLock()
	defer d.mirrorLock.RUnlock()
	return maps.Clone(d.mirror)
}

// waitIdle blocks until every posted event has been delivered.
func (d *dispatcher) waitIdle() {
	d.lock.Lock()
	defer d.lock.Unlock()
	for (len(d.queue) > 0 || d.busy) && !d.stopped {
		d.cond.Wait()
	}
}

// stop delivers what is queued and then ends the worker.
func (d *dispatcher) stop() {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.stopped = true
	d.cond.Broadcast()
}
