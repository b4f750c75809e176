// Package dragselect turns press and drag gestures over a scrollable grid or
// list into a selection of items.
//
// A drag is anchored on the item it starts on. Every frame the pointer is
// resolved to an item index and the selection is moved so that it covers
// exactly the items between the anchor and that index. Holding the pointer
// near an edge of the viewport scrolls the list.
package dragselect

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"github.com/alexballas/xdragselect/grid"
)

// PanEvent is one sample of a drag, relative to the viewport origin.
type PanEvent struct {
	Position fyne.Position
	// Translation is the distance travelled since the drag started.
	Translation fyne.Delta
}

// ScrollEvent reports the scroll state of the list.
type ScrollEvent struct {
	ContentSize fyne.Size
	Offset      fyne.Position
}

// Scroller is the scrollable view that auto-scroll drives.
type Scroller interface {
	ScrollTo(offset fyne.Position)
}

// DragSelect tracks the selection of a list of T.
//
// Gesture methods, Frame and Selection are meant to be called from the UI
// goroutine. Pointer, scroll and layout samples may come from anywhere.
type DragSelect[T any] struct {
	config Config[T]
	list   grid.ListConfig

	pointer cell[PanEvent]
	scroll  cell[grid.ScrollState]
	layout  cell[grid.Layout]

	lock     sync.Mutex
	ids      *identity
	sel      *selector
	panning  bool
	scroller Scroller

	loop     *frameLoop
	dispatch *dispatcher
}

// New creates a DragSelect. Close it when the list goes away.
func New[T any](config Config[T]) *DragSelect[T] {
	config = config.withDefaults()
	d := &DragSelect[T]{
		config:   config,
		list:     config.List.gridConfig(),
		ids:      newIdentity(config.Data, config.Key),
		scroller: config.Scroller,
		dispatch: newDispatcher(config.OnItemPress, config.OnItemSelected, config.OnItemDeselected),
	}
	d.sel = newSelector(d.ids, d.dispatch.post)
	d.loop = newFrameLoop(config.FrameInterval, config.Schedule, d.Frame)
	return d
}

// SetData replaces the items. The selection follows items by id.
func (d *DragSelect[T]) SetData(data []T) {
	ids := newIdentity(data, d.config.Key)

	d.lock.Lock()
	defer d.lock.Unlock()
	d.config.Data = data
	d.ids = ids
	d.sel.reconcile(ids)
}

// SetScroller sets the view auto-scroll drives.
func (d *DragSelect[T]) SetScroller(s Scroller) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.scroller = s
}

// OnScroll records the scroll state of the list.
func (d *DragSelect[T]) OnScroll(e ScrollEvent) {
	d.scroll.store(grid.ScrollState{
		ContentWidth:  e.ContentSize.Width,
		ContentHeight: e.ContentSize.Height,
		OffsetX:       e.Offset.X,
		OffsetY:       e.Offset.Y,
	})
}

// SetLayout records the size of the viewport.
func (d *DragSelect[T]) SetLayout(size fyne.Size) {
	l := grid.Layout{Width: size.Width, Height: size.Height}
	if !l.Measured() {
		d.layout.reset()
		return
	}
	d.layout.store(l)
}

// PanStart begins a drag and starts the frame loop.
func (d *DragSelect[T]) PanStart(e PanEvent) {
	if d.config.Pan.Disabled {
		return
	}

	d.lock.Lock()
	d.panning = true
	if d.config.Pan.ResetSelectionOnStart {
		d.sel.retain(d.anchorID())
	}
	d.lock.Unlock()

	d.pointer.store(e)
	d.loop.start()
}

// PanUpdate records the latest pointer sample. It is resolved on the next frame.
func (d *DragSelect[T]) PanUpdate(e PanEvent) {
	if d.config.Pan.Disabled {
		return
	}
	d.lock.Lock()
	panning := d.panning
	d.lock.Unlock()
	if !panning {
		return
	}
	d.pointer.store(e)
}

// PanEnd finishes the drag. Also used to release a long press that never moved.
func (d *DragSelect[T]) PanEnd() {
	d.loop.stop()
	d.pointer.reset()

	d.lock.Lock()
	defer d.lock.Unlock()
	d.panning = false
	d.sel.end()
}

// Frame resolves the latest pointer sample and auto-scrolls. The frame loop
// calls it while a drag is active.
func (d *DragSelect[T]) Frame() {
	pan, ok := d.pointer.load()
	if !ok {
		return
	}
	layout, measured := d.layout.load()
	if !mustHold(measured, "drag before the list was measured") {
		return
	}
	scroll, _ := d.scroll.load()

	d.lock.Lock()
	d.resolve(pan, layout, scroll)
	offset, move := d.autoScroll(pan, layout, scroll)
	scroller := d.scroller
	d.lock.Unlock()

	if !move || scroller == nil {
		return
	}
	scroll.OffsetX, scroll.OffsetY = offset.X, offset.Y
	d.scroll.store(scroll)
	scroller.ScrollTo(offset)
}

func (d *DragSelect[T]) resolve(pan PanEvent, layout grid.Layout, scroll grid.ScrollState) {
	if !d.sel.dragging() {
		// a drag without a long press anchors where it started
		origin := pan.Position.Subtract(pan.Translation)
		index, ok := d.indexAt(origin, layout, scroll)
		if !ok {
			index, ok = d.indexAt(pan.Position, layout, scroll)
		}
		if !ok {
			return
		}
		d.sel.beginAt(index)
	}

	if index, ok := d.indexAt(pan.Position, layout, scroll); ok {
		d.sel.update(index)
	}
}

func (d *DragSelect[T]) autoScroll(pan PanEvent, layout grid.Layout, scroll grid.ScrollState) (fyne.Position, bool) {
	if d.config.AutoScroll.Disabled || !d.sel.dragging() {
		return fyne.Position{}, false
	}

	o := d.config.AutoScroll
	if d.list.Horizontal {
		step := o.velocity(pan.Position.X, layout.Width, scroll.OffsetX)
		x := nextOffset(scroll.OffsetX, step, scroll.ContentWidth, layout.Width)
		return fyne.NewPos(x, scroll.OffsetY), x != scroll.OffsetX
	}
	step := o.velocity(pan.Position.Y, layout.Height, scroll.OffsetY)
	y := nextOffset(scroll.OffsetY, step, scroll.ContentHeight, layout.Height)
	return fyne.NewPos(scroll.OffsetX, y), y != scroll.OffsetY
}

func (d *DragSelect[T]) indexAt(p fyne.Position, layout grid.Layout, scroll grid.ScrollState) (int, bool) {
	snap, ok := grid.NewSnapshot(grid.Point{X: p.X, Y: p.Y}, d.config.List.ContentInset, d.list, layout, scroll)
	if !ok {
		return 0, false
	}
	index, ok := snap.Index()
	if !ok || index < 0 || index >= d.ids.len() {
		return 0, false
	}
	return index, true
}

// IndexAt resolves a viewport position to an item index with the latest
// layout and scroll state.
func (d *DragSelect[T]) IndexAt(p fyne.Position) (int, bool) {
	layout, ok := d.layout.load()
	if !ok {
		return 0, false
	}
	scroll, _ := d.scroll.load()

	d.lock.Lock()
	defer d.lock.Unlock()
	return d.indexAt(p, layout, scroll)
}

// TapOnStart handles a tap on the item with the given id.
func (d *DragSelect[T]) TapOnStart(id string) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.sel.tap(id, !d.config.Tap.SelectOnTapDisabled)
}

// LongPressOnStart anchors a drag on the item with the given id. It reports
// whether the item became the anchor.
func (d *DragSelect[T]) LongPressOnStart(id string) bool {
	if d.config.LongPress.Disabled {
		return false
	}
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.sel.begin(id)
}

// LongPressDuration is how long an item has to be held to anchor a drag, or 0
// when long press is disabled.
func (d *DragSelect[T]) LongPressDuration() time.Duration {
	if d.config.LongPress.Disabled {
		return 0
	}
	return d.config.LongPress.MinDuration
}

// Dragging reports whether a drag has an anchor.
func (d *DragSelect[T]) Dragging() bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.sel.dragging()
}

// Data returns the current items.
func (d *DragSelect[T]) Data() []T {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.config.Data
}

// Close stops the frame loop and the callback goroutine.
func (d *DragSelect[T]) Close() {
	d.loop.stop()
	d.dispatch.stop()
}

func (d *DragSelect[T]) anchorID() string {
	if !d.sel.dragging() {
		return ""
	}
	return d.sel.anchor.id
}
