package dragselect

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// tapAfterDragDelay swallows the click some drivers deliver right after a drag.
const tapAfterDragDelay = 200 * time.Millisecond

// Target is what a Surface and its items drive. *DragSelect implements it.
type Target interface {
	PanStart(PanEvent)
	PanUpdate(PanEvent)
	PanEnd()
	TapOnStart(id string)
	LongPressOnStart(id string) bool
	LongPressDuration() time.Duration
	SetLayout(fyne.Size)
}

// Surface wraps the scrollable list and turns drags over it into pan events
// for a Target. On mobile a drag only selects after an item was long pressed,
// otherwise it is handed to the wrapped content so the list keeps scrolling.
type Surface struct {
	widget.BaseWidget
	content fyne.CanvasObject
	target  Target

	dragging    bool
	passthrough bool
	armed       bool
	origin      fyne.Position
	lastDragEnd time.Time
}

// NewSurface creates a drag surface around content, usually a container.Scroll.
func NewSurface(content fyne.CanvasObject, target Target) *Surface {
	s := &Surface{content: content, target: target}
	s.ExtendBaseWidget(s)
	return s
}

func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	return &surfaceRenderer{s: s}
}

// Resize reports the new viewport size to the target.
func (s *Surface) Resize(size fyne.Size) {
	s.BaseWidget.Resize(size)
	s.target.SetLayout(size)
}

func (s *Surface) Dragged(e *fyne.DragEvent) {
	s.drag(e)
}

func (s *Surface) DragEnd() {
	if !s.dragging {
		return
	}
	if s.passthrough {
		if d, ok := s.content.(fyne.Draggable); ok {
			d.DragEnd()
		}
	} else {
		s.target.PanEnd()
	}

	s.dragging = false
	s.passthrough = false
	s.armed = false
	s.lastDragEnd = time.Now()
}

// Dragging reports whether a drag over the surface is in progress.
func (s *Surface) Dragging() bool {
	return s.dragging
}

func (s *Surface) drag(e *fyne.DragEvent) {
	pos := s.localPosition(e.AbsolutePosition)

	if !s.dragging {
		s.dragging = true
		s.passthrough = fyne.CurrentDevice().IsMobile() && !s.armed
		s.origin = pos.Subtract(e.Dragged)
		if !s.passthrough {
			s.target.PanStart(s.panEvent(pos))
		}
	}

	if s.passthrough {
		if d, ok := s.content.(fyne.Draggable); ok {
			d.Dragged(e)
		}
		return
	}
	s.target.PanUpdate(s.panEvent(pos))
}

func (s *Surface) panEvent(pos fyne.Position) PanEvent {
	return PanEvent{
		Position:    pos,
		Translation: fyne.NewDelta(pos.X-s.origin.X, pos.Y-s.origin.Y),
	}
}

func (s *Surface) localPosition(abs fyne.Position) fyne.Position {
	return abs.Subtract(fyne.CurrentApp().Driver().AbsolutePositionForObject(s))
}

// arm lets the next drag select, also on mobile.
func (s *Surface) arm() {
	s.armed = true
}

func (s *Surface) disarm() {
	s.armed = false
}

// release ends a long press that was let go without dragging.
func (s *Surface) release() {
	s.disarm()
	s.target.PanEnd()
}

func (s *Surface) recentlyDragged() bool {
	return s.dragging || time.Since(s.lastDragEnd) < tapAfterDragDelay
}

type surfaceRenderer struct {
	s *Surface
}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	r.s.content.Resize(size)
	r.s.content.Move(fyne.NewPos(0, 0))
}

func (r *surfaceRenderer) MinSize() fyne.Size {
	return r.s.content.MinSize()
}

func (r *surfaceRenderer) Refresh() {
	r.s.content.Refresh()
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.s.content}
}

func (r *surfaceRenderer) Destroy() {}

var _ fyne.Draggable = (*Surface)(nil)
