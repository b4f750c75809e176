package dragselect

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Item is one cell of the list. It turns taps and long presses into
// selection gestures and hands drags that start on it to its Surface.
type Item struct {
	widget.BaseWidget
	surface *Surface
	content fyne.CanvasObject
	bg      *canvas.Rectangle

	id          string
	selected    bool
	pressed     bool
	longPressed bool
	pressTimer  *time.Timer
}

// NewItem creates an item showing content.
func (s *Surface) NewItem(content fyne.CanvasObject) *Item {
	i := &Item{
		surface: s,
		content: content,
		bg:      canvas.NewRectangle(theme.Color(theme.ColorNameSelection)),
	}
	i.bg.Hide()
	i.ExtendBaseWidget(i)
	return i
}

func (i *Item) CreateRenderer() fyne.WidgetRenderer {
	return &itemRenderer{item: i}
}

// SetID binds the item to the data item with the given id.
func (i *Item) SetID(id string) {
	if i.id != id {
		i.cancelPress()
	}
	i.id = id
}

func (i *Item) ID() string {
	return i.id
}

func (i *Item) SetSelected(selected bool) {
	if i.selected == selected {
		return
	}
	i.selected = selected
	if selected {
		i.bg.Show()
	} else {
		i.bg.Hide()
	}
	i.Refresh()
}

func (i *Item) Selected() bool {
	return i.selected
}

func (i *Item) Tapped(*fyne.PointEvent) {
	if i.longPressed {
		i.longPressed = false
		return
	}
	if i.surface.recentlyDragged() {
		return
	}
	i.surface.target.TapOnStart(i.id)
}

var _ desktop.Mouseable = (*Item)(nil)

func (i *Item) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	i.press()
}

func (i *Item) MouseUp(*desktop.MouseEvent) {
	i.release()
}

var _ mobile.Touchable = (*Item)(nil)

func (i *Item) TouchDown(*mobile.TouchEvent) {
	i.press()
}

func (i *Item) TouchUp(*mobile.TouchEvent) {
	i.release()
}

func (i *Item) TouchCancel(*mobile.TouchEvent) {
	i.cancelPress()
}

var _ fyne.Draggable = (*Item)(nil)

func (i *Item) Dragged(e *fyne.DragEvent) {
	i.cancelPress()
	i.surface.drag(e)
}

func (i *Item) DragEnd() {
	i.surface.DragEnd()
}

func (i *Item) press() {
	i.cancelPress()
	i.pressed = true
	i.longPressed = false

	delay := i.surface.target.LongPressDuration()
	if delay <= 0 || i.id == "" {
		return
	}

	id := i.id
	i.pressTimer = time.AfterFunc(delay, func() {
		fyne.Do(func() {
			if !i.pressed || i.id != id || i.surface.dragging {
				return
			}
			i.longPressed = true
			i.surface.arm()
			if !i.surface.target.LongPressOnStart(id) {
				i.longPressed = false
				i.surface.disarm()
			}
		})
	})
}

func (i *Item) release() {
	i.cancelPress()
	if !i.surface.dragging {
		i.surface.release()
	}
}

func (i *Item) cancelPress() {
	i.pressed = false
	if i.pressTimer != nil {
		i.pressTimer.Stop()
		i.pressTimer = nil
	}
}

type itemRenderer struct {
	item *Item
}

func (r *itemRenderer) Layout(size fyne.Size) {
	r.item.bg.Resize(size)
	r.item.content.Resize(size)
	r.item.content.Move(fyne.NewPos(0, 0))
}

func (r *itemRenderer) MinSize() fyne.Size {
	return r.item.content.MinSize()
}

func (r *itemRenderer) Refresh() {
	r.item.bg.FillColor = theme.Color(theme.ColorNameSelection)
	r.item.bg.Refresh()
	r.item.content.Refresh()
}

func (r *itemRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.item.bg, r.item.content}
}

func (r *itemRenderer) Destroy() {
	r.item.cancelPress()
}
