package dragselect

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// ScrollTarget receives the scroll state of a list.
type ScrollTarget interface {
	OnScroll(ScrollEvent)
}

// ScrollBinding reports the state of a container.Scroll to a ScrollTarget and
// moves the container on behalf of auto-scroll.
type ScrollBinding struct {
	scroll *container.Scroll
	target ScrollTarget
}

// BindScroll starts reporting the state of scroll to target. A previously set
// OnScrolled keeps being called.
func BindScroll(scroll *container.Scroll, target ScrollTarget) *ScrollBinding {
	b := &ScrollBinding{scroll: scroll, target: target}

	previous := scroll.OnScrolled
	scroll.OnScrolled = func(offset fyne.Position) {
		b.report()
		if previous != nil {
			previous(offset)
		}
	}
	b.report()
	return b
}

// ScrollTo moves the container. The container clamps the offset to its
// content.
func (b *ScrollBinding) ScrollTo(offset fyne.Position) {
	b.scroll.Offset = offset
	b.scroll.Refresh()
	b.report()
}

func (b *ScrollBinding) report() {
	var content fyne.Size
	if b.scroll.Content != nil {
		content = b.scroll.Content.Size()
	}
	b.target.OnScroll(ScrollEvent{ContentSize: content, Offset: b.scroll.Offset})
}

// Wrap puts content into a scroll container along the axis of the list, binds
// it to d and returns the drag surface around it.
func Wrap[T any](d *DragSelect[T], content fyne.CanvasObject) *Surface {
	var scroll *container.Scroll
	if d.list.Horizontal {
		scroll = container.NewHScroll(content)
	} else {
		scroll = container.NewVScroll(content)
	}
	d.SetScroller(BindScroll(scroll, d))
	return NewSurface(scroll, d)
}
