package dragselect

import (
	"runtime"
	"time"

	"fyne.io/fyne/v2"

	"github.com/alexballas/xdragselect/grid"
)

const (
	// DefaultLongPressDuration is how long an item has to be held before it
	// becomes the anchor of a drag.
	DefaultLongPressDuration = 300 * time.Millisecond
	// DefaultFrameInterval is the tick of the frame loop while a drag is active.
	DefaultFrameInterval = 16 * time.Millisecond

	defaultStartThreshold = 0.15
	defaultEndThreshold   = 0.85
)

// ListOptions describes how items are laid out inside the scrollable content.
type ListOptions struct {
	ItemSize fyne.Size
	// NumColumns is fixed for vertical lists. Defaults to 1.
	NumColumns int
	// NumRows is fixed for horizontal lists. Defaults to 1.
	NumRows   int
	RowGap    float32
	ColumnGap float32
	// Horizontal lists fill columns top to bottom and scroll along X.
	Horizontal bool
	// ContentInset is the space before the first item, such as a header.
	ContentInset grid.Inset
}

func (o ListOptions) withDefaults() ListOptions {
	if o.NumColumns < 1 {
		o.NumColumns = 1
	}
	if o.NumRows < 1 {
		o.NumRows = 1
	}
	return o
}

func (o ListOptions) gridConfig() grid.ListConfig {
	return grid.ListConfig{
		ItemWidth:  o.ItemSize.Width,
		ItemHeight: o.ItemSize.Height,
		NumRows:    o.NumRows,
		NumColumns: o.NumColumns,
		RowGap:     o.RowGap,
		ColumnGap:  o.ColumnGap,
		Horizontal: o.Horizontal,
	}
}

// LongPressOptions controls how a press on an item starts a drag.
type LongPressOptions struct {
	Disabled    bool
	MinDuration time.Duration
}

// TapOptions controls what a tap on an item does.
type TapOptions struct {
	// SelectOnTapDisabled makes taps always report a press, even while a
	// selection is active.
	SelectOnTapDisabled bool
}

// PanOptions controls the drag gesture.
type PanOptions struct {
	Disabled bool
	// ResetSelectionOnStart drops the current selection, except a long
	// pressed anchor, when a new drag starts.
	ResetSelectionOnStart bool
}

// AutoScrollOptions controls scrolling while the pointer is held near an edge
// of the viewport. Thresholds are fractions of the viewport extent.
type AutoScrollOptions struct {
	Disabled         bool
	StartThreshold   float32
	EndThreshold     float32
	StartMaxVelocity float32
	EndMaxVelocity   float32
}

func (o AutoScrollOptions) withDefaults() AutoScrollOptions {
	if o.StartThreshold <= 0 {
		o.StartThreshold = defaultStartThreshold
	}
	if o.EndThreshold <= 0 {
		o.EndThreshold = defaultEndThreshold
	}
	if o.StartMaxVelocity <= 0 {
		o.StartMaxVelocity = defaultMaxVelocity()
	}
	if o.EndMaxVelocity <= 0 {
		o.EndMaxVelocity = defaultMaxVelocity()
	}
	return o
}

// Android jitters when scrolled programmatically at full speed.
func defaultMaxVelocity() float32 {
	if runtime.GOOS == "android" {
		return 1
	}
	return 8
}

// Config configures a DragSelect over items of type T.
type Config[T any] struct {
	Data []T
	// Key returns the stable id of an item. Ids must be unique. When nil the
	// position of the item is used.
	Key func(T) string

	List       ListOptions
	LongPress  LongPressOptions
	Tap        TapOptions
	Pan        PanOptions
	AutoScroll AutoScrollOptions

	FrameInterval time.Duration

	// OnItemPress is called for a tap while nothing is selected.
	OnItemPress func(id string, index int)
	// OnItemSelected and OnItemDeselected are called once for every item that
	// enters or leaves the selection. Bulk clears are not reported.
	OnItemSelected   func(id string, index int)
	OnItemDeselected func(id string, index int)

	// Scroller receives auto-scroll commands. It can also be set later.
	Scroller Scroller
	// Schedule runs frame ticks and deferred selection changes on the UI
	// goroutine. Defaults to fyne.Do.
	Schedule func(func())
}

func (c Config[T]) withDefaults() Config[T] {
	c.List = c.List.withDefaults()
	if c.LongPress.MinDuration <= 0 {
		c.LongPress.MinDuration = DefaultLongPressDuration
	}
	c.AutoScroll = c.AutoScroll.withDefaults()
	if c.FrameInterval <= 0 {
		c.FrameInterval = DefaultFrameInterval
	}
	if c.Schedule == nil {
		c.Schedule = fyne.Do
	}
	return c
}
