// Package grid maps pointer coordinates inside a scrolled, virtualized grid or
// list to item indices.
package grid

// Inset is the reserved space between the edges of the scrollable viewport and
// the first or last item, such as headers and padding.
type Inset struct {
	Top    float32
	Bottom float32
	Left   float32
	Right  float32
}

// ListConfig describes the item geometry of a list.
//
// For a vertical list NumColumns is fixed and NumRows is only an estimate,
// for a horizontal list it is the other way around.
type ListConfig struct {
	ItemWidth  float32
	ItemHeight float32
	NumRows    int
	NumColumns int
	RowGap     float32
	ColumnGap  float32
	Horizontal bool
}

// CellWidth is the horizontal distance between the starts of two adjacent items.
func (c ListConfig) CellWidth() float32 {
	return CellSize(c.ItemWidth, c.ColumnGap)
}

// CellHeight is the vertical distance between the starts of two adjacent items.
func (c ListConfig) CellHeight() float32 {
	return CellSize(c.ItemHeight, c.RowGap)
}

// ScrollState is a sample of the scroll position and scrollable extent.
type ScrollState struct {
	ContentWidth  float32
	ContentHeight float32
	OffsetX       float32
	OffsetY       float32
}

// Layout is the measured size of the scrollable viewport.
type Layout struct {
	Width  float32
	Height float32
}

// Measured reports whether the viewport has a usable size.
func (l Layout) Measured() bool {
	return l.Width > 0 && l.Height > 0
}

// Point is a pointer position relative to the viewport origin.
type Point struct {
	X float32
	Y float32
}
