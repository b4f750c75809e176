package grid

// Snapshot is everything needed to resolve one pointer sample to an index.
// It is immutable once built.
type Snapshot struct {
	SafePanX float32
	SafePanY float32

	// BreakpointsX and BreakpointsY are nil when the pointer could not be
	// bucketed along that axis.
	BreakpointsX []float32
	BreakpointsY []float32

	NumRows    int
	NumColumns int

	RowBeginsAtIndex    int
	ColumnBeginsAtIndex int

	Horizontal bool
}

// NewSnapshot composes the geometry for pointer p. It fails when the pointer
// is outside the visible height of the viewport, which happens during
// overscroll and bounce.
func NewSnapshot(p Point, inset Inset, cfg ListConfig, layout Layout, scroll ScrollState) (Snapshot, bool) {
	if p.Y < 0 || p.Y > layout.Height {
		return Snapshot{}, false
	}

	cellWidth, cellHeight := cfg.CellWidth(), cfg.CellHeight()
	panX := SafePan(p.X, inset.Left, scroll.OffsetX)
	panY := SafePan(p.Y, inset.Top, scroll.OffsetY)

	// the fixed axis has no items past its last cell; pin to its trailing edge
	if cfg.Horizontal {
		panY = min(panY, float32(cfg.NumRows)*cellHeight-cfg.RowGap)
	} else {
		panX = min(panX, float32(cfg.NumColumns)*cellWidth-cfg.ColumnGap)
	}

	vertical := DistanceToFirstCell(scroll.OffsetY, inset.Top, cfg.ItemHeight, cellHeight)
	horizontal := DistanceToFirstCell(scroll.OffsetX, inset.Left, cfg.ItemWidth, cellWidth)
	rows, columns := RowColumnCount(cfg, layout)

	var scrolledRows, scrolledColumns int
	if vertical.ScrolledPastInset {
		scrolledRows = ScrolledCells(scroll.OffsetY, inset.Top, cfg.ItemHeight, cellHeight)
	}
	if horizontal.ScrolledPastInset {
		scrolledColumns = ScrolledCells(scroll.OffsetX, inset.Left, cfg.ItemWidth, cellWidth)
	}

	breakpointsX, _ := Breakpoints(columns, panX, horizontal, cfg.ItemWidth, cellWidth, cfg.ColumnGap)
	breakpointsY, _ := Breakpoints(rows, panY, vertical, cfg.ItemHeight, cellHeight, cfg.RowGap)

	return Snapshot{
		SafePanX:            panX,
		SafePanY:            panY,
		BreakpointsX:        breakpointsX,
		BreakpointsY:        breakpointsY,
		NumRows:             rows,
		NumColumns:          columns,
		RowBeginsAtIndex:    scrolledRows * columns,
		ColumnBeginsAtIndex: scrolledColumns * rows,
		Horizontal:          cfg.Horizontal,
	}, true
}

// Index resolves the snapshot to a linear item index, row-major for vertical
// lists and column-major for horizontal ones. The index may be past the end
// of the data; callers check it against their item count.
func (s Snapshot) Index() (int, bool) {
	if s.BreakpointsX == nil || s.BreakpointsY == nil {
		return 0, false
	}

	_, row, ok := bucket(s.SafePanY, s.BreakpointsY)
	if !ok {
		return 0, false
	}
	_, column, ok := bucket(s.SafePanX, s.BreakpointsX)
	if !ok {
		return 0, false
	}

	// bucket 1 is array index 0
	const arraysStartAtZero = 1
	if s.Horizontal {
		return column*s.NumRows - (s.NumRows - row) + s.ColumnBeginsAtIndex - arraysStartAtZero, true
	}
	return row*s.NumColumns - (s.NumColumns - column) + s.RowBeginsAtIndex - arraysStartAtZero, true
}

// bucket finds low, high such that breakpoints[low] <= value <= breakpoints[high].
func bucket(value float32, breakpoints []float32) (low, high int, ok bool) {
	n := 0
	for _, b := range breakpoints {
		if value < b {
			break
		}
		n++
	}
	low, high = n-1, n

	if low < 0 {
		return 0, 0, false
	}
	if high == len(breakpoints) {
		// exactly on the final boundary belongs to the last bucket
		if low == 0 || value != breakpoints[low] {
			return 0, 0, false
		}
		low, high = low-1, low
	}
	if value < breakpoints[low] || value > breakpoints[high] {
		return 0, 0, false
	}
	return low, high, true
}
