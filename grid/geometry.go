package grid

import "math"

// CellSize is the size of one item plus the gap that trails it.
func CellSize(itemSize, gap float32) float32 {
	return itemSize + gap
}

// SafePan converts a pointer coordinate into content space along one axis,
// removing the part of the inset that is still visible at the given scroll
// offset. The result is never negative.
func SafePan(pan, inset, scrollOffset float32) float32 {
	visibleInset := max(0, inset-scrollOffset)
	return max(pan-visibleInset, 0)
}

// ScrollMeta describes how the leading cell of an axis is occluded by scroll.
type ScrollMeta struct {
	// ScrolledPastInset is true once the inset has fully scrolled out of view.
	ScrolledPastInset bool
	// FirstFullyVisibleCellStart is the viewport offset of the first cell
	// that is not cut off.
	FirstFullyVisibleCellStart float32
	// FirstCellSizeRemainder is the visible size of a partially scrolled-off
	// leading item, or 0 when none is cut off.
	FirstCellSizeRemainder float32
	// FirstCellCutOff reports whether FirstCellSizeRemainder is in use.
	FirstCellCutOff bool
}

// DistanceToFirstCell computes the cut-off state of the leading cell.
// While scroll is below inset nothing is cut off and cells start at 0.
func DistanceToFirstCell(scroll, inset, itemSize, cellSize float32) ScrollMeta {
	meta := ScrollMeta{ScrolledPastInset: scroll >= inset}
	if meta.ScrolledPastInset {
		scrolled := mod(scroll-inset, cellSize)
		meta.FirstFullyVisibleCellStart = cellSize - scrolled
		meta.FirstCellSizeRemainder = max(itemSize-scrolled, 0)
	}
	meta.FirstCellCutOff = meta.FirstCellSizeRemainder > 0
	return meta
}

// RowColumnCount returns the number of rows and columns to consider in the
// viewport. The fixed axis uses the configured count. The free axis is
// ceil(extent/cell)+1, an upper bound that covers a partially visible leading
// and trailing cell.
func RowColumnCount(cfg ListConfig, layout Layout) (rows, columns int) {
	if cfg.Horizontal {
		return cfg.NumRows, ceilDiv(layout.Width, cfg.CellWidth()) + 1
	}
	return ceilDiv(layout.Height, cfg.CellHeight()) + 1, cfg.NumColumns
}

// ScrolledCells counts the cells that have been fully scrolled past the inset.
func ScrolledCells(scroll, inset, itemSize, cellSize float32) int {
	normalized := scroll - inset
	remainder := mod(normalized, cellSize)
	whole := int(math.Floor(float64(normalized / cellSize)))

	switch {
	case remainder == 0 && normalized >= itemSize && normalized < cellSize:
		// a bare item scrolled away, its gap not crossed yet
		return 1
	case remainder >= itemSize:
		// inside the trailing gap
		return whole + 1
	}
	return whole
}

func mod(a, b float32) float32 {
	return float32(math.Mod(float64(a), float64(b)))
}

func ceilDiv(extent, cell float32) int {
	if cell <= 0 {
		return 0
	}
	return int(math.Ceil(float64(extent / cell)))
}
