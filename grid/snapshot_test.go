package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fourColumns = ListConfig{
	ItemWidth:  40,
	ItemHeight: 40,
	NumColumns: 4,
	NumRows:    1,
}

func indexAt(t *testing.T, p Point, inset Inset, cfg ListConfig, layout Layout, scroll ScrollState) (int, bool) {
	t.Helper()
	snap, ok := NewSnapshot(p, inset, cfg, layout, scroll)
	if !ok {
		return 0, false
	}
	return snap.Index()
}

func TestSnapshot_FourColumnGrid(t *testing.T) {
	layout := Layout{Width: 400, Height: 400}

	tests := []struct {
		p    Point
		want int
	}{
		{Point{5, 5}, 0},
		{Point{45, 5}, 1},
		{Point{85, 5}, 2},
		{Point{125, 39}, 3},
		{Point{5, 45}, 4},
		// right of the last column resolves to the last column
		{Point{165, 45}, 7},
		{Point{399, 85}, 11},
	}

	for _, tt := range tests {
		got, ok := indexAt(t, tt.p, Inset{}, fourColumns, layout, ScrollState{})
		require.True(t, ok, "point %v", tt.p)
		assert.Equal(t, tt.want, got, "point %v", tt.p)
	}
}

func TestSnapshot_Scrolled(t *testing.T) {
	layout := Layout{Width: 400, Height: 400}
	scroll := ScrollState{ContentHeight: 4000, OffsetY: 100}

	snap, ok := NewSnapshot(Point{5, 5}, Inset{}, fourColumns, layout, scroll)
	require.True(t, ok)
	assert.Equal(t, 8, snap.RowBeginsAtIndex)

	// row 2 is cut off, only 20pt of it is visible
	got, ok := snap.Index()
	require.True(t, ok)
	assert.Equal(t, 8, got)

	got, ok = indexAt(t, Point{45, 25}, Inset{}, fourColumns, layout, scroll)
	require.True(t, ok)
	assert.Equal(t, 13, got)
}

func TestSnapshot_Inset(t *testing.T) {
	layout := Layout{Width: 400, Height: 400}
	inset := Inset{Top: 50, Left: 10}

	// inside the top inset the pointer is pinned to the first row
	got, ok := indexAt(t, Point{15, 20}, inset, fourColumns, layout, ScrollState{})
	require.True(t, ok)
	assert.Equal(t, 0, got)

	got, ok = indexAt(t, Point{55, 95}, inset, fourColumns, layout, ScrollState{})
	require.True(t, ok)
	assert.Equal(t, 5, got)

	// half the inset scrolled away
	got, ok = indexAt(t, Point{55, 70}, inset, fourColumns, layout, ScrollState{OffsetY: 25})
	require.True(t, ok)
	assert.Equal(t, 5, got)
}

func TestSnapshot_OutsideViewport(t *testing.T) {
	layout := Layout{Width: 400, Height: 400}

	_, ok := NewSnapshot(Point{10, 401}, Inset{}, fourColumns, layout, ScrollState{})
	assert.False(t, ok)

	_, ok = NewSnapshot(Point{10, -1}, Inset{}, fourColumns, layout, ScrollState{})
	assert.False(t, ok)
}

func TestSnapshot_GapMiss(t *testing.T) {
	cfg := ListConfig{ItemWidth: 60, ItemHeight: 60, RowGap: 10, ColumnGap: 10, NumColumns: 3, NumRows: 1}
	layout := Layout{Width: 210, Height: 300}

	// first row cut off to 30pt, then a 10pt gap
	_, ok := indexAt(t, Point{5, 35}, Inset{}, cfg, layout, ScrollState{OffsetY: 100})
	assert.False(t, ok)

	got, ok := indexAt(t, Point{5, 45}, Inset{}, cfg, layout, ScrollState{OffsetY: 100})
	require.True(t, ok)
	assert.Equal(t, 6, got)
}

func TestSnapshot_Horizontal(t *testing.T) {
	cfg := ListConfig{
		ItemWidth:  30,
		ItemHeight: 30,
		RowGap:     5,
		ColumnGap:  5,
		NumRows:    7,
		NumColumns: 1,
		Horizontal: true,
	}
	layout := Layout{Width: 350, Height: 300}

	got, ok := indexAt(t, Point{5, 5}, Inset{}, cfg, layout, ScrollState{})
	require.True(t, ok)
	assert.Equal(t, 0, got)

	// column-major: second column, third row
	got, ok = indexAt(t, Point{40, 75}, Inset{}, cfg, layout, ScrollState{})
	require.True(t, ok)
	assert.Equal(t, 9, got)

	// below the last row resolves to the last row
	got, ok = indexAt(t, Point{5, 290}, Inset{}, cfg, layout, ScrollState{})
	require.True(t, ok)
	assert.Equal(t, 6, got)

	// two columns scrolled away
	got, ok = indexAt(t, Point{5, 5}, Inset{}, cfg, layout, ScrollState{OffsetX: 70})
	require.True(t, ok)
	assert.Equal(t, 14, got)
}

func TestSnapshot_IndexStaysInBounds(t *testing.T) {
	const count = 100
	layout := Layout{Width: 160, Height: 400}
	rows := (count + fourColumns.NumColumns - 1) / fourColumns.NumColumns
	maxOffset := float32(rows)*fourColumns.CellHeight() - layout.Height

	for offset := float32(0); offset <= maxOffset; offset += 7 {
		scroll := ScrollState{ContentWidth: 160, ContentHeight: maxOffset + layout.Height, OffsetY: offset}
		for y := float32(0); y <= layout.Height; y += 13 {
			for x := float32(0); x <= layout.Width; x += 11 {
				got, ok := indexAt(t, Point{x, y}, Inset{}, fourColumns, layout, scroll)
				if !ok {
					continue
				}
				if got < 0 || got >= count {
					t.Fatalf("index %d out of range for (%v, %v) at offset %v", got, x, y, offset)
				}
			}
		}
	}
}
