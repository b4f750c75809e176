package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafePan(t *testing.T) {
	// inset fully visible
	assert.Equal(t, float32(30), SafePan(80, 50, 0))
	// inset partially scrolled away
	assert.Equal(t, float32(60), SafePan(80, 50, 30))
	// inset gone
	assert.Equal(t, float32(80), SafePan(80, 50, 200))
	// pointer inside the inset never goes negative
	assert.Equal(t, float32(0), SafePan(10, 50, 0))
}

func TestDistanceToFirstCell_CutOff(t *testing.T) {
	meta := DistanceToFirstCell(100, 0, 60, 70)

	require.True(t, meta.ScrolledPastInset)
	assert.Equal(t, float32(30), meta.FirstCellSizeRemainder)
	assert.Equal(t, float32(40), meta.FirstFullyVisibleCellStart)
	assert.True(t, meta.FirstCellCutOff)
}

func TestDistanceToFirstCell_ScrolledIntoGap(t *testing.T) {
	meta := DistanceToFirstCell(65, 0, 60, 70)

	require.True(t, meta.ScrolledPastInset)
	assert.Equal(t, float32(0), meta.FirstCellSizeRemainder)
	assert.Equal(t, float32(5), meta.FirstFullyVisibleCellStart)
	assert.False(t, meta.FirstCellCutOff)
}

func TestDistanceToFirstCell_BeforeInset(t *testing.T) {
	for _, scroll := range []float32{0, 10, 49.5} {
		meta := DistanceToFirstCell(scroll, 50, 60, 70)
		assert.False(t, meta.ScrolledPastInset, "scroll %v", scroll)
		assert.False(t, meta.FirstCellCutOff, "scroll %v", scroll)
		assert.Equal(t, float32(0), meta.FirstFullyVisibleCellStart, "scroll %v", scroll)
	}
}

func TestScrolledCells(t *testing.T) {
	tests := []struct {
		name   string
		scroll float32
		inset  float32
		want   int
	}{
		{name: "top", scroll: 0, want: 0},
		{name: "inside first item", scroll: 30, want: 0},
		{name: "inside first gap", scroll: 65, want: 1},
		{name: "exact multiple of the cell", scroll: 140, want: 2},
		{name: "inside third item", scroll: 150, want: 2},
		{name: "inset taken into account", scroll: 165, inset: 100, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScrolledCells(tt.scroll, tt.inset, 60, 70))
		})
	}
}

func TestRowColumnCount(t *testing.T) {
	cfg := ListConfig{ItemWidth: 40, ItemHeight: 40, NumColumns: 4, NumRows: 1}
	rows, cols := RowColumnCount(cfg, Layout{Width: 400, Height: 400})
	assert.Equal(t, 11, rows)
	assert.Equal(t, 4, cols)

	cfg = ListConfig{ItemWidth: 30, ItemHeight: 30, RowGap: 5, ColumnGap: 5, NumRows: 7, NumColumns: 1, Horizontal: true}
	rows, cols = RowColumnCount(cfg, Layout{Width: 350, Height: 300})
	assert.Equal(t, 7, rows)
	assert.Equal(t, 11, cols)
}

func TestLayoutMeasured(t *testing.T) {
	assert.False(t, Layout{}.Measured())
	assert.False(t, Layout{Width: 10}.Measured())
	assert.True(t, Layout{Width: 10, Height: 10}.Measured())
}
