package dragselect

import (
	"math"

	"fyne.io/fyne/v2"
)

type gridLayout struct {
	options ListOptions
}

// NewGridLayout places items exactly where the selection geometry of o
// expects them: row by row for vertical lists, column by column for
// horizontal ones, after the content inset.
func NewGridLayout(o ListOptions) fyne.Layout {
	return &gridLayout{options: o.withDefaults()}
}

func (g *gridLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	o := g.options
	cellWidth := o.ItemSize.Width + o.ColumnGap
	cellHeight := o.ItemSize.Height + o.RowGap

	for i, obj := range objects {
		row, col := i/o.NumColumns, i%o.NumColumns
		if o.Horizontal {
			row, col = i%o.NumRows, i/o.NumRows
		}
		obj.Move(fyne.NewPos(o.ContentInset.Left+float32(col)*cellWidth, o.ContentInset.Top+float32(row)*cellHeight))
		obj.Resize(o.ItemSize)
	}
}

func (g *gridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	o := g.options
	rows, cols := o.NumRows, o.NumColumns
	if o.Horizontal {
		cols = ceilDiv(len(objects), o.NumRows)
	} else {
		rows = ceilDiv(len(objects), o.NumColumns)
	}

	width := o.ContentInset.Left + o.ContentInset.Right
	if cols > 0 {
		width += float32(cols)*(o.ItemSize.Width+o.ColumnGap) - o.ColumnGap
	}
	height := o.ContentInset.Top + o.ContentInset.Bottom
	if rows > 0 {
		height += float32(rows)*(o.ItemSize.Height+o.RowGap) - o.RowGap
	}
	return fyne.NewSize(width, height)
}

func ceilDiv(n, d int) int {
	return int(math.Ceil(float64(n) / float64(d)))
}

// GridLayout returns the layout matching the list options of d.
func (d *DragSelect[T]) GridLayout() fyne.Layout {
	return NewGridLayout(d.config.List)
}
