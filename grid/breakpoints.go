package grid

// Direction tells which half of its cell the pointer is in. It decides which
// side of a gap the boundaries are placed on.
type Direction int

const (
	// Forward means the pointer is past the center of its cell; gaps belong
	// to the cell before them.
	Forward Direction = iota
	// Reverse means the pointer is at or before the center of its cell; gaps
	// belong to the cell after them.
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

type span struct {
	min    float32
	max    float32
	center float32
}

func spans(length int, meta ScrollMeta, cellSize, gap float32) []span {
	out := make([]span, length)
	for i := range out {
		if i == 0 && meta.FirstCellCutOff {
			out[i] = span{
				min:    0,
				max:    meta.FirstCellSizeRemainder,
				center: meta.FirstCellSizeRemainder / 2,
			}
			continue
		}

		var start float32
		if meta.FirstCellCutOff {
			start = meta.FirstCellSizeRemainder + gap + float32(i-1)*cellSize
		} else {
			start = meta.FirstFullyVisibleCellStart + float32(i)*cellSize
		}
		out[i] = span{min: start, max: start + cellSize, center: start + cellSize/2}
	}
	return out
}

// Locate finds the cell containing pan among length cells and returns the
// direction it implies. It fails when pan falls outside every cell, such as
// in the gap after a cut-off leading item or past the last cell.
func Locate(length int, pan float32, meta ScrollMeta, cellSize, gap float32) (Direction, bool) {
	for _, s := range spans(length, meta, cellSize, gap) {
		if s.min <= pan && pan <= s.max {
			if pan <= s.center {
				return Reverse, true
			}
			return Forward, true
		}
	}
	return Forward, false
}

// Boundaries returns the length+1 ordered boundaries of an axis for a given
// direction. Boundary 0 is the start of the first visible cell.
func Boundaries(length int, dir Direction, meta ScrollMeta, itemSize, cellSize, gap float32) []float32 {
	out := make([]float32, 0, length+1)
	if meta.FirstCellCutOff {
		out = append(out, 0)
	} else {
		out = append(out, meta.FirstFullyVisibleCellStart)
	}

	for i := range length {
		step := float32(i) * cellSize
		if meta.ScrolledPastInset {
			base := meta.FirstFullyVisibleCellStart + itemSize
			if meta.FirstCellCutOff {
				base = meta.FirstCellSizeRemainder
			}
			if dir == Reverse {
				out = append(out, step+base)
			} else {
				out = append(out, step+gap+base)
			}
			continue
		}

		if dir == Reverse {
			out = append(out, itemSize+step)
		} else {
			out = append(out, step+cellSize+meta.FirstFullyVisibleCellStart)
		}
	}
	return out
}

// Breakpoints builds the boundaries used to bucket pan into one of length
// cells. A pointer leaving a cell only flips to the neighbour once it is
// fully past the gap between them.
func Breakpoints(length int, pan float32, meta ScrollMeta, itemSize, cellSize, gap float32) ([]float32, bool) {
	dir, ok := Locate(length, pan, meta, cellSize, gap)
	if !ok {
		return nil, false
	}
	return Boundaries(length, dir, meta, itemSize, cellSize, gap), true
}
