package dragselect

// velocity returns the signed scroll step for a pointer at pos along an axis
// of the given extent. It is 0 outside the edge bands, and the leading band
// only counts once the list has been scrolled.
func (o AutoScrollOptions) velocity(pos, extent, offset float32) float32 {
	if extent <= 0 {
		return 0
	}

	end := extent * o.EndThreshold
	start := extent * o.StartThreshold
	switch {
	case pos > end:
		return interpolate(pos, end, extent, o.EndMaxVelocity)
	case offset > 0 && pos < start:
		return -interpolate(pos, start, 0, o.StartMaxVelocity)
	}
	return 0
}

// interpolate maps v from [from, to] onto [0, limit], clamped.
func interpolate(v, from, to, limit float32) float32 {
	if from == to {
		return limit
	}
	t := (v - from) / (to - from)
	t = min(max(t, 0), 1)
	return t * limit
}

// nextOffset applies a scroll step and keeps the result inside the scrollable
// range. An unknown content size only clamps at 0.
func nextOffset(offset, step, content, viewport float32) float32 {
	next := max(offset+step, 0)
	if content > 0 {
		next = min(next, max(content-viewport, 0))
	}
	return next
}
