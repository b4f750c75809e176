package dragselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVelocity(t *testing.T) {
	o := AutoScrollOptions{StartMaxVelocity: 8, EndMaxVelocity: 8}.withDefaults()

	tests := []struct {
		name   string
		pos    float32
		offset float32
		want   float32
	}{
		{name: "middle", pos: 200, offset: 50, want: 0},
		{name: "end band", pos: 370, offset: 50, want: 4},
		{name: "end edge", pos: 400, offset: 50, want: 8},
		{name: "past the end", pos: 450, offset: 50, want: 8},
		{name: "start band", pos: 30, offset: 50, want: -4},
		{name: "start band at the top", pos: 30, offset: 0, want: 0},
		{name: "start edge", pos: 0, offset: 10, want: -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, o.velocity(tt.pos, 400, tt.offset), 0.001)
		})
	}
}

func TestVelocity_Unmeasured(t *testing.T) {
	o := AutoScrollOptions{}.withDefaults()
	assert.Zero(t, o.velocity(10, 0, 100))
}

func TestNextOffset(t *testing.T) {
	// pointer at 370 of 400 while scrolled to 50
	o := AutoScrollOptions{}.withDefaults()
	next := nextOffset(50, o.velocity(370, 400, 50), 4000, 400)
	assert.Greater(t, next, float32(50))

	assert.Equal(t, float32(0), nextOffset(3, -8, 4000, 400))
	assert.Equal(t, float32(3600), nextOffset(3598, 8, 4000, 400))
	// unknown content size
	assert.Equal(t, float32(108), nextOffset(100, 8, 0, 400))
	// content smaller than the viewport
	assert.Equal(t, float32(0), nextOffset(0, 8, 300, 400))
}

func TestAutoScrollDefaults(t *testing.T) {
	o := AutoScrollOptions{}.withDefaults()
	assert.Equal(t, float32(0.15), o.StartThreshold)
	assert.Equal(t, float32(0.85), o.EndThreshold)
	assert.Equal(t, defaultMaxVelocity(), o.StartMaxVelocity)
	assert.Equal(t, defaultMaxVelocity(), o.EndMaxVelocity)
}
