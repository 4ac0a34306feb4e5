package vec2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/T4r4sB/puzzlemesh/vec2"
)

func TestPerpRotatesMinus90(t *testing.T) {
	p := vec2.Perp(vec2.Vec{X: 1, Y: 0})
	assert.Equal(t, vec2.Vec{X: 0, Y: -1}, p)
}

func TestDistToSegmentEndpoints(t *testing.T) {
	p1, p2 := vec2.Vec{X: 0, Y: 0}, vec2.Vec{X: 10, Y: 0}
	assert.InDelta(t, 5.0, vec2.DistToSegment(vec2.Vec{X: -5, Y: 0}, p1, p2), 1e-9)
	assert.InDelta(t, 5.0, vec2.DistToSegment(vec2.Vec{X: 15, Y: 0}, p1, p2), 1e-9)
	assert.InDelta(t, 3.0, vec2.DistToSegment(vec2.Vec{X: 5, Y: 3}, p1, p2), 1e-9)
}

func TestBoxContains(t *testing.T) {
	b := vec2.NewBoxCentered(vec2.Vec{}, 2)
	assert.True(t, b.Contains(vec2.Vec{X: 1, Y: 1}))
	assert.False(t, b.Contains(vec2.Vec{X: 3, Y: 0}))
}

func TestCross(t *testing.T) {
	assert.InDelta(t, 1.0, vec2.Cross(vec2.Vec{X: 1, Y: 0}, vec2.Vec{X: 0, Y: 1}), 1e-9)
}
