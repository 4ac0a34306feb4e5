package vec3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/T4r4sB/puzzlemesh/vec3"
)

func TestAnyPerpIsPerpendicular(t *testing.T) {
	vs := []vec3.Vec{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 2, Z: 3},
		{X: -5, Y: 0.1, Z: 9},
	}
	for _, v := range vs {
		p := vec3.AnyPerp(v)
		assert.InDelta(t, 0, vec3.Dot(v, p), 1e-9)
		assert.Greater(t, vec3.Norm(p), 0.0)
	}
}

func TestUnitZeroVector(t *testing.T) {
	assert.Equal(t, vec3.Vec{}, vec3.Unit(vec3.Vec{}))
}

func TestUnitLength(t *testing.T) {
	u := vec3.Unit(vec3.Vec{X: 3, Y: 4, Z: 0})
	assert.InDelta(t, 1.0, vec3.Norm(u), 1e-9)
}

func TestMid(t *testing.T) {
	m := vec3.Mid(vec3.Vec{X: 0, Y: 0, Z: 0}, vec3.Vec{X: 2, Y: 4, Z: 6})
	assert.Equal(t, vec3.Vec{X: 1, Y: 2, Z: 3}, m)
}

func TestBoxCenteredSize(t *testing.T) {
	b := vec3.NewBoxCentered(vec3.Vec{}, 5)
	sz := b.Size()
	assert.Equal(t, vec3.Vec{X: 10, Y: 10, Z: 10}, sz)
}
