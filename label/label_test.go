package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/vec3"
)

func TestFunc3AtNarrowsToFloat32(t *testing.T) {
	var seen [3]float32
	f := label.Func3(func(x, y, z float32) label.Label {
		seen = [3]float32{x, y, z}
		return 7
	})
	got := f.At(vec3.Vec{X: 1.5, Y: -2.5, Z: 3.25})
	assert.Equal(t, label.Label(7), got)
	assert.Equal(t, [3]float32{1.5, -2.5, 3.25}, seen)
}

func TestFunc2At(t *testing.T) {
	f := label.Func2(func(x, y float32) label.Label {
		if x > 0 {
			return 1
		}
		return label.Background
	})
	assert.Equal(t, label.Label(1), f.At(1, 0))
	assert.Equal(t, label.Background, f.At(-1, 0))
}
