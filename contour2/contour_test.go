package contour2_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/T4r4sB/puzzlemesh/contour2"
	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/vec2"
)

func square(pts []vec2.Vec, idx ...uint32) contour2.Contour {
	return contour2.Contour{Points: idx}
}

func TestContourSquareAndLength(t *testing.T) {
	pts := []vec2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	c := square(pts, 0, 1, 2, 3)
	assert.InDelta(t, 8.0, c.Square(pts), 1e-9) // shoelace double-area of a 2x2 CCW square
	assert.InDelta(t, 8.0, c.Length(pts), 1e-9)
}

func TestContourContains(t *testing.T) {
	pts := []vec2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	c := square(pts, 0, 1, 2, 3)
	assert.True(t, c.Contains(pts, vec2.Vec{X: 1, Y: 1}))
	assert.False(t, c.Contains(pts, vec2.Vec{X: 3, Y: 3}))
}

func TestSplitToConnectedAreasGroupsHoleIntoOuter(t *testing.T) {
	pts := []vec2.Vec{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, // outer CCW
		{X: 4, Y: 4}, {X: 4, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 4}, // hole, wound CW (negative area)
	}
	frag := contour2.FragmentedParts{Contours: []contour2.Contour{
		{Points: []uint32{0, 1, 2, 3}},
		{Points: []uint32{4, 5, 6, 7}},
	}}

	parts := frag.SplitToConnectedAreas(pts)
	require.Len(t, parts, 1)
	assert.Len(t, parts[0].Contours, 2)
}

func diskLabel(radius float32) label.Func2 {
	r2 := float64(radius) * float64(radius)
	return func(x, y float32) label.Label {
		d := float64(x)*float64(x) + float64(y)*float64(y)
		if d <= r2 {
			return 1
		}
		return label.Background
	}
}

func TestMakeContourDiskApproximatesCircle(t *testing.T) {
	f := diskLabel(5)
	sets := contour2.MakeContour(f, 80, 20, 24)

	require.Contains(t, sets, label.Label(1))
	set := sets[label.Label(1)]
	require.Len(t, set.Parts, 1)
	require.Len(t, set.Parts[0].Contours, 1)

	c := set.Parts[0].Contours[0]
	area := c.Square(set.Points) / 2
	length := c.Length(set.Points)

	assert.InDelta(t, math.Pi*25, area, math.Pi*25*0.1)
	assert.InDelta(t, 2*math.Pi*5, length, 2*math.Pi*5*0.1)
}

func TestMakeContourEmptyForAllBackground(t *testing.T) {
	f := label.Func2(func(x, y float32) label.Label { return label.Background })
	sets := contour2.MakeContour(f, 10, 4, 8)
	assert.Empty(t, sets)
}
