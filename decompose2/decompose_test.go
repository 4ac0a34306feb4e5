package decompose2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/T4r4sB/puzzlemesh/contour2"
	"github.com/T4r4sB/puzzlemesh/decompose2"
	"github.com/T4r4sB/puzzlemesh/vec2"
)

func triArea(pts []vec2.Vec, t decompose2.Triangle) float64 {
	a, b, c := pts[t.A], pts[t.B], pts[t.C]
	return 0.5 * ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y))
}

func sumAbsArea(pts []vec2.Vec, tris []decompose2.Triangle) float64 {
	var sum float64
	for _, t := range tris {
		a := triArea(pts, t)
		if a < 0 {
			a = -a
		}
		sum += a
	}
	return sum
}

func TestSplitToTrianglesConvexSquare(t *testing.T) {
	pts := []vec2.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	part := contourPart(0, 1, 2, 3)

	tris, err := decompose2.SplitToTriangles(part, pts)
	require.NoError(t, err)
	require.Len(t, tris, 2)
	assert.InDelta(t, 16.0, sumAbsArea(pts, tris), 1e-9)
}

func contourPart(idx ...uint32) contour2.ConnectedPart {
	return contour2.ConnectedPart{Contours: []contour2.Contour{{Points: idx}}}
}

func TestSplitToTrianglesLShape(t *testing.T) {
	pts := []vec2.Vec{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2},
		{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 0, Y: 4},
	}
	c := contour2.Contour{Points: []uint32{0, 1, 2, 3, 4, 5}}
	part := contour2.ConnectedPart{Contours: []contour2.Contour{c}}

	expectedArea := c.Square(pts) / 2
	if expectedArea < 0 {
		expectedArea = -expectedArea
	}

	tris, err := decompose2.SplitToTriangles(part, pts)
	require.NoError(t, err)
	assert.NotEmpty(t, tris)
	assert.InDelta(t, expectedArea, sumAbsArea(pts, tris), 1e-6)
}
