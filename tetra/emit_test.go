package tetra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/meshmodel"
	"github.com/T4r4sB/puzzlemesh/tetra"
	"github.com/T4r4sB/puzzlemesh/vec3"
)

func halfSpace(z float32) label.Label {
	if z < 0.5 {
		return 1
	}
	return label.Background
}

func TestEmitCubeSlicePlaneArea(t *testing.T) {
	f := label.Func3(func(x, y, z float32) label.Label { return halfSpace(z) })

	mk := func(x, y, z float64) tetra.Cell {
		return tetra.NewCell(vec3.Vec{X: x, Y: y, Z: z}, f.At(vec3.Vec{X: x, Y: y, Z: z}))
	}

	c := mk(0, 0, 0)
	cx := mk(1, 0, 0)
	cy := mk(0, 1, 0)
	cxy := mk(1, 1, 0)
	nc := mk(0, 0, 1)
	ncx := mk(1, 0, 1)
	ncy := mk(0, 1, 1)
	ncxy := mk(1, 1, 1)

	models := meshmodel.NewSet()
	tetra.EmitCube(models, f, 30, &c, &cx, &cy, &cxy, &nc, &ncx, &ncy, &ncxy)

	require.Contains(t, models.Labels(), label.Label(1))
	m := models.Model(1)
	require.NotEmpty(t, m.Triangles)

	var area float64
	for _, tri := range m.Triangles {
		n := m.Perp(tri)
		area += 0.5 * vec3.Norm(n)
	}
	assert.InDelta(t, 1.0, area, 1e-3)

	for _, v := range m.Vertices {
		assert.InDelta(t, 0.5, v.Z, 1e-6)
	}
}

func TestEmitCubeAllBackgroundEmitsNothing(t *testing.T) {
	f := label.Func3(func(x, y, z float32) label.Label { return label.Background })
	mk := func(x, y, z float64) tetra.Cell { return tetra.NewCell(vec3.Vec{X: x, Y: y, Z: z}, label.Background) }
	c, cx, cy, cxy := mk(0, 0, 0), mk(1, 0, 0), mk(0, 1, 0), mk(1, 1, 0)
	nc, ncx, ncy, ncxy := mk(0, 0, 1), mk(1, 0, 1), mk(0, 1, 1), mk(1, 1, 1)

	models := meshmodel.NewSet()
	tetra.EmitCube(models, f, 10, &c, &cx, &cy, &cxy, &nc, &ncx, &ncy, &ncxy)
	assert.Empty(t, models.Labels())
}
