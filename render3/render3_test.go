package render3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/render3"
	"github.com/T4r4sB/puzzlemesh/vec3"
	"github.com/T4r4sB/puzzlemesh/voxel"
)

func sphereFunc(radius float64) label.Func3 {
	r2 := radius * radius
	return func(x, y, z float32) label.Label {
		d := float64(x)*float64(x) + float64(y)*float64(y) + float64(z)*float64(z)
		if d <= r2 {
			return 1
		}
		return label.Background
	}
}

func TestRunSphereClosesAndMatchesKnownVolumeOrder(t *testing.T) {
	g := voxel.Grid{
		Min: vec3.Vec{X: -12, Y: -12, Z: -12},
		Max: vec3.Vec{X: 12, Y: 12, Z: 12},
		Nx:  24, Ny: 24, Nz: 24,
	}
	res, err := render3.Run(render3.Config{Grid: g, F: sphereFunc(10), BisectIters: 20})
	require.NoError(t, err)
	require.Empty(t, res.Failed)
	require.Contains(t, res.Meshes.Labels(), label.Label(1))

	m := res.Meshes.Model(1)
	require.NotEmpty(t, m.Triangles)

	var volume float64
	for _, tri := range m.Triangles {
		a, b, c := m.Vertices[tri.A], m.Vertices[tri.B], m.Vertices[tri.C]
		volume += vec3.Dot(a, vec3.Cross(b, c)) / 6
	}
	expected := 4.0 / 3.0 * 3.14159265 * 10 * 10 * 10
	assert.InDelta(t, expected, volume, expected*0.1)
}

func TestRunRejectsEmptyGrid(t *testing.T) {
	_, err := render3.Run(render3.Config{Grid: voxel.Grid{Nx: 0, Ny: 1, Nz: 1}, F: sphereFunc(1), BisectIters: 4})
	assert.Error(t, err)
}

func TestRunNoLabelsForEmptyFunction(t *testing.T) {
	g := voxel.Grid{Min: vec3.Vec{X: -1, Y: -1, Z: -1}, Max: vec3.Vec{X: 1, Y: 1, Z: 1}, Nx: 2, Ny: 2, Nz: 2}
	res, err := render3.Run(render3.Config{Grid: g, F: label.Func3(func(x, y, z float32) label.Label { return label.Background }), BisectIters: 4})
	require.NoError(t, err)
	assert.Empty(t, res.Meshes.Labels())
}
