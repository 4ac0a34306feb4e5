package voxel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/T4r4sB/puzzlemesh/vec3"
	"github.com/T4r4sB/puzzlemesh/voxel"
)

func TestCornerLerp(t *testing.T) {
	g := voxel.Grid{Min: vec3.Vec{X: -10, Y: -10, Z: -10}, Max: vec3.Vec{X: 10, Y: 10, Z: 10}, Nx: 4, Ny: 4, Nz: 4}
	assert.Equal(t, vec3.Vec{X: -10, Y: -10, Z: -10}, g.Corner(0, 0, 0))
	assert.Equal(t, vec3.Vec{X: 10, Y: 10, Z: 10}, g.Corner(4, 4, 4))
	assert.Equal(t, vec3.Vec{X: 0, Y: 0, Z: 0}, g.Corner(2, 2, 2))
}

func TestOnBoundary(t *testing.T) {
	g := voxel.Grid{Nx: 3, Ny: 3, Nz: 3}
	assert.True(t, g.OnBoundary(0, 1, 1))
	assert.True(t, g.OnBoundary(3, 1, 1))
	assert.False(t, g.OnBoundary(1, 1, 1))
}
