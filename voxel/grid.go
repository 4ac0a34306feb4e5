// Package voxel implements spec.md §4.2: the layer-streaming corner
// sampler that lets the mesher run in O(N²) memory instead of O(N³) by
// keeping only two adjacent Z-layers of corner samples resident at once.
//
// Grounded on original_source/src/solid.rs (SolidLayer, the prev/next
// layer pair ModelCreator::use_layers walks).
package voxel

import "github.com/T4r4sB/puzzlemesh/vec3"

// Grid describes a uniform sampling lattice over an axis-aligned box:
// Nx*Ny*Nz cubes, (Nx+1)*(Ny+1)*(Nz+1) corner samples.
type Grid struct {
	Min, Max   vec3.Vec
	Nx, Ny, Nz int
}

// Corner returns the world-space position of corner (ix,iy,iz), ix in
// [0,Nx], iy in [0,Ny], iz in [0,Nz].
func (g Grid) Corner(ix, iy, iz int) vec3.Vec {
	return vec3.Vec{
		X: lerp(g.Min.X, g.Max.X, ix, g.Nx),
		Y: lerp(g.Min.Y, g.Max.Y, iy, g.Ny),
		Z: lerp(g.Min.Z, g.Max.Z, iz, g.Nz),
	}
}

func lerp(min, max float64, i, n int) float64 {
	if n == 0 {
		return min
	}
	t := float64(i) / float64(n)
	return min + t*(max-min)
}

// OnBoundary reports whether corner (ix,iy,iz) lies on the outer shell
// of the sampling domain. Boundary corners are forced to label
// Background regardless of what the partition function says there, so
// every label-mesh closes inside the requested box instead of being
// clipped open by it (spec.md §4.2).
func (g Grid) OnBoundary(ix, iy, iz int) bool {
	return ix == 0 || ix == g.Nx || iy == 0 || iy == g.Ny || iz == 0 || iz == g.Nz
}
