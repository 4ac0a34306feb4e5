// Package render3 drives the 3D meshing pipeline end to end: walk the
// grid one Z-layer-pair at a time, emit tetrahedra into per-label
// meshes, then validate and clean up each label's mesh independently.
//
// Grounded on original_source/src/solid.rs::ModelCreator::use_layers
// (the layer walk) and original_source/common/src/model.rs (the
// validate-then-cleanup step run per model).
package render3

import (
	"fmt"

	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/meshmodel"
	"github.com/T4r4sB/puzzlemesh/tetra"
	"github.com/T4r4sB/puzzlemesh/voxel"
)

// Config parameterizes one meshing run.
type Config struct {
	Grid        voxel.Grid
	F           label.Func3
	BisectIters int // spec.md §4.1: fixed halving count, no convergence check
}

// Result is the outcome of Run: a mesh per label actually encountered,
// plus any labels whose mesh failed topology validation (spec.md §7 —
// a malformed mesh aborts only itself, not the whole run).
type Result struct {
	Meshes *meshmodel.Set
	Failed map[label.Label]error
}

// Run meshes cfg.F over cfg.Grid and returns one validated, cleaned-up
// Model per non-background label encountered, in insertion order.
func Run(cfg Config) (*Result, error) {
	g := cfg.Grid
	if g.Nx < 1 || g.Ny < 1 || g.Nz < 1 {
		return nil, fmt.Errorf("render3: grid must have at least one cube per axis, got %dx%dx%d", g.Nx, g.Ny, g.Nz)
	}

	models := meshmodel.NewSet()
	prev := voxel.NewLayer(cfg.F, g, 0)
	for iz := 0; iz < g.Nz; iz++ {
		next := voxel.NewLayer(cfg.F, g, iz+1)
		for iy := 0; iy < g.Ny; iy++ {
			for ix := 0; ix < g.Nx; ix++ {
				tetra.EmitCube(models, cfg.F, cfg.BisectIters,
					prev.At(ix, iy), prev.At(ix+1, iy), prev.At(ix, iy+1), prev.At(ix+1, iy+1),
					next.At(ix, iy), next.At(ix+1, iy), next.At(ix, iy+1), next.At(ix+1, iy+1),
				)
			}
		}
		prev = next
	}

	failed := make(map[label.Label]error)
	for _, l := range models.Labels() {
		if err := models.Model(l).Validate(); err != nil {
			failed[l] = err
		}
	}

	return &Result{Meshes: models, Failed: failed}, nil
}
