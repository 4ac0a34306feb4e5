// Package render2 drives the 2D meshing pipeline end to end: sample a
// Func2 over a square grid via contour2.MakeContour, then decompose
// each label's contour set into triangles.
//
// Grounded on original_source/common/src/contour.rs::ContourCreator's
// overall shape (grid sampling -> per-label contour sets) and
// ConnectedPart::split_to_triangles (the per-part decomposition step).
package render2

import (
	"fmt"

	"github.com/T4r4sB/puzzlemesh/contour2"
	"github.com/T4r4sB/puzzlemesh/decompose2"
	"github.com/T4r4sB/puzzlemesh/label"
)

// Config parameterizes one 2D meshing run.
type Config struct {
	GridSize    int     // corner samples per axis
	BoxSize     float64 // world-space size of the sampled square
	F           label.Func2
	BisectIters int
}

// LabelResult is one label's contour set plus its triangle decomposition.
type LabelResult struct {
	Contours *contour2.Set
	Triangles []decompose2.Triangle
}

// Result is the outcome of Run.
type Result struct {
	Labels map[label.Label]*LabelResult
	Failed map[label.Label]error
}

// Run meshes cfg.F over a GridSize x GridSize grid spanning a
// BoxSize-wide square, decomposing every label's contours into triangles.
func Run(cfg Config) (*Result, error) {
	if cfg.GridSize < 2 {
		return nil, fmt.Errorf("render2: grid size must be at least 2, got %d", cfg.GridSize)
	}

	sets := contour2.MakeContour(cfg.F, cfg.GridSize, cfg.BoxSize, cfg.BisectIters)

	res := &Result{Labels: make(map[label.Label]*LabelResult), Failed: make(map[label.Label]error)}
	for l, set := range sets {
		lr := &LabelResult{Contours: set}
		for _, part := range set.Parts {
			tris, err := decompose2.SplitToTriangles(part, set.Points)
			if err != nil {
				res.Failed[l] = fmt.Errorf("render2: label %d: %w", l, err)
				break
			}
			lr.Triangles = append(lr.Triangles, tris...)
		}
		res.Labels[l] = lr
	}
	return res, nil
}
