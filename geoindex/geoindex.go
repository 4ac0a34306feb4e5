// Package geoindex accelerates the 2D hole/outer-loop containment
// search (original_source/common/src/contour.rs::
// FragmentedParts::split_to_connected_areas's O(outer*hole) scan) with
// an R-tree bounding-box prefilter, via github.com/dhconnelly/rtreego.
package geoindex

import (
	"github.com/dhconnelly/rtreego"

	"github.com/T4r4sB/puzzlemesh/vec2"
)

// item wraps one indexed box so it satisfies rtreego.Spatial.
type item struct {
	id     int
	bounds *rtreego.Rect
}

func (it *item) Bounds() *rtreego.Rect { return it.bounds }

// Index is a bounding-box prefilter over a fixed set of 2D boxes,
// identified by the caller's own integer ids.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an index over boxes, keyed by their slice position.
func NewIndex(boxes []vec2.Box) *Index {
	tree := rtreego.NewTree(2, 4, 16)
	for id, b := range boxes {
		w, h := b.Max.X-b.Min.X, b.Max.Y-b.Min.Y
		if w <= 0 {
			w = 1e-9
		}
		if h <= 0 {
			h = 1e-9
		}
		rect, err := rtreego.NewRect(rtreego.Point{b.Min.X, b.Min.Y}, []float64{w, h})
		if err != nil {
			continue
		}
		tree.Insert(&item{id: id, bounds: rect})
	}
	return &Index{tree: tree}
}

// Candidates returns the ids of every indexed box whose bounds contain
// p, a superset of the boxes that actually contain p by the exact
// point-in-polygon test the caller should still run.
func (idx *Index) Candidates(p vec2.Vec) []int {
	rect, err := rtreego.NewRect(rtreego.Point{p.X, p.Y}, []float64{1e-9, 1e-9})
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(rect)
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*item).id)
	}
	return out
}
