// Package contour2 implements spec.md §4.6's 2D marching-squares
// contour engine: each grid cell is split into four sub-triangles
// meeting at its centroid, every sub-triangle emits a directed boundary
// edge per label it crosses, and those directed edges are walked into
// closed polylines.
//
// Grounded on original_source/common/src/contour.rs (ContourCell,
// ContourCreator::make_contour, Contour, ConnectedPart, FragmentedParts).
package contour2

import (
	"github.com/T4r4sB/puzzlemesh/bisect"
	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/vec2"
)

const noVertex uint32 = 0xFFFFFFFF

// cell is one grid corner sample plus the cached mid-edge crossing
// points toward its four axis neighbours (-X,+X,-Y,+Y).
type cell struct {
	label          label.Label
	pos            vec2.Vec
	mz, pz, zm, zp uint32
}

// gridPoint maps doubled integer grid coordinates to world space: even
// coordinates are cell corners, odd coordinates are cell centres,
// matching original_source's index_to_point half-step convention.
func gridPoint(size int, contourSize float64, xd, yd int) vec2.Vec {
	scale := contourSize / float64(size-1)
	return vec2.Vec{
		X: float64(xd)*scale*0.5 - contourSize*0.5,
		Y: float64(yd)*scale*0.5 - contourSize*0.5,
	}
}

func cornerOf(size int, contourSize float64, x, y int) vec2.Vec {
	return gridPoint(size, contourSize, x*2, y*2)
}

func centerOf(size int, contourSize float64, x, y int) vec2.Vec {
	return gridPoint(size, contourSize, x*2-1, y*2-1)
}

// Set is a complete contour extraction result: the shared point pool
// and the label-partitioned, containment-grouped parts built from it.
type Set struct {
	Points []vec2.Vec
	Parts  []ConnectedPart
}

// MakeContour samples f over a size x size grid of corners spanning a
// contourSize x contourSize box centred on the origin, and returns one
// Set per non-background label encountered, each edge crossing located
// by iters bisection halvings.
func MakeContour(f label.Func2, size int, contourSize float64, iters int) map[label.Label]*Set {
	result := make(map[label.Label]*Set)
	if size == 0 {
		return result
	}

	edges := make(map[label.Label]map[uint32]uint32)
	var points []vec2.Vec

	cells := make([]cell, size*size)
	fillCell := func(x, y int) *cell {
		c := &cells[y*size+x]
		c.pos = cornerOf(size, contourSize, x, y)
		c.label = f.At(c.pos.X, c.pos.Y)
		return c
	}

	addPoint := func(p vec2.Vec) uint32 {
		points = append(points, p)
		return uint32(len(points) - 1)
	}
	fillMid := func(c *cell, slot *uint32, self, other vec2.Vec) {
		if c.label != label.Background {
			pt := bisect.Root2(f, self, other, c.label, iters)
			*slot = addPoint(pt)
		}
	}
	fillMids := func(c1 *cell, slot1 *uint32, c2 *cell, slot2 *uint32) {
		if c1.label != c2.label {
			fillMid(c1, slot1, c1.pos, c2.pos)
			fillMid(c2, slot2, c2.pos, c1.pos)
		}
	}

	fillCell(0, 0)
	for x := 1; x < size; x++ {
		fillCell(x, 0)
		fillMids(&cells[x-1], &cells[x-1].pz, &cells[x], &cells[x].mz)
	}

	edgeSet := func(l label.Label) map[uint32]uint32 {
		m, ok := edges[l]
		if !ok {
			m = make(map[uint32]uint32)
			edges[l] = m
		}
		return m
	}

	for y := 1; y < size; y++ {
		c11i := y * size
		c10i := c11i - size
		fillCell(0, y)
		fillMids(&cells[c10i], &cells[c10i].zp, &cells[c11i], &cells[c11i].zm)

		for x := 1; x < size; x++ {
			ci := c11i + x
			c00i, c10i, c01i, c11i := ci-1-size, ci-size, ci-1, ci
			fillCell(x, y)
			fillMids(&cells[c01i], &cells[c01i].pz, &cells[ci], &cells[ci].mz)
			fillMids(&cells[c10i], &cells[c10i].zp, &cells[ci], &cells[ci].zm)

			center := centerOf(size, contourSize, x, y)
			centerLabel := f.At(center.X, center.Y)

			var mmi, mmo, mpi, mpo, pmi, pmo, ppi, ppo uint32 = noVertex, noVertex, noVertex, noVertex, noVertex, noVertex, noVertex, noVertex
			fillCenterMid := func(c *cell, dst1, dst2 *uint32) {
				if centerLabel != c.label {
					*dst1 = addPoint(bisect.Root2(f, center, c.pos, centerLabel, iters))
					*dst2 = addPoint(bisect.Root2(f, c.pos, center, c.label, iters))
				}
			}
			fillCenterMid(&cells[c00i], &mmi, &mmo)
			fillCenterMid(&cells[c01i], &mpi, &mpo)
			fillCenterMid(&cells[c10i], &pmi, &pmo)
			fillCenterMid(&cells[c11i], &ppi, &ppo)

			fillT(centerLabel, cells[c00i].label, cells[c10i].label, mmi, mmo, pmi, pmo,
				cells[c00i].pz, cells[c10i].mz, edgeSet)
			fillT(centerLabel, cells[c10i].label, cells[c11i].label, pmi, pmo, ppi, ppo,
				cells[c10i].zp, cells[c11i].zm, edgeSet)
			fillT(centerLabel, cells[c11i].label, cells[c01i].label, ppi, ppo, mpi, mpo,
				cells[c11i].mz, cells[c01i].pz, edgeSet)
			fillT(centerLabel, cells[c01i].label, cells[c00i].label, mpi, mpo, mmi, mmo,
				cells[c01i].zm, cells[c00i].zp, edgeSet)
		}
	}

	for l, e := range edges {
		result[l] = walkEdges(e, points)
	}
	return result
}

// fillT records, for the sub-triangle (center, a, b) in that winding
// order, the directed boundary edges it contributes for whichever of
// the three labels differs from the other two — mirroring
// original_source's Self::fill_t (the fill_ti/fill_to pair applied to
// all three rotations of the triangle).
func fillT(li, la, lb label.Label, iCrossA, aCrossI, iCrossB, bCrossI, aAxisB, bAxisA uint32,
	edgeSet func(label.Label) map[uint32]uint32) {
	fillTi(li, la, lb, iCrossA, iCrossB, edgeSet)
	fillTo(li, la, lb, aCrossI, bCrossI, edgeSet)
	fillTi(la, lb, li, aAxisB, aCrossI, edgeSet)
	fillTo(la, lb, li, bAxisA, iCrossA, edgeSet)
	fillTi(lb, li, la, bCrossI, bAxisA, edgeSet)
	fillTo(lb, li, la, iCrossB, aAxisB, edgeSet)
}

// fillTi adds the edge (p12 -> p13) to label l1's boundary when l1 is
// the odd one out among a triangle's three corner labels (and not
// background).
func fillTi(l1, l2, l3 label.Label, p12, p13 uint32, edgeSet func(label.Label) map[uint32]uint32) {
	if l1 != label.Background && l1 != l2 && l1 != l3 {
		edgeSet(l1)[p12] = p13
	}
}

// fillTo adds the edge (p31 -> p21) to label l2's boundary when l2==l3
// differ from l1 — the "outside" half of the same crossing fillTi
// records from the inside.
func fillTo(l1, l2, l3 label.Label, p21, p31 uint32, edgeSet func(label.Label) map[uint32]uint32) {
	if l1 != l2 && l2 != label.Background && l2 == l3 {
		edgeSet(l2)[p31] = p21
	}
}

// walkEdges follows a label's directed edge map into closed polylines,
// copying each visited point into a fresh, tightly-packed point pool.
func walkEdges(edges map[uint32]uint32, src []vec2.Vec) *Set {
	frag := FragmentedParts{}
	var pts []vec2.Vec

	for len(edges) > 0 {
		var start uint32
		for k := range edges {
			start = k
			break
		}
		var c Contour
		cur := start
		for {
			idx := uint32(len(pts))
			pts = append(pts, src[cur])
			c.Points = append(c.Points, idx)
			next, ok := edges[cur]
			delete(edges, cur)
			if !ok || next == start {
				break
			}
			cur = next
		}
		frag.Contours = append(frag.Contours, c)
	}

	parts := frag.SplitToConnectedAreas(pts)
	return &Set{Points: pts, Parts: parts}
}
