package contour2

import (
	"sort"

	"github.com/T4r4sB/puzzlemesh/geoindex"
	"github.com/T4r4sB/puzzlemesh/vec2"
)

// Contour is a single closed polyline, stored as indices into a shared
// point pool (never raw coordinates), matching original_source's
// Contour (a Vec<PointIndex> plus the set it indexes into).
type Contour struct {
	Points []uint32
}

func (c Contour) at(pts []vec2.Vec, i int) vec2.Vec {
	return pts[c.Points[i]]
}

// Square returns twice the signed area enclosed by c (positive for a
// counter-clockwise winding), via the shoelace formula. Grounded on
// contour.rs::Contour::get_square.
func (c Contour) Square(pts []vec2.Vec) float64 {
	n := len(c.Points)
	if n < 3 {
		return 0
	}
	var sum float64
	prev := c.at(pts, n-1)
	for i := 0; i < n; i++ {
		cur := c.at(pts, i)
		sum += prev.X*cur.Y - cur.X*prev.Y
		prev = cur
	}
	return sum
}

// Length returns the perimeter of c.
// Grounded on contour.rs::Contour::get_length.
func (c Contour) Length(pts []vec2.Vec) float64 {
	n := len(c.Points)
	if n < 2 {
		return 0
	}
	var sum float64
	prev := c.at(pts, n-1)
	for i := 0; i < n; i++ {
		cur := c.at(pts, i)
		sum += vec2.Norm(vec2.Sub(cur, prev))
		prev = cur
	}
	return sum
}

// box returns c's axis-aligned bounding box.
func (c Contour) box(pts []vec2.Vec) vec2.Box {
	b := vec2.EmptyBox()
	for _, pi := range c.Points {
		b = b.Extend(pts[pi])
	}
	return b
}

// Contains reports whether point p lies inside c via a ray-casting
// parity test, matching contour.rs::Contour::contains.
func (c Contour) Contains(pts []vec2.Vec, p vec2.Vec) bool {
	n := len(c.Points)
	inside := false
	prev := c.at(pts, n-1)
	for i := 0; i < n; i++ {
		cur := c.at(pts, i)
		if (cur.Y > p.Y) != (prev.Y > p.Y) {
			xCross := prev.X + (p.Y-prev.Y)/(cur.Y-prev.Y)*(cur.X-prev.X)
			if p.X < xCross {
				inside = !inside
			}
		}
		prev = cur
	}
	return inside
}

// ConnectedPart groups one outer loop with the holes nested directly
// inside it (a single connected planar region), matching
// contour.rs::ConnectedPart.
type ConnectedPart struct {
	Contours []Contour
}

// Square sums the signed areas of p's contours (outer loop positive,
// holes negative, since FragmentedParts.SplitToConnectedAreas takes
// non-negative-area loops as outer loops and negative-area loops as
// holes).
func (p ConnectedPart) Square(pts []vec2.Vec) float64 {
	var sum float64
	for _, c := range p.Contours {
		sum += c.Square(pts)
	}
	return sum
}

// FragmentedParts is a flat bag of contours not yet grouped into
// connected parts, the raw output of a single marching-squares walk.
// Grounded on contour.rs::FragmentedParts.
type FragmentedParts struct {
	Contours []Contour
}

// SplitToConnectedAreas classifies each contour as an outer loop
// (non-negative signed area) or a hole (negative signed area), then
// assigns each hole to the smallest-area outer loop that contains it.
// Grounded on contour.rs::FragmentedParts::split_to_connected_areas.
func (f FragmentedParts) SplitToConnectedAreas(pts []vec2.Vec) []ConnectedPart {
	var outerIdx, holeIdx []int
	for i, c := range f.Contours {
		if c.Square(pts) >= 0 {
			outerIdx = append(outerIdx, i)
		} else {
			holeIdx = append(holeIdx, i)
		}
	}

	parts := make([]ConnectedPart, len(outerIdx))
	outerBoxes := make([]vec2.Box, len(outerIdx))
	for pi, oi := range outerIdx {
		parts[pi].Contours = []Contour{f.Contours[oi]}
		outerBoxes[pi] = f.Contours[oi].box(pts)
	}
	idx := geoindex.NewIndex(outerBoxes)

	outerAbsArea := func(pi int) float64 {
		a := parts[pi].Contours[0].Square(pts)
		if a < 0 {
			a = -a
		}
		return a
	}

	for _, hi := range holeIdx {
		hole := f.Contours[hi]
		if len(hole.Points) == 0 {
			continue
		}
		probe := hole.at(pts, 0)

		best := -1
		var bestArea float64
		for _, pi := range idx.Candidates(probe) {
			oi := outerIdx[pi]
			if !f.Contours[oi].Contains(pts, probe) {
				continue
			}
			a := outerAbsArea(pi)
			if best == -1 || a < bestArea {
				best = pi
				bestArea = a
			}
		}
		if best >= 0 {
			parts[best].Contours = append(parts[best].Contours, hole)
		}
	}

	sort.Slice(parts, func(i, j int) bool { return parts[i].Square(pts) > parts[j].Square(pts) })
	return parts
}
