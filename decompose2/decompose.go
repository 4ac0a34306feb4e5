// Package decompose2 cuts a contour2.ConnectedPart (an outer loop plus
// its nested holes) into a set of triangles, by repeatedly finding a
// non-convex ("bad") vertex, pairing it with a partner vertex across a
// well-chosen diagonal, and splitting the shape along that diagonal —
// falling back to a convex fan once no bad angle remains.
//
// Grounded on original_source/common/src/contour.rs
// (Contour::find_bad_angle, ConnectedPart::{find_pair_for_bad_angle_impl,
// split_by, split_to_triangles_impl, split_to_triangles_if_convex}).
package decompose2

import (
	"fmt"

	"github.com/T4r4sB/puzzlemesh/contour2"
	"github.com/T4r4sB/puzzlemesh/vec2"
)

const eps = 1e-9

// Triangle is one output triangle, referencing point indices in the
// shared pool the originating contour2.Set carries.
type Triangle struct{ A, B, C uint32 }

// vertexRef addresses one vertex of one contour within a ConnectedPart:
// Contour is an index into Part.Contours, Vertex is an index into that
// contour's Points.
type vertexRef struct{ Contour, Vertex int }

// SplitToTriangles decomposes part into triangles. It mutates a working
// copy of part, never the caller's contours.
func SplitToTriangles(part contour2.ConnectedPart, pts []vec2.Vec) ([]Triangle, error) {
	work := []contour2.ConnectedPart{{Contours: cloneContours(part.Contours)}}
	var out []Triangle
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		tris, rest, ok := splitOneStep(cur.Contours, pts)
		if !ok {
			return out, fmt.Errorf("decompose2: could not decompose remaining contour set (%d contours)", len(cur.Contours))
		}
		out = append(out, tris...)
		if len(rest) > 0 {
			work = append(work, contour2.FragmentedParts{Contours: rest}.SplitToConnectedAreas(pts)...)
		}
	}
	return out, nil
}

func cloneContours(cs []contour2.Contour) []contour2.Contour {
	out := make([]contour2.Contour, len(cs))
	for i, c := range cs {
		out[i] = contour2.Contour{Points: append([]uint32(nil), c.Points...)}
	}
	return out
}

// splitOneStep performs exactly one reduction: if the whole shape is
// convex-enough it fans it fully to triangles and returns an empty
// remainder; otherwise it finds one bad angle, a partner vertex for it,
// splits along that diagonal, and returns the resulting (possibly
// still multi-contour) remainder for the next call.
func splitOneStep(contours []contour2.Contour, pts []vec2.Vec) ([]Triangle, []contour2.Contour, bool) {
	if len(contours) == 1 {
		if tris, ok := splitIfConvex(contours[0], pts); ok {
			return tris, nil, true
		}
	}

	for ci, c := range contours {
		vi, ok := findBadAngle(c, pts)
		if !ok {
			continue
		}
		pair, ok := findPairForBadAngle(contours, ci, vi, pts)
		if !ok {
			continue
		}
		rest := splitBy(contours, vertexRef{ci, vi}, pair)
		return nil, rest, true
	}

	return nil, nil, false
}

// findBadAngle returns the index of a vertex whose interior angle is
// non-convex (reflex), including the degenerate "hair vertex" case
// where a contour touches itself (point[i] == point[i-2]) and plain
// cross-product sign is ambiguous. Grounded on
// contour.rs::Contour::find_bad_angle.
func findBadAngle(c contour2.Contour, pts []vec2.Vec) (int, bool) {
	n := len(c.Points)
	if n < 4 {
		return 0, false
	}
	at := func(i int) vec2.Vec { return pts[c.Points[((i%n)+n)%n]] }

	for i := 0; i < n; i++ {
		prev, cur, next := at(i-1), at(i), at(i+1)
		d1 := vec2.Sub(cur, prev)
		d2 := vec2.Sub(next, cur)
		cr := vec2.Cross(d1, d2)
		if cr < -eps {
			return i, true
		}
		if cr <= eps && at(i-2) == cur && isHairVertexBad(c, pts, i) {
			return i, true
		}
	}
	return 0, false
}

// isHairVertexBad resolves the ambiguous case where a contour pinches
// back on itself at vertex i (point[i] == point[i-2]): it votes on
// three progressively wider vertex pairs straddling i and treats i as
// bad when a majority agree the local turn is reflex.
func isHairVertexBad(c contour2.Contour, pts []vec2.Vec, i int) bool {
	n := len(c.Points)
	at := func(j int) vec2.Vec { return pts[c.Points[((j%n)+n)%n]] }
	cur := at(i)
	votes := 0
	for k := 1; k <= 3; k++ {
		a := at(i - k)
		b := at(i + k)
		d1 := vec2.Sub(cur, a)
		d2 := vec2.Sub(b, cur)
		if vec2.Cross(d1, d2) < 0 {
			votes++
		} else {
			votes--
		}
	}
	return votes > 0
}

// findPairForBadAngle searches for the vertex to connect vi (in
// contours[ci]) to with a diagonal, ranking candidates by how closely
// they align with vi's interior-angle bisector and rejecting any
// candidate whose diagonal would cross an existing edge. Grounded on
// contour.rs::ConnectedPart::find_pair_for_bad_angle_impl.
func findPairForBadAngle(contours []contour2.Contour, ci, vi int, pts []vec2.Vec) (vertexRef, bool) {
	c := contours[ci]
	n := len(c.Points)
	at := func(j int) vec2.Vec { return pts[c.Points[((j%n)+n)%n]] }
	p := at(vi)
	prev, next := at(vi-1), at(vi+1)

	n1 := vec2.Unit(vec2.Perp(vec2.Sub(p, prev)))
	n2 := vec2.Unit(vec2.Perp(vec2.Sub(next, p)))
	u1, u2 := vec2.Unit(vec2.Sub(p, prev)), vec2.Unit(vec2.Sub(next, p))
	bisector := vec2.Sub(vec2.Sub(u1, u2), vec2.Add(n1, n2))

	type cand = struct {
		ref   vertexRef
		score float64
	}
	var candidates []cand

	for oci, oc := range contours {
		for ovi := range oc.Points {
			if oci == ci && (ovi == vi || ovi == (vi-1+n)%n || ovi == (vi+1)%n) {
				continue
			}
			q := pts[oc.Points[ovi]]
			d := vec2.Sub(q, p)
			dot := vec2.Dot(bisector, d)
			if dot <= 0 {
				continue
			}
			cross := vec2.Cross(bisector, d)
			score := cross / dot
			if score < 0 {
				score = -score
			}
			candidates = append(candidates, cand{vertexRef{oci, ovi}, score})
		}
	}

	sortByScore(candidates)

	intersects := func(a1, a2, b1, b2 vec2.Vec) bool {
		return segmentsIntersect(a1, a2, b1, b2)
	}

	for _, cd := range candidates {
		q := pts[contours[cd.ref.Contour].Points[cd.ref.Vertex]]
		blocked := false
		for oci, oc := range contours {
			m := len(oc.Points)
			for k := 0; k < m; k++ {
				a1 := pts[oc.Points[k]]
				a2 := pts[oc.Points[(k+1)%m]]
				if oci == ci && (k == vi || (k+1)%m == vi) {
					continue
				}
				if oci == cd.ref.Contour && (k == cd.ref.Vertex || (k+1)%m == cd.ref.Vertex) {
					continue
				}
				if intersects(p, q, a1, a2) {
					blocked = true
					break
				}
			}
			if blocked {
				break
			}
		}
		if !blocked {
			return cd.ref, true
		}
	}
	return vertexRef{}, false
}

func sortByScore(c []struct {
	ref   vertexRef
	score float64
}) {
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && c[j].score < c[j-1].score; j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}
}

// segmentsIntersect reports whether open segments a1-a2 and b1-b2
// properly cross.
func segmentsIntersect(a1, a2, b1, b2 vec2.Vec) bool {
	d1 := vec2.Sub(a2, a1)
	d2 := vec2.Sub(b2, b1)
	denom := vec2.Cross(d1, d2)
	if denom == 0 {
		return false
	}
	t := vec2.Cross(vec2.Sub(b1, a1), d2) / denom
	u := vec2.Cross(vec2.Sub(b1, a1), d1) / denom
	return t > eps && t < 1-eps && u > eps && u < 1-eps
}

// splitBy cuts the diagonal between a and b. When both endpoints lie on
// the same contour, the contour is partitioned into two new contours
// (re-grouped into connected parts by area/containment); when they lie
// on different contours, those two contours are merged into one by
// walking a's contour to a, crossing to b's contour, walking it back to
// b, and crossing back. Grounded on
// contour.rs::ConnectedPart::split_by.
func splitBy(contours []contour2.Contour, a, b vertexRef) []contour2.Contour {
	if a.Contour == b.Contour {
		c := contours[a.Contour]
		n := len(c.Points)
		i, j := a.Vertex, b.Vertex
		if i > j {
			i, j = j, i
		}
		var left, right []uint32
		left = append(left, c.Points[i:j+1]...)
		right = append(right, c.Points[j:n]...)
		right = append(right, c.Points[0:i+1]...)

		out := make([]contour2.Contour, 0, len(contours)+1)
		for k, oc := range contours {
			if k != a.Contour {
				out = append(out, oc)
			}
		}
		out = append(out, contour2.Contour{Points: left}, contour2.Contour{Points: right})
		return out
	}

	ca, cb := contours[a.Contour], contours[b.Contour]
	na, nb := len(ca.Points), len(cb.Points)
	var merged []uint32
	for k := 0; k <= na; k++ {
		merged = append(merged, ca.Points[(a.Vertex+k)%na])
	}
	for k := 0; k <= nb; k++ {
		merged = append(merged, cb.Points[(b.Vertex+k)%nb])
	}

	out := make([]contour2.Contour, 0, len(contours)-1)
	for k, oc := range contours {
		if k != a.Contour && k != b.Contour {
			out = append(out, oc)
		}
	}
	out = append(out, contour2.Contour{Points: merged})
	return out
}

// splitIfConvex fans the single contour c into triangles directly if it
// has no bad angle. It merges no holes itself; splitOneStep calls it
// only for a part that is down to one contour. Grounded on
// contour.rs::ConnectedPart::split_to_triangles_if_convex.
func splitIfConvex(c contour2.Contour, pts []vec2.Vec) ([]Triangle, bool) {
	if _, bad := findBadAngle(c, pts); bad {
		return nil, false
	}
	n := len(c.Points)
	if n < 3 {
		return nil, true
	}
	var out []Triangle
	for i := 1; i < n-1; i++ {
		out = append(out, Triangle{c.Points[0], c.Points[i], c.Points[i+1]})
	}
	return out, true
}
