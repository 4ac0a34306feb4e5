package simplify

import (
	"fmt"
	"math/rand"

	"github.com/T4r4sB/puzzlemesh/meshmodel"
	"github.com/T4r4sB/puzzlemesh/vec3"
)

// triKey is a triangle referencing vertex ids directly, used locally
// while building the replacement fan for one vertex before it becomes a
// meshmodel.Triangle.
type triKey struct{ A, B, C uint32 }

// pass runs one full sweep over m's vertices in a fixed-seed random
// order, deleting every vertex whose umbrella can be legally re-fanned
// from one of its own ring neighbours, and returns whether anything
// changed plus the updated triangle -> absorbed-vertex bookkeeping that
// the next pass needs for its width check.
func pass(m *meshmodel.Model, giOfV []uint32, subsets []map[uint32]bool, interesting []bool,
	vOfT map[uint32][]uint32, p Params, rng *rand.Rand) (bool, map[uint32][]uint32) {

	n := len(m.Triangles)
	deleted := make([]bool, n)
	tOfV := make([][]uint32, len(m.Vertices))
	edges := make(map[[2]uint32]bool)
	newVOfT := make(map[uint32][]uint32)
	var additional []meshmodel.Triangle

	for i := 0; i < n; i++ {
		t := m.Triangles[i]
		if !interesting[t.A] && !interesting[t.B] && !interesting[t.C] {
			continue
		}
		ti := uint32(i)
		tOfV[t.A] = append(tOfV[t.A], ti)
		tOfV[t.B] = append(tOfV[t.B], ti)
		tOfV[t.C] = append(tOfV[t.C], ti)
		for _, e := range [][2]uint32{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			if edges[e] {
				panic(fmt.Sprintf("simplify: edge %d:%d used twice building the active subset", e[0], e[1]))
			}
			edges[e] = true
		}
	}

	borderV := make(map[uint32]bool)
	for e := range edges {
		if !edges[[2]uint32{e[1], e[0]}] {
			borderV[e[0]] = true
			borderV[e[1]] = true
		}
	}

	var candidates []uint32
	for v := range m.Vertices {
		vv := uint32(v)
		if !borderV[vv] && interesting[vv] && len(tOfV[vv]) > 0 {
			candidates = append(candidates, vv)
		}
	}
	rng.Shuffle(len(candidates), func(a, b int) { candidates[a], candidates[b] = candidates[b], candidates[a] })

checkV:
	for _, i := range candidates {
		interesting[i] = false
		ts := tOfV[i]

		nextV := make(map[uint32]uint32)
		controlV := make(map[uint32]bool)
		vOfNewT := make(map[uint32][]uint32)
		controlV[i] = false

		for _, ti := range ts {
			if deleted[ti] {
				continue checkV
			}
			for _, v := range vOfT[ti] {
				controlV[v] = false
			}
			t := m.Triangles[ti]
			switch i {
			case t.A:
				if _, dup := nextV[t.B]; dup {
					panic(fmt.Sprintf("simplify: edge %d:%d already fanned around vertex %d", t.B, t.C, i))
				}
				nextV[t.B] = t.C
			case t.B:
				if _, dup := nextV[t.C]; dup {
					panic(fmt.Sprintf("simplify: edge %d:%d already fanned around vertex %d", t.C, t.A, i))
				}
				nextV[t.C] = t.A
			case t.C:
				if _, dup := nextV[t.A]; dup {
					panic(fmt.Sprintf("simplify: edge %d:%d already fanned around vertex %d", t.A, t.B, i))
				}
				nextV[t.A] = t.B
			}
		}

		validate := func(newT, oldT triKey) bool {
			pNew := perp(m, newT)
			pOld := perp(m, oldT)
			lNew, lOld := vec3.Norm(pNew), vec3.Norm(pOld)
			return vec3.Dot(pNew, pOld) > p.SmoothDot*lNew*lOld
		}
		nearT := func(t triKey, index uint32) {
			for v, marked := range controlV {
				if marked {
					continue
				}
				if vNearT(m, v, t, p.Width) {
					controlV[v] = true
					vOfNewT[index] = append(vOfNewT[index], v)
				}
			}
		}

		for v, nv := range nextV {
			if !subsets[giOfV[v]][giOfV[i]] {
				continue
			}

			n1, n2 := nv, nextV[nv]
			ok := true
			curT := triKey{v, n1, n2}

			if !validate(curT, triKey{i, v, nv}) {
				ok = false
			}

			for ok && n2 != v {
				if n1 != nv && edges[[2]uint32{v, n1}] {
					ok = false
					break
				}
				curT = triKey{v, n1, n2}
				if !validate(curT, triKey{i, n1, n2}) {
					ok = false
					break
				}
				nearT(curT, n1)
				n1, n2 = n2, nextV[n2]
			}

			if ok && !validate(curT, triKey{i, n1, n2}) {
				ok = false
			}
			if ok {
				for _, marked := range controlV {
					if !marked {
						ok = false
						break
					}
				}
			}

			if ok {
				n1, n2 = nv, nextV[nv]
				interesting[v] = true
				interesting[nv] = true
				for n2 != v {
					interesting[n2] = true
					if n1 != nv {
						edges[[2]uint32{v, n1}] = true
						edges[[2]uint32{n1, v}] = true
					}
					for _, absorbed := range vOfNewT[n1] {
						newVOfT[uint32(len(additional))] = append(newVOfT[uint32(len(additional))], absorbed)
					}
					additional = append(additional, meshmodel.Triangle{A: v, B: n1, C: n2})
					n1, n2 = n2, nextV[n2]
				}

				for _, ti := range ts {
					deleted[ti] = true
				}
				m.FreeVertices = append(m.FreeVertices, i)
				continue checkV
			}
		}
	}

	changed := len(additional) > 0

	for ti := 0; ti < n; ti++ {
		if !deleted[ti] {
			if v, ok := vOfT[uint32(ti)]; ok {
				newVOfT[uint32(len(additional))] = append(newVOfT[uint32(len(additional))], v...)
			}
			additional = append(additional, m.Triangles[ti])
		}
	}

	m.Triangles = additional
	return changed, newVOfT
}

// vNearT reports whether vertex v lies within eps of triangle t's plane
// and inside (or on the boundary of) its footprint, matching
// original_source/common/src/model.rs::v_near_t.
func vNearT(m *meshmodel.Model, v uint32, t triKey, eps float64) bool {
	p := m.Vertices[v]
	n := vec3.Unit(vec3.Cross(vec3.Sub(m.Vertices[t.B], m.Vertices[t.A]), vec3.Sub(m.Vertices[t.C], m.Vertices[t.A])))
	v0 := vec3.Sub(p, m.Vertices[t.A])

	if abs(vec3.Dot(v0, n)) > eps {
		return false
	}

	v1 := vec3.Sub(p, m.Vertices[t.B])
	v2 := vec3.Sub(p, m.Vertices[t.C])

	cr01 := vec3.Cross(v0, v1)
	cr12 := vec3.Cross(v1, v2)
	cr20 := vec3.Cross(v2, v0)

	if vec3.Dot(n, cr01) > 0 && vec3.Dot(n, cr12) > 0 && vec3.Dot(n, cr20) > 0 {
		return true
	}

	if sqrLen(cr01) < eps*eps*sqrLen(vec3.Sub(v0, v1)) &&
		vec3.Dot(vec3.Sub(v1, v0), v1) > 0 && vec3.Dot(vec3.Sub(v0, v1), v0) > 0 {
		return true
	}
	if sqrLen(cr12) < eps*eps*sqrLen(vec3.Sub(v1, v2)) &&
		vec3.Dot(vec3.Sub(v2, v1), v2) > 0 && vec3.Dot(vec3.Sub(v1, v2), v1) > 0 {
		return true
	}
	if sqrLen(cr20) < eps*eps*sqrLen(vec3.Sub(v2, v0)) &&
		vec3.Dot(vec3.Sub(v0, v2), v0) > 0 && vec3.Dot(vec3.Sub(v2, v0), v2) > 0 {
		return true
	}

	return sqrLen(v0) < eps*eps || sqrLen(v1) < eps*eps || sqrLen(v2) < eps*eps
}

func perp(m *meshmodel.Model, t triKey) vec3.Vec {
	return vec3.Cross(vec3.Sub(m.Vertices[t.B], m.Vertices[t.A]), vec3.Sub(m.Vertices[t.C], m.Vertices[t.A]))
}

func sqrLen(v vec3.Vec) float64 { return vec3.Dot(v, v) }

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
