// Package simplify implements spec.md §4.5's vertex-star simplification
// pass: repeatedly try to delete a vertex and re-fan its umbrella of
// triangles into fewer, flatter ones, subject to a width tolerance, a
// smoothness tolerance, and a flat-region group-membership constraint
// that stops the pass from blurring across sharp edges.
//
// Grounded on original_source/common/src/model.rs::{optimize,
// get_normal, get_perp, v_near_t}.
package simplify

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/T4r4sB/puzzlemesh/meshmodel"
	"github.com/T4r4sB/puzzlemesh/vec3"
)

// Params tunes one simplification run. Width bounds how far a removed
// or previously absorbed vertex may lie from the new triangle that
// covers it; it does not limit the extent of a flat region (grouping
// compares normals only). GroupDot and SmoothDot are cosine
// thresholds (dot products of unit or unnormalized-but-comparable
// vectors); MinGroupSize discards flat regions too small to be worth
// tracking. Seed fixes the vertex-visit order so a run is reproducible.
type Params struct {
	Width        float64
	GroupDot     float64
	SmoothDot    float64
	MinGroupSize uint32
	Seed         int64
}

// Run simplifies m in place. m must already be a validated, closed mesh
// (meshmodel.Model.Validate has succeeded).
func Run(m *meshmodel.Model, p Params) error {
	top, err := m.BuildTopology()
	if err != nil {
		return fmt.Errorf("simplify: %w", err)
	}

	groupOfT := groupTriangles(m, top, p.GroupDot, p.MinGroupSize)
	giOfV, subsets := vertexGroupSignatures(m, groupOfT)

	interesting := make([]bool, len(m.Vertices))
	for i := range interesting {
		interesting[i] = true
	}

	rng := rand.New(rand.NewSource(p.Seed))
	vOfT := make(map[uint32][]uint32)

	for {
		changed, newVOfT := pass(m, giOfV, subsets, interesting, vOfT, p, rng)
		vOfT = newVOfT
		if !changed {
			break
		}
	}
	return nil
}

// groupTriangles floods each run of adjacent triangles whose normals
// are within groupDot of the seed triangle's normal into one group id
// (1-based; 0 means "ungrouped", either never visited or a region too
// small to keep). The spatial extent of a group is not bounded.
func groupTriangles(m *meshmodel.Model, top *meshmodel.Topology, groupDot float64, minGroupSize uint32) []uint32 {
	n := len(m.Triangles)
	groupOfT := make([]uint32, n)
	var groupCounts []uint32

	for ti := 0; ti < n; ti++ {
		if groupOfT[ti] != 0 {
			continue
		}
		cn := m.Normal(m.Triangles[ti])
		stack := []uint32{uint32(ti)}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, adj := range top.FaceAdj[cur] {
				if groupOfT[adj] != 0 {
					continue
				}
				nn := m.Normal(m.Triangles[adj])
				if vec3.Dot(nn, cn) <= groupDot {
					continue
				}
				if groupOfT[ti] == 0 {
					groupCounts = append(groupCounts, 0)
					groupOfT[ti] = uint32(len(groupCounts))
					groupCounts[len(groupCounts)-1]++
				}
				groupOfT[adj] = uint32(len(groupCounts))
				groupCounts[len(groupCounts)-1]++
				stack = append(stack, adj)
			}
		}
	}

	for i, g := range groupOfT {
		if g != 0 && groupCounts[g-1] < minGroupSize {
			groupOfT[i] = 0
		}
	}
	return groupOfT
}

// vertexGroupSignatures assigns every vertex a signature id identifying
// the set of distinct triangle-groups touching it, and for every
// signature the set of signatures that are subsets of it. A candidate
// apex vertex v may absorb a vertex i only when v's signature is a
// superset of i's — collapsing into v can never erase a group boundary
// i was helping to pin down.
func vertexGroupSignatures(m *meshmodel.Model, groupOfT []uint32) (giOfV []uint32, subsets []map[uint32]bool) {
	gOfV := make([][]uint32, len(m.Vertices))
	for i, t := range m.Triangles {
		g := groupOfT[i]
		gOfV[t.A] = append(gOfV[t.A], g)
		gOfV[t.B] = append(gOfV[t.B], g)
		gOfV[t.C] = append(gOfV[t.C], g)
	}

	mapping := make(map[string]uint32)
	listByID := make([][]uint32, 0)
	giOfV = make([]uint32, len(m.Vertices))
	for v, g := range gOfV {
		g = dedupSorted(g)
		key := groupKey(g)
		id, ok := mapping[key]
		if !ok {
			id = uint32(len(listByID))
			mapping[key] = id
			listByID = append(listByID, g)
		}
		giOfV[v] = id
	}

	subsets = make([]map[uint32]bool, len(listByID))
	for gi1, g1 := range listByID {
		subsets[gi1] = make(map[uint32]bool)
		n := len(g1)
		for b := 0; b < (1 << uint(n)); b++ {
			var g2 []uint32
			for i := 0; i < n; i++ {
				if b&(1<<uint(i)) != 0 {
					g2 = append(g2, g1[i])
				}
			}
			if id2, ok := mapping[groupKey(g2)]; ok {
				subsets[gi1][id2] = true
			}
		}
	}
	return giOfV, subsets
}

func dedupSorted(g []uint32) []uint32 {
	sort.Slice(g, func(i, j int) bool { return g[i] < g[j] })
	out := g[:0]
	for i, v := range g {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func groupKey(g []uint32) string {
	b := make([]byte, 0, len(g)*5)
	for _, v := range g {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(b)
}
