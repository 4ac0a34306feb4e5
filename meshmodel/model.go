// Package meshmodel holds the per-label triangle mesh produced by the
// tetrahedral emitter (package tetra) and the half-edge / connected-
// component cleanup pass described in spec.md §4.4.
//
// Grounded on original_source/common/src/model.rs (Model, MeshTopology,
// get_topology, validate_and_delete_small_groups, delete_unused_v).
package meshmodel

import (
	"fmt"

	"github.com/T4r4sB/puzzlemesh/vec3"
)

// noVertex marks an unset vertex-cache slot or an unset topology side,
// mirroring the Rust original's BAD_INDEX sentinel.
const noVertex uint32 = 0xFFFFFFFF

// Triangle is a triple of vertex indices into a Model's Vertices slice,
// wound so that Cross(v1-v0, v2-v0) points out of the solid (spec.md §3).
type Triangle struct {
	A, B, C uint32
}

// Model is one label's raw or cleaned-up mesh: an append-only vertex
// list shared by all of that label's triangles, plus a free list used to
// recycle indices during simplification (spec.md §3 "Label-mesh").
type Model struct {
	Vertices     []vec3.Vec
	Triangles    []Triangle
	FreeVertices []uint32
}

// New returns an empty Model.
func New() *Model {
	return &Model{}
}

// AddVertex appends p to the vertex list, reusing a freed slot if one is
// available, and returns its index.
func (m *Model) AddVertex(p vec3.Vec) uint32 {
	if n := len(m.FreeVertices); n > 0 {
		i := m.FreeVertices[n-1]
		m.FreeVertices = m.FreeVertices[:n-1]
		m.Vertices[i] = p
		return i
	}
	m.Vertices = append(m.Vertices, p)
	return uint32(len(m.Vertices) - 1)
}

// AddTriangle appends a triangle referencing existing vertex indices.
func (m *Model) AddTriangle(a, b, c uint32) {
	m.Triangles = append(m.Triangles, Triangle{a, b, c})
}

// Normal returns the outward-facing normal of t, per spec.md §6:
// "normalized cross product of (v1-v0, v2-v0)".
func (m *Model) Normal(t Triangle) vec3.Vec {
	v0, v1, v2 := m.Vertices[t.A], m.Vertices[t.B], m.Vertices[t.C]
	return vec3.Unit(vec3.Cross(vec3.Sub(v1, v0), vec3.Sub(v2, v0)))
}

// Perp returns the un-normalized cross product used by Normal; its
// magnitude is twice the triangle's area.
func (m *Model) Perp(t Triangle) vec3.Vec {
	v0, v1, v2 := m.Vertices[t.A], m.Vertices[t.B], m.Vertices[t.C]
	return vec3.Cross(vec3.Sub(v1, v0), vec3.Sub(v2, v0))
}

// Center returns the centroid of all vertices (used only for diagnostics
// and for the optional re-centering helpers the original Rust exposed).
func (m *Model) Center() vec3.Vec {
	var sum vec3.Vec
	for _, v := range m.Vertices {
		sum = vec3.Add(sum, v)
	}
	if len(m.Vertices) == 0 {
		return sum
	}
	return vec3.Scale(1/float64(len(m.Vertices)), sum)
}

// edgeFaces records, for an edge (u,v) with u<v, the face using it as
// (u->v) on the Left and the face using it as (v->u) on the Right. A
// closed mesh has both sides filled for every edge (spec.md §3).
type edgeFaces struct {
	Left, Right uint32
}

// Topology is the half-edge-equivalent structure spec.md §9 calls for:
// flat tables keyed by sorted vertex pair and face id, never embedded
// neighbour pointers.
type Topology struct {
	edgeToFace map[[2]uint32]*edgeFaces
	// FaceAdj[f][i] is the face sharing the edge opposite vertex i of
	// face f.
	FaceAdj [][3]uint32
}

// BuildTopology constructs the edge->face map and face adjacency table
// for m, and returns a *MalformedTopologyError wrapped as an error if any
// edge is missing a side or reused on a side already filled — fatal for
// this mesh per spec.md §4.4/§7.
func (m *Model) BuildTopology() (*Topology, error) {
	top := &Topology{
		edgeToFace: make(map[[2]uint32]*edgeFaces, len(m.Triangles)*3/2),
	}

	setSide := func(ti uint32, u, v uint32) error {
		key, onLeft := edgeKey(u, v)
		ef, ok := top.edgeToFace[key]
		if !ok {
			ef = &edgeFaces{Left: noVertex, Right: noVertex}
			top.edgeToFace[key] = ef
		}
		if onLeft {
			if ef.Left != noVertex {
				return &MalformedTopologyError{U: u, V: v, Face: ti, Reason: "edge used twice on the same side"}
			}
			ef.Left = ti
		} else {
			if ef.Right != noVertex {
				return &MalformedTopologyError{U: u, V: v, Face: ti, Reason: "edge used twice on the same side"}
			}
			ef.Right = ti
		}
		return nil
	}

	for i, t := range m.Triangles {
		ti := uint32(i)
		if err := setSide(ti, t.A, t.B); err != nil {
			return nil, err
		}
		if err := setSide(ti, t.B, t.C); err != nil {
			return nil, err
		}
		if err := setSide(ti, t.C, t.A); err != nil {
			return nil, err
		}
	}

	for key, ef := range top.edgeToFace {
		if ef.Left == noVertex || ef.Right == noVertex {
			return nil, &MalformedTopologyError{U: key[0], V: key[1], Face: pickSide(*ef), Reason: "edge missing a side"}
		}
	}

	top.FaceAdj = make([][3]uint32, len(m.Triangles))
	for i := range top.FaceAdj {
		top.FaceAdj[i] = [3]uint32{noVertex, noVertex, noVertex}
	}
	useEdge := func(u, v uint32) uint32 {
		key, onLeft := edgeKey(u, v)
		ef := top.edgeToFace[key]
		if onLeft {
			return ef.Right
		}
		return ef.Left
	}
	for i, t := range m.Triangles {
		top.FaceAdj[i][0] = useEdge(t.B, t.C)
		top.FaceAdj[i][1] = useEdge(t.C, t.A)
		top.FaceAdj[i][2] = useEdge(t.A, t.B)
	}

	return top, nil
}

func edgeKey(u, v uint32) (key [2]uint32, onLeft bool) {
	if u < v {
		return [2]uint32{u, v}, true
	}
	return [2]uint32{v, u}, false
}

func pickSide(ef edgeFaces) uint32 {
	if ef.Left != noVertex {
		return ef.Left
	}
	return ef.Right
}

// MalformedTopologyError reports the edge and face that made a label's
// mesh fail closure, per spec.md §4.4/§7: fatal for that mesh only.
type MalformedTopologyError struct {
	U, V, Face uint32
	Reason     string
}

func (e *MalformedTopologyError) Error() string {
	return fmt.Sprintf("malformed topology: edge (%d,%d) near face %d: %s", e.U, e.V, e.Face, e.Reason)
}
