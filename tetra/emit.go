// Package tetra implements spec.md §4.3: decomposing each grid cube into
// six tetrahedra sharing the cube's main diagonal, classifying each
// tetrahedron corner in/out of a label, and emitting the resulting
// boundary triangles via bisection on the crossing edges.
//
// Grounded on original_source/src/solid.rs (SolidLayer, ModelCreator,
// Self::fill_tetrahedron and its six call sites in use_layers).
package tetra

import (
	"github.com/T4r4sB/puzzlemesh/bisect"
	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/meshmodel"
	"github.com/T4r4sB/puzzlemesh/vec3"
)

const noVertex uint32 = 0xFFFFFFFF

// Cell is one sampled grid corner: its position, its label, and the
// cache slots for the edges this corner owns per spec.md §4.2's
// edge-vertex slot convention — three slots for the positive-axis edges
// to its +X/+Y/+Z neighbour, three for the face-diagonal edges to its
// +XY/+XZ/+YZ neighbour. The cube's body diagonal (the edge shared by
// all six tetrahedra of one cube) is not a corner slot: it never crosses
// a cube boundary, so it is cached locally per cube instead (see
// emitCube's mainDiag).
type Cell struct {
	Pos   vec3.Vec
	Label label.Label

	EdgeX, EdgeY, EdgeZ, EdgeXY, EdgeXZ, EdgeYZ uint32
}

// NewCell returns a Cell at pos with all edge-cache slots unset.
func NewCell(pos vec3.Vec, l label.Label) Cell {
	return Cell{
		Pos: pos, Label: l,
		EdgeX: noVertex, EdgeY: noVertex, EdgeZ: noVertex,
		EdgeXY: noVertex, EdgeXZ: noVertex, EdgeYZ: noVertex,
	}
}

// tetCorner bundles what emitTet needs for one of a tetrahedron's four
// corners: its sampled point and label. The edge-cache slots are passed
// to emitTet separately.
type tetCorner struct {
	Pos   vec3.Vec
	Label label.Label
}

// EmitCube meshes the single cube whose eight corners are given (prevZ
// layer: c, cx, cy, cxy; nextZ layer: nc, ncx, ncy, ncxy, in the standard
// corner order (x,y) < (x+1,y) < (x,y+1) < (x+1,y+1)), appending
// triangles to the Model for every non-background label encountered
// among the eight corners, using iters bisection halvings on each
// crossing edge.
//
// Grounded on original_source/src/solid.rs::ModelCreator::use_layers's
// per-cube body (the six Self::fill_tetrahedron calls).
func EmitCube(models *meshmodel.Set, f label.Func3, iters int, c, cx, cy, cxy, nc, ncx, ncy, ncxy *Cell) {
	used := usedLabels(c, cx, cy, cxy, nc, ncx, ncy, ncxy)
	if len(used) == 0 {
		return
	}

	// mainDiag caches the cube's body diagonal (corner c to corner ncxy),
	// the one edge shared by all six tetrahedra of this cube. It never
	// crosses into a neighbouring cube, so a local variable — reset each
	// time EmitCube is called for a new cube — is enough; it still must
	// persist across the label loop below, matching the Rust original's
	// reuse of a single cell field across every model_index it visits.
	mainDiag := noVertex

	for _, l := range used {
		m := models.GetOrCreate(l)

		// tet1: c, cx, cxy, ncxy
		emitTet(m, f, iters, l,
			tetCorner{c.Pos, c.Label}, tetCorner{cx.Pos, cx.Label}, tetCorner{cxy.Pos, cxy.Label}, tetCorner{ncxy.Pos, ncxy.Label},
			&c.EdgeX, &c.EdgeXY, &mainDiag, &cx.EdgeY, &cx.EdgeYZ, &cxy.EdgeZ)

		// tet2: c, cy, ncy, ncxy
		emitTet(m, f, iters, l,
			tetCorner{c.Pos, c.Label}, tetCorner{cy.Pos, cy.Label}, tetCorner{ncy.Pos, ncy.Label}, tetCorner{ncxy.Pos, ncxy.Label},
			&c.EdgeY, &c.EdgeYZ, &mainDiag, &cy.EdgeZ, &cy.EdgeXZ, &ncy.EdgeX)

		// tet3: c, nc, ncx, ncxy
		emitTet(m, f, iters, l,
			tetCorner{c.Pos, c.Label}, tetCorner{nc.Pos, nc.Label}, tetCorner{ncx.Pos, ncx.Label}, tetCorner{ncxy.Pos, ncxy.Label},
			&c.EdgeZ, &c.EdgeXZ, &mainDiag, &nc.EdgeX, &nc.EdgeXY, &ncx.EdgeY)

		// tet4: c, cxy, cy, ncxy
		emitTet(m, f, iters, l,
			tetCorner{c.Pos, c.Label}, tetCorner{cxy.Pos, cxy.Label}, tetCorner{cy.Pos, cy.Label}, tetCorner{ncxy.Pos, ncxy.Label},
			&c.EdgeXY, &c.EdgeY, &mainDiag, &cy.EdgeX, &cxy.EdgeZ, &cy.EdgeXZ)

		// tet5: c, ncy, nc, ncxy
		emitTet(m, f, iters, l,
			tetCorner{c.Pos, c.Label}, tetCorner{ncy.Pos, ncy.Label}, tetCorner{nc.Pos, nc.Label}, tetCorner{ncxy.Pos, ncxy.Label},
			&c.EdgeYZ, &c.EdgeZ, &mainDiag, &nc.EdgeY, &ncy.EdgeX, &nc.EdgeXY)

		// tet6: c, ncx, cx, ncxy
		emitTet(m, f, iters, l,
			tetCorner{c.Pos, c.Label}, tetCorner{ncx.Pos, ncx.Label}, tetCorner{cx.Pos, cx.Label}, tetCorner{ncxy.Pos, ncxy.Label},
			&c.EdgeXZ, &c.EdgeX, &mainDiag, &cx.EdgeZ, &ncx.EdgeY, &cx.EdgeYZ)
	}
}

// usedLabels returns the distinct non-background labels among the eight
// corners, in first-seen order — mirrors original_source/src/solid.rs's
// use_number closure, which skips index 0.
func usedLabels(corners ...*Cell) []label.Label {
	var out []label.Label
	seen := make(map[label.Label]bool, 8)
	for _, c := range corners {
		if c.Label == label.Background || seen[c.Label] {
			continue
		}
		seen[c.Label] = true
		out = append(out, c.Label)
	}
	return out
}

// edgeVertex resolves the cached vertex for the tetrahedron edge
// (cornerIn, cornerOut), creating it via bisection and storing it in
// mesh on first use. slot is the cache cell shared with whichever other
// tetrahedron/label call reaches this same physical edge.
func edgeVertex(mesh *meshmodel.Model, f label.Func3, iters int, target label.Label, slot *uint32, pIn, pOut vec3.Vec) uint32 {
	if *slot == noVertex {
		p := bisect.Root3(f, pIn, pOut, target, iters)
		*slot = mesh.AddVertex(p)
	}
	return *slot
}

// emitTet classifies one tetrahedron's four corners in/out of target and
// emits the resulting triangle(s) via the static dispatch table in
// table.go. slot01..slot23 are the cache cells for edges (0-1),(0-2),
// (0-3),(1-2),(1-3),(2-3) respectively; slot03 is always the shared
// mainDiag pointer (the cube's body diagonal).
func emitTet(mesh *meshmodel.Model, f label.Func3, iters int, target label.Label,
	c0, c1, c2, c3 tetCorner,
	slot01, slot02, slot03, slot12, slot13, slot23 *uint32) {

	mask := 0
	pos := [4]vec3.Vec{c0.Pos, c1.Pos, c2.Pos, c3.Pos}
	in := [4]bool{c0.Label == target, c1.Label == target, c2.Label == target, c3.Label == target}
	for i, isIn := range in {
		if isIn {
			mask |= 1 << uint(i)
		}
	}

	entry := caseTable[mask]
	if entry.Shape == shapeNone {
		return
	}

	slots := [4][4]*uint32{
		{nil, slot01, slot02, slot03},
		{slot01, nil, slot12, slot13},
		{slot02, slot12, nil, slot23},
		{slot03, slot13, slot23, nil},
	}
	resolve := func(e edgeRef) uint32 {
		slot := slots[e.In][e.Out]
		return edgeVertex(mesh, f, iters, target, slot, pos[e.In], pos[e.Out])
	}

	switch entry.Shape {
	case shapeTri:
		mesh.AddTriangle(resolve(entry.Tri[0]), resolve(entry.Tri[1]), resolve(entry.Tri[2]))

	case shapeQuad:
		var verts [4]uint32
		var sum vec3.Vec
		for i, e := range entry.Verts {
			verts[i] = resolve(e)
			sum = vec3.Add(sum, mesh.Vertices[verts[i]])
		}
		centroid := vec3.Scale(0.25, sum)
		tris := quadTriA
		if f.At(centroid) != target {
			tris = quadTriB
		}
		for _, t := range tris {
			mesh.AddTriangle(verts[t[0]], verts[t[1]], verts[t[2]])
		}
	}
}
