package tetra

// edgeRef names one of a tetrahedron's six edges by its two endpoint
// corners (0-3), oriented In->Out: In is the corner presently inside the
// label being meshed, Out the corner presently outside it. Bisection
// always runs In->Out so that, across the two labels meeting at a face,
// the same undirected edge is looked up with the same cache key
// regardless of which label's call happens to reach it first (spec.md
// §4.3 "both meshes see the same vertex indices").
type edgeRef struct{ In, Out uint8 }

// caseShape is what a corner-inside bitmask resolves to.
type caseShape uint8

const (
	shapeNone caseShape = iota
	shapeTri
	shapeQuad
)

// caseEntry is one row of the static 16-entry dispatch table described in
// spec.md §9 ("a static table of vertex-triples indexed by the 4-bit
// in/out pattern, not a branch tree"). Tri holds the single triangle for
// the 1-in/3-out and 3-in/1-out cases. Verts holds, for the 2-in/2-out
// cases, the four boundary edges in the cyclic order the quad-splitting
// routine expects; quadTriA/quadTriB (package-level, shape-independent)
// index into Verts to form the two candidate triangulations.
type caseEntry struct {
	Shape caseShape
	Tri   [3]edgeRef
	Verts [4]edgeRef
}

// quadTriA and quadTriB give the two ways to split a boundary quad with
// vertices Verts[0..3] (in the cyclic order produced by caseTable) into
// triangles. Which one is used is decided per quad by probing the label
// at the quad's centroid (see the shapeQuad case of emitTet in emit.go).
// Grounded on
// original_source/src/solid.rs's `q` closure.
var quadTriA = [2][3]int{{0, 1, 2}, {0, 2, 3}}
var quadTriB = [2][3]int{{0, 1, 3}, {3, 1, 2}}

// caseTable is indexed by a 4-bit mask where bit i is set when tetrahedron
// corner i is inside the label currently being meshed. Ported case by
// case from original_source/src/solid.rs::fill_tetrahedron's nested
// if/else tree (the `it`/`ot`/`q` closures), preserving their exact edge
// choices and winding.
var caseTable = [16]caseEntry{
	0b0000: {Shape: shapeNone},
	0b1111: {Shape: shapeNone},

	// One corner inside: a single triangle fanned away from it.
	0b0001: {Shape: shapeTri, Tri: [3]edgeRef{{0, 1}, {0, 2}, {0, 3}}},
	0b0010: {Shape: shapeTri, Tri: [3]edgeRef{{1, 0}, {1, 3}, {1, 2}}},
	0b0100: {Shape: shapeTri, Tri: [3]edgeRef{{2, 0}, {2, 1}, {2, 3}}},
	0b1000: {Shape: shapeTri, Tri: [3]edgeRef{{3, 0}, {3, 2}, {3, 1}}},

	// Three corners inside: a single triangle fanned toward the lone
	// outside corner, wound oppositely to the 1-in case above.
	0b1110: {Shape: shapeTri, Tri: [3]edgeRef{{1, 0}, {3, 0}, {2, 0}}},
	0b1101: {Shape: shapeTri, Tri: [3]edgeRef{{0, 1}, {2, 1}, {3, 1}}},
	0b1011: {Shape: shapeTri, Tri: [3]edgeRef{{0, 2}, {3, 2}, {1, 2}}},
	0b0111: {Shape: shapeTri, Tri: [3]edgeRef{{0, 3}, {1, 3}, {2, 3}}},

	// Two corners inside: a boundary quad, split by the diagonal the
	// centroid probe picks.
	0b0011: {Shape: shapeQuad, Verts: [4]edgeRef{{0, 3}, {1, 3}, {1, 2}, {0, 2}}},
	0b0101: {Shape: shapeQuad, Verts: [4]edgeRef{{0, 1}, {2, 1}, {2, 3}, {0, 3}}},
	0b1001: {Shape: shapeQuad, Verts: [4]edgeRef{{0, 2}, {3, 2}, {3, 1}, {0, 1}}},
	0b0110: {Shape: shapeQuad, Verts: [4]edgeRef{{1, 3}, {2, 3}, {2, 0}, {1, 0}}},
	0b1010: {Shape: shapeQuad, Verts: [4]edgeRef{{1, 0}, {3, 0}, {3, 2}, {1, 2}}},
	0b1100: {Shape: shapeQuad, Verts: [4]edgeRef{{2, 1}, {3, 1}, {3, 0}, {2, 0}}},
}
