// Package stlwrite serializes a meshmodel.Model to binary STL.
//
// Grounded on spec.md §6's STL output requirement; the binary STL
// layout itself (80-byte header, uint32 triangle count, then 50 bytes
// per triangle: float32 normal, three float32 vertices, uint16
// attribute byte count) is a fixed, tiny wire format with no parsing or
// validation logic of its own, so no pack library is reached for here
// (see DESIGN.md).
package stlwrite

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/T4r4sB/puzzlemesh/meshmodel"
	"github.com/T4r4sB/puzzlemesh/vec3"
)

// Write emits m as a binary STL to w. Triangle normals are computed as
// the normalized cross product of the triangle's first two edges.
func Write(w io.Writer, m *meshmodel.Model) error {
	var header [80]byte
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return err
	}

	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t.A], m.Vertices[t.B], m.Vertices[t.C]
		n := vec3.Unit(vec3.Cross(vec3.Sub(b, a), vec3.Sub(c, a)))

		if err := writeVec3f(w, n); err != nil {
			return err
		}
		for _, v := range [3]vec3.Vec{a, b, c} {
			if err := writeVec3f(w, v); err != nil {
				return err
			}
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return nil
}

func writeVec3f(w io.Writer, v vec3.Vec) error {
	buf := [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	for _, f := range buf {
		if math.IsNaN(float64(f)) {
			f = 0
		}
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	return nil
}
