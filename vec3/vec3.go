// Package vec3 supplies the 3D vector primitives the mesher builds on:
// the gonum r3.Vec type plus the domain-specific extras (AnyPerp, an
// axis-aligned box, float32 conversion at the Point boundary) that
// gonum's spatial package does not carry.
package vec3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point or direction in 3-space. It is gonum's r3.Vec so that
// Add, Sub, Scale, Dot, Cross and Norm all come from gonum directly.
type Vec = r3.Vec

// Add returns lhs+rhs.
func Add(lhs, rhs Vec) Vec { return r3.Add(lhs, rhs) }

// Sub returns lhs-rhs.
func Sub(lhs, rhs Vec) Vec { return r3.Sub(lhs, rhs) }

// Scale returns v scaled by f.
func Scale(f float64, v Vec) Vec { return r3.Scale(f, v) }

// Dot returns the dot product of lhs and rhs.
func Dot(lhs, rhs Vec) float64 { return r3.Dot(lhs, rhs) }

// Cross returns the cross product of lhs and rhs.
func Cross(lhs, rhs Vec) Vec { return r3.Cross(lhs, rhs) }

// Norm returns the Euclidean length of v.
func Norm(v Vec) float64 { return r3.Norm(v) }

// Mid returns the midpoint of lhs and rhs.
func Mid(lhs, rhs Vec) Vec { return Scale(0.5, Add(lhs, rhs)) }

// Unit returns v scaled to unit length. The zero vector maps to itself.
func Unit(v Vec) Vec {
	n := Norm(v)
	if n == 0 {
		return v
	}
	return Scale(1/n, v)
}

// AnyPerp returns an arbitrary nonzero vector perpendicular to v.
// Grounded on original_source/src/points3d.rs Point::any_perp: pick the
// world axis v is least aligned with and cross against it.
func AnyPerp(v Vec) Vec {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	if ax < ay && ax < az {
		return Vec{X: 0, Y: v.Z, Z: -v.Y}
	}
	if ay < az {
		return Vec{X: -v.Z, Y: 0, Z: v.X}
	}
	return Vec{X: v.Y, Y: -v.X, Z: 0}
}

// Box is an axis-aligned bounding box in 3-space.
type Box struct {
	Min, Max Vec
}

// NewBoxCentered returns the box [-half,half] per axis around center.
func NewBoxCentered(center Vec, half float64) Box {
	h := Vec{X: half, Y: half, Z: half}
	return Box{Min: Sub(center, h), Max: Add(center, h)}
}

// Size returns Max-Min.
func (b Box) Size() Vec { return Sub(b.Max, b.Min) }

// ToFloat32 narrows a Vec to three float32 components, done only at
// serialization boundaries (STL output) per SPEC_FULL.md §3.
func ToFloat32(v Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
