// Package vec2 supplies the 2D vector primitives the contour engine and
// polygon decomposer build on, grounded on gonum's r2.Vec plus the
// domain-specific extras (Perp, point-to-segment distance, AABB) that
// original_source/common/src/points2d.rs carries for its Point type.
package vec2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a point or direction in the plane.
type Vec = r2.Vec

// Add returns lhs+rhs.
func Add(lhs, rhs Vec) Vec { return r2.Add(lhs, rhs) }

// Sub returns lhs-rhs.
func Sub(lhs, rhs Vec) Vec { return r2.Sub(lhs, rhs) }

// Scale returns v scaled by f.
func Scale(f float64, v Vec) Vec { return r2.Scale(f, v) }

// Dot returns the dot product of lhs and rhs.
func Dot(lhs, rhs Vec) float64 { return r2.Dot(lhs, rhs) }

// Cross returns the scalar (Z component of the 3D) cross product.
func Cross(lhs, rhs Vec) float64 { return lhs.X*rhs.Y - lhs.Y*rhs.X }

// Norm returns the Euclidean length of v.
func Norm(v Vec) float64 { return r2.Norm(v) }

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

// Perp rotates v by -90 degrees: (x,y) -> (y,-x).
// Grounded on common/src/points2d.rs Point::perp.
func Perp(v Vec) Vec { return Vec{X: v.Y, Y: -v.X} }

// DistToSegment returns the distance from p to the segment p1-p2.
// Grounded on common/src/points2d.rs dist_pl.
func DistToSegment(p, p1, p2 Vec) float64 {
	d := Sub(p2, p1)
	l := Norm(d)
	v1 := Sub(p1, p)
	v2 := Sub(p2, p)
	if l == 0 {
		return Norm(v2)
	}
	u := Scale(1/l, d)
	t := Dot(v2, u)
	switch {
	case t <= 0:
		return Norm(v2)
	case t >= l:
		return Norm(v1)
	default:
		return math.Abs(Cross(v1, u))
	}
}

// Box is an axis-aligned bounding box in the plane.
type Box struct {
	Min, Max Vec
}

// EmptyBox returns a box that contains no points, ready to be grown.
func EmptyBox() Box {
	return Box{
		Min: Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Extend grows b to include p.
func (b Box) Extend(p Vec) Box {
	return Box{
		Min: Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Contains reports whether p lies within b (half-open on the max side).
func (b Box) Contains(p Vec) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// NewBoxCentered returns the box [-half,half] per axis around center.
func NewBoxCentered(center Vec, half float64) Box {
	h := Vec{X: half, Y: half}
	return Box{Min: Sub(center, h), Max: Add(center, h)}
}
