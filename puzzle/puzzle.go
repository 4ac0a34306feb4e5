// Package puzzle collects small worked-example partition functions used
// to exercise render3/render2 end to end: a single solid, two separate
// solids, two solids sharing a boundary face, and their 2D analogues.
//
// Grounded on the shape of original_source/src/cube_creator.rs and
// original_source/src/sphere_creator.rs (distance-to-axis-aligned-box
// and distance-to-medial-axis style region tests), simplified down to
// the primitive shapes those files' region tests are built from —
// spec.md's worked examples call for simple demonstrable solids, not a
// port of the specific mechanical-puzzle geometry those files encode.
package puzzle

import (
	"math"

	"github.com/T4r4sB/puzzlemesh/label"
)

// Cube returns a Func3 labeling the axis-aligned cube [-half,half]^3 as
// label 1 and everything else as background.
func Cube(half float32) label.Func3 {
	return func(x, y, z float32) label.Label {
		if abs32(x) <= half && abs32(y) <= half && abs32(z) <= half {
			return 1
		}
		return label.Background
	}
}

// Sphere returns a Func3 labeling the ball of the given radius,
// centered on the origin, as label 1.
func Sphere(radius float32) label.Func3 {
	r2 := float64(radius) * float64(radius)
	return func(x, y, z float32) label.Label {
		d := float64(x)*float64(x) + float64(y)*float64(y) + float64(z)*float64(z)
		if d <= r2 {
			return 1
		}
		return label.Background
	}
}

// TwoBalls returns a Func3 labeling two spheres of the given radius,
// centered at (-sep/2,0,0) and (sep/2,0,0), as labels 1 and 2. When
// sep < 2*radius the balls overlap and touch/merge along a lens; when
// sep > 2*radius they are fully disjoint — the caller picks which
// scenario to exercise via sep.
func TwoBalls(radius, sep float32) label.Func3 {
	r2 := float64(radius) * float64(radius)
	cx := float64(sep) / 2
	return func(x, y, z float32) label.Label {
		fx, fy, fz := float64(x), float64(y), float64(z)
		d1 := sqr(fx+cx) + sqr(fy) + sqr(fz)
		d2 := sqr(fx-cx) + sqr(fy) + sqr(fz)
		switch {
		case d1 <= r2 && d2 <= r2:
			if d1 <= d2 {
				return 1
			}
			return 2
		case d1 <= r2:
			return 1
		case d2 <= r2:
			return 2
		default:
			return label.Background
		}
	}
}

// Annulus2 returns a Func2 labeling a ring between innerRadius and
// outerRadius as label 1.
func Annulus2(innerRadius, outerRadius float32) label.Func2 {
	in2, out2 := float64(innerRadius)*float64(innerRadius), float64(outerRadius)*float64(outerRadius)
	return func(x, y float32) label.Label {
		d := float64(x)*float64(x) + float64(y)*float64(y)
		if d >= in2 && d <= out2 {
			return 1
		}
		return label.Background
	}
}

// FigureEight2 returns a Func2 labeling the union of two overlapping
// discs of the given radius, centered at (-sep/2,0) and (sep/2,0), as
// label 1 — a single contour pinched at the waist when sep is close to
// 2*radius.
func FigureEight2(radius, sep float32) label.Func2 {
	r2 := float64(radius) * float64(radius)
	cx := float64(sep) / 2
	return func(x, y float32) label.Label {
		fx, fy := float64(x), float64(y)
		d1 := sqr(fx+cx) + sqr(fy)
		d2 := sqr(fx-cx) + sqr(fy)
		if d1 <= r2 || d2 <= r2 {
			return 1
		}
		return label.Background
	}
}

func sqr(x float64) float64 { return x * x }

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
