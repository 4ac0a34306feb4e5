// Package bisect implements §4.1's bisection root finder: given a
// segment whose endpoints disagree on a target label, locate the
// boundary crossing by a fixed number of halvings.
//
// Grounded on original_source/src/points3d.rs::find_root and
// original_source/common/src/points2d.rs::find_root.
package bisect

import (
	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/vec2"
	"github.com/T4r4sB/puzzlemesh/vec3"
)

// Root3 returns the point on segment p1-p2 that the partition function f
// switches label at, after exactly iters halvings.
//
// Precondition (caller-guaranteed, per spec.md §4.1 and §4.8): f(p1) ==
// target and f(p2) != target. The precondition is not checked; violating
// it is a programming defect and yields an unspecified point instead of
// an error, matching the Rust original's unchecked find_root.
func Root3(f label.Func3, p1, p2 vec3.Vec, target label.Label, iters int) vec3.Vec {
	for i := 0; i < iters; i++ {
		mid := vec3.Mid(p1, p2)
		if f.At(mid) == target {
			p1 = mid
		} else {
			p2 = mid
		}
	}
	return vec3.Mid(p1, p2)
}

// Root2 is the 2D analogue of Root3.
func Root2(f label.Func2, p1, p2 vec2.Vec, target label.Label, iters int) vec2.Vec {
	for i := 0; i < iters; i++ {
		mid := vec2.Mid(p1, p2)
		if f(float32(mid.X), float32(mid.Y)) == target {
			p1 = mid
		} else {
			p2 = mid
		}
	}
	return vec2.Mid(p1, p2)
}
