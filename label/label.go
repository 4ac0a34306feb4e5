// Package label defines the Label type and the narrow partition-function
// interfaces the rest of the engine is parameterized over.
//
// Grounded on spec.md §9 ("Polymorphism over label-functions: the engine
// is parameterized by a single operation (evaluate at point -> label).
// Express as a narrow interface; the rest is monomorphic") and on
// original_source/src/solid.rs's `part_f: &dyn Fn(Point) -> PartIndex`.
package label

import "github.com/T4r4sB/puzzlemesh/vec3"

// Label is a non-negative part identifier. Background (empty space) is
// the distinguished value Background.
type Label = uint32

// Background is the distinguished empty-space label.
const Background Label = 0

// Func3 is a total, deterministic, side-effect-free partition function
// over 3-space: Point -> Label. Coordinates are float32 per the data
// model's finite-32-bit-float contract (SPEC_FULL.md §3); callers that
// hold higher precision state may still evaluate it in float64 and
// narrow only at the call boundary.
type Func3 func(x, y, z float32) Label

// At evaluates f at a vec3.Vec, narrowing to float32 at the call boundary.
func (f Func3) At(p vec3.Vec) Label {
	return f(float32(p.X), float32(p.Y), float32(p.Z))
}

// Func2 is the 2D analogue of Func3.
type Func2 func(x, y float32) Label

// At evaluates f at a vec2.Vec-shaped pair, narrowing to float32.
func (f Func2) At(x, y float64) Label {
	return f(float32(x), float32(y))
}
