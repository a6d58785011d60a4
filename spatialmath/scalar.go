// Package spatialmath defines precision-generic rigid transform primitives backed by mathgl's
// single (mgl32) and double (mgl64) precision kernels.
package spatialmath

import "math"

// Scalar is the set of floating point types every transform is instantiated for. Arithmetic on a
// Scalar runs in the mathgl package of the same precision; nothing is widened implicitly.
type Scalar interface {
	float32 | float64
}

// almostEqual reports whether a and b differ by no more than tol.
func almostEqual[S Scalar](a, b S, tol float64) bool {
	return math.Abs(float64(a)-float64(b)) <= tol
}
