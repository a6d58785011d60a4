package spatialmath

// Vector3 is a 3-vector of the given precision.
type Vector3[S Scalar] struct {
	X S `json:"x"`
	Y S `json:"y"`
	Z S `json:"z"`
}

// Add returns v + o.
func (v Vector3[S]) Add(o Vector3[S]) Vector3[S] {
	return Vector3[S]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3[S]) Sub(o Vector3[S]) Vector3[S] {
	return Vector3[S]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns v scaled by s.
func (v Vector3[S]) Mul(s S) Vector3[S] {
	return Vector3[S]{v.X * s, v.Y * s, v.Z * s}
}

// Skew returns the matrix [v]× such that [v]× * o == v × o.
func (v Vector3[S]) Skew() Matrix3[S] {
	return Matrix3[S]{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	}
}

// AlmostEqual reports whether every component of v is within tol of o.
func (v Vector3[S]) AlmostEqual(o Vector3[S], tol float64) bool {
	return almostEqual(v.X, o.X, tol) && almostEqual(v.Y, o.Y, tol) && almostEqual(v.Z, o.Z, tol)
}
