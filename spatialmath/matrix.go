package spatialmath

// Matrix3 is a 3x3 matrix stored in row-major order, so element (r, c) lives at index 3*r + c.
type Matrix3[S Scalar] [9]S

// Identity3 returns the 3x3 identity matrix.
func Identity3[S Scalar]() Matrix3[S] {
	return Matrix3[S]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewSymmetric3 builds a symmetric matrix from its six independent entries laid out as
// [[xx, xy, xz], [xy, yy, yz], [xz, yz, zz]].
func NewSymmetric3[S Scalar](xx, xy, xz, yy, yz, zz S) Matrix3[S] {
	return Matrix3[S]{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	}
}

// At returns the element at row r and column c.
func (m Matrix3[S]) At(r, c int) S {
	return m[3*r+c]
}

// Mul returns the matrix product m * o.
func (m Matrix3[S]) Mul(o Matrix3[S]) Matrix3[S] {
	return kernelFor[S]().mul(m, o)
}

// MulVec returns m * v.
func (m Matrix3[S]) MulVec(v Vector3[S]) Vector3[S] {
	return kernelFor[S]().mulVec(m, v)
}

// Add returns m + o.
func (m Matrix3[S]) Add(o Matrix3[S]) Matrix3[S] {
	return kernelFor[S]().add(m, o)
}

// Scale returns m with every element multiplied by s.
func (m Matrix3[S]) Scale(s S) Matrix3[S] {
	return kernelFor[S]().scale(m, s)
}

// Transpose returns mᵗ.
func (m Matrix3[S]) Transpose() Matrix3[S] {
	return kernelFor[S]().transpose(m)
}

// Trace returns the sum of the diagonal.
func (m Matrix3[S]) Trace() S {
	return m[0] + m[4] + m[8]
}

// Determinant returns det(m).
func (m Matrix3[S]) Determinant() S {
	return kernelFor[S]().det(m)
}

// AlmostEqual reports whether every element of m is within tol of o.
func (m Matrix3[S]) AlmostEqual(o Matrix3[S], tol float64) bool {
	for i := range m {
		if !almostEqual(m[i], o[i], tol) {
			return false
		}
	}
	return true
}

// IsSymmetric reports whether m equals its transpose within tol.
func (m Matrix3[S]) IsSymmetric(tol float64) bool {
	return m.AlmostEqual(m.Transpose(), tol)
}
