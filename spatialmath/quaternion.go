package spatialmath

// Quaternion is a quaternion with the real part first. Rotations are only well defined for unit
// quaternions; nothing in this package normalizes implicitly.
type Quaternion[S Scalar] struct {
	W S `json:"w"`
	X S `json:"x"`
	Y S `json:"y"`
	Z S `json:"z"`
}

// IdentityQuaternion returns the quaternion which signifies no rotation.
func IdentityQuaternion[S Scalar]() Quaternion[S] {
	return Quaternion[S]{W: 1}
}

// RotationMatrix returns the rotation matrix represented by q. A non-unit q yields a matrix that is
// not orthonormal.
func (q Quaternion[S]) RotationMatrix() Matrix3[S] {
	return kernelFor[S]().quatToMat(q)
}

// QuaternionFromMatrix returns the unit quaternion of the rotation matrix m. It takes the square
// root of the trace when that is positive and otherwise pivots on the largest diagonal element,
// which keeps the divisor bounded away from zero for every orthonormal input.
func QuaternionFromMatrix[S Scalar](m Matrix3[S]) Quaternion[S] {
	return kernelFor[S]().matToQuat(m)
}

// AlmostEqual reports whether every component of q is within tol of o. q and -q describe the same
// rotation but are not considered equal here.
func (q Quaternion[S]) AlmostEqual(o Quaternion[S], tol float64) bool {
	return almostEqual(q.W, o.W, tol) &&
		almostEqual(q.X, o.X, tol) &&
		almostEqual(q.Y, o.Y, tol) &&
		almostEqual(q.Z, o.Z, tol)
}
