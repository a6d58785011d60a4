package spatialmath

// Isometry3 is a rigid transform made of a rotation applied before a translation. Linear must be a
// proper orthonormal matrix; that is assumed, not checked.
type Isometry3[S Scalar] struct {
	Linear      Matrix3[S] `json:"linear"`
	Translation Vector3[S] `json:"translation"`
}

// NewIsometry3 returns the transform with the given rotation and translation.
func NewIsometry3[S Scalar](linear Matrix3[S], translation Vector3[S]) Isometry3[S] {
	return Isometry3[S]{Linear: linear, Translation: translation}
}

// IdentityIsometry3 returns the transform which does nothing.
func IdentityIsometry3[S Scalar]() Isometry3[S] {
	return Isometry3[S]{Linear: Identity3[S]()}
}

// Apply transforms the point p.
func (t Isometry3[S]) Apply(p Vector3[S]) Vector3[S] {
	return t.Linear.MulVec(p).Add(t.Translation)
}

// Compose returns t * o, the transform which applies o first and then t.
func (t Isometry3[S]) Compose(o Isometry3[S]) Isometry3[S] {
	return Isometry3[S]{
		Linear:      t.Linear.Mul(o.Linear),
		Translation: t.Linear.MulVec(o.Translation).Add(t.Translation),
	}
}

// Inverse returns the inverse rigid transform, using the transpose of the rotation.
func (t Isometry3[S]) Inverse() Isometry3[S] {
	rt := t.Linear.Transpose()
	return Isometry3[S]{
		Linear:      rt,
		Translation: rt.MulVec(t.Translation).Mul(-1),
	}
}

// AlmostEqual reports whether both the rotation and translation of t are within tol of o.
func (t Isometry3[S]) AlmostEqual(o Isometry3[S], tol float64) bool {
	return t.Linear.AlmostEqual(o.Linear, tol) && t.Translation.AlmostEqual(o.Translation, tol)
}

// PoseVector is a flat rigid transform laid out as [tx, ty, tz, qw, qx, qy, qz]. Consumers depend on
// this order; the quaternion must be unit norm.
type PoseVector[S Scalar] [7]S

// NewPoseVector packs a translation and quaternion into a pose vector.
func NewPoseVector[S Scalar](translation Vector3[S], q Quaternion[S]) PoseVector[S] {
	return PoseVector[S]{translation.X, translation.Y, translation.Z, q.W, q.X, q.Y, q.Z}
}

// Translation returns elements 0-2.
func (p PoseVector[S]) Translation() Vector3[S] {
	return Vector3[S]{p[0], p[1], p[2]}
}

// Quaternion returns elements 3-6, real part first.
func (p PoseVector[S]) Quaternion() Quaternion[S] {
	return Quaternion[S]{p[3], p[4], p[5], p[6]}
}
