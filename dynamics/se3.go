// Package dynamics defines the native value types of the rigid-body dynamics engine: the spatial
// transform SE3 and the spatial inertia. They follow the engine's layout, a rotation/translation pair
// and a mass/center-of-mass/rotational-inertia triple, and carry only the operations the engine
// exposes on them.
package dynamics

import "go.viam.com/spatialconv/spatialmath"

// SE3 is the engine's rigid transform. A point expressed in the child frame maps to the parent frame
// as Rotation * p + Translation.
type SE3[S spatialmath.Scalar] struct {
	Rotation    spatialmath.Matrix3[S] `json:"rotation"`
	Translation spatialmath.Vector3[S] `json:"translation"`
}

// NewSE3 returns the transform with rotation r and translation p.
func NewSE3[S spatialmath.Scalar](r spatialmath.Matrix3[S], p spatialmath.Vector3[S]) SE3[S] {
	return SE3[S]{Rotation: r, Translation: p}
}

// IdentitySE3 returns the identity transform.
func IdentitySE3[S spatialmath.Scalar]() SE3[S] {
	return SE3[S]{Rotation: spatialmath.Identity3[S]()}
}

// Act maps the point p through m.
func (m SE3[S]) Act(p spatialmath.Vector3[S]) spatialmath.Vector3[S] {
	return m.Rotation.MulVec(p).Add(m.Translation)
}

// ActInv maps the point p through the inverse of m.
func (m SE3[S]) ActInv(p spatialmath.Vector3[S]) spatialmath.Vector3[S] {
	return m.Rotation.Transpose().MulVec(p.Sub(m.Translation))
}

// Compose returns m * o.
func (m SE3[S]) Compose(o SE3[S]) SE3[S] {
	return SE3[S]{
		Rotation:    m.Rotation.Mul(o.Rotation),
		Translation: m.Act(o.Translation),
	}
}

// Inverse returns m⁻¹.
func (m SE3[S]) Inverse() SE3[S] {
	rt := m.Rotation.Transpose()
	return SE3[S]{Rotation: rt, Translation: rt.MulVec(m.Translation).Mul(-1)}
}

// AlmostEqual reports whether m and o are within tol of each other element-wise.
func (m SE3[S]) AlmostEqual(o SE3[S], tol float64) bool {
	return m.Rotation.AlmostEqual(o.Rotation, tol) && m.Translation.AlmostEqual(o.Translation, tol)
}
