package dynamics

import "go.viam.com/spatialconv/spatialmath"

// Inertia is the engine's spatial inertia: the mass of a body, the position of its center of mass
// (the lever) and its rotational inertia about the center of mass, all expressed in the body frame.
type Inertia[S spatialmath.Scalar] struct {
	Mass    S                      `json:"mass"`
	Lever   spatialmath.Vector3[S] `json:"lever"`
	Inertia spatialmath.Matrix3[S] `json:"inertia"`
}

// NewInertia returns the spatial inertia of mass m with center of mass c and rotational inertia
// about c.
func NewInertia[S spatialmath.Scalar](m S, c spatialmath.Vector3[S], inertia spatialmath.Matrix3[S]) Inertia[S] {
	return Inertia[S]{Mass: m, Lever: c, Inertia: inertia}
}

// ZeroInertia returns the inertia of a massless body.
func ZeroInertia[S spatialmath.Scalar]() Inertia[S] {
	return Inertia[S]{}
}

// IsZero reports whether y has no mass, lever or rotational inertia.
func (y Inertia[S]) IsZero() bool {
	return y == Inertia[S]{}
}

// Se3Action returns y expressed in the parent frame of m.
func (y Inertia[S]) Se3Action(m SE3[S]) Inertia[S] {
	return Inertia[S]{
		Mass:    y.Mass,
		Lever:   m.Act(y.Lever),
		Inertia: m.Rotation.Mul(y.Inertia).Mul(m.Rotation.Transpose()),
	}
}

// Matrix6 returns the 6x6 spatial inertia matrix in linear-then-angular order:
//
//	[ m·1       -m·[c]×            ]
//	[ m·[c]×     I - m·[c]×·[c]×   ]
func (y Inertia[S]) Matrix6() [6][6]S {
	var out [6][6]S
	mc := y.Lever.Skew().Scale(y.Mass)
	angular := y.Inertia.Add(mc.Mul(y.Lever.Skew()).Scale(-1))
	for r := 0; r < 3; r++ {
		out[r][r] = y.Mass
		for c := 0; c < 3; c++ {
			out[r][3+c] = -mc.At(r, c)
			out[3+r][c] = mc.At(r, c)
			out[3+r][3+c] = angular.At(r, c)
		}
	}
	return out
}
