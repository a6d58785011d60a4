// Package urdf holds the pose and inertial data of a Universal Robot Description Format (URDF) file
// as handed over by a description parser. Values are kept in double precision and in the units of
// the file: meters, radians, kilograms and kg·m².
package urdf

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Rotation is a URDF orientation quaternion, real part first. Parsers normalize it on load.
type Rotation struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Pose is the origin of a URDF element relative to its parent link frame. Position is in meters.
type Pose struct {
	Position r3.Vector `json:"position"`
	Rotation Rotation  `json:"rotation"`
}

// Inertial is the inertial element of a URDF link. The six tensor entries describe a symmetric
// matrix expressed in the frame given by Origin; their names and order match the URDF attributes.
type Inertial struct {
	Mass   float64 `json:"mass"`
	Origin Pose    `json:"origin"`
	Ixx    float64 `json:"ixx"`
	Ixy    float64 `json:"ixy"`
	Ixz    float64 `json:"ixz"`
	Iyy    float64 `json:"iyy"`
	Iyz    float64 `json:"iyz"`
	Izz    float64 `json:"izz"`
}

// IdentityRotation returns the rotation which signifies no rotation.
func IdentityRotation() Rotation {
	return Rotation{W: 1}
}

// IdentityPose returns a pose at the parent origin with no rotation.
func IdentityPose() Pose {
	return Pose{Rotation: IdentityRotation()}
}

// RotationFromRPY returns the normalized rotation for the fixed-axis roll, pitch, yaw angles of a
// URDF rpy attribute, in radians: roll about x, then pitch about y, then yaw about z.
func RotationFromRPY(roll, pitch, yaw float64) Rotation {
	sr, cr := math.Sincos(roll / 2)
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)
	q := quat.Mul(quat.Mul(quat.Number{Real: cy, Kmag: sy}, quat.Number{Real: cp, Jmag: sp}), quat.Number{Real: cr, Imag: sr})
	return rotationFromNumber(q).Normalize()
}

func rotationFromNumber(q quat.Number) Rotation {
	return Rotation{W: q.Real, X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

// Number returns r as a gonum quaternion.
func (r Rotation) Number() quat.Number {
	return quat.Number{Real: r.W, Imag: r.X, Jmag: r.Y, Kmag: r.Z}
}

// RPY returns the fixed-axis roll, pitch and yaw of r in radians. Pitch is clamped to ±π/2 at the
// poles.
func (r Rotation) RPY() (roll, pitch, yaw float64) {
	sqw := r.W * r.W
	sqx := r.X * r.X
	sqy := r.Y * r.Y
	sqz := r.Z * r.Z

	roll = math.Atan2(2*(r.Y*r.Z+r.W*r.X), sqw-sqx-sqy+sqz)
	switch sarg := -2 * (r.X*r.Z - r.W*r.Y); {
	case sarg <= -1:
		pitch = -math.Pi / 2
	case sarg >= 1:
		pitch = math.Pi / 2
	default:
		pitch = math.Asin(sarg)
	}
	yaw = math.Atan2(2*(r.X*r.Y+r.W*r.Z), sqw+sqx-sqy-sqz)
	return roll, pitch, yaw
}

// Normalize returns r scaled to unit norm. A zero rotation becomes the identity.
func (r Rotation) Normalize() Rotation {
	q := r.Number()
	s := quat.Abs(q)
	if s == 0 {
		return IdentityRotation()
	}
	return rotationFromNumber(quat.Scale(1/s, q))
}

// PoseFromXYZRPY builds a pose from the values of a URDF origin element's xyz and rpy attributes.
func PoseFromXYZRPY(xyz, rpy [3]float64) Pose {
	return Pose{
		Position: r3.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]},
		Rotation: RotationFromRPY(rpy[0], rpy[1], rpy[2]),
	}
}
