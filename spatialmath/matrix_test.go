package spatialmath

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

func TestMatrix3(t *testing.T) {
	m := Matrix3[float64]{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	test.That(t, m.At(1, 2), test.ShouldEqual, 6.)
	test.That(t, m.Transpose().At(2, 1), test.ShouldEqual, 6.)
	test.That(t, m.Trace(), test.ShouldEqual, 16.)
	test.That(t, m.Determinant(), test.ShouldAlmostEqual, -3.)
	test.That(t, m.IsSymmetric(0), test.ShouldBeFalse)
	test.That(t, m.Mul(Identity3[float64]()), test.ShouldResemble, m)
	test.That(t, m.Add(m), test.ShouldResemble, m.Scale(2))

	o := Matrix3[float64]{
		0.5, -1, 2,
		3, 0, -2,
		1, 1, 1,
	}
	var expected mat.Dense
	expected.Mul(mat.NewDense(3, 3, m[:]), mat.NewDense(3, 3, o[:]))
	prod := m.Mul(o)
	test.That(t, prod[:], test.ShouldResemble, expected.RawMatrix().Data)

	v := Vector3[float64]{1, -1, 2}
	var expectedVec mat.VecDense
	expectedVec.MulVec(mat.NewDense(3, 3, m[:]), mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	test.That(t, m.MulVec(v), test.ShouldResemble, Vector3[float64]{expectedVec.AtVec(0), expectedVec.AtVec(1), expectedVec.AtVec(2)})

	m32 := CastMatrix3[float32](m)
	o32 := CastMatrix3[float32](o)
	test.That(t, m32.Mul(o32), test.ShouldResemble, CastMatrix3[float32](prod))
	test.That(t, m32.Transpose(), test.ShouldResemble, CastMatrix3[float32](m.Transpose()))
	test.That(t, m32.Determinant(), test.ShouldEqual, float32(-3))
	test.That(t, m32.MulVec(Vector3[float32]{1, -1, 2}), test.ShouldResemble, Vector3[float32]{5, 11, 19})

	s := NewSymmetric3[float32](1, 2, 3, 4, 5, 6)
	test.That(t, s, test.ShouldResemble, Matrix3[float32]{1, 2, 3, 2, 4, 5, 3, 5, 6})
	test.That(t, s.IsSymmetric(0), test.ShouldBeTrue)
}

func TestVector3(t *testing.T) {
	a := Vector3[float64]{1, 2, 3}
	b := Vector3[float64]{-2, 0.5, 4}
	test.That(t, a.Add(b), test.ShouldResemble, Vector3[float64]{-1, 2.5, 7})
	test.That(t, a.Sub(b), test.ShouldResemble, Vector3[float64]{3, 1.5, -1})
	test.That(t, a.Mul(-2), test.ShouldResemble, Vector3[float64]{-2, -4, -6})
	cross := r3.Vector{X: a.X, Y: a.Y, Z: a.Z}.Cross(r3.Vector{X: b.X, Y: b.Y, Z: b.Z})
	test.That(t, a.Skew().MulVec(b), test.ShouldResemble, R3ToVec[float64](cross))
	test.That(t, a.AlmostEqual(Vector3[float64]{1, 2, 3 + 1e-9}, 1e-8), test.ShouldBeTrue)
}

func TestIsometry3(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		a := NewIsometry3(randomQuaternion(rng).RotationMatrix(), Vector3[float64]{rng.Float64(), rng.Float64(), rng.Float64()})
		b := NewIsometry3(randomQuaternion(rng).RotationMatrix(), Vector3[float64]{rng.Float64(), rng.Float64(), rng.Float64()})
		p := Vector3[float64]{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}

		test.That(t, a.Compose(a.Inverse()).AlmostEqual(IdentityIsometry3[float64](), 1e-12), test.ShouldBeTrue)
		test.That(t, a.Compose(b).Apply(p).AlmostEqual(a.Apply(b.Apply(p)), 1e-12), test.ShouldBeTrue)
		test.That(t, a.Inverse().Apply(a.Apply(p)).AlmostEqual(p, 1e-12), test.ShouldBeTrue)
	}

	pv := NewPoseVector(Vector3[float32]{1, 2, 3}, Quaternion[float32]{4, 5, 6, 7})
	test.That(t, pv, test.ShouldResemble, PoseVector[float32]{1, 2, 3, 4, 5, 6, 7})
	test.That(t, pv.Translation(), test.ShouldResemble, Vector3[float32]{1, 2, 3})
	test.That(t, pv.Quaternion(), test.ShouldResemble, Quaternion[float32]{4, 5, 6, 7})
}

func TestInterop(t *testing.T) {
	m := Matrix3[float64]{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	g := Mat3ToMgl64(m)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			test.That(t, g.At(r, c), test.ShouldEqual, m.At(r, c))
		}
	}
	test.That(t, g.Row(0), test.ShouldResemble, mgl64.Vec3{1, 2, 3})
	test.That(t, Mgl64ToMat3(g), test.ShouldResemble, m)

	m32 := CastMatrix3[float32](m)
	g32 := Mat3ToMgl32(m32)
	test.That(t, g32.At(2, 0), test.ShouldEqual, float32(7))
	test.That(t, Mgl32ToMat3(g32), test.ShouldResemble, m32)

	v := r3.Vector{X: 0.1, Y: 0.2, Z: 0.3}
	test.That(t, R3ToVec[float64](v), test.ShouldResemble, Vector3[float64]{0.1, 0.2, 0.3})
	test.That(t, Mgl64ToVec(VecToMgl64(R3ToVec[float64](v))), test.ShouldResemble, R3ToVec[float64](v))
	v32 := Vector3[float32]{float32(v.X), float32(v.Y), float32(v.Z)}
	test.That(t, R3ToVec[float32](v), test.ShouldResemble, v32)

	iso := NewIsometry3(m, Vector3[float64]{0.1, 0.2, 0.3})
	narrowed := CastIsometry3[float32](iso)
	test.That(t, narrowed.Translation, test.ShouldResemble, v32)
	test.That(t, CastIsometry3[float64](narrowed).AlmostEqual(iso, 1e-7), test.ShouldBeTrue)

	q := quat.Number{Real: 0.5, Imag: -0.5, Jmag: 0.5, Kmag: -0.5}
	test.That(t, NumberToQuat[float32](q), test.ShouldResemble, Quaternion[float32]{0.5, -0.5, 0.5, -0.5})
	test.That(t, Mgl64ToQuat(QuatToMgl64(NumberToQuat[float64](q))), test.ShouldResemble, NumberToQuat[float64](q))
	test.That(t, Mgl32ToQuat(QuatToMgl32(NumberToQuat[float32](q))), test.ShouldResemble, NumberToQuat[float32](q))
}
