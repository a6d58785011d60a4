package conversion

import (
	"context"

	"golang.org/x/sync/errgroup"

	"go.viam.com/spatialconv/dynamics"
	"go.viam.com/spatialconv/referenceframe/urdf"
	"go.viam.com/spatialconv/spatialmath"
)

// ConvertInertial converts a link's described inertial to an engine spatial inertia. The origin's
// position becomes the center of mass, and its rotation re-expresses the tensor in the link frame as
// R·I·Rᵗ.
func ConvertInertial[S spatialmath.Scalar](y urdf.Inertial) dynamics.Inertia[S] {
	com := describedPosition[S](y.Origin.Position)
	r := describedRotation[S](y.Origin.Rotation).RotationMatrix()
	local := spatialmath.NewSymmetric3(S(y.Ixx), S(y.Ixy), S(y.Ixz), S(y.Iyy), S(y.Iyz), S(y.Izz))
	return dynamics.NewInertia(S(y.Mass), com, r.Mul(local).Mul(r.Transpose()))
}

// ConvertOptionalInertial treats a link without an inertial element as massless.
func ConvertOptionalInertial[S spatialmath.Scalar](y *urdf.Inertial) dynamics.Inertia[S] {
	if y == nil {
		return dynamics.ZeroInertia[S]()
	}
	return ConvertInertial[S](*y)
}

// ConvertInertials converts the inertial of every link of a model concurrently. The output is in
// input order; the only error is ctx being done before all links were converted.
func ConvertInertials[S spatialmath.Scalar](ctx context.Context, ys []*urdf.Inertial) ([]dynamics.Inertia[S], error) {
	out := make([]dynamics.Inertia[S], len(ys))
	g, ctx := errgroup.WithContext(ctx)
	for i, y := range ys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = ConvertOptionalInertial[S](y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
