package cli

import (
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/spatialconv/conversion"
	"go.viam.com/spatialconv/logging"
	"go.viam.com/spatialconv/referenceframe/urdf"
	"go.viam.com/spatialconv/spatialmath"
)

func toPoseAction[S spatialmath.Scalar](logger logging.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		var iso spatialmath.Isometry3[S]
		if err := readInput(c, &iso); err != nil {
			return err
		}
		pv := conversion.ToPoseVec(iso)
		logger.Debugw("converted isometry", "pose", pv)
		return writeOutput(c, pv)
	}
}

func toIsometryAction[S spatialmath.Scalar](logger logging.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		var raw []S
		if err := readInput(c, &raw); err != nil {
			return err
		}
		var pv spatialmath.PoseVector[S]
		if len(raw) != len(pv) {
			return errors.Errorf("pose vector must have %d elements, got %d", len(pv), len(raw))
		}
		copy(pv[:], raw)
		iso := conversion.ToIsometry(pv)
		logger.Debugw("converted pose vector", "translation", iso.Translation)
		return writeOutput(c, iso)
	}
}

func fromURDFAction[S spatialmath.Scalar](logger logging.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		var pose urdf.Pose
		if err := readInput(c, &pose); err != nil {
			return err
		}
		logger.Debugw("converting urdf pose", "pose", pose)
		if c.Bool(flagIsometry) {
			return writeOutput(c, conversion.PoseToIsometry[S](pose))
		}
		return writeOutput(c, conversion.PoseToSE3[S](pose))
	}
}

func inertialAction[S spatialmath.Scalar](logger logging.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		var links []*urdf.Inertial
		if err := readInput(c, &links); err != nil {
			return err
		}
		inertias, err := conversion.ConvertInertials[S](c.Context, links)
		if err != nil {
			return err
		}
		logger.Debugw("converted inertials", "count", len(inertias))
		return writeOutput(c, inertias)
	}
}

// inputSchema describes the JSON each conversion command reads.
func inputSchema(command string) (*jsonschema.Schema, error) {
	switch command {
	case "topose":
		return jsonschema.Reflect(&spatialmath.Isometry3[float64]{}), nil
	case "toisometry":
		return jsonschema.Reflect(&spatialmath.PoseVector[float64]{}), nil
	case "fromurdf":
		return jsonschema.Reflect(&urdf.Pose{}), nil
	case "inertial":
		return jsonschema.Reflect(&[]*urdf.Inertial{}), nil
	default:
		return nil, errors.Errorf("no input schema for command %q", command)
	}
}

func schemaAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("schema takes exactly one command name")
	}
	schema, err := inputSchema(c.Args().First())
	if err != nil {
		return err
	}
	return writeOutput(c, schema)
}
