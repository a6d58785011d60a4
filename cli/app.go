// Package cli contains the poseconv command line conversions between poses, isometries and
// URDF data.
package cli

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"go.viam.com/spatialconv/logging"
)

const (
	// Flags.
	flagPrecision = "precision"
	flagDebug     = "debug"
	flagIsometry  = "isometry"

	precisionFloat32 = "float32"
	precisionFloat64 = "float64"

	envPrecision = "POSECONV_PRECISION"
)

// NewApp returns a new app with the poseconv commands, Writer set to out, and ErrWriter
// set to errOut. Input is read from the file named by the first argument or from in.
func NewApp(in io.Reader, out, errOut io.Writer, logger logging.Logger) *cli.App {
	if in == nil {
		in = os.Stdin
	}
	return &cli.App{
		Name:            "poseconv",
		Usage:           "convert between pose vectors, isometries, rigid-body transforms and URDF inertials",
		HideHelpCommand: true,
		Reader:          in,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagPrecision,
				Aliases: []string{"p"},
				Value:   precisionFloat64,
				EnvVars: []string{envPrecision},
				Usage:   "scalar precision of the conversion, float32 or float64",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger.SetLevel(logging.DEBUG)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "topose",
				Usage:     "convert an isometry to a [x, y, z, qw, qx, qy, qz] pose vector",
				UsageText: "poseconv topose [FILE]",
				Action:    withPrecision(toPoseAction[float32](logger), toPoseAction[float64](logger)),
			},
			{
				Name:      "toisometry",
				Usage:     "convert a [x, y, z, qw, qx, qy, qz] pose vector to an isometry",
				UsageText: "poseconv toisometry [FILE]",
				Action:    withPrecision(toIsometryAction[float32](logger), toIsometryAction[float64](logger)),
			},
			{
				Name:      "fromurdf",
				Usage:     "convert a URDF pose to a rigid-body transform",
				UsageText: "poseconv fromurdf [--isometry] [FILE]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  flagIsometry,
						Usage: "output an isometry instead of a rigid-body transform",
					},
				},
				Action: withPrecision(fromURDFAction[float32](logger), fromURDFAction[float64](logger)),
			},
			{
				Name:      "inertial",
				Usage:     "convert a list of URDF inertials to spatial inertias, null entries become zero inertias",
				UsageText: "poseconv inertial [FILE]",
				Action:    withPrecision(inertialAction[float32](logger), inertialAction[float64](logger)),
			},
			{
				Name:      "schema",
				Usage:     "print the JSON schema of a command's input",
				UsageText: "poseconv schema <topose|toisometry|fromurdf|inertial>",
				Action:    schemaAction,
			},
		},
	}
}
