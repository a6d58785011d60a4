package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// withPrecision dispatches to the action matching the precision flag.
func withPrecision(single, double cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		switch p := c.String(flagPrecision); p {
		case precisionFloat32:
			return single(c)
		case precisionFloat64:
			return double(c)
		default:
			return errors.Errorf("unknown precision %q, must be %s or %s", p, precisionFloat32, precisionFloat64)
		}
	}
}

// readInput decodes JSON from the file named by the first argument, or from the app reader
// when no argument is given.
func readInput(c *cli.Context, dst interface{}) error {
	var r io.Reader = c.App.Reader
	name := "stdin"
	if c.Args().Len() > 0 {
		name = c.Args().First()
		//nolint:gosec
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "could not open input")
		}
		defer func() {
			//nolint:errcheck
			f.Close()
		}()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Wrapf(err, "could not decode %s", name)
	}
	return nil
}

func writeOutput(c *cli.Context, v interface{}) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "could not encode output")
}
