// Package main is the poseconv command itself.
package main

import (
	"os"

	"go.viam.com/spatialconv/cli"
	"go.viam.com/spatialconv/logging"
)

func main() {
	logger := logging.NewStderrLogger("poseconv")
	app := cli.NewApp(os.Stdin, os.Stdout, os.Stderr, logger)
	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		//nolint:errcheck
		logger.Sync()
		os.Exit(1)
	}
}
