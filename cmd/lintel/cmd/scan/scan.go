// Package scan implements `lintel scan`.
package scan

import (
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/lintelhq/lintel-cli/cmd/lintel/display"
	"github.com/lintelhq/lintel-cli/cmd/lintel/flags"
	"github.com/lintelhq/lintel-cli/cmd/lintel/setup"
	"github.com/lintelhq/lintel-cli/config"
	"github.com/lintelhq/lintel-cli/errors"
	"github.com/lintelhq/lintel-cli/exec"
	"github.com/lintelhq/lintel-cli/props"
	"github.com/lintelhq/lintel-cli/runner"
)

// Cmd exports the `scan` CLI command.
var Cmd = cli.Command{
	Name:   "scan",
	Usage:  "Flatten the project configuration and run the analysis engine",
	Action: Run,
	Flags:  flags.WithGlobalFlags(flags.WithProjectFlags(flags.WithEngineFlags(nil))),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	err := setup.SetContext(ctx)
	if err != nil {
		log.Fatalf("Could not initialize: %s", err.Error())
	}

	if config.Skip() {
		log.Info("analysis skipped by configuration")
		return nil
	}

	root, err := config.Root()
	if err != nil {
		log.Fatalf("Could not load project configuration: %s", err.Error())
	}

	properties, err := props.Flatten(root, log.Log)
	if err != nil {
		log.Fatalf("Could not flatten project configuration: %s", err.Error())
	}
	log.WithField("count", len(properties)).Debug("flattened project configuration")

	engineCmd, engineVersion, err := exec.Which("--version", config.EngineCmd(), runner.DefaultCmd)
	if err != nil {
		log.Fatal(errors.ErrEngineNotFound.Error())
	}
	log.WithFields(log.Fields{
		"engine":  engineCmd,
		"version": engineVersion,
	}).Debug("resolved engine")

	display.InProgress(fmt.Sprintf("Analyzing %s...", root.Key))
	defer display.ClearProgress()

	engine := runner.Engine{
		Cmd:     engineCmd,
		Timeout: config.Timeout(),
	}
	err = engine.Scan(properties, config.WorkDir())
	if err != nil {
		log.Fatalf("Analysis failed: %s", err.Error())
	}

	display.ClearProgress()
	fmt.Printf("Analysis of %s complete.\n", root.Key)
	return nil
}
