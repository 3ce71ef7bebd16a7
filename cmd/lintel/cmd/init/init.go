// Package init implements `lintel init`.
package init

import (
	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/lintelhq/lintel-cli/cmd/lintel/flags"
	"github.com/lintelhq/lintel-cli/cmd/lintel/setup"
	"github.com/lintelhq/lintel-cli/config"
)

var Overwrite = "overwrite"

// Cmd exports the `init` CLI command.
var Cmd = cli.Command{
	Name:   "init",
	Usage:  "Initialize a .lintel.yml configuration file",
	Action: Run,
	Flags: flags.WithGlobalFlags([]cli.Flag{
		cli.BoolFlag{Name: Overwrite, Usage: "overwrite an existing configuration file"},
	}),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	err := setup.SetContext(ctx)
	if err != nil {
		log.Fatalf("Could not initialize: %s", err.Error())
	}

	hasConfigFile, err := config.ExistsFile()
	if err != nil {
		log.Fatalf("Could not detect configuration file: %s", err.Error())
	}
	if hasConfigFile && !ctx.Bool(Overwrite) {
		log.Warn("Existing configuration available; skipping initialization")
		return nil
	}

	err = config.WriteFile(config.DefaultFilenames[0], config.InitFile())
	if err != nil {
		log.Fatalf("Could not write configuration file: %s", err.Error())
	}

	log.Infof("Wrote %s", config.DefaultFilenames[0])
	return nil
}
