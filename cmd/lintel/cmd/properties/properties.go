// Package properties implements `lintel properties`, which prints the
// flattened property map without invoking the engine.
package properties

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli"

	"github.com/lintelhq/lintel-cli/cmd/lintel/display"
	"github.com/lintelhq/lintel-cli/cmd/lintel/flags"
	"github.com/lintelhq/lintel-cli/cmd/lintel/setup"
	"github.com/lintelhq/lintel-cli/config"
	"github.com/lintelhq/lintel-cli/props"
	"github.com/lintelhq/lintel-cli/runner"
)

// Cmd exports the `properties` CLI command.
var Cmd = cli.Command{
	Name:   "properties",
	Usage:  "Print the flattened analysis properties",
	Action: Run,
	Flags: flags.WithGlobalFlags(flags.WithProjectFlags(flags.WithEngineFlags([]cli.Flag{
		flags.ShowOutputF,
		flags.TemplateF,
	}))),
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	err := setup.SetContext(ctx)
	if err != nil {
		log.Fatalf("Could not initialize: %s", err.Error())
	}

	root, err := config.Root()
	if err != nil {
		log.Fatalf("Could not load project configuration: %s", err.Error())
	}

	flat, err := props.Flatten(root, log.Log)
	if err != nil {
		log.Fatalf("Could not flatten project configuration: %s", err.Error())
	}

	if tmplFile := ctx.String(flags.Template); tmplFile != "" {
		output, err := display.TemplateFile(tmplFile, flat)
		if err != nil {
			log.Fatalf("Could not render template: %s", err.Error())
		}
		fmt.Println(output)
		return nil
	}

	if ctx.Bool(flags.ShowOutput) {
		_, err := display.JSON(flat)
		if err != nil {
			log.Fatalf("Could not serialize to JSON: %s", err.Error())
		}
		return nil
	}

	return runner.WriteProperties(os.Stdout, flat)
}
