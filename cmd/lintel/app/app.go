// Package app assembles the lintel CLI application.
package app

import (
	"github.com/urfave/cli"

	initc "github.com/lintelhq/lintel-cli/cmd/lintel/cmd/init"
	"github.com/lintelhq/lintel-cli/cmd/lintel/cmd/properties"
	"github.com/lintelhq/lintel-cli/cmd/lintel/cmd/scan"
	"github.com/lintelhq/lintel-cli/cmd/lintel/cmd/update"
	"github.com/lintelhq/lintel-cli/cmd/lintel/flags"
	"github.com/lintelhq/lintel-cli/cmd/lintel/version"
)

// New returns the lintel CLI application. Running it with no command behaves
// like `lintel scan`.
func New() *cli.App {
	return &cli.App{
		Name:                 "lintel",
		Usage:                "Flatten project configuration and run static analysis",
		Version:              version.String(),
		Action:               scan.Run,
		EnableBashCompletion: true,
		Flags: flags.Combine(
			scan.Cmd.Flags,
		),
		Commands: []cli.Command{
			initc.Cmd,
			scan.Cmd,
			properties.Cmd,
			update.Cmd,
		},
	}
}
