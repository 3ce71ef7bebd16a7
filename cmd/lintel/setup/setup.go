// Package setup implements initialization for all application packages.
package setup

import (
	"github.com/urfave/cli"

	"github.com/lintelhq/lintel-cli/cmd/lintel/display"
	"github.com/lintelhq/lintel-cli/config"
)

// SetContext initializes all application-level packages.
func SetContext(ctx *cli.Context) error {
	// Set up configuration.
	err := config.SetContext(ctx)
	if err != nil {
		return err
	}

	// Set up logging.
	display.SetInteractive(config.Interactive())
	display.SetDebug(config.Debug())

	return nil
}
