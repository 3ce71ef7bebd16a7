// Package config implements application-level configuration functionality.
//
// It works by loading configuration sources (CLI flags, the configuration
// file, environment variables) and providing functions which compute relevant
// configuration values from these sources.
//
// This design is intended to make how a particular value is computed very
// clear: all values can have their computation strategy modified
// independently of all other values, and it is easy to determine which source
// set a particular configuration value.
package config

import (
	"github.com/apex/log"
	"github.com/urfave/cli"
)

var (
	ctx      *cli.Context
	file     File = NoFile{}
	filename string
)

// SetContext initializes application-level configuration: it stores the CLI
// flags and loads the configuration file.
func SetContext(c *cli.Context) error {
	// First, set the CLI flags.
	ctx = c

	// Second, try to load a configuration file.
	f, fname, err := ReadFile(c)
	if err != nil {
		return err
	}

	log.WithField("filename", fname).Debug("loaded configuration file")
	file = f
	filename = fname

	return nil
}
