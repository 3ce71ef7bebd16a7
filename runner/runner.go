// Package runner invokes the external analysis engine with a flattened
// property set.
package runner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/lintelhq/lintel-cli/exec"
	"github.com/lintelhq/lintel-cli/props"
)

// DefaultCmd is the engine binary resolved from $PATH when no explicit
// command is configured.
const DefaultCmd = "lintel-engine"

// PropertiesFile is the name of the property file written into the working
// directory before the engine runs.
const PropertiesFile = "lintel.properties"

// A CmdRunner executes a command. It exists so tests can intercept the
// engine invocation.
type CmdRunner func(cmd exec.Cmd) (stdout, stderr string, err error)

// Engine is a handle on the external analysis engine binary.
type Engine struct {
	Cmd     string
	Timeout string

	// Run defaults to exec.Run.
	Run CmdRunner
}

// Scan writes properties into workdir and invokes the engine there. The
// engine's own failure is wrapped and returned; the runner adds no retries.
func (e Engine) Scan(properties props.Properties, workdir string) error {
	cmd := e.Cmd
	if cmd == "" {
		cmd = DefaultCmd
	}
	run := e.Run
	if run == nil {
		run = exec.Run
	}

	err := os.MkdirAll(workdir, 0755)
	if err != nil {
		return errors.Wrapf(err, "could not create working directory %s", workdir)
	}

	path := filepath.Join(workdir, PropertiesFile)
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create property file %s", path)
	}
	err = WriteProperties(file, properties)
	if err != nil {
		file.Close()
		return errors.Wrap(err, "could not write property file")
	}
	err = file.Close()
	if err != nil {
		return errors.Wrap(err, "could not write property file")
	}

	log.WithFields(log.Fields{
		"engine":     cmd,
		"workdir":    workdir,
		"properties": len(properties),
	}).Debug("invoking engine")

	_, stderr, err := run(exec.Cmd{
		Name:    cmd,
		Argv:    []string{"--properties", path, "--workdir", workdir},
		Dir:     workdir,
		Timeout: e.Timeout,
	})
	if err != nil {
		return errors.Wrapf(err, "engine failed: %s", strings.TrimSpace(stderr))
	}
	return nil
}
