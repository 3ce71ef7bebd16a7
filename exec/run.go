// Package exec runs external commands.
package exec

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/apex/log"
)

// Cmd represents a single command.
type Cmd struct {
	Name string   // Executable name.
	Argv []string // Executable arguments.

	Dir string // The command's working directory.

	// If neither Env nor WithEnv are set, the environment is inherited from
	// os.Environ().
	Env     map[string]string // If set, the command's environment is _set_ to Env.
	WithEnv map[string]string // If set, the command's environment is _added_ to WithEnv.

	// Timeout is a time.ParseDuration string. An empty Timeout means no
	// timeout.
	Timeout string
}

// Run executes a Cmd and returns its output.
func Run(cmd Cmd) (stdout, stderr string, err error) {
	log.WithFields(log.Fields{
		"name": cmd.Name,
		"argv": cmd.Argv,
		"dir":  cmd.Dir,
	}).Debug("running command")

	xc, cancel := BuildExec(cmd)
	if cancel != nil {
		defer cancel()
	}

	var stderrBuffer bytes.Buffer
	xc.Stderr = &stderrBuffer

	stdoutBuffer, err := xc.Output()
	stdout = string(stdoutBuffer)
	stderr = stderrBuffer.String()

	log.WithFields(log.Fields{
		"stdout": stdout,
		"stderr": stderr,
	}).Debug("done running command")

	return stdout, stderr, err
}

// BuildExec constructs the underlying *exec.Cmd for a Cmd. The returned
// cancel function is non-nil when a timeout is set and must be called once
// the command finishes.
func BuildExec(cmd Cmd) (*exec.Cmd, context.CancelFunc) {
	var xc *exec.Cmd
	var cancel context.CancelFunc

	if cmd.Timeout != "" {
		timeout, err := time.ParseDuration(cmd.Timeout)
		if err != nil {
			log.WithError(err).Warnf("invalid timeout %q, running without one", cmd.Timeout)
			xc = exec.Command(cmd.Name, cmd.Argv...)
		} else {
			var ctx context.Context
			ctx, cancel = context.WithTimeout(context.Background(), timeout)
			xc = exec.CommandContext(ctx, cmd.Name, cmd.Argv...)
		}
	} else {
		xc = exec.Command(cmd.Name, cmd.Argv...)
	}

	if cmd.Dir != "" {
		xc.Dir = cmd.Dir
	}

	if cmd.Env != nil {
		xc.Env = toEnv(cmd.Env)
	} else if cmd.WithEnv != nil {
		xc.Env = toEnv(cmd.WithEnv)
		xc.Env = append(xc.Env, os.Environ()...)
	} else {
		xc.Env = os.Environ()
	}

	return xc, cancel
}

func toEnv(env map[string]string) []string {
	var out []string
	for key, val := range env {
		out = append(out, key+"="+val)
	}
	return out
}
