package exec

import (
	"errors"

	"github.com/apex/log"
)

// Which picks the first candidate command that answers arg (usually a
// --version probe).
func Which(arg string, cmds ...string) (cmd string, output string, err error) {
	for _, candidate := range cmds {
		if candidate == "" {
			continue
		}
		stdout, stderr, err := Run(Cmd{
			Name: candidate,
			Argv: []string{arg},
		})
		if err != nil {
			log.WithError(err).WithField("cmd", candidate).Debug("candidate did not resolve")
			continue
		}
		if stdout == "" {
			return candidate, stderr, nil
		}
		return candidate, stdout, nil
	}
	return "", "", errors.New("could not resolve command")
}
