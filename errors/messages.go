package errors

import "github.com/fatih/color"

// ErrEngineNotFound is returned when no analysis engine binary resolves.
var ErrEngineNotFound = &Error{
	Message: "could not find the analysis engine binary",
	Troubleshooting: "Ensure " + color.HiGreenString("lintel-engine") + " is on your $PATH, or point " +
		color.HiGreenString("--engine") + " (or $LINTEL_ENGINE, or the config file's engine.cmd) at the binary.",
}
