package display

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/apex/log"
)

var (
	file    *os.File
	useANSI bool
	level   = log.InfoLevel
)

// SetInteractive turns ANSI control characters (the progress spinner) on or
// off.
func SetInteractive(interactive bool) {
	// Disable ANSI control characters on Windows.
	if runtime.GOOS == "windows" {
		interactive = false
	}
	useANSI = interactive
}

// SetDebug turns debug logging to STDERR on or off.
//
// The log file always receives debug-level entries.
func SetDebug(debug bool) {
	// This sets the `level` variable rather than calling `log.SetLevel`,
	// because `log.SetLevel` filters entries by level _before_ they reach the
	// handler, and the handler must see debug entries to write them to the
	// log file.
	if debug {
		level = log.DebugLevel
	} else {
		level = log.InfoLevel
	}
}

// File returns the log file name.
func File() string {
	if file == nil {
		return ""
	}
	return file.Name()
}

// Handler handles log entries. It multiplexes them into two outputs, writing
// human-readable messages to STDERR and machine-readable entries to the log
// file.
func Handler(entry *log.Entry) error {
	if entry.Level >= level {
		fmt.Fprintf(os.Stderr, "%s %s\n", entry.Level, entry.Message)
	}

	if file == nil {
		return nil
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, byte('\n'))
	_, err = file.Write(data)
	if err != nil {
		return err
	}
	return file.Sync()
}
