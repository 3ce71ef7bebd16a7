// Package errors provides user-facing errors with troubleshooting guidance.
package errors

import (
	"strings"

	"github.com/fatih/color"
	wordwrap "github.com/mitchellh/go-wordwrap"
)

const width = 78

// An Error is shown to users when a foreseen failure occurs. Troubleshooting
// tells them what to do about it.
type Error struct {
	Cause           error
	Message         string
	Troubleshooting string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(wordwrap.WrapString(e.Message, width))
	if e.Cause != nil {
		b.WriteString("\n\n")
		b.WriteString(wordwrap.WrapString(e.Cause.Error(), width))
	}
	if e.Troubleshooting != "" {
		b.WriteString("\n\n")
		b.WriteString(color.HiYellowString("TROUBLESHOOTING:"))
		b.WriteString("\n")
		b.WriteString(wordwrap.WrapString(e.Troubleshooting, width))
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}
