package errors_test

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/lintelhq/lintel-cli/errors"
)

func TestErrorIncludesCauseAndTroubleshooting(t *testing.T) {
	err := &errors.Error{
		Cause:           pkgerrors.New("exit status 2"),
		Message:         "engine failed",
		Troubleshooting: "Run with --debug for details.",
	}

	assert.Contains(t, err.Error(), "engine failed")
	assert.Contains(t, err.Error(), "exit status 2")
	assert.Contains(t, err.Error(), "TROUBLESHOOTING")
	assert.Equal(t, "exit status 2", err.Unwrap().Error())
}
