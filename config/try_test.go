package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lintelhq/lintel-cli/config"
)

func TestTryStrings(t *testing.T) {
	assert.Equal(t, "", config.TryStrings())
	assert.Equal(t, "", config.TryStrings("", ""))
	assert.Equal(t, "first", config.TryStrings("first", "second"))
	assert.Equal(t, "second", config.TryStrings("", "second"))
}

func TestTryBools(t *testing.T) {
	assert.False(t, config.TryBools())
	assert.False(t, config.TryBools(false, false))
	assert.True(t, config.TryBools(false, true))
}

func TestTryFiles(t *testing.T) {
	path, err := config.TryFiles("testdata/does-not-exist.yml", "testdata/test.yml")
	assert.NoError(t, err)
	assert.Equal(t, "testdata/test.yml", path)

	_, err = config.TryFiles("testdata/does-not-exist.yml")
	assert.Equal(t, config.ErrFileNotFound, err)
}
