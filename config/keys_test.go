package config_test

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"

	"github.com/lintelhq/lintel-cli/cmd/lintel/flags"
	"github.com/lintelhq/lintel-cli/config"
)

func testContext(t *testing.T, settings map[string]string) *cli.Context {
	flagSet := flag.NewFlagSet("test", 0)
	flags.ConfigF.Apply(flagSet)
	flags.ProjectF.Apply(flagSet)
	flags.ProjectVersionF.Apply(flagSet)
	flags.EndpointF.Apply(flagSet)
	flags.TokenF.Apply(flagSet)
	flags.EngineCmdF.Apply(flagSet)
	flags.WorkDirF.Apply(flagSet)
	flags.SkipF.Apply(flagSet)

	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)
	for name, value := range settings {
		err := ctx.Set(name, value)
		assert.NoError(t, err)
	}
	return ctx
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	ctx := testContext(t, map[string]string{
		flags.Config:   "testdata/test.yml",
		flags.Endpoint: "https://flag.example.com",
	})
	err := config.SetContext(ctx)
	assert.NoError(t, err)

	// The flag wins over the file.
	assert.Equal(t, "https://flag.example.com", config.Endpoint())
	// The file wins where no flag is set.
	assert.Equal(t, "custom-engine", config.EngineCmd())
	assert.Equal(t, "filetoken", config.Token())
	assert.Equal(t, "org:app", config.ProjectKey())
}

func TestEndpointDefaults(t *testing.T) {
	ctx := testContext(t, map[string]string{
		flags.Config: "testdata/test.toml",
	})
	err := config.SetContext(ctx)
	assert.NoError(t, err)

	assert.Equal(t, "https://engine.internal.example.com", config.Endpoint())
	assert.Equal(t, ".lintel", config.WorkDir())
}

func TestRootAppliesFlagOverrides(t *testing.T) {
	ctx := testContext(t, map[string]string{
		flags.Config:         "testdata/test.yml",
		flags.ProjectKey:     "org:other",
		flags.ProjectVersion: "3.0.0",
	})
	err := config.SetContext(ctx)
	assert.NoError(t, err)

	root, err := config.Root()
	assert.NoError(t, err)
	assert.Equal(t, "org:other", root.Key)
	assert.Equal(t, "3.0.0", root.Version)
	// The file's tree is preserved under the overridden root.
	assert.Len(t, root.Subprojects, 2)
	assert.Equal(t, "filetoken", root.Globals["token"])
	assert.Equal(t, "build/analysis", root.Globals["working.directory"])
}

func TestRootRequiresProjectKey(t *testing.T) {
	ctx := testContext(t, nil)
	err := config.SetContext(ctx)
	assert.NoError(t, err)

	_, err = config.Root()
	assert.Equal(t, config.ErrNoProjectKey, err)
}

func TestSkipFlag(t *testing.T) {
	ctx := testContext(t, map[string]string{
		flags.Config: "testdata/test.yml",
		flags.Skip:   "true",
	})
	err := config.SetContext(ctx)
	assert.NoError(t, err)

	assert.True(t, config.Skip())
}
