package config

import (
	"github.com/pkg/errors"

	"github.com/lintelhq/lintel-cli/cmd/lintel/flags"
	"github.com/lintelhq/lintel-cli/project"
)

var ErrNoProjectKey = errors.New("no project key configured (set --project or the config file's project.key)")

// Root assembles the project tree: the configuration file's tree with CLI
// flag and environment overrides applied at the root, plus the root-only
// global engine settings.
func Root() (project.Root, error) {
	root := file.Root()

	root.Key = TryStrings(ctx.String(flags.ProjectKey), root.Key)
	if root.Key == "" {
		return project.Root{}, ErrNoProjectKey
	}
	root.Version = TryStrings(ctx.String(flags.ProjectVersion), root.Version)
	root.Name = TryStrings(ctx.String(flags.ProjectName), root.Name, root.Key)
	if root.Dir == "" {
		root.Dir = "."
	}

	globals := map[string]string{
		project.KeyHostURL: Endpoint(),
		project.KeyWorkDir: WorkDir(),
	}
	if token := Token(); token != "" {
		globals[project.KeyToken] = token
	}
	if branch := Branch(); branch != "" {
		globals[project.KeyBranch] = branch
	}
	if revision := Revision(); revision != "" {
		globals[project.KeyRevision] = revision
	}
	root.Globals = globals

	return root, nil
}
