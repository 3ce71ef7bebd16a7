// Package flags defines the flags shared by lintel commands.
package flags

import (
	"fmt"

	"github.com/urfave/cli"
)

func abbr(fullname string) string {
	return fmt.Sprintf("%s, %s", string(fullname[0]), fullname)
}

// Combine combines flag slices, deduplicating identical flags. Distinct flags
// that share a name indicate a programming error and panic.
func Combine(flagSlices ...[]cli.Flag) []cli.Flag {
	seen := make(map[string]cli.Flag)
	var combined []cli.Flag
	for _, flags := range flagSlices {
		for _, f := range flags {
			prev, ok := seen[f.GetName()]
			if ok {
				if prev != f {
					panic(fmt.Sprintf("incompatible duplicate flag: %s", f.GetName()))
				}
				continue
			}
			seen[f.GetName()] = f
			combined = append(combined, f)
		}
	}
	return combined
}

func WithGlobalFlags(f []cli.Flag) []cli.Flag {
	return append(f, Global...)
}

var (
	Global  = []cli.Flag{ConfigF, NoAnsiF, DebugF}
	Config  = "config"
	ConfigF = cli.StringFlag{Name: abbr(Config), Usage: "path to config file (default: '.lintel.{yml,yaml,toml}')"}
	NoAnsi  = "no-ansi"
	NoAnsiF = cli.BoolFlag{Name: NoAnsi, Usage: "do not use interactive mode (ANSI codes)"}
	Debug   = "debug"
	DebugF  = cli.BoolFlag{Name: Debug, Usage: "print debug information to stderr"}
)

func WithProjectFlags(f []cli.Flag) []cli.Flag {
	return append(f, Project...)
}

var (
	Project         = []cli.Flag{ProjectF, ProjectNameF, ProjectVersionF, BranchF, RevisionF}
	ProjectKey      = "project"
	ProjectF        = cli.StringFlag{Name: abbr(ProjectKey), Usage: "the project key reported to the engine"}
	ProjectName     = "project-name"
	ProjectNameF    = cli.StringFlag{Name: ProjectName, Usage: "the project display name (default: the project key)"}
	ProjectVersion  = "project-version"
	ProjectVersionF = cli.StringFlag{Name: ProjectVersion, Usage: "the project version reported with the analysis"}
	Branch          = "branch"
	BranchF         = cli.StringFlag{Name: Branch, Usage: "the branch under analysis"}
	Revision        = "revision"
	RevisionF       = cli.StringFlag{Name: Revision, Usage: "the revision under analysis"}
)

func WithEngineFlags(f []cli.Flag) []cli.Flag {
	return append(f, Engine...)
}

var (
	Engine     = []cli.Flag{EndpointF, TokenF, EngineCmdF, WorkDirF, TimeoutF, SkipF}
	Endpoint   = "endpoint"
	EndpointF  = cli.StringFlag{Name: abbr(Endpoint), Usage: "the analysis server endpoint"}
	Token      = "token"
	TokenF     = cli.StringFlag{Name: abbr(Token), Usage: "the analysis server authentication token (default: $LINTEL_TOKEN)"}
	EngineCmd  = "engine"
	EngineCmdF = cli.StringFlag{Name: EngineCmd, Usage: "the engine binary to invoke (default: $LINTEL_ENGINE or 'lintel-engine')"}
	WorkDir    = "workdir"
	WorkDirF   = cli.StringFlag{Name: abbr(WorkDir), Usage: "the engine working directory (default: '.lintel')"}
	Timeout    = "timeout"
	TimeoutF   = cli.StringFlag{Name: Timeout, Usage: "maximum engine run time, e.g. '10m' (default: none)"}
	Skip       = "skip"
	SkipF      = cli.BoolFlag{Name: Skip, Usage: "skip analysis entirely"}
)

var (
	ShowOutput  = "output"
	ShowOutputF = cli.BoolFlag{Name: abbr(ShowOutput), Usage: "print the flattened properties as JSON"}
	Template    = "template"
	TemplateF   = cli.StringFlag{Name: Template, Usage: "render the flattened properties with a template file"}
)
