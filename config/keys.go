package config

import (
	"os"

	isatty "github.com/mattn/go-isatty"

	"github.com/lintelhq/lintel-cli/cmd/lintel/flags"
)

/**** Global configuration keys ****/

// Interactive is true if the user desires interactive output.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && !ctx.Bool(flags.NoAnsi)
}

// Debug is true if the user has requested debug-level logging.
func Debug() bool {
	return ctx.Bool(flags.Debug)
}

// Filepath is the configuration file path.
func Filepath() string {
	return filename
}

/**** Engine configuration keys ****/

// DefaultEndpoint is the analysis server used when none is configured.
const DefaultEndpoint = "https://app.lintel.dev"

// Endpoint is the analysis server the engine reports to.
func Endpoint() string {
	return TryStrings(ctx.String(flags.Endpoint), file.Endpoint(), DefaultEndpoint)
}

// Token is the analysis server authentication token.
func Token() string {
	return TryStrings(ctx.String(flags.Token), file.Token(), os.Getenv("LINTEL_TOKEN"))
}

// EngineCmd is the engine binary to invoke.
func EngineCmd() string {
	return TryStrings(ctx.String(flags.EngineCmd), file.EngineCmd(), os.Getenv("LINTEL_ENGINE"))
}

// WorkDir is the engine's working directory.
func WorkDir() string {
	return TryStrings(ctx.String(flags.WorkDir), file.WorkDir(), ".lintel")
}

// Timeout bounds the engine run time; empty means no timeout.
func Timeout() string {
	return TryStrings(ctx.String(flags.Timeout), file.Timeout())
}

// Skip is true if analysis should be skipped entirely.
func Skip() bool {
	return TryBools(ctx.Bool(flags.Skip), file.Skip(), os.Getenv("LINTEL_SKIP") == "true")
}

/**** Project configuration keys ****/

func ProjectKey() string {
	return TryStrings(ctx.String(flags.ProjectKey), file.ProjectKey())
}

func ProjectName() string {
	return TryStrings(ctx.String(flags.ProjectName), file.ProjectName(), ProjectKey())
}

func ProjectVersion() string {
	return TryStrings(ctx.String(flags.ProjectVersion), file.ProjectVersion())
}

func Branch() string {
	return TryStrings(ctx.String(flags.Branch), file.Branch())
}

func Revision() string {
	return TryStrings(ctx.String(flags.Revision), file.Revision())
}
