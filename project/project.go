// Package project models the analysis configuration of a project and its
// subprojects as a tree. The tree is assembled once by the config package and
// is never mutated afterwards; flattening reads it as a value.
package project

// A Project is one project's (or subproject's) analysis configuration.
type Project struct {
	// Name identifies the project among its siblings and becomes a segment of
	// the dotted property prefix for everything beneath it.
	Name string
	// Dir is the project's base directory.
	Dir string
	// Skip excludes this project and its entire subtree from analysis.
	Skip bool

	Sources    []string
	Tests      []string
	Exclusions []string
	Encoding   string

	// Properties are free-form overrides applied after the derived pairs, so
	// a user can set any key the engine understands.
	Properties map[string]string

	Subprojects []Project
}

// A Root is the top of a project tree. Beyond an ordinary Project it carries
// the project coordinates and the global engine settings that are merged into
// the property map only at the root prefix.
type Root struct {
	Project

	Key     string
	Version string

	// Globals hold root-only engine settings (endpoint, token, working
	// directory and the like), keyed by their final property names.
	Globals map[string]string
}
