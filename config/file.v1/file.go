// Package v1 parses version 1 configuration files.
package v1

import (
	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/lintelhq/lintel-cli/files"
	"github.com/lintelhq/lintel-cli/project"
)

var ErrWrongVersion = errors.New("config file version is not 1")

type File struct {
	Version int `yaml:"version" toml:"version"`

	Server  ServerProperties  `yaml:"server,omitempty" toml:"server,omitempty"`
	Engine  EngineProperties  `yaml:"engine,omitempty" toml:"engine,omitempty"`
	Project ProjectProperties `yaml:"project,omitempty" toml:"project,omitempty"`

	// Internal computed + cached properties.
	root project.Root
}

type ServerProperties struct {
	Endpoint string `yaml:"endpoint,omitempty" toml:"endpoint,omitempty"`
	Token    string `yaml:"token,omitempty" toml:"token,omitempty"`
}

type EngineProperties struct {
	Cmd     string `yaml:"cmd,omitempty" toml:"cmd,omitempty"`
	WorkDir string `yaml:"workdir,omitempty" toml:"workdir,omitempty"`
	Timeout string `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
	Skip    bool   `yaml:"skip,omitempty" toml:"skip,omitempty"`
}

type ProjectProperties struct {
	Key      string `yaml:"key" toml:"key"`
	Name     string `yaml:"name,omitempty" toml:"name,omitempty"`
	Version  string `yaml:"version,omitempty" toml:"version,omitempty"`
	Branch   string `yaml:"branch,omitempty" toml:"branch,omitempty"`
	Revision string `yaml:"revision,omitempty" toml:"revision,omitempty"`

	SubprojectProperties `yaml:",inline"`
}

// SubprojectProperties is one node of the configured project tree.
type SubprojectProperties struct {
	ModuleName string `yaml:"module,omitempty" toml:"module,omitempty"`
	Dir        string `yaml:"dir,omitempty" toml:"dir,omitempty"`
	Skip       bool   `yaml:"skip,omitempty" toml:"skip,omitempty"`

	Sources    []string `yaml:"sources,omitempty" toml:"sources,omitempty"`
	Tests      []string `yaml:"tests,omitempty" toml:"tests,omitempty"`
	Exclusions []string `yaml:"exclusions,omitempty" toml:"exclusions,omitempty"`
	Encoding   string   `yaml:"encoding,omitempty" toml:"encoding,omitempty"`

	Properties map[string]string `yaml:"properties,omitempty" toml:"properties,omitempty"`

	Subprojects []SubprojectProperties `yaml:"subprojects,omitempty" toml:"subprojects,omitempty"`
}

// New parses a version 1 configuration file and precomputes its project tree.
func New(data []byte, unmarshal files.UnmarshalFunc) (File, error) {
	// Check whether the version is correct. We first unmarshal into a map so
	// that a missing or mistyped `version` is identified distinctly from
	// malformed contents.
	var contents map[string]interface{}
	err := unmarshal(data, &contents)
	if err != nil {
		return File{}, err
	}
	if !versionIs1(contents["version"]) {
		return File{}, ErrWrongVersion
	}

	var file File
	err = unmarshal(data, &file)
	if err != nil {
		return File{}, err
	}

	log.WithField("project", file.Project.Key).Debug("parsed project configuration")
	file.root = project.Root{
		Key:     file.Project.Key,
		Version: file.Project.Version,
		Project: toProject(file.Project.SubprojectProperties, file.Project.Name),
	}

	return file, nil
}

// versionIs1 accepts the integer types the YAML and TOML parsers produce.
func versionIs1(v interface{}) bool {
	switch version := v.(type) {
	case int:
		return version == 1
	case int64:
		return version == 1
	default:
		return false
	}
}

func toProject(properties SubprojectProperties, name string) project.Project {
	if name == "" {
		name = properties.ModuleName
	}
	p := project.Project{
		Name:       name,
		Dir:        properties.Dir,
		Skip:       properties.Skip,
		Sources:    properties.Sources,
		Tests:      properties.Tests,
		Exclusions: properties.Exclusions,
		Encoding:   properties.Encoding,
		Properties: properties.Properties,
	}
	for _, sub := range properties.Subprojects {
		log.WithField("module", sub.ModuleName).Debug("parsed subproject configuration")
		p.Subprojects = append(p.Subprojects, toProject(sub, ""))
	}
	return p
}

func (file File) Endpoint() string {
	return file.Server.Endpoint
}

func (file File) Token() string {
	return file.Server.Token
}

func (file File) EngineCmd() string {
	return file.Engine.Cmd
}

func (file File) WorkDir() string {
	return file.Engine.WorkDir
}

func (file File) Timeout() string {
	return file.Engine.Timeout
}

func (file File) Skip() bool {
	return file.Engine.Skip
}

func (file File) ProjectKey() string {
	return file.Project.Key
}

func (file File) ProjectName() string {
	return file.Project.Name
}

func (file File) ProjectVersion() string {
	return file.Project.Version
}

func (file File) Branch() string {
	return file.Project.Branch
}

func (file File) Revision() string {
	return file.Project.Revision
}

func (file File) Root() project.Root {
	return file.root
}
