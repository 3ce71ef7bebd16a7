package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	yaml "gopkg.in/yaml.v2"

	"github.com/lintelhq/lintel-cli/cmd/lintel/flags"
	v1 "github.com/lintelhq/lintel-cli/config/file.v1"
	"github.com/lintelhq/lintel-cli/files"
	"github.com/lintelhq/lintel-cli/project"
)

// DefaultFilenames are the configuration files searched for, in order, in the
// working directory and its ancestors.
var DefaultFilenames = []string{".lintel.yml", ".lintel.yaml", ".lintel.toml"}

// A File provides the configuration file's values. Accessors return zero
// values for settings the file does not carry.
type File interface {
	Endpoint() string
	Token() string
	EngineCmd() string
	WorkDir() string
	Timeout() string
	Skip() bool

	ProjectKey() string
	ProjectName() string
	ProjectVersion() string
	Branch() string
	Revision() string

	// Root is the project tree as configured by the file alone.
	Root() project.Root
}

// NoFile is the configuration file used when none exists on disk.
type NoFile struct{}

func (NoFile) Endpoint() string       { return "" }
func (NoFile) Token() string          { return "" }
func (NoFile) EngineCmd() string      { return "" }
func (NoFile) WorkDir() string        { return "" }
func (NoFile) Timeout() string        { return "" }
func (NoFile) Skip() bool             { return false }
func (NoFile) ProjectKey() string     { return "" }
func (NoFile) ProjectName() string    { return "" }
func (NoFile) ProjectVersion() string { return "" }
func (NoFile) Branch() string         { return "" }
func (NoFile) Revision() string       { return "" }
func (NoFile) Root() project.Root     { return project.Root{} }

// ReadFile loads the configuration file. An explicit --config path must
// exist; otherwise the default filenames are searched for in the working
// directory and its ancestors, and a missing file is not an error.
func ReadFile(c *cli.Context) (File, string, error) {
	if flagPath := c.String(flags.Config); flagPath != "" {
		file, err := parseFile(flagPath)
		if err != nil {
			return nil, "", err
		}
		return file, flagPath, nil
	}

	path, err := discoverFile()
	if err == ErrFileNotFound {
		return NoFile{}, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	file, err := parseFile(path)
	if err != nil {
		return nil, "", err
	}
	return file, path, nil
}

// ExistsFile returns true if a configuration file exists in the working
// directory.
func ExistsFile() (bool, error) {
	_, err := TryFiles(DefaultFilenames...)
	if err == ErrFileNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// WriteFile writes file to name in the working directory.
func WriteFile(name string, file v1.File) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return errors.Wrap(err, "could not marshal configuration file")
	}
	return os.WriteFile(name, data, 0644)
}

func discoverFile() (string, error) {
	found, err := files.WalkUp(".", func(dir string) error {
		for _, name := range DefaultFilenames {
			ok, err := files.Exists(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			if ok {
				return files.ErrStopWalk
			}
		}
		return nil
	})
	if err == files.ErrDirNotFound {
		return "", ErrFileNotFound
	}
	if err != nil {
		return "", err
	}

	path, err := TryFiles(
		filepath.Join(found, DefaultFilenames[0]),
		filepath.Join(found, DefaultFilenames[1]),
		filepath.Join(found, DefaultFilenames[2]),
	)
	if err != nil {
		return "", err
	}
	return path, nil
}

func parseFile(path string) (File, error) {
	data, err := files.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read configuration file %s", path)
	}

	unmarshal := files.UnmarshalFunc(yaml.Unmarshal)
	if strings.HasSuffix(path, ".toml") {
		unmarshal = toml.Unmarshal
	}

	file, err := v1.New(data, unmarshal)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse configuration file %s", path)
	}
	return file, nil
}
