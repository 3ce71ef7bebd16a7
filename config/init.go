package config

import (
	"os"
	"path/filepath"

	v1 "github.com/lintelhq/lintel-cli/config/file.v1"
)

// InitFile returns a starter configuration file for the working directory,
// using the directory's name as the project key.
func InitFile() v1.File {
	key := "my-project"
	wd, err := os.Getwd()
	if err == nil {
		key = filepath.Base(wd)
	}

	return v1.File{
		Version: 1,
		Project: v1.ProjectProperties{
			Key: key,
			SubprojectProperties: v1.SubprojectProperties{
				Sources: []string{"."},
			},
		},
	}
}
