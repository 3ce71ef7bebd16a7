// Package files implements utility routines for finding and reading files.
package files

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
)

func fileMode(elem ...string) (os.FileMode, error) {
	file, err := os.Stat(filepath.Join(elem...))
	if err != nil {
		return 0, err
	}
	return file.Mode(), nil
}

// Exists returns true if the path joined from pathElems is a regular file.
func Exists(pathElems ...string) (bool, error) {
	mode, err := fileMode(pathElems...)
	if notExistErr(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return mode.IsRegular(), nil
}

// ExistsFolder returns true if the path joined from pathElems is a directory.
func ExistsFolder(pathElems ...string) (bool, error) {
	mode, err := fileMode(pathElems...)
	if notExistErr(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return mode.IsDir(), nil
}

// Read reads the contents of the file at the path joined from pathElems.
func Read(pathElems ...string) ([]byte, error) {
	name := filepath.Join(pathElems...)

	contents, err := os.ReadFile(name)
	if err != nil {
		log.WithError(err).WithField("file", name).Debug("could not read file")
	}
	return contents, err
}

// os.IsNotExist doesn't handle non-existent parent directories e.g.
// stat /some/path/without/a/parent.json: not a directory
func notExistErr(err error) bool {
	if os.IsNotExist(err) {
		return true
	}
	if _, ok := err.(*os.PathError); ok {
		return true
	}
	return false
}
