package config

import (
	"errors"

	"github.com/lintelhq/lintel-cli/files"
)

var ErrFileNotFound = errors.New("no files existed")

// TryStrings returns the first non-empty candidate.
func TryStrings(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// TryBools returns true if any candidate is true.
func TryBools(candidates ...bool) bool {
	for _, c := range candidates {
		if c {
			return true
		}
	}
	return false
}

// TryFiles returns the first candidate path that exists as a regular file.
func TryFiles(candidates ...string) (string, error) {
	for _, c := range candidates {
		ok, err := files.Exists(c)
		if err != nil {
			return "", err
		}
		if ok {
			return c, nil
		}
	}
	return "", ErrFileNotFound
}
