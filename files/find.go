package files

import (
	"errors"
	"path/filepath"
)

var (
	ErrDirNotFound = errors.New("no directory found during walk")
	ErrStopWalk    = errors.New("WalkUp: stop")
)

// A WalkUpFunc takes a directory and returns an error.
type WalkUpFunc func(dir string) error

// WalkUp calls walker on startdir and each of its ancestors in upwards order
// until the filesystem root is reached.
//
// If walker returns ErrStopWalk, WalkUp stops and returns the current
// directory. Any other error stops the walk and is returned as WalkUp's
// error. If ErrStopWalk is never returned, WalkUp returns ErrDirNotFound.
func WalkUp(startdir string, walker WalkUpFunc) (string, error) {
	dir, err := filepath.Abs(startdir)
	if err != nil {
		return "", err
	}

	for {
		err := walker(dir)
		if err == ErrStopWalk {
			return dir, nil
		}
		if err != nil {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrDirNotFound
		}
		dir = parent
	}
}
