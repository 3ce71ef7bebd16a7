// Package update implements `lintel update`.
package update

import (
	"github.com/apex/log"
	"github.com/blang/semver"
	"github.com/pkg/errors"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/urfave/cli"

	"github.com/lintelhq/lintel-cli/cmd/lintel/display"
	"github.com/lintelhq/lintel-cli/cmd/lintel/flags"
	"github.com/lintelhq/lintel-cli/cmd/lintel/version"
)

const updateEndpoint = "lintelhq/lintel-cli"

var (
	ErrDevelopmentBuild = errors.New("development builds cannot be automatically updated")
	ErrInvalidVersion   = errors.New("invalid version (are you using a development binary?)")
)

// Cmd exports the `update` CLI command.
var Cmd = cli.Command{
	Name:    "update",
	Aliases: []string{"upgrade"},
	Usage:   "Update `lintel` to the latest version",
	Action:  Run,
	Flags:   flags.Global,
}

var _ cli.ActionFunc = Run

func Run(ctx *cli.Context) error {
	display.InProgress("Checking for updates...")
	defer display.ClearProgress()

	ok, err := AvailableUpdate()
	if err != nil {
		log.Fatalf("Unable to update: %s", err.Error())
	}
	if !ok {
		log.Fatalf("No updates available")
	}

	updated, err := Update()
	if err != nil {
		log.Fatalf("Update failed: %s", err.Error())
	}

	display.ClearProgress()
	log.Infof("lintel has been updated to %s", updated.String())
	return nil
}

// AvailableUpdate reports whether a newer release exists.
func AvailableUpdate() (bool, error) {
	if version.IsDevelopment() {
		return false, ErrDevelopmentBuild
	}

	current, err := version.Semver()
	if err != nil {
		return false, ErrInvalidVersion
	}

	latest, found, err := selfupdate.DetectLatest(updateEndpoint)
	if err != nil {
		return false, errors.Wrap(err, "could not check for updates")
	}

	if !found || latest.Version.Equals(current) {
		return false, nil
	}
	return true, nil
}

// Update replaces the running binary with the latest release.
func Update() (semver.Version, error) {
	if version.IsDevelopment() {
		return semver.Version{}, ErrDevelopmentBuild
	}

	current, err := version.Semver()
	if err != nil {
		return semver.Version{}, ErrInvalidVersion
	}

	latest, err := selfupdate.UpdateSelf(current, updateEndpoint)
	if err != nil {
		return semver.Version{}, errors.Wrap(err, "could not update")
	}

	if latest.Version.Equals(current) {
		return semver.Version{}, errors.New("no update required")
	}
	return latest.Version, nil
}
