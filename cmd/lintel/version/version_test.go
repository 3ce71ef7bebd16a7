package version

import (
	"strings"
	"testing"
)

type versions struct {
	name string

	buildType string
	version   string
	commit    string
	goversion string
}

var noLdFlags = versions{
	name: "NoLdFlags",
}

var dev = versions{
	name: "Development",

	buildType: "development",
	version:   "some-branch-name",
	commit:    "12345abcdef",
	goversion: "go version go1.17.5 linux/amd64",
}

var prod = versions{
	name: "Release",

	buildType: "release",
	version:   "v1.2.3",
	commit:    "67890foobar",
	goversion: "go version go1.17.5 linux/amd64",
}

func TestShortStringHasNoSpaces(t *testing.T) {
	testCases := []versions{noLdFlags, dev, prod}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			BuildType = tc.buildType
			Version = tc.version
			Commit = tc.commit
			GoVersion = tc.goversion

			if s := ShortString(); len(strings.Fields(s)) > 1 {
				t.Errorf("ShortString() had whitespace: %#v", s)
			}
		})
	}
}

func TestSemverRejectsDevelopmentBuilds(t *testing.T) {
	BuildType = dev.buildType
	Version = dev.version

	_, err := Semver()
	if err != ErrIsDevelopment {
		t.Errorf("expected ErrIsDevelopment, got: %v", err)
	}
}

func TestSemverParsesReleaseVersions(t *testing.T) {
	BuildType = prod.buildType
	Version = prod.version

	v, err := Semver()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "1.2.3" {
		t.Errorf("unexpected version: %s", v.String())
	}
}
