package project

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Well-known property keys understood by the analysis engine.
const (
	KeyProjectKey     = "projectKey"
	KeyProjectName    = "projectName"
	KeyProjectVersion = "projectVersion"
	KeyBaseDir        = "projectBaseDir"
	KeySources        = "sources"
	KeyTests          = "tests"
	KeyExclusions     = "exclusions"
	KeyEncoding       = "sourceEncoding"
)

// Root-only global property keys.
const (
	KeyHostURL  = "host.url"
	KeyToken    = "token"
	KeyWorkDir  = "working.directory"
	KeyBranch   = "branch"
	KeyRevision = "scm.revision"
)

// A Pair is a single key/value property. Conversion returns pairs rather than
// a map so that later pairs deterministically overwrite earlier ones.
type Pair struct {
	Key   string
	Value string
}

// Pairs are properties in insertion order.
type Pairs []Pair

// Convert derives the property pairs of a non-root project: the well-known
// keys first, then the free-form overrides.
func Convert(p Project) (Pairs, error) {
	pairs := convertCommon(p)

	free, err := convertMap(p.Properties, p.Name)
	if err != nil {
		return nil, err
	}
	return append(pairs, free...), nil
}

// ConvertRoot derives the property pairs of the tree's root. It extends the
// ordinary conversion with the project coordinates and, last of all, the
// root-only global engine settings.
func ConvertRoot(r Root) (Pairs, error) {
	var pairs Pairs
	if r.Key != "" {
		pairs = append(pairs, Pair{KeyProjectKey, r.Key})
	}
	if r.Version != "" {
		pairs = append(pairs, Pair{KeyProjectVersion, r.Version})
	}
	pairs = append(pairs, convertCommon(r.Project)...)

	free, err := convertMap(r.Properties, r.Name)
	if err != nil {
		return nil, err
	}
	pairs = append(pairs, free...)

	globals, err := convertMap(r.Globals, r.Name)
	if err != nil {
		return nil, err
	}
	return append(pairs, globals...), nil
}

func convertCommon(p Project) Pairs {
	var pairs Pairs
	if p.Name != "" {
		pairs = append(pairs, Pair{KeyProjectName, p.Name})
	}
	if p.Dir != "" {
		pairs = append(pairs, Pair{KeyBaseDir, p.Dir})
	}
	if len(p.Sources) > 0 {
		pairs = append(pairs, Pair{KeySources, strings.Join(p.Sources, ",")})
	}
	if len(p.Tests) > 0 {
		pairs = append(pairs, Pair{KeyTests, strings.Join(p.Tests, ",")})
	}
	if len(p.Exclusions) > 0 {
		pairs = append(pairs, Pair{KeyExclusions, strings.Join(p.Exclusions, ",")})
	}
	if p.Encoding != "" {
		pairs = append(pairs, Pair{KeyEncoding, p.Encoding})
	}
	return pairs
}

// convertMap turns a free-form property map into pairs, sorted by key so that
// conversion is deterministic. Keys must be non-empty and single-line; the
// engine's property format cannot represent anything else.
func convertMap(properties map[string]string, name string) (Pairs, error) {
	if len(properties) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make(Pairs, 0, len(keys))
	for _, key := range keys {
		if key == "" || strings.ContainsAny(key, "\n=") {
			return nil, errors.Errorf("invalid property key %q in project %q", key, name)
		}
		pairs = append(pairs, Pair{key, properties[key]})
	}
	return pairs, nil
}
