// Package props flattens a project configuration tree into the single flat
// property map handed to the analysis engine.
package props

import (
	"strings"

	"github.com/apex/log"

	"github.com/lintelhq/lintel-cli/project"
)

// Properties map dotted-path keys to values. Keys are unique; the last write
// for a key wins.
type Properties map[string]string

// ModulesKey lists the names of a project's non-skipped subprojects,
// comma-joined in configuration order. It is omitted when there are none.
const ModulesKey = "modules"

// Flatten converts a project tree into one flat property map.
//
// Every non-skipped project contributes its converted pairs under the dotted
// prefix made of its ancestors' names; the root contributes unprefixed. A
// skipped project excludes its whole subtree and is reported through logger.
// Conversion errors propagate to the caller unmodified.
//
// Flatten does not mutate the tree and performs no I/O; given the same tree
// it always produces the same map.
func Flatten(root project.Root, logger log.Interface) (Properties, error) {
	out := make(Properties)
	if root.Skip {
		logger.Infof("skipping project %s", root.Name)
		return out, nil
	}

	pairs, err := project.ConvertRoot(root)
	if err != nil {
		return nil, err
	}
	err = extract(out, root.Project, pairs, "", logger)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// extract writes one project's pairs under prefix, then recurses into its
// non-skipped subprojects with an extended prefix.
func extract(out Properties, p project.Project, pairs project.Pairs, prefix string, logger log.Interface) error {
	for _, pair := range pairs {
		out[Join(prefix, pair.Key)] = pair.Value
	}

	// The engine rejects property sets where a project has no sources entry
	// at all, so one is always written. A value supplied by conversion wins.
	sources := Join(prefix, project.KeySources)
	if _, ok := out[sources]; !ok {
		out[sources] = ""
	}

	var modules []string
	for _, sub := range p.Subprojects {
		if sub.Skip {
			logger.Infof("skipping project %s", sub.Name)
			continue
		}
		modules = append(modules, sub.Name)

		subpairs, err := project.Convert(sub)
		if err != nil {
			return err
		}
		err = extract(out, sub, subpairs, Join(prefix, sub.Name), logger)
		if err != nil {
			return err
		}
	}
	if len(modules) > 0 {
		out[Join(prefix, ModulesKey)] = strings.Join(modules, ",")
	}
	return nil
}

// Join appends key to a dotted prefix. An empty prefix returns key unchanged.
// This is the only path-construction rule; property keys and subproject
// prefixes both go through it.
func Join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
