package props_test

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"

	"github.com/lintelhq/lintel-cli/project"
	"github.com/lintelhq/lintel-cli/props"
)

func testLogger() (*log.Logger, *memory.Handler) {
	handler := memory.New()
	return &log.Logger{Handler: handler, Level: log.InfoLevel}, handler
}

func TestFlattenSingleProjectBackfillsSources(t *testing.T) {
	logger, _ := testLogger()
	flat, err := props.Flatten(project.Root{}, logger)

	assert.NoError(t, err)
	assert.Equal(t, props.Properties{"sources": ""}, flat)
	assert.NotContains(t, flat, "modules")
}

func TestFlattenNamedSubproject(t *testing.T) {
	logger, _ := testLogger()
	root := project.Root{
		Project: project.Project{
			Name: "root",
			Subprojects: []project.Project{
				{Name: "childA", Properties: map[string]string{"x": "1"}},
			},
		},
	}
	flat, err := props.Flatten(root, logger)

	assert.NoError(t, err)
	assert.Equal(t, "1", flat["childA.x"])
	assert.Equal(t, "", flat["childA.sources"])
	assert.Equal(t, "childA", flat["modules"])
	assert.Equal(t, "", flat["sources"])
	// Root keys are unprefixed.
	assert.NotContains(t, flat, "root.sources")
}

func TestFlattenSkipExcludesSubtree(t *testing.T) {
	logger, handler := testLogger()
	root := project.Root{
		Project: project.Project{
			Subprojects: []project.Project{
				{
					Name:       "childA",
					Skip:       true,
					Properties: map[string]string{"x": "1"},
					Subprojects: []project.Project{
						{Name: "grandchild"},
					},
				},
			},
		},
	}
	flat, err := props.Flatten(root, logger)

	assert.NoError(t, err)
	for key := range flat {
		assert.NotContains(t, key, "childA")
	}
	assert.NotContains(t, flat, "modules")

	assert.Len(t, handler.Entries, 1)
	assert.Contains(t, handler.Entries[0].Message, "childA")
}

func TestFlattenSkippedRootYieldsNothing(t *testing.T) {
	logger, handler := testLogger()
	root := project.Root{
		Project: project.Project{
			Name: "root",
			Skip: true,
			Subprojects: []project.Project{
				{Name: "childA"},
			},
		},
	}
	flat, err := props.Flatten(root, logger)

	assert.NoError(t, err)
	assert.Empty(t, flat)
	assert.Len(t, handler.Entries, 1)
}

func TestFlattenDoesNotOverwriteExplicitSources(t *testing.T) {
	logger, _ := testLogger()
	root := project.Root{
		Project: project.Project{
			Properties: map[string]string{"sources": "foo"},
		},
	}
	flat, err := props.Flatten(root, logger)

	assert.NoError(t, err)
	assert.Equal(t, "foo", flat["sources"])
}

func TestFlattenPreservesModuleOrder(t *testing.T) {
	logger, _ := testLogger()
	root := project.Root{
		Project: project.Project{
			Subprojects: []project.Project{
				{Name: "B"},
				{Name: "A"},
				{Name: "C"},
			},
		},
	}
	flat, err := props.Flatten(root, logger)

	assert.NoError(t, err)
	assert.Equal(t, "B,A,C", flat["modules"])
}

func TestFlattenIsRepeatable(t *testing.T) {
	logger, _ := testLogger()
	root := project.Root{
		Key:     "org:app",
		Version: "1.2.3",
		Globals: map[string]string{"host.url": "https://engine.example.com"},
		Project: project.Project{
			Name:    "app",
			Sources: []string{"src/main"},
			Subprojects: []project.Project{
				{Name: "api", Sources: []string{"api/src"}},
				{Name: "worker", Skip: true},
			},
		},
	}

	first, err := props.Flatten(root, logger)
	assert.NoError(t, err)
	second, err := props.Flatten(root, logger)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFlattenNestedSubprojects(t *testing.T) {
	logger, _ := testLogger()
	root := project.Root{
		Project: project.Project{
			Name: "app",
			Subprojects: []project.Project{
				{
					Name: "services",
					Subprojects: []project.Project{
						{Name: "billing", Properties: map[string]string{"x": "1"}},
					},
				},
			},
		},
	}
	flat, err := props.Flatten(root, logger)

	assert.NoError(t, err)
	assert.Equal(t, "1", flat["services.billing.x"])
	assert.Equal(t, "", flat["services.billing.sources"])
	assert.Equal(t, "billing", flat["services.modules"])
	assert.Equal(t, "services", flat["modules"])
}

func TestFlattenPropagatesConversionErrors(t *testing.T) {
	logger, _ := testLogger()
	root := project.Root{
		Project: project.Project{
			Subprojects: []project.Project{
				{Name: "childA", Properties: map[string]string{"bad\nkey": "1"}},
			},
		},
	}
	_, err := props.Flatten(root, logger)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "childA")
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "sources", props.Join("", "sources"))
	assert.Equal(t, "childA.sources", props.Join("childA", "sources"))
	assert.Equal(t, "a.b.c", props.Join("a.b", "c"))
}
