package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	langs := Languages()
	require.NotEmpty(t, langs)
	assert.True(t, KnownLanguage("java"))
	assert.True(t, KnownLanguage("golang"))
	assert.False(t, KnownLanguage("cobol"))
}

func TestEveryLanguageHasRoadmapAndResources(t *testing.T) {
	for _, l := range Languages() {
		sections, ok := Roadmap(l.ID)
		require.True(t, ok, l.ID)
		require.NotEmpty(t, sections, l.ID)
		assert.Positive(t, ModuleCount(l.ID), l.ID)

		list, ok := Resources(l.ID)
		require.True(t, ok, l.ID)
		assert.NotEmpty(t, list, l.ID)
	}
}

func TestRoadmapItemIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, l := range Languages() {
		sections, _ := Roadmap(l.ID)
		for _, section := range sections {
			for _, item := range section.Items {
				assert.False(t, seen[item.ID], "duplicate roadmap id %s", item.ID)
				seen[item.ID] = true
			}
		}
	}
}

func TestResourcesPointAtKnownModules(t *testing.T) {
	for _, l := range Languages() {
		ids := map[string]bool{}
		sections, _ := Roadmap(l.ID)
		for _, section := range sections {
			for _, item := range section.Items {
				ids[item.ID] = true
			}
		}
		list, _ := Resources(l.ID)
		for _, r := range list {
			if r.ModuleID != "" {
				assert.True(t, ids[r.ModuleID], "resource %s points at unknown module %s", r.ID, r.ModuleID)
			}
		}
	}
}

func TestModuleResources(t *testing.T) {
	list := ModuleResources("java", "java-basics-1")
	require.NotEmpty(t, list)
	for _, r := range list {
		assert.Equal(t, "java-basics-1", r.ModuleID)
	}
	assert.Empty(t, ModuleResources("java", "no-such-module"))
}
