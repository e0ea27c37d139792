package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := []byte(`# Library

## Decision Making

- **First Principles**: Reason from fundamentals.
- **Inversion**: Work backwards from failure.

## Psychology

- **Anchoring**: First numbers drag estimates.
`)
	catalog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	decisions := catalog["Decision Making"]
	require.Len(t, decisions, 2)
	assert.Equal(t, "first-principles", decisions[0].ID)
	assert.Equal(t, "First Principles", decisions[0].Name)
	assert.Equal(t, "Reason from fundamentals.", decisions[0].Description)
	assert.Equal(t, "Decision Making", decisions[0].Category)
	assert.Equal(t, "inversion", decisions[1].ID)

	psych := catalog["Psychology"]
	require.Len(t, psych, 1)
	assert.Equal(t, "anchoring", psych[0].ID)
}

func TestParseSkipsEntriesWithoutName(t *testing.T) {
	src := []byte(`## Strategy

- just prose with no bold name
- **Flanking**: Compete sideways.
`)
	catalog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, catalog["Strategy"], 1)
	assert.Equal(t, "flanking", catalog["Strategy"][0].ID)
}

func TestParseDisambiguatesDuplicateNames(t *testing.T) {
	src := []byte(`## One

- **Echo**: first.

## Two

- **Echo**: second.
`)
	catalog, err := Parse(src)
	require.NoError(t, err)
	ids := map[string]bool{}
	for _, models := range catalog {
		for _, model := range models {
			assert.False(t, ids[model.ID], "duplicate id %q", model.ID)
			ids[model.ID] = true
		}
	}
}

func TestParseSuffixAvoidsLiteralCollision(t *testing.T) {
	src := []byte(`## One

- **Echo**: first.
- **Echo 2**: derives to the same id the suffix would pick.
- **Echo**: third.
`)
	catalog, err := Parse(src)
	require.NoError(t, err)
	models := catalog["One"]
	require.Len(t, models, 3)
	assert.Equal(t, "echo", models[0].ID)
	assert.Equal(t, "echo-2", models[1].ID)
	assert.Equal(t, "echo-3", models[2].ID)
}

func TestParseEmptyLibrary(t *testing.T) {
	_, err := Parse([]byte("just prose, no headings"))
	assert.Error(t, err)
}

func TestDefaultLibrary(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)
	assert.NotZero(t, catalog.Len())
	// every bundled category must be placeable via the static table.
	for category := range catalog {
		_, ok := Config(category)
		assert.True(t, ok, "category %q has no configuration", category)
	}
}
