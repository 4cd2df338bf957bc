package library

import (
	"encoding/json"
	"testing"

	"github.com/arpeggio-cli/arpeggio/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionsHaveUniqueCompleteMetadata(t *testing.T) {
	defs := Definitions()
	require.NotEmpty(t, defs)

	seen := make(map[string]bool)
	for _, def := range defs {
		assert.False(t, seen[def.ID], "duplicate technique id %q", def.ID)
		seen[def.ID] = true

		assert.NotEmpty(t, def.Name, "%s: missing name", def.ID)
		assert.NotEmpty(t, def.Category, "%s: missing category", def.ID)
		assert.NotEmpty(t, def.Description, "%s: missing description", def.ID)

		var params map[string]any
		require.NoError(t, json.Unmarshal([]byte(def.ParamsJSON()), &params),
			"%s: params must round-trip as JSON", def.ID)
	}
}

func TestItemsBackAValidViewer(t *testing.T) {
	items := Items(DefaultOptions())
	v, err := catalog.NewViewer(items)
	require.NoError(t, err)
	assert.Equal(t, len(Definitions()), v.Len())
	assert.Equal(t, "euclid-tresillo", v.Active().ID, "curated order starts with the tresillo")
}

func TestEveryItemRenders(t *testing.T) {
	for _, it := range Items(DefaultOptions()) {
		require.NotNil(t, it.Render, "%s: missing render capability", it.ID)
		out := it.Render.Render(80)
		assert.NotEmpty(t, out, "%s: empty preview", it.ID)
	}
}

func TestPatternsAreDeterministicPerSeed(t *testing.T) {
	opts := Options{Steps: 32, Seed: 7}
	for _, def := range Definitions() {
		assert.Equal(t, def.Pattern(opts), def.Pattern(opts),
			"%s: preview must be reproducible", def.ID)
	}
}

func TestOptionsControlStochasticPreviewLength(t *testing.T) {
	opts := Options{Steps: 16, Seed: 3}
	for _, def := range Definitions() {
		if def.Category == "rhythm" {
			continue // euclidean patterns have intrinsic length
		}
		p := def.Pattern(opts)
		assert.Equal(t, 16, p.Steps, "%s", def.ID)
		assert.Len(t, p.Notes, 16, "%s: one note per step", def.ID)
	}
}
