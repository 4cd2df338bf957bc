package catalog

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeItems() []Item {
	return []Item{
		{ID: "a", Name: "Alpha"},
		{ID: "b", Name: "Beta"},
		{ID: "c", Name: "Gamma"},
	}
}

func TestNewViewerActivatesFirstItem(t *testing.T) {
	v, err := NewViewer(threeItems())
	require.NoError(t, err)
	assert.Equal(t, "a", v.Active().ID)
	assert.Equal(t, 3, v.Len())
}

func TestNewViewerRejectsEmptyCatalog(t *testing.T) {
	_, err := NewViewer(nil)
	require.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = NewViewer([]Item{})
	require.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestNewViewerRejectsDuplicateIDs(t *testing.T) {
	_, err := NewViewer([]Item{{ID: "a"}, {ID: "a"}})
	require.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestSelectEveryCatalogItem(t *testing.T) {
	items := threeItems()
	v, err := NewViewer(items)
	require.NoError(t, err)

	for _, it := range items {
		require.NoError(t, v.Select(it.ID))
		assert.Equal(t, it.ID, v.Active().ID)
		assert.Equal(t, it.Name, v.Active().Name)
	}
}

func TestSelectUnknownIDLeavesActiveUnchanged(t *testing.T) {
	v, err := NewViewer(threeItems())
	require.NoError(t, err)
	require.NoError(t, v.Select("c"))

	before := v.Active()
	err = v.Select("z")
	require.ErrorIs(t, err, ErrUnknownItem)
	assert.Contains(t, err.Error(), `"z"`)
	assert.Equal(t, before, v.Active())
}

func TestItemsIsRestartableAndOrdered(t *testing.T) {
	v, err := NewViewer(threeItems())
	require.NoError(t, err)

	first := slices.Collect(v.Items())
	second := slices.Collect(v.Items())

	want := []string{"a", "b", "c"}
	for i, it := range first {
		assert.Equal(t, want[i], it.ID)
	}
	assert.Equal(t, first, second)

	// Early break must not disturb state or later iterations.
	for range v.Items() {
		break
	}
	assert.Equal(t, first, slices.Collect(v.Items()))
	assert.Equal(t, "a", v.Active().ID)
}

func TestObserversFireOnEverySuccessfulSelect(t *testing.T) {
	v, err := NewViewer(threeItems())
	require.NoError(t, err)

	var seen []string
	v.Subscribe(func(it Item) { seen = append(seen, it.ID) })
	v.Subscribe(func(it Item) { seen = append(seen, "2:"+it.ID) })

	require.NoError(t, v.Select("b"))
	require.NoError(t, v.Select("b")) // idempotent re-select still notifies
	require.Error(t, v.Select("nope"))

	assert.Equal(t, []string{"b", "2:b", "b", "2:b"}, seen)
}

// Mirrors the canonical walkthrough: select "c", fail on "z", list stays ["a","b","c"].
func TestSelectionScenario(t *testing.T) {
	v, err := NewViewer(threeItems())
	require.NoError(t, err)
	assert.Equal(t, "a", v.Active().ID)

	require.NoError(t, v.Select("c"))
	assert.Equal(t, "c", v.Active().ID)

	require.ErrorIs(t, v.Select("z"), ErrUnknownItem)
	assert.Equal(t, "c", v.Active().ID)

	var ids []string
	for it := range v.Items() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestViewerCopiesInputSlice(t *testing.T) {
	items := threeItems()
	v, err := NewViewer(items)
	require.NoError(t, err)

	items[0].Name = "mutated"
	assert.Equal(t, "Alpha", v.Active().Name)
}
