package tui

import (
	"testing"

	"github.com/arpeggio-cli/arpeggio/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: "euclid-tresillo", Name: "Euclidean Tresillo", Category: "rhythm"},
		{ID: "markov-pentatonic", Name: "Markov Pentatonic", Category: "melody"},
		{ID: "arp-up", Name: "Arpeggio Up", Category: "harmony"},
	}
}

func TestFilterItemsEmptyQueryReturnsAll(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, filterItems(testItems(), ""))
	assert.Equal(t, []int{0, 1, 2}, filterItems(testItems(), "   "))
}

func TestFilterItemsSubstring(t *testing.T) {
	items := testItems()

	assert.Equal(t, []int{0}, filterItems(items, "tresillo"))
	assert.Equal(t, []int{1}, filterItems(items, "MARKOV"), "matching is case-insensitive")
	assert.Equal(t, []int{1}, filterItems(items, "melody"), "category is searchable")
	assert.Equal(t, []int{2}, filterItems(items, "p-u"), "id is searchable")
}

func TestFilterItemsFuzzyFallback(t *testing.T) {
	items := testItems()

	// "tresilo" matches nothing literally; edit distance rescues it.
	got := filterItems(items, "euclidean tresilo")
	assert.Equal(t, []int{0}, got)

	// Garbage stays empty rather than matching everything.
	assert.Empty(t, filterItems(items, "zzzzzzzzzzzz"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hel...", truncate("hello world", 6))
	assert.Equal(t, "he", truncate("hello", 2))
	assert.Equal(t, "", truncate("hello", 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, clamp(5, 0, 10))
	assert.Equal(t, 0, clamp(-3, 0, 10))
	assert.Equal(t, 10, clamp(42, 0, 10))
}
