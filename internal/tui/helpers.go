package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/arpeggio-cli/arpeggio/internal/catalog"
)

// ────────────────────────────────────────────────────────────
// Catalog filtering
// ────────────────────────────────────────────────────────────

// filterItems returns the indexes of items matching the query, in
// catalog order. Matching is case-insensitive substring over id, name
// and category; when nothing matches literally, near misses by edit
// distance against the name are offered instead, closest first.
func filterItems(items []catalog.Item, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		all := make([]int, len(items))
		for i := range items {
			all[i] = i
		}
		return all
	}

	var matched []int
	for i, it := range items {
		haystack := strings.ToLower(it.ID + " " + it.Name + " " + it.Category)
		if strings.Contains(haystack, query) {
			matched = append(matched, i)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	// Fuzzy fallback for typos.
	type ranked struct {
		idx  int
		dist int
	}
	var near []ranked
	maxDist := len(query)/2 + 1
	for i, it := range items {
		d := levenshtein.ComputeDistance(query, strings.ToLower(it.Name))
		if d2 := levenshtein.ComputeDistance(query, strings.ToLower(it.ID)); d2 < d {
			d = d2
		}
		if d <= maxDist {
			near = append(near, ranked{idx: i, dist: d})
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })

	out := make([]int, len(near))
	for i, r := range near {
		out[i] = r.idx
	}
	return out
}

// ────────────────────────────────────────────────────────────
// Category rendering
// ────────────────────────────────────────────────────────────

// catTag returns a short colored label for a technique category.
func catTag(category string) string {
	switch category {
	case "rhythm":
		return catRhythmStyle.Render("rhythm")
	case "melody":
		return catMelodyStyle.Render("melody")
	case "harmony":
		return catHarmonyStyle.Render("harmony")
	default:
		return catDefaultStyle.Render(category)
	}
}

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// truncate cuts a string to maxLen and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
