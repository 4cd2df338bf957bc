// Package report provides lightweight, deterministic analysis of the
// selection history. All analysis uses plain statistics over the stored
// events.
//
// Key capabilities:
//   - Per-technique usage shares
//   - Favorite detection via Z-score over selection counts
//   - Category breakdown
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/arpeggio-cli/arpeggio/internal/store"
	"github.com/arpeggio-cli/arpeggio/pkg/timeutil"
)

// Reporter builds usage reports from the selection history.
type Reporter struct {
	store store.Store
}

// NewReporter creates a reporter backed by the given store.
func NewReporter(st store.Store) *Reporter {
	return &Reporter{store: st}
}

// TechniqueUsage summarizes the history for one technique.
type TechniqueUsage struct {
	TechniqueID    string  `json:"technique_id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Count          int     `json:"count"`
	Share          float64 `json:"share_pct"`
	ZScore         float64 `json:"z_score"`
	Favorite       bool    `json:"favorite"`
	LastSelectedAt int64   `json:"last_selected_at"`
}

// CategoryUsage aggregates selections per category.
type CategoryUsage struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Share    float64 `json:"share_pct"`
}

// UsageReport is the complete output of `arpeggio history --report`.
type UsageReport struct {
	GeneratedAt        string           `json:"generated_at"`
	TotalSelections    int              `json:"total_selections"`
	DistinctTechniques int              `json:"distinct_techniques"`
	Techniques         []TechniqueUsage `json:"techniques"`
	Categories         []CategoryUsage  `json:"categories"`
}

// UsageSummary aggregates the full selection history.
//
// A technique is marked a favorite when its selection count sits more
// than one standard deviation above the mean, which answers: "which
// techniques do I actually reach for?"
func (r *Reporter) UsageSummary() (*UsageReport, error) {
	counts, err := r.store.SelectionCounts()
	if err != nil {
		return nil, fmt.Errorf("aggregating selection counts: %w", err)
	}

	rep := &UsageReport{
		GeneratedAt:        time.Now().Format(time.RFC3339),
		DistinctTechniques: len(counts),
	}
	for _, c := range counts {
		rep.TotalSelections += c.Count
	}
	if rep.TotalSelections == 0 {
		return rep, nil
	}

	// Mean and stddev of per-technique counts for favorite detection.
	var sum, sumSq float64
	for _, c := range counts {
		v := float64(c.Count)
		sum += v
		sumSq += v * v
	}
	n := float64(len(counts))
	mean := sum / n
	stddev := math.Sqrt(sumSq/n - mean*mean)

	byCategory := make(map[string]int)
	for _, c := range counts {
		z := 0.0
		if stddev > 0 {
			z = (float64(c.Count) - mean) / stddev
		}
		rep.Techniques = append(rep.Techniques, TechniqueUsage{
			TechniqueID:    c.TechniqueID,
			Name:           c.Name,
			Category:       c.Category,
			Count:          c.Count,
			Share:          math.Round(float64(c.Count)/float64(rep.TotalSelections)*10000) / 100,
			ZScore:         math.Round(z*100) / 100,
			Favorite:       stddev > 0 && z > 1.0,
			LastSelectedAt: c.LastSelectedAt,
		})
		byCategory[c.Category] += c.Count
	}

	for cat, count := range byCategory {
		rep.Categories = append(rep.Categories, CategoryUsage{
			Category: cat,
			Count:    count,
			Share:    math.Round(float64(count)/float64(rep.TotalSelections)*10000) / 100,
		})
	}
	sort.Slice(rep.Categories, func(i, j int) bool {
		if rep.Categories[i].Count != rep.Categories[j].Count {
			return rep.Categories[i].Count > rep.Categories[j].Count
		}
		return rep.Categories[i].Category < rep.Categories[j].Category
	})

	return rep, nil
}

// FormatReport generates a human-readable markdown report.
func (r *Reporter) FormatReport(rep *UsageReport) string {
	var b strings.Builder

	b.WriteString("# Arpeggio Usage Report\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", rep.GeneratedAt))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Total Selections | %d |\n", rep.TotalSelections))
	b.WriteString(fmt.Sprintf("| Distinct Techniques | %d |\n\n", rep.DistinctTechniques))

	if len(rep.Techniques) > 0 {
		b.WriteString("## Techniques\n\n")
		b.WriteString("| Technique | Category | Count | Share | Last Used |\n")
		b.WriteString("|-----------|----------|-------|-------|-----------|\n")
		for _, u := range rep.Techniques {
			name := u.Name
			if u.Favorite {
				name = "★ " + name
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %d | %.1f%% | %s |\n",
				name, u.Category, u.Count, u.Share,
				timeutil.RelativeTime(u.LastSelectedAt)))
		}
		b.WriteString("\n")
	}

	if len(rep.Categories) > 0 {
		b.WriteString("## Categories\n\n")
		for _, c := range rep.Categories {
			b.WriteString(fmt.Sprintf("- **%s**: %d (%.1f%%)\n", c.Category, c.Count, c.Share))
		}
	}

	return b.String()
}
