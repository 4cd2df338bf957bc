package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/arpeggio-cli/arpeggio/internal/store"
)

func seededStore(t *testing.T, picks map[string]int) *store.DBService {
	t.Helper()

	svc, err := store.NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	t.Cleanup(func() { svc.Close() })

	now := time.Now().UnixNano()
	ts := []*store.Technique{
		{ID: "euclid-tresillo", Name: "Euclidean Tresillo", Category: "rhythm",
			Description: "d", Position: 0, UpdatedAt: now},
		{ID: "markov-pentatonic", Name: "Markov Pentatonic", Category: "melody",
			Description: "d", Position: 1, UpdatedAt: now},
		{ID: "arp-up", Name: "Arpeggio Up", Category: "harmony",
			Description: "d", Position: 2, UpdatedAt: now},
	}
	if err := svc.SyncTechniques(ts); err != nil {
		t.Fatalf("SyncTechniques failed: %v", err)
	}

	i := 0
	for id, n := range picks {
		for k := 0; k < n; k++ {
			ev := &store.SelectionEvent{
				EventID:     fmt.Sprintf("evt-%s-%d", id, k),
				SessionID:   "s1",
				TechniqueID: id,
				SelectedAt:  now + int64(i)*1_000_000,
			}
			i++
			if err := svc.RecordSelection(ev); err != nil {
				t.Fatalf("RecordSelection failed: %v", err)
			}
		}
	}
	return svc
}

func TestUsageSummaryEmptyHistory(t *testing.T) {
	svc := seededStore(t, nil)
	rep, err := NewReporter(svc).UsageSummary()
	if err != nil {
		t.Fatalf("UsageSummary failed: %v", err)
	}
	if rep.TotalSelections != 0 || len(rep.Techniques) != 0 {
		t.Errorf("expected empty report, got %+v", rep)
	}
}

func TestUsageSummaryCountsAndShares(t *testing.T) {
	svc := seededStore(t, map[string]int{
		"euclid-tresillo":   6,
		"markov-pentatonic": 3,
		"arp-up":            1,
	})

	rep, err := NewReporter(svc).UsageSummary()
	if err != nil {
		t.Fatalf("UsageSummary failed: %v", err)
	}

	if rep.TotalSelections != 10 {
		t.Errorf("expected 10 total selections, got %d", rep.TotalSelections)
	}
	if rep.DistinctTechniques != 3 {
		t.Errorf("expected 3 distinct techniques, got %d", rep.DistinctTechniques)
	}

	// SelectionCounts orders most-selected first.
	if rep.Techniques[0].TechniqueID != "euclid-tresillo" {
		t.Fatalf("expected euclid-tresillo first, got %s", rep.Techniques[0].TechniqueID)
	}
	if rep.Techniques[0].Share != 60.0 {
		t.Errorf("expected 60%% share, got %.2f", rep.Techniques[0].Share)
	}

	// counts 6,3,1: mean 3.33, stddev ~2.05 — only the 6 clears z > 1.
	for _, u := range rep.Techniques {
		wantFav := u.TechniqueID == "euclid-tresillo"
		if u.Favorite != wantFav {
			t.Errorf("%s: favorite=%v, expected %v (z=%.2f)",
				u.TechniqueID, u.Favorite, wantFav, u.ZScore)
		}
	}

	if rep.Categories[0].Category != "rhythm" || rep.Categories[0].Count != 6 {
		t.Errorf("expected rhythm x6 as top category, got %+v", rep.Categories[0])
	}
}

func TestUsageSummaryUniformCountsHaveNoFavorites(t *testing.T) {
	svc := seededStore(t, map[string]int{
		"euclid-tresillo":   2,
		"markov-pentatonic": 2,
		"arp-up":            2,
	})

	rep, err := NewReporter(svc).UsageSummary()
	if err != nil {
		t.Fatalf("UsageSummary failed: %v", err)
	}
	for _, u := range rep.Techniques {
		if u.Favorite {
			t.Errorf("%s marked favorite in a uniform history", u.TechniqueID)
		}
		if u.ZScore != 0 {
			t.Errorf("%s: expected z=0 for uniform counts, got %.2f", u.TechniqueID, u.ZScore)
		}
	}
}

func TestFormatReport(t *testing.T) {
	svc := seededStore(t, map[string]int{"euclid-tresillo": 4, "arp-up": 1})

	rp := NewReporter(svc)
	rep, err := rp.UsageSummary()
	if err != nil {
		t.Fatalf("UsageSummary failed: %v", err)
	}

	out := rp.FormatReport(rep)
	for _, want := range []string{
		"# Arpeggio Usage Report",
		"| Total Selections | 5 |",
		"Euclidean Tresillo",
		"## Categories",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
