package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	ARPEGGIO  |  Euclidean Tresillo  |  rhythm  |  8 techniques
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("ARPEGGIO")
	sep := headerSepStyle.Render(" │ ")

	active := m.viewer.Active()

	var parts []string
	parts = append(parts, brand)
	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(active.Name))
	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(active.Category))
	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(
		fmt.Sprintf("%d techniques", len(m.items))))

	return headerBarStyle.Width(m.width).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left, right string

	if m.filterMode {
		left = filterBarStyle.Render(m.filter.View())
		right = renderHints([]hint{
			{"enter", "apply"},
			{"esc", "cancel"},
		})
	} else {
		if m.statusMsg != "" {
			if m.err != nil {
				left = statusErrStyle.Render(m.statusMsg)
			} else {
				left = statusStyle.Render(m.statusMsg)
			}
		}
		right = renderHints([]hint{
			{"↑↓", "navigate"},
			{"enter", "select"},
			{"tab", "pane"},
			{"/", "filter"},
			{"q", "quit"},
		})
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
