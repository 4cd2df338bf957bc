package tui

import (
	"fmt"
	"strings"

	"github.com/arpeggio-cli/arpeggio/pkg/timeutil"
	"github.com/charmbracelet/glamour"
)

// renderDetailContent builds the scrollable detail body for the active
// item: metadata rows, glamour-rendered documentation, the generated
// pattern preview, and recent activity.
func renderDetailContent(m *Model, width int) string {
	item := m.viewer.Active()
	var lines []string

	// ── Metadata ──

	lines = append(lines, detailRow("Name", item.Name))
	lines = append(lines, detailRow("ID", item.ID))
	lines = append(lines, detailRow("Category", item.Category))

	// ── Documentation ──

	if item.Description != "" {
		lines = append(lines, "")
		lines = append(lines, detailSectionStyle.Render("Reference"))
		lines = append(lines, renderMarkdown(item.Description, width))
	}

	// ── Pattern preview ──

	if item.Render != nil {
		lines = append(lines, "")
		lines = append(lines, detailSectionStyle.Render("Preview"))
		for _, row := range strings.Split(item.Render.Render(width), "\n") {
			lines = append(lines, previewStyle.Render(row))
		}
	}

	// ── Recent activity ──

	if len(m.history) > 0 {
		lines = append(lines, "")
		lines = append(lines, detailSectionStyle.Render("Recent Activity"))
		shown := 0
		for _, ev := range m.history {
			if shown >= 5 {
				break
			}
			name := ev.TechniqueID
			for _, it := range m.items {
				if it.ID == ev.TechniqueID {
					name = it.Name
					break
				}
			}
			lines = append(lines, listDimStyle.Render(
				fmt.Sprintf("%s  %s", timeutil.RelativeTime(ev.SelectedAt), name)))
			shown++
		}
	}

	return strings.Join(lines, "\n")
}

// renderMarkdown renders technique documentation through glamour,
// falling back to the raw text if rendering fails.
func renderMarkdown(md string, width int) string {
	if width < 20 {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// renderDetail renders the detail pane (right side) around the viewport.
func renderDetail(m *Model, width int) string {
	titleStyle := panelTitleDimStyle
	if m.activePane == PaneDetail {
		titleStyle = panelTitleStyle
	}
	title := titleStyle.Render("Detail")
	title += listDimStyle.Render("  " + m.viewer.Active().ID)

	return title + "\n\n" + m.detail.View()
}

// renderDetailPanel wraps the detail view in a styled panel.
func renderDetailPanel(m *Model, width, height int) string {
	content := renderDetail(m, width-4)

	style := panelStyle
	if m.activePane == PaneDetail {
		style = panelActiveStyle
	}

	return style.Width(width).Height(height).Render(content)
}

// ── helpers ──

func detailRow(label, value string) string {
	return detailLabelStyle.Render(fmt.Sprintf("%-10s", label)) + detailValueStyle.Render(value)
}
