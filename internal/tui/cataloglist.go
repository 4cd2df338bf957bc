package tui

import (
	"fmt"
	"strings"
)

// renderCatalogList renders the technique list in the left pane.
func renderCatalogList(m *Model, width, height int) string {
	titleStyle := panelTitleDimStyle
	if m.activePane == PaneCatalog {
		titleStyle = panelTitleStyle
	}

	title := titleStyle.Render("Techniques")
	title += listDimStyle.Render(fmt.Sprintf("  %d/%d", len(m.visible), len(m.items)))

	if len(m.visible) == 0 {
		return title + "\n\n" +
			emptyStateStyle.Render("No techniques match the filter.\n\nPress esc to clear it.")
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, "")

	contentHeight := height - 2
	if contentHeight > m.cfg.RowsPerPage {
		contentHeight = m.cfg.RowsPerPage
	}
	if contentHeight < 3 {
		contentHeight = 3
	}

	// Scroll so the cursor stays visible.
	scrollStart := 0
	if m.cursor >= contentHeight {
		scrollStart = m.cursor - contentHeight + 1
	}
	end := scrollStart + contentHeight
	if end > len(m.visible) {
		end = len(m.visible)
	}

	activeID := m.viewer.Active().ID

	for i := scrollStart; i < end; i++ {
		it := m.items[m.visible[i]]

		// Active item marker
		dot := listInactiveDot.Render("○")
		if it.ID == activeID {
			dot = listActiveDot.Render("●")
		}

		name := truncate(it.Name, maxInt(10, width-16))
		content := fmt.Sprintf("%s %s  %s", dot, name, catTag(it.Category))

		if i == m.cursor && m.activePane == PaneCatalog {
			lines = append(lines, listCursorStyle.Width(width-2).Render(content))
		} else {
			lines = append(lines, listItemStyle.Width(width-2).Render(content))
		}
	}

	// Scroll indicator
	if len(m.visible) > contentHeight {
		lines = append(lines, listDimStyle.Render(
			fmt.Sprintf(" %d/%d", m.cursor+1, len(m.visible))))
	}

	return strings.Join(lines, "\n")
}

// renderCatalogPanel wraps the list in a styled panel.
func renderCatalogPanel(m *Model, width, height int) string {
	content := renderCatalogList(m, width-4, height-2)

	style := panelStyle
	if m.activePane == PaneCatalog {
		style = panelActiveStyle
	}

	return style.Width(width).Height(height).Render(content)
}
