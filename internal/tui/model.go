package tui

import (
	"fmt"
	"slices"

	"github.com/arpeggio-cli/arpeggio/internal/catalog"
	"github.com/arpeggio-cli/arpeggio/internal/config"
	"github.com/arpeggio-cli/arpeggio/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// ────────────────────────────────────────────────────────────
// Pane focuses
// ────────────────────────────────────────────────────────────

// Pane represents which UI pane currently has keyboard focus.
type Pane int

const (
	PaneCatalog Pane = iota
	PaneDetail
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the arpeggio TUI.
// Selection state lives in the catalog.Viewer; the model owns only
// presentation state. Rendering is delegated to component functions
// in separate files.
type Model struct {
	viewer *catalog.Viewer
	store  store.Store
	cfg    config.Config
	logger *zap.Logger

	// Data
	items   []catalog.Item // catalog order, materialized once
	visible []int          // indexes into items after filtering
	history []*store.SelectionEvent

	// UI state
	activePane Pane
	cursor     int // position within visible
	width      int
	height     int
	filterMode bool
	filter     textinput.Model
	detail     viewport.Model

	// Status
	statusMsg string
	err       error
}

// NewModel creates a new TUI model over the given viewer and store.
func NewModel(viewer *catalog.Viewer, st store.Store, cfg config.Config, logger *zap.Logger) Model {
	items := slices.Collect(viewer.Items())

	visible := make([]int, len(items))
	for i := range items {
		visible[i] = i
	}

	filter := textinput.New()
	filter.Placeholder = "filter techniques..."
	filter.CharLimit = 64
	filter.Prompt = "/ "

	return Model{
		viewer:    viewer,
		store:     st,
		cfg:       cfg,
		logger:    logger,
		items:     items,
		visible:   visible,
		filter:    filter,
		detail:    viewport.New(0, 0),
		statusMsg: fmt.Sprintf("%d techniques", len(items)),
	}
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type historyLoadedMsg []*store.SelectionEvent
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.loadHistory()
}

func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		events, err := m.store.RecentSelections(20)
		if err != nil {
			return errMsg{err}
		}
		return historyLoadedMsg(events)
	}
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeDetail()
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case historyLoadedMsg:
		m.history = []*store.SelectionEvent(msg)
		m.refreshDetail()
		return m, nil

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		if m.logger != nil {
			m.logger.Error("tui error", zap.Error(msg.err))
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input based on current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ── Global ──

	switch key {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if !m.filterMode {
			return m, tea.Quit
		}

	case "tab", "shift+tab":
		if !m.filterMode {
			if m.activePane == PaneCatalog {
				m.activePane = PaneDetail
			} else {
				m.activePane = PaneCatalog
			}
		}
		return m, nil

	case "esc":
		if m.filterMode {
			m.filterMode = false
			m.filter.SetValue("")
			m.filter.Blur()
			m.applyFilter()
		} else if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
		}
		return m, nil

	case "/":
		if !m.filterMode {
			m.filterMode = true
			m.activePane = PaneCatalog
			return m, m.filter.Focus()
		}
	}

	// ── Filter mode ──

	if m.filterMode {
		if key == "enter" {
			m.filterMode = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	// ── Pane-specific ──

	switch m.activePane {
	case PaneCatalog:
		switch key {
		case "j", "down":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = maxInt(0, len(m.visible)-1)
		case "enter":
			return m.selectUnderCursor()
		}

	case PaneDetail:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m, nil
}

// selectUnderCursor makes the item under the cursor active. All
// selection flows through the viewer; observers (history recording)
// fire inside Select.
func (m Model) selectUnderCursor() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.visible) {
		return m, nil
	}
	item := m.items[m.visible[m.cursor]]

	if err := m.viewer.Select(item.ID); err != nil {
		m.err = err
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	m.err = nil
	m.statusMsg = fmt.Sprintf("Selected %s", item.Name)
	m.detail.GotoTop()
	m.refreshDetail()
	return m, m.loadHistory()
}

// applyFilter recomputes the visible index set from the filter query
// and clamps the cursor.
func (m *Model) applyFilter() {
	m.visible = filterItems(m.items, m.filter.Value())
	m.cursor = clamp(m.cursor, 0, maxInt(0, len(m.visible)-1))
}

// resizeDetail keeps the viewport in sync with the detail panel size.
func (m *Model) resizeDetail() {
	w, h := m.detailPanelSize()
	m.detail.Width = maxInt(0, w-4)
	m.detail.Height = maxInt(0, h-4)
}

// detailPanelSize computes the detail panel dimensions for the current
// layout.
func (m Model) detailPanelSize() (int, int) {
	bodyHeight := m.height - 2 // header + footer
	if m.width < 60 {
		return m.width, bodyHeight
	}
	leftWidth := m.width * 35 / 100
	return m.width - leftWidth, bodyHeight
}

// refreshDetail re-renders the detail pane content for the active item.
func (m *Model) refreshDetail() {
	if m.width == 0 {
		return
	}
	m.detail.SetContent(renderDetailContent(m, m.detail.Width))
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - 2 // header + footer

	var body string
	if m.width < 60 {
		body = m.renderCompactLayout(bodyHeight)
	} else {
		body = m.renderMainLayout(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderMainLayout assembles the two-pane browser view.
func (m Model) renderMainLayout(totalHeight int) string {
	leftWidth := m.width * 35 / 100
	rightWidth := m.width - leftWidth

	list := renderCatalogPanel(&m, leftWidth, totalHeight)
	detail := renderDetailPanel(&m, rightWidth, totalHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

// renderCompactLayout is used when the terminal is narrow (< 60 cols).
// Only the focused pane is shown.
func (m Model) renderCompactLayout(totalHeight int) string {
	if m.activePane == PaneDetail {
		return renderDetailPanel(&m, m.width, totalHeight)
	}
	return renderCatalogPanel(&m, m.width, totalHeight)
}
