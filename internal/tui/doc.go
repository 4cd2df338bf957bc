// Package tui implements the arpeggio terminal user interface.
//
// Built with Charmbracelet's BubbleTea, Bubbles, Lipgloss and Glamour.
// Selection state is owned by a catalog.Viewer; the model layers
// presentation state (cursor, filter, scroll) on top and routes every
// selection through the viewer so observers fire.
//
// Component architecture:
//
//	model.go       — root model, message routing, Init/Update
//	theme.go       — centralized color + style definitions
//	header.go      — top bar with active technique, footer hints
//	cataloglist.go — technique list with filter-aware scrolling
//	detail.go      — metadata, glamour docs, pattern preview
//	helpers.go     — filtering, category tags, truncation
package tui
