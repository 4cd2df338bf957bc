// Arpeggio TUI — interactive reference browser for algorithmic
// composition techniques.
//
// Usage:
//
//	arpeggio-tui [flags]
//
// Flags:
//
//	--config  Path to config.toml (default: user config dir)
//	--db      Path to SQLite database file (overrides config)
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/arpeggio-cli/arpeggio/internal/catalog"
	"github.com/arpeggio-cli/arpeggio/internal/config"
	"github.com/arpeggio-cli/arpeggio/internal/library"
	"github.com/arpeggio-cli/arpeggio/internal/logging"
	"github.com/arpeggio-cli/arpeggio/internal/store"
	"github.com/arpeggio-cli/arpeggio/internal/tui"
	"github.com/arpeggio-cli/arpeggio/pkg/timeutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to config.toml")
	dbOverride := flag.String("db", "", "Path to SQLite database file")
	flag.Parse()

	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		// A broken config falls back to defaults; mention it and move on.
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if *dbOverride != "" {
		cfg.DBPath = *dbOverride
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		log.Fatalf("Failed to resolve database path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	logPath, _ := cfg.ResolveLogPath()
	logger := logging.NewOrNop(logPath)
	defer logger.Sync()

	st, err := store.NewDBService(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database at %s: %v", dbPath, err)
	}
	defer st.Close()

	if err := syncLibrary(st); err != nil {
		log.Fatalf("Failed to sync technique library: %v", err)
	}

	opts := library.Options{Steps: cfg.Preview.Steps, Seed: cfg.Preview.Seed}
	viewer, err := catalog.NewViewer(library.Items(opts))
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}

	// Record every selection as a side effect of viewer notification.
	sessionID := uuid.NewString()
	viewer.Subscribe(func(it catalog.Item) {
		ev := &store.SelectionEvent{
			EventID:     uuid.NewString(),
			SessionID:   sessionID,
			TechniqueID: it.ID,
			SelectedAt:  timeutil.NowNano(),
		}
		if err := st.RecordSelection(ev); err != nil {
			logger.Warn("recording selection", zap.String("technique", it.ID), zap.Error(err))
		}
	})

	logger.Info("starting tui",
		zap.String("db", dbPath),
		zap.String("session", sessionID),
		zap.Int("techniques", viewer.Len()))

	model := tui.NewModel(viewer, st, cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// syncLibrary mirrors the built-in techniques into the store so the
// CLI and the history joins see the same catalog.
func syncLibrary(st store.Store) error {
	defs := library.Definitions()
	now := timeutil.NowNano()

	ts := make([]*store.Technique, 0, len(defs))
	for i, def := range defs {
		params := def.ParamsJSON()
		ts = append(ts, &store.Technique{
			ID:          def.ID,
			Name:        def.Name,
			Category:    def.Category,
			Description: def.Description,
			ParamsJSON:  &params,
			Position:    i,
			UpdatedAt:   now,
		})
	}
	return st.SyncTechniques(ts)
}
