// Package store provides the storage layer for arpeggio.
//
// It implements the Store interface using SQLite with WAL mode, an FTS5
// full-text index over technique documentation, and a selection history
// table. The DBService struct is the primary entry point for all
// database operations.
package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrNotFound reports a lookup for a technique id the store does not hold.
var ErrNotFound = errors.New("technique not found")

// Store defines the interface for technique and history persistence.
// This abstraction allows for mocking in tests and potential future
// backends beyond SQLite.
type Store interface {
	// UpsertTechnique persists one technique, replacing an existing row.
	UpsertTechnique(t *Technique) error
	// SyncTechniques upserts the full library in a single transaction.
	SyncTechniques(ts []*Technique) error

	// ListTechniques returns all techniques in catalog order.
	ListTechniques() ([]*Technique, error)
	// GetTechnique returns one technique by id, or ErrNotFound.
	GetTechnique(id string) (*Technique, error)
	// SearchTechniques performs full-text search over name/description.
	SearchTechniques(query string, limit int) ([]*Technique, error)
	// SuggestID returns the known id closest to input by edit distance,
	// or "" when nothing is plausibly close.
	SuggestID(input string) (string, error)

	// RecordSelection appends one selection event to the history.
	RecordSelection(ev *SelectionEvent) error
	// RecentSelections returns the newest events first.
	RecentSelections(limit int) ([]*SelectionEvent, error)
	// SelectionCounts aggregates the history per technique.
	SelectionCounts() ([]*SelectionCount, error)

	// Close gracefully shuts down the database connection.
	Close() error
}

// ============================================================
// Domain Models
// ============================================================

// Technique is the stored mirror of one library entry.
type Technique struct {
	ID          string  `json:"technique_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ParamsJSON  *string `json:"params_json,omitempty"`
	Position    int     `json:"position"`
	UpdatedAt   int64   `json:"updated_at"` // Unix nanoseconds
}

// SelectionEvent records one selection of a technique.
type SelectionEvent struct {
	EventID     string `json:"event_id"`
	SessionID   string `json:"session_id"`
	TechniqueID string `json:"technique_id"`
	SelectedAt  int64  `json:"selected_at"` // Unix nanoseconds
}

// SelectionCount aggregates the history for one technique.
type SelectionCount struct {
	TechniqueID    string `json:"technique_id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Count          int    `json:"count"`
	LastSelectedAt int64  `json:"last_selected_at"`
}

// ============================================================
// DBService Implementation
// ============================================================

// DBService implements the Store interface using SQLite. It manages the
// connection, prepared statements for the hot paths, and thread-safe
// access through a read-write mutex.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtUpsertTechnique *sql.Stmt
	stmtInsertSelection *sql.Stmt
}

// NewDBService creates a new database service, initializes the schema,
// and prepares frequently-used statements.
//
// Use ":memory:" as the path for in-memory databases (useful in tests).
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_cache_size=-64000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// SQLite supports a single writer; keep one connection alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtUpsertTechnique, err = s.db.Prepare(`
		INSERT INTO techniques (technique_id, name, category, description, params_json, position, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(technique_id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			description = excluded.description,
			params_json = excluded.params_json,
			position = excluded.position,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("preparing UpsertTechnique: %w", err)
	}

	s.stmtInsertSelection, err = s.db.Prepare(`
		INSERT INTO selections (event_id, session_id, technique_id, selected_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertSelection: %w", err)
	}

	return nil
}

// UpsertTechnique persists one technique, replacing an existing row with
// the same id.
func (s *DBService) UpsertTechnique(t *Technique) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.stmtUpsertTechnique.Exec(
		t.ID, t.Name, t.Category, t.Description, t.ParamsJSON, t.Position, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting technique %s: %w", t.ID, err)
	}
	return nil
}

// SyncTechniques upserts the full library within a single transaction so
// a startup sync is atomic.
func (s *DBService) SyncTechniques(ts []*Technique) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning technique sync transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt := tx.Stmt(s.stmtUpsertTechnique)
	for _, t := range ts {
		_, err := stmt.Exec(
			t.ID, t.Name, t.Category, t.Description, t.ParamsJSON, t.Position, t.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("syncing technique %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing technique sync: %w", err)
	}
	return nil
}

// ListTechniques returns all techniques in catalog order.
func (s *DBService) ListTechniques() ([]*Technique, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT technique_id, name, category, description, params_json, position, updated_at
		FROM techniques
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying techniques: %w", err)
	}
	defer rows.Close()

	return scanTechniques(rows)
}

// GetTechnique returns one technique by id.
func (s *DBService) GetTechnique(id string) (*Technique, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := &Technique{}
	err := s.db.QueryRow(`
		SELECT technique_id, name, category, description, params_json, position, updated_at
		FROM techniques
		WHERE technique_id = ?
	`, id).Scan(&t.ID, &t.Name, &t.Category, &t.Description, &t.ParamsJSON, &t.Position, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying technique %s: %w", id, err)
	}
	return t, nil
}

// SearchTechniques performs full-text search over technique names and
// descriptions using the FTS5 index, ranked by BM25 relevance.
func (s *DBService) SearchTechniques(query string, limit int) ([]*Technique, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT t.technique_id, t.name, t.category, t.description, t.params_json, t.position, t.updated_at
		FROM techniques t
		INNER JOIN techniques_fts f ON t.technique_id = f.technique_id
		WHERE techniques_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching techniques for %q: %w", query, err)
	}
	defer rows.Close()

	return scanTechniques(rows)
}

// SuggestID returns the stored id closest to input by levenshtein edit
// distance. A suggestion further than half the input length away is
// considered noise and dropped.
func (s *DBService) SuggestID(input string) (string, error) {
	ts, err := s.ListTechniques()
	if err != nil {
		return "", fmt.Errorf("listing techniques for suggestion: %w", err)
	}

	input = strings.ToLower(input)
	best, bestDist := "", -1
	for _, t := range ts {
		d := levenshtein.ComputeDistance(input, strings.ToLower(t.ID))
		if bestDist < 0 || d < bestDist {
			best, bestDist = t.ID, d
		}
	}

	maxDist := len(input)/2 + 1
	if bestDist < 0 || bestDist > maxDist {
		return "", nil
	}
	return best, nil
}

// RecordSelection appends one selection event to the history.
func (s *DBService) RecordSelection(ev *SelectionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.stmtInsertSelection.Exec(ev.EventID, ev.SessionID, ev.TechniqueID, ev.SelectedAt)
	if err != nil {
		return fmt.Errorf("recording selection %s: %w", ev.EventID, err)
	}
	return nil
}

// RecentSelections returns the newest selection events first.
func (s *DBService) RecentSelections(limit int) ([]*SelectionEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT event_id, session_id, technique_id, selected_at
		FROM selections
		ORDER BY selected_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent selections: %w", err)
	}
	defer rows.Close()

	var events []*SelectionEvent
	for rows.Next() {
		ev := &SelectionEvent{}
		if err := rows.Scan(&ev.EventID, &ev.SessionID, &ev.TechniqueID, &ev.SelectedAt); err != nil {
			return nil, fmt.Errorf("scanning selection row: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// SelectionCounts aggregates the selection history per technique,
// most-selected first.
func (s *DBService) SelectionCounts() ([]*SelectionCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT sel.technique_id, t.name, t.category,
			COUNT(*) AS cnt, MAX(sel.selected_at) AS last_at
		FROM selections sel
		INNER JOIN techniques t ON sel.technique_id = t.technique_id
		GROUP BY sel.technique_id
		ORDER BY cnt DESC, last_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying selection counts: %w", err)
	}
	defer rows.Close()

	var counts []*SelectionCount
	for rows.Next() {
		c := &SelectionCount{}
		if err := rows.Scan(&c.TechniqueID, &c.Name, &c.Category, &c.Count, &c.LastSelectedAt); err != nil {
			return nil, fmt.Errorf("scanning selection count row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Close gracefully shuts down the database, closing prepared statements
// and the underlying connection.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []*sql.Stmt{s.stmtUpsertTechnique, s.stmtInsertSelection} {
		if stmt != nil {
			stmt.Close()
		}
	}

	return s.db.Close()
}

// ============================================================
// Scan Helpers
// ============================================================

func scanTechniques(rows *sql.Rows) ([]*Technique, error) {
	var ts []*Technique
	for rows.Next() {
		t := &Technique{}
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Category, &t.Description,
			&t.ParamsJSON, &t.Position, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning technique row: %w", err)
		}
		ts = append(ts, t)
	}
	return ts, rows.Err()
}
