// Package store provides SQLite database operations for journal-cli.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oneline/journal-cli/codec"
	"github.com/oneline/journal-cli/model"
	_ "modernc.org/sqlite"
)

// Store manages the SQLite database holding journal entries.
type Store struct {
	db *sql.DB
}

// entryColumns is the column list every entry read uses, in scan order.
const entryColumns = "id, date, content, tags, is_private, is_deleted, mood, created_at, updated_at"

// canonicalOrder is the ordering of every list result: newest day first,
// most recently created first within a day, id as the deterministic tiebreak.
const canonicalOrder = " ORDER BY date DESC, created_at DESC, id DESC"

// New creates a new Store with the given database path.
// Use ":memory:" for an in-memory database (useful for testing).
//
// A corrupt database file must read as an empty journal, never crash the
// caller: the bad file is quarantined to <path>.corrupt and a fresh database
// is started in its place.
func New(dbPath string) (*Store, error) {
	s, err := open(dbPath)
	if err == nil || dbPath == ":memory:" {
		return s, err
	}

	if renameErr := os.Rename(dbPath, dbPath+".corrupt"); renameErr != nil {
		return nil, err
	}
	return open(dbPath)
}

func open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	// Initialize schema
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createSchema creates the entries table and indexes.
func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		content TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '',
		is_private INTEGER NOT NULL DEFAULT 0,
		is_deleted INTEGER NOT NULL DEFAULT 0,
		mood TEXT NOT NULL DEFAULT 'full',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date DESC);
	CREATE INDEX IF NOT EXISTS idx_entries_is_deleted ON entries(is_deleted);
	`

	_, err := s.db.Exec(schema)
	return err
}

// CreateEntry validates and inserts a new entry, returning it with its
// assigned id and timestamps. Every call inserts a new record, even for a
// date that already has entries. When tags is empty they are derived from
// the content.
func (s *Store) CreateEntry(date, content string, isPrivate bool, tags []string, mood string) (*model.Entry, error) {
	now := time.Now()
	entry := &model.Entry{
		ID:        model.NewID(now),
		Date:      date,
		Content:   strings.TrimSpace(content),
		Tags:      tags,
		IsPrivate: isPrivate,
		Mood:      model.ParseMood(mood),
		CreatedAt: model.Timestamp(now),
		UpdatedAt: model.Timestamp(now),
	}
	if len(entry.Tags) == 0 {
		entry.Tags = model.ExtractTags(entry.Content)
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	_, err := s.db.Exec(
		"INSERT INTO entries (id, date, content, tags, is_private, is_deleted, mood, created_at, updated_at) VALUES (?, ?, ?, ?, ?, 0, ?, ?, ?)",
		entry.ID, entry.Date, entry.Content, joinTags(entry.Tags),
		boolToInt(entry.IsPrivate), entry.Mood, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	return entry, nil
}

// GetEntry retrieves an entry by id.
func (s *Store) GetEntry(id string) (*model.Entry, error) {
	row := s.db.QueryRow(
		"SELECT "+entryColumns+" FROM entries WHERE id = ?", id,
	)
	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.New("entry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

// EntryForDate returns the most recently updated non-deleted entry for the
// given date, or nil when the date has none.
func (s *Store) EntryForDate(date string) (*model.Entry, error) {
	row := s.db.QueryRow(
		"SELECT "+entryColumns+" FROM entries WHERE date = ? AND is_deleted = 0 ORDER BY updated_at DESC, id DESC LIMIT 1",
		date,
	)
	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry for date: %w", err)
	}
	return entry, nil
}

// PublicEntries returns all entries that are neither deleted nor private,
// in canonical order.
func (s *Store) PublicEntries() ([]*model.Entry, error) {
	return s.queryEntries("SELECT " + entryColumns + " FROM entries WHERE is_deleted = 0 AND is_private = 0" + canonicalOrder)
}

// AllEntries returns every stored entry, soft-deleted and private included,
// in canonical order.
func (s *Store) AllEntries() ([]*model.Entry, error) {
	return s.queryEntries("SELECT " + entryColumns + " FROM entries" + canonicalOrder)
}

// SoftDelete hides the entry from normal views while keeping the record
// around for search and export. Unknown ids are a no-op, so deleting twice
// is harmless.
func (s *Store) SoftDelete(id string) error {
	_, err := s.db.Exec(
		"UPDATE entries SET is_deleted = 1, updated_at = ? WHERE id = ?",
		model.Timestamp(time.Now()), id,
	)
	return err
}

// PermanentDelete removes the record entirely. Irreversible.
// Unknown ids are a no-op.
func (s *Store) PermanentDelete(id string) error {
	_, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id)
	return err
}

// TogglePrivacy flips the entry's private flag. Unknown ids are a no-op.
func (s *Store) TogglePrivacy(id string) error {
	_, err := s.db.Exec(
		"UPDATE entries SET is_private = 1 - is_private, updated_at = ? WHERE id = ?",
		model.Timestamp(time.Now()), id,
	)
	return err
}

// SearchOptions controls which entries form the search base set.
type SearchOptions struct {
	IncludePrivate bool
	IncludeDeleted bool
}

// Search filters entries against a raw query string. An empty or
// whitespace-only query returns the whole base set in canonical order.
// Results come back fully filtered; callers must not re-filter them.
// Every call recomputes from the persisted state.
func (s *Store) Search(query string, opts SearchOptions) ([]*model.Entry, error) {
	sqlQuery := "SELECT " + entryColumns + " FROM entries WHERE 1=1"
	if !opts.IncludeDeleted {
		sqlQuery += " AND is_deleted = 0"
	}
	if !opts.IncludePrivate {
		sqlQuery += " AND is_private = 0"
	}
	sqlQuery += canonicalOrder

	entries, err := s.queryEntries(sqlQuery)
	if err != nil {
		return nil, err
	}

	// Term matching happens here rather than in SQL: '#tag' terms need an
	// exact match against the tag set, which LIKE cannot express.
	terms := ParseQuery(query)
	if len(terms) == 0 {
		return entries, nil
	}

	var matched []*model.Entry
	for _, entry := range entries {
		if matchesEntry(entry, terms) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// Import adds every well-formed snapshot entry as a new record with a fresh
// id. Elements missing a date or content are skipped; a soft-deleted flag
// survives the round trip. Import never merges with existing entries.
// Returns the number of entries added.
func (s *Store) Import(snap *codec.Snapshot) (int, error) {
	added := 0
	for _, se := range snap.Entries {
		tags := se.Tags
		if len(tags) == 0 {
			tags = model.ExtractTags(se.Content)
		}

		entry, err := s.CreateEntry(se.Date, se.Content, se.IsPrivate, tags, se.Mood)
		if errors.Is(err, model.ErrEmptyContent) || errors.Is(err, model.ErrBadDate) {
			continue
		}
		if err != nil {
			return added, fmt.Errorf("failed to import entry for %s: %w", se.Date, err)
		}

		if se.IsDeleted {
			if err := s.SoftDelete(entry.ID); err != nil {
				return added, fmt.Errorf("failed to import entry for %s: %w", se.Date, err)
			}
		}
		added++
	}
	return added, nil
}

// queryEntries runs a SELECT over entryColumns and scans the results.
func (s *Store) queryEntries(query string, args ...any) ([]*model.Entry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanEntry(scan func(dest ...any) error) (*model.Entry, error) {
	entry := &model.Entry{}
	var tagsText string
	var privateInt, deletedInt int

	if err := scan(
		&entry.ID, &entry.Date, &entry.Content, &tagsText,
		&privateInt, &deletedInt, &entry.Mood, &entry.CreatedAt, &entry.UpdatedAt,
	); err != nil {
		return nil, err
	}

	entry.Tags = splitTags(tagsText)
	entry.IsPrivate = intToBool(privateInt)
	entry.IsDeleted = intToBool(deletedInt)
	return entry, nil
}

// Tags persist as one space-joined column; hashtags cannot contain spaces.
func joinTags(tags []string) string {
	return strings.Join(tags, " ")
}

func splitTags(text string) []string {
	return strings.Fields(text)
}

// Helper functions for boolean<->int conversion (SQLite doesn't have BOOLEAN type)
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
