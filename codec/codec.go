// Package codec reads and writes the portable JSON backup document for
// journal-cli.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oneline/journal-cli/model"
)

// Snapshot is the root of the export document.
type Snapshot struct {
	ExportedAt string  `json:"exportedAt"`
	Entries    []Entry `json:"entries"`
}

// Entry is the portable projection of a stored entry. The internal id is
// deliberately absent; ids are regenerated on import.
type Entry struct {
	Date      string   `json:"date"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	IsPrivate bool     `json:"isPrivate"`
	IsDeleted bool     `json:"isDeleted"`
	Mood      string   `json:"mood"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// Parse reads a snapshot document. Malformed JSON or a missing entries
// array fails the whole document; individually incomplete entries are left
// for the importer to skip.
func Parse(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if snap.Entries == nil {
		return nil, errors.New("snapshot is missing the entries field")
	}

	return &snap, nil
}

// Build projects stored entries into a snapshot stamped with the export time.
func Build(entries []*model.Entry, exportedAt time.Time) *Snapshot {
	snap := &Snapshot{
		ExportedAt: model.Timestamp(exportedAt),
		Entries:    make([]Entry, 0, len(entries)),
	}

	for _, e := range entries {
		snap.Entries = append(snap.Entries, Entry{
			Date:      e.Date,
			Content:   e.Content,
			Tags:      e.Tags,
			IsPrivate: e.IsPrivate,
			IsDeleted: e.IsDeleted,
			Mood:      e.Mood,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}

	return snap
}

// Generate writes the snapshot for entries as indented JSON.
func Generate(w io.Writer, entries []*model.Entry) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(Build(entries, time.Now())); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return nil
}
