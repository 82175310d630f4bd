// Package model defines the core data structures for journal-cli.
package model

import (
	"errors"
	"strings"
	"time"
)

// DateFormat is the calendar-day layout used everywhere (ISO 8601, local day).
const DateFormat = "2006-01-02"

// Moods an entry can carry. Purely descriptive; unknown values fold to MoodFull.
const (
	MoodEmpty       = "empty"
	MoodFull        = "full"
	MoodOverflowing = "overflowing"
)

var (
	ErrEmptyContent = errors.New("entry content is required")
	ErrBadDate      = errors.New("entry date must be yyyy-mm-dd")
)

// Entry represents a single journaled line.
type Entry struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	IsPrivate bool     `json:"isPrivate"`
	IsDeleted bool     `json:"isDeleted"`
	Mood      string   `json:"mood"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// Validate checks the caller-supplied fields before an entry reaches the store.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Content) == "" {
		return ErrEmptyContent
	}
	if _, err := time.Parse(DateFormat, e.Date); err != nil {
		return ErrBadDate
	}
	return nil
}

// HasTag checks if the entry's tag set contains the tag verbatim.
// Tags are stored lowercased, so callers pass lowercased tags.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsVisible reports whether the entry appears in the public view.
func (e *Entry) IsVisible() bool {
	return !e.IsDeleted && !e.IsPrivate
}

// ParseMood normalizes a mood string to one of the known moods.
// Anything unrecognized becomes MoodFull.
func ParseMood(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case MoodEmpty:
		return MoodEmpty
	case MoodOverflowing:
		return MoodOverflowing
	default:
		return MoodFull
	}
}

// Timestamp formats t as the RFC 3339 UTC string stored on entries.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Today returns the current local calendar day in DateFormat.
func Today() string {
	return time.Now().Format(DateFormat)
}
