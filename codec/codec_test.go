package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/oneline/journal-cli/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc := `{
		"exportedAt": "2024-06-01T12:00:00Z",
		"entries": [
			{
				"date": "2024-01-01",
				"content": "Finished the #mead batch",
				"tags": ["#mead"],
				"isPrivate": false,
				"isDeleted": false,
				"mood": "full",
				"createdAt": "2024-01-01T20:00:00Z",
				"updatedAt": "2024-01-01T20:00:00Z"
			},
			{
				"date": "2024-01-02",
				"content": "quiet day",
				"isPrivate": true
			}
		]
	}`

	snap, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01T12:00:00Z", snap.ExportedAt)
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "Finished the #mead batch", snap.Entries[0].Content)
	assert.Equal(t, []string{"#mead"}, snap.Entries[0].Tags)
	assert.True(t, snap.Entries[1].IsPrivate)
	assert.Empty(t, snap.Entries[1].Tags)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"entries": [`))
	assert.Error(t, err)
}

func TestParse_MissingEntries(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"exportedAt": "2024-06-01T12:00:00Z"}`))
	assert.Error(t, err)
}

func TestParse_EmptyEntries(t *testing.T) {
	snap, err := Parse(strings.NewReader(`{"entries": []}`))
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
}

func TestBuild(t *testing.T) {
	entries := []*model.Entry{
		{
			ID:        "20240101200000.000000000-deadbeef",
			Date:      "2024-01-01",
			Content:   "Finished the #mead batch",
			Tags:      []string{"#mead"},
			IsDeleted: true,
			Mood:      model.MoodFull,
			CreatedAt: "2024-01-01T20:00:00Z",
			UpdatedAt: "2024-01-02T08:00:00Z",
		},
	}

	exportedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	snap := Build(entries, exportedAt)

	assert.Equal(t, "2024-06-01T12:00:00Z", snap.ExportedAt)
	require.Len(t, snap.Entries, 1)

	got := snap.Entries[0]
	assert.Equal(t, "2024-01-01", got.Date)
	assert.Equal(t, "Finished the #mead batch", got.Content)
	assert.Equal(t, []string{"#mead"}, got.Tags)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, "2024-01-01T20:00:00Z", got.CreatedAt)
	assert.Equal(t, "2024-01-02T08:00:00Z", got.UpdatedAt)
}

func TestGenerate_RoundTrip(t *testing.T) {
	entries := []*model.Entry{
		{
			ID:        "20240102090000.000000000-cafef00d",
			Date:      "2024-01-02",
			Content:   "quiet day #rest",
			Tags:      []string{"#rest"},
			IsPrivate: true,
			Mood:      model.MoodEmpty,
			CreatedAt: "2024-01-02T09:00:00Z",
			UpdatedAt: "2024-01-02T09:00:00Z",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, entries))

	// The internal id never appears in the export document.
	assert.NotContains(t, buf.String(), "cafef00d")

	snap, err := Parse(&buf)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ExportedAt)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, "quiet day #rest", snap.Entries[0].Content)
	assert.Equal(t, []string{"#rest"}, snap.Entries[0].Tags)
	assert.True(t, snap.Entries[0].IsPrivate)
	assert.Equal(t, model.MoodEmpty, snap.Entries[0].Mood)
}
