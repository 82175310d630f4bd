package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/oneline/journal-cli/codec"
	"github.com/oneline/journal-cli/model"
	"github.com/oneline/journal-cli/store"
)

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitDataError    = 3
)

// defaultPassword gates the "show everything" view. It is a plain
// client-visible string: UX friction, not a security boundary.
const defaultPassword = "one-line"

func main() {
	// A .env file may hold JOURNAL_DB / JOURNAL_PASSWORD.
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "journal-cli",
		Usage:   "A one-line-a-day journal with hashtags and search",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Value:   getDefaultDBPath(),
				Usage:   "Database file path",
				EnvVars: []string{"JOURNAL_DB"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "save",
				Usage:     "Save a new entry",
				ArgsUsage: "<text>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "date",
						Value: model.Today(),
						Usage: "Entry date (yyyy-mm-dd)",
					},
					&cli.BoolFlag{
						Name:    "private",
						Aliases: []string{"p"},
						Usage:   "Hide the entry from the public history",
					},
					&cli.StringFlag{
						Name:  "mood",
						Value: model.MoodFull,
						Usage: "Mood tag (empty, full, overflowing)",
					},
				},
				Action: saveEntry,
			},
			{
				Name:  "today",
				Usage: "Show the latest entry for a date",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "date",
						Value: model.Today(),
						Usage: "Date to load (yyyy-mm-dd)",
					},
				},
				Action: showToday,
			},
			{
				Name:   "history",
				Usage:  "List public entries (not deleted, not private)",
				Action: showHistory,
			},
			{
				Name:  "all",
				Usage: "List every entry, deleted and private included",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "password",
						Usage: "Unlock password",
					},
				},
				Action: showAll,
			},
			{
				Name:      "search",
				Usage:     "Search entries by words and #tags",
				ArgsUsage: "<term>...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "private",
						Usage: "Include private entries",
					},
					&cli.BoolFlag{
						Name:  "deleted",
						Usage: "Include soft-deleted entries",
					},
				},
				Action: searchEntries,
			},
			{
				Name:      "delete",
				Usage:     "Soft-delete an entry (kept for search and export)",
				ArgsUsage: "<entry-id>",
				Action:    deleteEntry,
			},
			{
				Name:      "purge",
				Usage:     "Permanently remove an entry",
				ArgsUsage: "<entry-id>",
				Action:    purgeEntry,
			},
			{
				Name:      "privacy",
				Usage:     "Toggle an entry's private flag",
				ArgsUsage: "<entry-id>",
				Action:    togglePrivacy,
			},
			{
				Name:  "export",
				Usage: "Export all entries as a JSON snapshot",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (default: stdout)",
					},
				},
				Action: exportSnapshot,
			},
			{
				Name:      "import",
				Usage:     "Import entries from a JSON snapshot",
				ArgsUsage: "<snapshot-file>",
				Action:    importSnapshot,
			},
			{
				Name:   "nudge",
				Usage:  "Print a small prompt for today's line",
				Action: showNudge,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitGeneralError)
	}
}

func getDefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "journal-cli.db"
	}
	return filepath.Join(home, ".config", "journal-cli", "journal.db")
}

func getStore(c *cli.Context) (*store.Store, error) {
	dbPath := c.String("db")

	// Create directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	s, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return s, nil
}

func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func saveEntry(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: journal-cli save <text>...", ExitUsageError)
	}

	content := strings.Join(c.Args().Slice(), " ")

	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	entry, err := s.CreateEntry(c.String("date"), content, c.Bool("private"), nil, c.String("mood"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to save entry: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"success": true,
		"entry":   entry,
	})
}

func showToday(c *cli.Context) error {
	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	date := c.String("date")
	entry, err := s.EntryForDate(date)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get entry: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"date":  date,
		"entry": entry,
	})
}

func showHistory(c *cli.Context) error {
	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	entries, err := s.PublicEntries()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get entries: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"count":   len(entries),
		"entries": entries,
	})
}

func showAll(c *cli.Context) error {
	expected := os.Getenv("JOURNAL_PASSWORD")
	if expected == "" {
		expected = defaultPassword
	}
	if c.String("password") != expected {
		return cli.Exit("Incorrect password", ExitUsageError)
	}

	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	entries, err := s.AllEntries()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get entries: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"count":   len(entries),
		"entries": entries,
	})
}

func searchEntries(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")

	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	entries, err := s.Search(query, store.SearchOptions{
		IncludePrivate: c.Bool("private"),
		IncludeDeleted: c.Bool("deleted"),
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Search failed: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"query":   query,
		"count":   len(entries),
		"entries": entries,
	})
}

func deleteEntry(c *cli.Context) error {
	return mutateEntry(c, "journal-cli delete <entry-id>", (*store.Store).SoftDelete)
}

func purgeEntry(c *cli.Context) error {
	return mutateEntry(c, "journal-cli purge <entry-id>", (*store.Store).PermanentDelete)
}

func togglePrivacy(c *cli.Context) error {
	return mutateEntry(c, "journal-cli privacy <entry-id>", (*store.Store).TogglePrivacy)
}

// mutateEntry runs one of the id-keyed store mutations. Unknown ids are
// no-ops in the store, so these always report success.
func mutateEntry(c *cli.Context, usage string, op func(*store.Store, string) error) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: "+usage, ExitUsageError)
	}

	id := c.Args().Get(0)

	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	if err := op(s, id); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to update entry: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"success": true,
		"id":      id,
	})
}

func exportSnapshot(c *cli.Context) error {
	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	// The backup carries everything, soft-deleted entries included.
	entries, err := s.AllEntries()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get entries: %v", err), ExitDataError)
	}

	outputPath := c.String("output")
	var writer io.Writer

	if outputPath == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Failed to create output file: %v", err), ExitDataError)
		}
		defer file.Close()
		writer = file
	}

	if err := codec.Generate(writer, entries); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to generate snapshot: %v", err), ExitDataError)
	}

	if outputPath != "" {
		return outputJSON(map[string]interface{}{
			"success": true,
			"file":    outputPath,
			"count":   len(entries),
		})
	}

	return nil
}

func importSnapshot(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: journal-cli import <snapshot-file>", ExitUsageError)
	}

	snapshotPath := c.Args().Get(0)

	file, err := os.Open(snapshotPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to open snapshot file: %v", err), ExitDataError)
	}
	defer file.Close()

	snap, err := codec.Parse(file)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to parse snapshot: %v", err), ExitDataError)
	}

	s, err := getStore(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	defer s.Close()

	added, err := s.Import(snap)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to import snapshot: %v", err), ExitDataError)
	}

	return outputJSON(map[string]interface{}{
		"success":  true,
		"imported": added,
		"total":    len(snap.Entries),
	})
}

func showNudge(c *cli.Context) error {
	return outputJSON(map[string]interface{}{
		"nudge": pickNudge(),
	})
}
