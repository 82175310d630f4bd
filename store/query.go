package store

import (
	"strings"

	"github.com/oneline/journal-cli/model"
)

// Term is one whitespace-separated token of a search query.
type Term struct {
	Text  string
	IsTag bool
}

// ParseQuery splits a raw query into lowercased terms. A term beginning
// with '#' is a tag term; anything else is a bare word. Empty and
// whitespace-only queries parse to no terms.
func ParseQuery(query string) []Term {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return nil
	}

	terms := make([]Term, 0, len(fields))
	for _, f := range fields {
		terms = append(terms, Term{Text: f, IsTag: strings.HasPrefix(f, "#")})
	}
	return terms
}

// matchesEntry reports whether the entry satisfies every term.
//
// A tag term requires an exact tag match, so "#work" never matches an entry
// tagged only "#workout". A bare word is permissive: it matches as a
// substring of the content or of any tag.
func matchesEntry(e *model.Entry, terms []Term) bool {
	content := strings.ToLower(e.Content)

	for _, term := range terms {
		if term.IsTag {
			if !e.HasTag(term.Text) {
				return false
			}
			continue
		}

		if strings.Contains(content, term.Text) {
			continue
		}

		matched := false
		for _, tag := range e.Tags {
			if strings.Contains(tag, term.Text) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
