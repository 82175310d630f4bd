package model

import (
	"regexp"
	"strings"
)

// tagPattern matches hashtags: '#' followed by letters, digits, underscore or
// hyphen. Unicode letters and digits count, so non-English tags work.
var tagPattern = regexp.MustCompile(`#[\p{L}\p{N}_-]+`)

// ExtractTags returns the hashtags referenced in text, lowercased and
// deduplicated. Order follows first occurrence, but callers should treat
// the result as a set.
func ExtractTags(text string) []string {
	matches := tagPattern.FindAllString(text, -1)
	seen := make(map[string]bool, len(matches))
	var tags []string
	for _, m := range matches {
		t := strings.ToLower(m)
		if seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}
