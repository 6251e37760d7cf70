package catalog

import (
	"strings"
	"unicode"
)

// normalizeQuery lowercases and strips punctuation so that
// "Miles Davis - So What" matches "so_what" style ids.
func normalizeQuery(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '_' || r == '-':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Search returns tracks whose id, title or artist contains the query after
// normalization, in catalog order, capped at limit (0 means no cap).
func (c *Catalog) Search(query string, limit int) []*Track {
	q := normalizeQuery(query)
	if q == "" {
		return nil
	}

	var matches []*Track
	for _, t := range c.Tracks() {
		if trackMatches(t, q) {
			matches = append(matches, t)
			if limit > 0 && len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

func trackMatches(t *Track, q string) bool {
	if strings.Contains(normalizeQuery(t.ID), q) {
		return true
	}
	if t.Metadata == nil {
		return false
	}
	return strings.Contains(normalizeQuery(t.Metadata.Title), q) ||
		strings.Contains(normalizeQuery(t.Metadata.Artist), q) ||
		strings.Contains(normalizeQuery(t.Metadata.Album), q)
}
