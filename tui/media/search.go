package media

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/CrestNiraj12/replydesk/domain"
)

// MaxSuggestions caps the typeahead list under the search box.
const MaxSuggestions = 8

// matcher does case-insensitive substring tests for one query. Casers keep
// internal state, so each search builds its own.
type matcher struct {
	caser cases.Caser
	query string
}

func newMatcher(query string) *matcher {
	c := cases.Fold()
	return &matcher{caser: c, query: c.String(strings.TrimSpace(query))}
}

func (mt *matcher) matches(s string) bool {
	return strings.Contains(mt.caser.String(s), mt.query)
}

// Filter returns the media whose caption or id contains query, ignoring case.
// A blank query returns items unchanged.
func Filter(items []domain.Media, query string) []domain.Media {
	mt := newMatcher(query)
	if mt.query == "" {
		return items
	}
	var out []domain.Media
	for _, m := range items {
		if mt.matches(m.Caption) || mt.matches(m.ID) {
			out = append(out, m)
		}
	}
	return out
}

// Suggest returns up to MaxSuggestions media whose caption contains query.
func Suggest(items []domain.Media, query string) []domain.Media {
	mt := newMatcher(query)
	if mt.query == "" {
		return nil
	}
	var out []domain.Media
	for _, m := range items {
		if mt.matches(m.Caption) {
			out = append(out, m)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// step moves a suggestion highlight by delta, wrapping at both ends. From no
// highlight (-1) moving up lands on the last entry.
func step(idx, delta, n int) int {
	if n == 0 {
		return -1
	}
	if idx < 0 {
		if delta < 0 {
			return n - 1
		}
		return 0
	}
	return ((idx+delta)%n + n) % n
}
