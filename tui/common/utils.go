package common

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Truncate shortens s to at most width terminal cells, appending an ellipsis
// when anything was cut. Newlines are collapsed first.
func Truncate(s string, width int) string {
	s = OneLine(s)
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// OneLine collapses every run of whitespace, including newlines, to a single space.
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Initials returns up to two uppercase letters for an avatar badge.
func Initials(username string) string {
	var out []rune
	for _, r := range username {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, unicode.ToUpper(r))
			if len(out) == 2 {
				break
			}
		}
	}
	if len(out) == 0 {
		return "US"
	}
	return string(out)
}

// DisplayName prefixes a username with @, falling back to "user".
func DisplayName(username string) string {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		username = "user"
	}
	return "@" + username
}
