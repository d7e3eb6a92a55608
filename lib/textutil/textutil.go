package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize lowercases and collapses all whitespace runs to single spaces,
// so header cells like "Title  of\nthe Book" compare equal to
// "title of the book".
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.Trim(text, " \n\t")
	return whitespaceRegex.ReplaceAllString(text, " ")
}

// MatchAny reports whether the normalized text contains any of the
// given keywords. Keywords are expected to already be lowercase.
func MatchAny(text string, keywords []string) bool {
	text = Normalize(text)
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// MatchAll reports whether the normalized text contains every keyword.
func MatchAll(text string, keywords []string) bool {
	text = Normalize(text)
	for _, k := range keywords {
		if !strings.Contains(text, k) {
			return false
		}
	}
	return true
}

// SplitList splits comma-separated free text into trimmed, non-empty items.
// Used for specialization / research interest blocks which the source site
// renders as a single run-on string.
func SplitList(text string) []string {
	parts := strings.Split(text, ",")
	out := []string{}
	for _, p := range parts {
		p = strings.Trim(p, " \n\t.;")
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
