// Package util has small text helpers used when building narrative output.
package util

import (
	"strings"
	"unicode"
)

// MakeTextList gives a nice list of things based on their display name, for
// instance "an apple, a book, and a wrench". If articles is true, each item is
// prefixed with "a" or "an" as appropriate. Lists of more than two items get an
// oxford comma.
func MakeTextList(items []string, articles bool) string {
	if len(items) < 1 {
		return ""
	}

	withArts := make([]string, len(items))
	for i := range items {
		item := items[i]
		if articles {
			item = WithArticle(item)
		}
		withArts[i] = item
	}

	switch len(withArts) {
	case 1:
		return withArts[0]
	case 2:
		return withArts[0] + " and " + withArts[1]
	default:
		withArts[len(withArts)-1] = "and " + withArts[len(withArts)-1]
		return strings.Join(withArts, ", ")
	}
}

// WithArticle returns s preceded by its indefinite article and a space, such as
// "an apple". If s is empty, it is returned unchanged.
func WithArticle(s string) string {
	art := ArticleFor(s, false)
	if art == "" {
		return s
	}
	return art + " " + s
}

// ArticleFor returns the article for the given string. It will be capitalized
// the same as the string. If definite is true, the returned value will be "the"
// capitalized as described; otherwise, it will be "a"/"an" capitalized as
// described.
func ArticleFor(s string, definite bool) string {
	sRunes := []rune(s)

	if len(sRunes) < 1 {
		return ""
	}

	leadingUpper := unicode.IsUpper(sRunes[0])
	allCaps := leadingUpper
	if leadingUpper && len(sRunes) > 1 {
		allCaps = unicode.IsUpper(sRunes[1])
	}

	if definite {
		if allCaps {
			return "THE"
		} else if leadingUpper {
			return "The"
		}
		return "the"
	}

	art := "a"
	if leadingUpper {
		art = "A"
	}

	switch unicode.ToUpper(sRunes[0]) {
	case 'A', 'E', 'I', 'O', 'U':
		if allCaps {
			art += "N"
		} else {
			art += "n"
		}
	}

	return art
}
