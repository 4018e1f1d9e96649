package listview

import (
	"strings"

	"golang.org/x/text/cases"
)

// Tagged is implemented by items that can be searched by tag title.
// TagTitles returns the titles already coerced to strings; untitled tags
// report an empty string.
type Tagged interface {
	TagTitles() []string
}

// matcher holds a case-folded search term.
type matcher struct {
	caser cases.Caser
	term  string
}

func newMatcher(term string) *matcher {
	caser := cases.Fold()
	return &matcher{caser: caser, term: caser.String(term)}
}

func (m *matcher) match(titles []string) bool {
	for _, title := range titles {
		if strings.Contains(m.caser.String(strings.TrimSpace(title)), m.term) {
			return true
		}
	}
	return false
}

// Matches reports whether an item with the given tag titles satisfies term.
// An empty term matches everything, including items without tags.
func Matches(titles []string, term string) bool {
	if term == "" {
		return true
	}
	return newMatcher(term).match(titles)
}

// Filter returns the items whose tags match term, preserving order.
// With an empty term the input slice is returned as is.
func Filter[T Tagged](items []T, term string) []T {
	if term == "" {
		return items
	}

	m := newMatcher(term)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if m.match(item.TagTitles()) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
