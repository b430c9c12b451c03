package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Query is the pair of user-controlled inputs driving the visible subset.
type Query struct {
	Search   string
	Category string
}

// Filter returns the terms whose name contains the search text (ignoring case)
// and whose type matches the category, unless the category is the sentinel.
// Source order is preserved and the result never shares the input's backing
// array.
func Filter(terms []Term, q Query) []Term {
	lower := cases.Lower(language.Und)
	needle := lower.String(q.Search)
	out := make([]Term, 0, len(terms))
	for _, term := range terms {
		if !MatchesCategory(term, q.Category) {
			continue
		}
		if needle != "" && !strings.Contains(lower.String(term.Name), needle) {
			continue
		}
		out = append(out, term)
	}
	return out
}

// MatchesCategory reports whether term belongs to category. The sentinel
// matches every term.
func MatchesCategory(term Term, category string) bool {
	return category == AllCategories || term.Type == category
}
