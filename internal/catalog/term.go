// Package catalog holds the glossary data model: the Term records decoded from
// the data source, the derived category set, and the pure filter projection the
// UI recomputes on every keystroke.
package catalog

// AllCategories is the sentinel category that disables category filtering. It
// is always the first entry of the category set.
const AllCategories = "Todos"

// Term is a single glossary entry. Name is the unique display key and
// Description holds markdown text.
type Term struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Categories returns the sentinel followed by every distinct term type in
// first-seen order. A type spelled like the sentinel is not listed again.
func Categories(terms []Term) []string {
	out := make([]string, 0, 8)
	out = append(out, AllCategories)
	seen := make(map[string]struct{}, len(terms)+1)
	seen[AllCategories] = struct{}{}
	for _, term := range terms {
		if _, ok := seen[term.Type]; ok {
			continue
		}
		seen[term.Type] = struct{}{}
		out = append(out, term.Type)
	}
	return out
}

// Counts reports how many terms belong to each category. The sentinel maps to
// the total number of terms.
func Counts(terms []Term) map[string]int {
	counts := make(map[string]int, 8)
	counts[AllCategories] = len(terms)
	for _, term := range terms {
		if term.Type == AllCategories {
			continue
		}
		counts[term.Type]++
	}
	return counts
}

// Find returns the term with the given name.
func Find(terms []Term, name string) (Term, bool) {
	for _, term := range terms {
		if term.Name == name {
			return term, true
		}
	}
	return Term{}, false
}

// Clone produces a shallow copy of the supplied terms.
func Clone(terms []Term) []Term {
	dup := make([]Term, len(terms))
	copy(dup, terms)
	return dup
}
