package state

import (
	"github.com/atomicstack/glossary/internal/catalog"
)

// Board holds the card grid state: the full catalog, the visible subset, the
// filter inputs, the card cursor, and the row viewport.
type Board struct {
	Full           []catalog.Term
	Items          []catalog.Term
	Categories     []string
	Search         string
	SearchCursor   int
	Category       string
	Cursor         int
	LastCursor     int
	Columns        int
	ViewportOffset int
}

// NewBoard constructs an empty board showing every category.
func NewBoard() *Board {
	b := &Board{
		Category:   catalog.AllCategories,
		LastCursor: -1,
		Columns:    1,
	}
	b.UpdateTerms(nil)
	return b
}

// UpdateTerms replaces the catalog. The category set is recomputed and a
// selected category that no longer exists falls back to the sentinel.
func (b *Board) UpdateTerms(terms []catalog.Term) {
	b.Full = catalog.Clone(terms)
	b.Categories = catalog.Categories(b.Full)
	if !b.hasCategory(b.Category) {
		b.Category = catalog.AllCategories
	}
	b.applyFilter()
	if b.Cursor < 0 {
		b.Cursor = 0
	}
}

// Query returns the current filter inputs.
func (b *Board) Query() catalog.Query {
	return catalog.Query{Search: b.Search, Category: b.Category}
}

// Empty reports whether no card matches the current filter.
func (b *Board) Empty() bool {
	return len(b.Items) == 0
}

// Current returns the term under the cursor.
func (b *Board) Current() (catalog.Term, bool) {
	if b.Cursor < 0 || b.Cursor >= len(b.Items) {
		return catalog.Term{}, false
	}
	return b.Items[b.Cursor], true
}

// IndexOf returns the visible index of the named term, or -1.
func (b *Board) IndexOf(name string) int {
	for i, term := range b.Items {
		if term.Name == name {
			return i
		}
	}
	return -1
}

// SetColumns updates the grid width in cards.
func (b *Board) SetColumns(cols int) {
	if cols < 1 {
		cols = 1
	}
	b.Columns = cols
}

// SetCategory selects a category from the category set. Unknown categories
// are rejected.
func (b *Board) SetCategory(category string) bool {
	if category == b.Category || !b.hasCategory(category) {
		return false
	}
	b.Category = category
	b.Cursor = 0
	b.ViewportOffset = 0
	b.applyFilter()
	return true
}

// NextCategory advances to the following category, wrapping around.
func (b *Board) NextCategory() bool {
	return b.shiftCategory(1)
}

// PrevCategory moves to the preceding category, wrapping around.
func (b *Board) PrevCategory() bool {
	return b.shiftCategory(-1)
}

func (b *Board) shiftCategory(delta int) bool {
	n := len(b.Categories)
	if n <= 1 {
		return false
	}
	idx := b.categoryIndex(b.Category)
	if idx < 0 {
		idx = 0
	}
	next := ((idx+delta)%n + n) % n
	return b.SetCategory(b.Categories[next])
}

func (b *Board) categoryIndex(category string) int {
	for i, c := range b.Categories {
		if c == category {
			return i
		}
	}
	return -1
}

func (b *Board) hasCategory(category string) bool {
	return b.categoryIndex(category) >= 0
}

func (b *Board) applyFilter() {
	b.Items = catalog.Filter(b.Full, b.Query())
	if len(b.Items) == 0 {
		b.Cursor = 0
		b.ViewportOffset = 0
		return
	}
	if b.Cursor < 0 {
		b.Cursor = 0
	}
	if b.Cursor >= len(b.Items) {
		b.Cursor = len(b.Items) - 1
	}
	if b.ViewportOffset > b.Rows()-1 {
		b.ViewportOffset = 0
	}
}
