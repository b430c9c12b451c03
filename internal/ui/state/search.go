package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/glossary/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetSearch updates the search text and caret position, then recomputes the
// visible cards. Starting a search remembers the cursor; clearing it restores
// that position.
func (b *Board) SetSearch(query string, cursor int) {
	prev := b.Search
	restore := -1
	b.Search = query
	runes := []rune(b.Search)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	b.SearchCursor = cursor
	if query != "" {
		if prev == "" {
			b.LastCursor = b.Cursor
		}
		b.Cursor = 0
	} else if prev != "" {
		restore = b.LastCursor
	}
	b.applyFilter()
	if query != "" && len(b.Items) > 0 {
		if idx := BestMatchIndex(b.Items, query); idx >= 0 {
			b.Cursor = idx
		}
	}
	if query == "" && prev != "" {
		if restore >= 0 && restore < len(b.Items) {
			b.Cursor = restore
		} else {
			b.Cursor = 0
		}
		b.LastCursor = -1
	}
}

// SearchCursorPos returns the rune offset of the search caret.
func (b *Board) SearchCursorPos() int {
	n := len([]rune(b.Search))
	if b.SearchCursor < 0 {
		return 0
	}
	if b.SearchCursor > n {
		return n
	}
	return b.SearchCursor
}

// InsertSearchText inserts text at the caret.
func (b *Board) InsertSearchText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(b.Search)
	pos := b.SearchCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	b.SetSearch(string(updated), pos+len(insert))
	return true
}

// DeleteSearchRuneBackward deletes the rune before the caret.
func (b *Board) DeleteSearchRuneBackward() bool {
	runes := []rune(b.Search)
	pos := b.SearchCursorPos()
	if pos == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	b.SetSearch(string(updated), pos-1)
	return true
}

// DeleteSearchWordBackward deletes the word preceding the caret.
func (b *Board) DeleteSearchWordBackward() bool {
	runes := []rune(b.Search)
	pos := b.SearchCursorPos()
	if pos == 0 {
		return false
	}
	start := wordStartBefore(runes, pos)
	updated := append(runes[:start:start], runes[pos:]...)
	b.SetSearch(string(updated), start)
	return true
}

// ClearSearch empties the search box.
func (b *Board) ClearSearch() bool {
	if b.Search == "" {
		return false
	}
	b.SetSearch("", 0)
	return true
}

// MoveSearchCursorStart moves the caret to the start.
func (b *Board) MoveSearchCursorStart() bool {
	return b.moveSearchCursorTo(0)
}

// MoveSearchCursorEnd moves the caret to the end.
func (b *Board) MoveSearchCursorEnd() bool {
	return b.moveSearchCursorTo(len([]rune(b.Search)))
}

// MoveSearchCursorWordBackward moves the caret to the start of the previous word.
func (b *Board) MoveSearchCursorWordBackward() bool {
	return b.moveSearchCursorTo(wordStartBefore([]rune(b.Search), b.SearchCursorPos()))
}

// MoveSearchCursorWordForward moves the caret past the next word.
func (b *Board) MoveSearchCursorWordForward() bool {
	return b.moveSearchCursorTo(wordEndAfter([]rune(b.Search), b.SearchCursorPos()))
}

// MoveSearchCursorRuneBackward moves the caret one rune left.
func (b *Board) MoveSearchCursorRuneBackward() bool {
	return b.moveSearchCursorTo(b.SearchCursorPos() - 1)
}

// MoveSearchCursorRuneForward moves the caret one rune right.
func (b *Board) MoveSearchCursorRuneForward() bool {
	return b.moveSearchCursorTo(b.SearchCursorPos() + 1)
}

func (b *Board) moveSearchCursorTo(pos int) bool {
	n := len([]rune(b.Search))
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		pos = n
	}
	if pos == b.SearchCursorPos() {
		return false
	}
	b.SearchCursor = pos
	return true
}

func wordStartBefore(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

func wordEndAfter(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

// BestMatchIndex picks the card the cursor should land on for query: an exact
// name match, then a prefix match, then the closest name by edit distance.
// It only orders the cursor; the visible set is unaffected.
func BestMatchIndex(terms []catalog.Term, query string) int {
	if len(terms) == 0 {
		return -1
	}
	if query == "" {
		return 0
	}
	for i, term := range terms {
		if strings.EqualFold(term.Name, query) {
			return i
		}
	}
	lower := strings.ToLower(query)
	for i, term := range terms {
		if strings.HasPrefix(strings.ToLower(term.Name), lower) {
			return i
		}
	}
	names := make([]string, len(terms))
	for i, term := range terms {
		names[i] = term.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(terms) {
		return 0
	}
	return best.OriginalIndex
}
