package state

import (
	"testing"

	"github.com/atomicstack/glossary/internal/catalog"
)

func TestSetSearchTracksCursorAndRestoresPosition(t *testing.T) {
	b := newTestBoard("one", "two", "three")
	b.Cursor = 2
	b.SetSearch("two", len("two"))

	if b.Search != "two" {
		t.Fatalf("expected search persisted, got %q", b.Search)
	}
	if b.SearchCursor != len("two") {
		t.Fatalf("expected caret at end, got %d", b.SearchCursor)
	}
	if len(b.Items) != 1 || b.Items[0].Name != "two" || b.Cursor != 0 {
		t.Fatalf("expected only 'two' under cursor, got %#v / %d", b.Items, b.Cursor)
	}

	b.SetSearch("", 0)
	if b.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", b.Cursor)
	}
	if b.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", b.LastCursor)
	}
}

func TestSearchCombinesWithCategory(t *testing.T) {
	b := NewBoard()
	b.UpdateTerms(glossaryTerms())
	b.SetCategory("Funciones sintácticas")
	b.SetSearch("SU", 2)
	if len(b.Items) != 1 || b.Items[0].Name != "Sujeto" {
		t.Fatalf("expected only Sujeto, got %#v", b.Items)
	}
	b.SetSearch("xyz", 3)
	if !b.Empty() {
		t.Fatalf("expected no results, got %#v", b.Items)
	}
}

func TestSearchIsNotTrimmed(t *testing.T) {
	b := newTestBoard("complemento directo", "complemento")
	b.SetSearch("o d", 3)
	if len(b.Items) != 1 || b.Items[0].Name != "complemento directo" {
		t.Fatalf("expected space-containing match, got %#v", b.Items)
	}
	b.SetSearch(" ", 1)
	if len(b.Items) != 1 {
		t.Fatalf("expected a lone space to match only names with spaces, got %#v", b.Items)
	}
}

func TestInsertAndDeleteSearchText(t *testing.T) {
	b := newTestBoard("alpha")

	if !b.InsertSearchText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if b.Search != "ab" || b.SearchCursor != 2 {
		t.Fatalf("unexpected search state %q/%d", b.Search, b.SearchCursor)
	}

	b.SearchCursor = 1
	if !b.InsertSearchText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if b.Search != "azb" || b.SearchCursor != 2 {
		t.Fatalf("unexpected search state %q/%d", b.Search, b.SearchCursor)
	}

	if !b.DeleteSearchRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if b.Search != "ab" || b.SearchCursor != 1 {
		t.Fatalf("unexpected search state after delete %q/%d", b.Search, b.SearchCursor)
	}

	b.SetSearch("abc def", len("abc def"))
	if !b.DeleteSearchWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if b.Search != "abc " {
		t.Fatalf("expected trailing word removed, got %q", b.Search)
	}

	b.SetSearch("abc", 0)
	if b.DeleteSearchRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if b.InsertSearchText("") {
		t.Fatal("expected empty insert to fail")
	}
	if !b.ClearSearch() || b.Search != "" {
		t.Fatalf("expected clear to empty the search, got %q", b.Search)
	}
	if b.ClearSearch() {
		t.Fatal("expected clearing an empty search to report no change")
	}
}

func TestDeleteSearchKeepsTextAfterCaret(t *testing.T) {
	b := newTestBoard("alpha")
	b.SetSearch("uno dos", 3)
	if !b.DeleteSearchWordBackward() {
		t.Fatal("expected word deletion")
	}
	if b.Search != " dos" || b.SearchCursor != 0 {
		t.Fatalf("unexpected search state %q/%d", b.Search, b.SearchCursor)
	}
}

func TestSearchCursorNavigation(t *testing.T) {
	b := newTestBoard("one", "two")
	b.SetSearch("one two", len("one two"))

	if !b.MoveSearchCursorWordBackward() || b.SearchCursor != 4 {
		t.Fatalf("expected caret at 4, got %d", b.SearchCursor)
	}
	if !b.MoveSearchCursorWordForward() || b.SearchCursor != len("one two") {
		t.Fatalf("expected caret restored to end, got %d", b.SearchCursor)
	}
	if b.MoveSearchCursorWordForward() {
		t.Fatal("expected no movement past end")
	}
	if !b.MoveSearchCursorRuneBackward() || b.SearchCursor != len("one two")-1 {
		t.Fatalf("expected caret len-1, got %d", b.SearchCursor)
	}
	if !b.MoveSearchCursorRuneForward() || b.SearchCursor != len("one two") {
		t.Fatalf("expected caret at end, got %d", b.SearchCursor)
	}
	if !b.MoveSearchCursorStart() || b.SearchCursor != 0 {
		t.Fatalf("expected caret at 0, got %d", b.SearchCursor)
	}
	if b.MoveSearchCursorRuneBackward() {
		t.Fatal("expected no movement before start")
	}
	if !b.MoveSearchCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestBestMatchIndex(t *testing.T) {
	terms := []catalog.Term{
		{Name: "Complemento directo"},
		{Name: "Complemento indirecto"},
		{Name: "Directo"},
		{Name: "Adverbio"},
	}
	if idx := BestMatchIndex(terms, "directo"); idx != 2 {
		t.Fatalf("expected exact match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(terms, "adv"); idx != 3 {
		t.Fatalf("expected prefix match index 3, got %d", idx)
	}
	if idx := BestMatchIndex(terms[:2], "directo"); idx != 0 {
		t.Fatalf("expected closest match index 0, got %d", idx)
	}
	if idx := BestMatchIndex(terms, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetSearchSelectsPrefixMatch(t *testing.T) {
	b := newTestBoard("Complemento agente", "Agente", "Agentivo")
	b.SetSearch("agenti", len("agenti"))
	if len(b.Items) != 1 || b.Cursor != 0 {
		t.Fatalf("expected one match under cursor, got %#v / %d", b.Items, b.Cursor)
	}
	b.SetSearch("agente", len("agente"))
	if b.Items[b.Cursor].Name != "Agente" {
		t.Fatalf("expected exact match selected, got %q", b.Items[b.Cursor].Name)
	}
}
