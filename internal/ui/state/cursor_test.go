package state

import "testing"

func TestMoveCursorHome(t *testing.T) {
	b := newTestBoard("a", "b", "c")
	b.Cursor = 2
	if !b.MoveCursorHome() {
		t.Fatalf("expected move when cards exist")
	}
	if b.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", b.Cursor)
	}

	empty := newTestBoard()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty board")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	b := newTestBoard("a", "b", "c")
	if !b.MoveCursorEnd() || b.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", b.Cursor)
	}
	if b.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
}

func TestGridMovement(t *testing.T) {
	// 3 columns, 7 cards:
	// 0 1 2
	// 3 4 5
	// 6
	b := newTestBoard("a", "b", "c", "d", "e", "f", "g")
	b.SetColumns(3)
	if b.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", b.Rows())
	}
	if b.MoveCursorUp() {
		t.Fatal("expected no movement above first row")
	}
	if b.MoveCursorLeft() {
		t.Fatal("expected no movement before first card")
	}
	if !b.MoveCursorRight() || b.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", b.Cursor)
	}
	if !b.MoveCursorDown() || b.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", b.Cursor)
	}
	if !b.MoveCursorDown() || b.Cursor != 6 {
		t.Fatalf("expected short last row to land on final card, got %d", b.Cursor)
	}
	if b.MoveCursorDown() {
		t.Fatal("expected no movement below last row")
	}
	if !b.MoveCursorUp() || b.Cursor != 3 {
		t.Fatalf("expected cursor 3, got %d", b.Cursor)
	}
	if b.CursorRow() != 1 {
		t.Fatalf("expected row 1, got %d", b.CursorRow())
	}
}

func TestMoveCursorPaging(t *testing.T) {
	b := newTestBoard("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	b.SetColumns(2)
	if !b.MoveCursorPageDown(2) || b.Cursor != 4 {
		t.Fatalf("expected cursor 4 after page down, got %d", b.Cursor)
	}
	if !b.MoveCursorPageDown(2) || b.Cursor != 8 {
		t.Fatalf("expected cursor 8, got %d", b.Cursor)
	}
	if !b.MoveCursorPageDown(2) || b.Cursor != 9 {
		t.Fatalf("expected clamp to last card, got %d", b.Cursor)
	}
	if b.MoveCursorPageDown(2) {
		t.Fatal("expected no movement past end")
	}
	if !b.MoveCursorPageUp(10) || b.Cursor != 0 {
		t.Fatalf("expected cursor back at start, got %d", b.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	b := newTestBoard("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	b.SetColumns(2)
	b.Cursor = 9
	b.EnsureCursorVisible(2)
	if b.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", b.ViewportOffset)
	}

	b.Cursor = -1
	b.EnsureCursorVisible(2)
	if b.Cursor != 0 || b.ViewportOffset != 0 {
		t.Fatalf("expected cursor and offset normalized, got %d/%d", b.Cursor, b.ViewportOffset)
	}

	b.ViewportOffset = 4
	b.EnsureCursorVisible(0)
	if b.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when visibleRows <= 0, got %d", b.ViewportOffset)
	}

	b.ViewportOffset = 3
	b.Cursor = 2
	b.EnsureCursorVisible(2)
	if b.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor row, got %d", b.ViewportOffset)
	}
}
