package state

// Rows returns the number of grid rows needed for the visible cards.
func (b *Board) Rows() int {
	cols := b.columns()
	return (len(b.Items) + cols - 1) / cols
}

// CursorRow returns the grid row holding the cursor.
func (b *Board) CursorRow() int {
	if b.Cursor <= 0 {
		return 0
	}
	return b.Cursor / b.columns()
}

func (b *Board) columns() int {
	if b.Columns < 1 {
		return 1
	}
	return b.Columns
}

// MoveCursorLeft moves to the previous card.
func (b *Board) MoveCursorLeft() bool {
	return b.moveCursorBy(-1)
}

// MoveCursorRight moves to the next card.
func (b *Board) MoveCursorRight() bool {
	return b.moveCursorBy(1)
}

// MoveCursorUp moves one row up, staying in the same column.
func (b *Board) MoveCursorUp() bool {
	if b.Cursor-b.columns() < 0 {
		return false
	}
	return b.moveCursorBy(-b.columns())
}

// MoveCursorDown moves one row down. On a short last row the cursor lands on
// the final card.
func (b *Board) MoveCursorDown() bool {
	if b.CursorRow() >= b.Rows()-1 {
		return false
	}
	return b.moveCursorBy(b.columns())
}

// MoveCursorHome moves the cursor to the first card.
func (b *Board) MoveCursorHome() bool {
	if len(b.Items) == 0 {
		b.Cursor = 0
		return false
	}
	old := b.Cursor
	b.Cursor = 0
	return old != b.Cursor
}

// MoveCursorEnd moves the cursor to the last card.
func (b *Board) MoveCursorEnd() bool {
	n := len(b.Items)
	if n == 0 {
		b.Cursor = 0
		return false
	}
	old := b.Cursor
	b.Cursor = n - 1
	return old != b.Cursor
}

// MoveCursorPageUp moves the cursor up by the given number of visible rows.
func (b *Board) MoveCursorPageUp(visibleRows int) bool {
	return b.moveCursorBy(-b.pageSize(visibleRows))
}

// MoveCursorPageDown moves the cursor down by the given number of visible rows.
func (b *Board) MoveCursorPageDown(visibleRows int) bool {
	return b.moveCursorBy(b.pageSize(visibleRows))
}

func (b *Board) moveCursorBy(delta int) bool {
	if len(b.Items) == 0 {
		b.Cursor = 0
		return false
	}
	old := b.Cursor
	if b.Cursor < 0 {
		b.Cursor = 0
	}
	b.Cursor += delta
	if b.Cursor < 0 {
		b.Cursor = 0
	}
	if b.Cursor >= len(b.Items) {
		b.Cursor = len(b.Items) - 1
	}
	return b.Cursor != old
}

func (b *Board) pageSize(visibleRows int) int {
	rows := b.Rows()
	if rows == 0 {
		return 0
	}
	if visibleRows <= 0 || visibleRows > rows {
		visibleRows = rows
	}
	return visibleRows * b.columns()
}

// EnsureCursorVisible adjusts the row offset so the cursor row stays on screen.
func (b *Board) EnsureCursorVisible(visibleRows int) {
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
	if visibleRows <= 0 {
		b.ViewportOffset = 0
		return
	}
	maxOffset := b.Rows() - visibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if b.ViewportOffset > maxOffset {
		b.ViewportOffset = maxOffset
	}
	if b.ViewportOffset < 0 {
		b.ViewportOffset = 0
	}
	row := b.CursorRow()
	if row < b.ViewportOffset {
		b.ViewportOffset = row
	}
	if row > b.ViewportOffset+visibleRows-1 {
		b.ViewportOffset = row - visibleRows + 1
	}
}
