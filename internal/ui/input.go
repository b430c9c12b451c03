package ui

import (
	"unicode"

	"github.com/atomicstack/glossary/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

const searchPlaceholder = "Buscar por nombre"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.board.SearchCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput edits the search box. Arrow keys belong to the card grid,
// so the caret moves with the emacs bindings.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	b := m.board
	switch msg.String() {
	case "ctrl+u":
		before := b.SearchCursorPos()
		if !b.ClearSearch() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cleared()
		m.syncLayout()
		return true
	case "ctrl+w":
		before := b.SearchCursorPos()
		if !b.DeleteSearchWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.WordBackspace(b.Search)
		m.syncLayout()
		return true
	case "ctrl+a":
		return m.moveSearchCaret(b.MoveSearchCursorStart, false)
	case "ctrl+e":
		return m.moveSearchCaret(b.MoveSearchCursorEnd, false)
	case "ctrl+b":
		return m.moveSearchCaret(b.MoveSearchCursorRuneBackward, false)
	case "ctrl+f":
		return m.moveSearchCaret(b.MoveSearchCursorRuneForward, false)
	case "alt+b":
		return m.moveSearchCaret(b.MoveSearchCursorWordBackward, true)
	case "alt+f":
		return m.moveSearchCaret(b.MoveSearchCursorWordForward, true)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeSearchRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToSearch(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToSearch(" ")
	}
	return false
}

func (m *Model) moveSearchCaret(move func() bool, word bool) bool {
	before := m.board.SearchCursorPos()
	if !move() {
		return false
	}
	m.noteFilterCursorChange(before)
	if word {
		events.Filter.CursorWord(m.board.SearchCursor)
	} else {
		events.Filter.Cursor(m.board.SearchCursor)
	}
	return true
}

func (m *Model) appendToSearch(text string) bool {
	if text == "" {
		return false
	}
	before := m.board.SearchCursorPos()
	if !m.board.InsertSearchText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Append(m.board.Search, len(m.board.Items))
	m.syncLayout()
	return true
}

func (m *Model) removeSearchRune() bool {
	before := m.board.SearchCursorPos()
	if !m.board.DeleteSearchRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Backspace(m.board.Search, len(m.board.Items))
	m.syncLayout()
	return true
}

func (m *Model) searchPrompt() string {
	st := m.styles
	prompt := st.FilterPrompt.Render("🔍 ")
	m.filterCursor.Style = st.Cursor.Copy()
	m.filterCursor.TextStyle = st.Filter.Copy()
	text := m.board.Search
	if text == "" {
		runes := []rune(searchPlaceholder)
		m.filterCursor.TextStyle = st.FilterPlaceholder.Copy()
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + st.FilterPlaceholder.Render(string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.board.SearchCursorPos()
	before := ""
	if pos > 0 {
		before = st.Filter.Render(string(runes[:pos]))
	}
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		if pos+1 < len(runes) {
			after = st.Filter.Render(string(runes[pos+1:]))
		}
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	cursorStyle := m.styles.Cursor.Copy().Inline(true)
	return base.Inherit(cursorStyle).Blink(false).Render(char)
}
