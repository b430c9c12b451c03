package ui

import (
	"github.com/atomicstack/glossary/internal/catalog"
	"github.com/atomicstack/glossary/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if key.Matches(keyMsg, m.keys.Theme) {
		m.toggleTheme()
		return nil
	}
	switch m.Mode() {
	case ModeModal:
		return m.handleModalKey(keyMsg)
	case ModeDropdown:
		m.handleDropdownKey(keyMsg)
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Categories):
		m.openDropdown()
		return nil
	case key.Matches(keyMsg, m.keys.NextCat):
		m.cycleCategory(m.board.NextCategory)
		return nil
	case key.Matches(keyMsg, m.keys.PrevCat):
		m.cycleCategory(m.board.PrevCategory)
		return nil
	case key.Matches(keyMsg, m.keys.Back):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Open):
		m.openCurrentCard()
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCard(m.board.MoveCursorUp)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCard(m.board.MoveCursorDown)
	case key.Matches(keyMsg, m.keys.Left):
		m.moveCard(m.board.MoveCursorLeft)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveCard(m.board.MoveCursorRight)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCard(func() bool { return m.board.MoveCursorPageUp(m.visibleRows()) })
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCard(func() bool { return m.board.MoveCursorPageDown(m.visibleRows()) })
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCard(m.board.MoveCursorHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCard(m.board.MoveCursorEnd)
	}
	return nil
}

func (m *Model) cycleCategory(shift func() bool) {
	if shift() {
		events.Category.Select(m.board.Category, len(m.board.Items))
		m.syncLayout()
	}
}

func (m *Model) moveCard(move func() bool) {
	if move() {
		if term, ok := m.board.Current(); ok {
			events.Card.Cursor(m.board.Cursor, term.Name)
		}
	}
	m.syncLayout()
}

func (m *Model) openCurrentCard() {
	term, ok := m.board.Current()
	if !ok {
		return
	}
	m.openModal(term)
}

func (m *Model) openModal(term catalog.Term) {
	if !m.selection.Open(term) {
		return
	}
	events.Modal.Open(term.Name, term.Type)
	m.refreshModal()
	m.modal.GotoTop()
}

func (m *Model) closeModal(reason events.ModalReason) {
	term, ok := m.selection.Term()
	if !ok {
		return
	}
	m.selection.Close()
	events.Modal.Close(term.Name, reason)
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q":
		m.closeModal(events.ModalReasonEscape)
		return nil
	}
	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return cmd
}

func (m *Model) openDropdown() {
	m.picker.Show(m.board.Categories, m.board.Category)
	events.Category.Open(m.board.Category)
}

func (m *Model) handleDropdownKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.picker.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.picker.MoveDown()
	case key.Matches(msg, m.keys.Home):
		m.picker.Cursor = 0
	case key.Matches(msg, m.keys.End):
		m.picker.Cursor = len(m.picker.Options) - 1
	case key.Matches(msg, m.keys.Open):
		m.chooseCategory()
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Categories):
		m.picker.Hide()
		events.Category.Cancel(m.board.Category)
	}
}

func (m *Model) chooseCategory() {
	chosen, ok := m.picker.Chosen()
	m.picker.Hide()
	if !ok {
		return
	}
	if m.board.SetCategory(chosen) {
		events.Category.Select(chosen, len(m.board.Items))
	}
	m.syncLayout()
}

func (m *Model) toggleTheme() {
	m.themeMode = m.themeMode.Toggle()
	m.applyTheme()
	if m.selection.IsOpen() {
		m.refreshModal()
	}
	events.Theme.Toggle(m.themeMode.String())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncLayout()
	if m.selection.IsOpen() {
		m.refreshModal()
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	click := ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft
	switch m.Mode() {
	case ModeModal:
		if click {
			if !m.insideModal(ev.X, ev.Y) {
				m.closeModal(events.ModalReasonBackdrop)
			}
			return nil
		}
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return cmd
	case ModeDropdown:
		if !click {
			return nil
		}
		if idx := m.dropdownOptionAt(ev.X, ev.Y); idx >= 0 {
			m.picker.Cursor = idx
			m.chooseCategory()
			return nil
		}
		m.picker.Hide()
		events.Category.Cancel(m.board.Category)
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCard(m.board.MoveCursorUp)
	case tea.MouseButtonWheelDown:
		m.moveCard(m.board.MoveCursorDown)
	case tea.MouseButtonLeft:
		if m.onThemeToggle(ev.X, ev.Y) {
			m.toggleTheme()
			return nil
		}
		if m.onCategorySelector(ev.X, ev.Y) {
			m.openDropdown()
			return nil
		}
		if idx := m.cardAt(ev.X, ev.Y); idx >= 0 {
			m.board.Cursor = idx
			m.syncLayout()
			m.openCurrentCard()
		}
	}
	return nil
}

// syncLayout recomputes the grid columns and keeps the cursor row on screen.
func (m *Model) syncLayout() {
	m.board.SetColumns(columnsFor(m.layoutWidth()))
	m.board.EnsureCursorVisible(m.visibleRows())
	m.help.Width = m.layoutWidth()
}
