package ui

import (
	"context"
	"errors"

	"github.com/atomicstack/glossary/internal/catalog"
	"github.com/atomicstack/glossary/internal/logging"
	"github.com/atomicstack/glossary/internal/logging/events"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoSource = errors.New("no catalog source configured")

// catalogLoadedMsg carries the result of the one-shot catalog load.
type catalogLoadedMsg struct {
	terms []catalog.Term
	err   error
}

func (m *Model) loadCatalogCmd() tea.Cmd {
	src := m.source
	timeout := m.timeout
	return func() tea.Msg {
		if src == nil {
			logging.Error(errNoSource)
			events.Catalog.Failed("", errNoSource)
			return catalogLoadedMsg{err: errNoSource}
		}
		events.Catalog.Request(src.String())
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		terms, err := catalog.Load(ctx, src)
		if err != nil {
			logging.Errorf("load %s: %w", src, err)
			events.Catalog.Failed(src.String(), err)
		}
		return catalogLoadedMsg{terms: terms, err: err}
	}
}

func (m *Model) handleCatalogLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(catalogLoadedMsg)
	if !ok {
		return nil
	}
	if m.catalog.Phase != catalog.PhasePending {
		return nil
	}
	m.catalog = catalog.FromResult(update.terms, update.err)
	m.applyCatalog()
	if m.catalog.Phase == catalog.PhaseLoaded && m.source != nil {
		events.Catalog.Loaded(m.source.String(), len(m.catalog.Terms), len(m.catalog.Categories))
	}
	return nil
}

// applyCatalog installs the current catalog, keeping the cursor on the card it
// was on when that term survives the filter.
func (m *Model) applyCatalog() {
	focused, hadFocus := m.board.Current()
	m.board.UpdateTerms(m.catalog.Terms)
	if hadFocus {
		if idx := m.board.IndexOf(focused.Name); idx >= 0 {
			m.board.Cursor = idx
		}
	}
	if m.picker.Visible {
		m.picker.Show(m.board.Categories, m.board.Category)
	}
	if term, open := m.selection.Term(); open && m.selection.Revalidate(m.board.Full) {
		events.Modal.Close(term.Name, events.ModalReasonStale)
	}
	m.syncLayout()
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	if m.catalog.Phase != catalog.PhasePending {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return cmd
}
