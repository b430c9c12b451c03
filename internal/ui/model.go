package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/glossary/internal/catalog"
	"github.com/atomicstack/glossary/internal/markdown"
	"github.com/atomicstack/glossary/internal/theme"
	uistate "github.com/atomicstack/glossary/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type board = uistate.Board

type Mode int

const (
	ModeGrid Mode = iota
	ModeDropdown
	ModeModal
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Source     catalog.Source
	Timeout    time.Duration
	Width      int
	Height     int
	ShowFooter bool
	Theme      theme.Mode
}

// Model implements the Bubble Tea model for the glossary browser.
type Model struct {
	board     *board
	selection uistate.Selection
	picker    uistate.Picker
	catalog   catalog.State

	source  catalog.Source
	timeout time.Duration

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	themeMode theme.Mode
	styles    *theme.Styles
	renderer  *markdown.Renderer

	filterCursor      cursor.Model
	filterCursorDirty bool
	focused           bool
	spinner           spinner.Model
	modal             viewport.Model
	help              help.Model
	keys              keyMap

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with an empty, pending catalog.
func NewModel(opts Options) *Model {
	m := &Model{
		board:      uistate.NewBoard(),
		catalog:    catalog.Pending(),
		source:     opts.Source,
		timeout:    opts.Timeout,
		showFooter: opts.ShowFooter,
		themeMode:  opts.Theme,
		renderer:   markdown.NewRenderer(),
		keys:       newKeyMap(),
		modal:      viewport.New(0, 0),
		help:       help.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	c := cursor.New()
	c.SetChar(" ")
	m.filterCursor = c
	m.applyTheme()
	m.syncLayout()
	m.registerHandlers()
	return m
}

// Init starts the catalog load, the pending spinner and the search caret.
func (m *Model) Init() tea.Cmd {
	m.focused = true
	cmds := []tea.Cmd{m.loadCatalogCmd(), m.spinner.Tick}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(catalogLoadedMsg{}):  m.handleCatalogLoadedMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if m.focused {
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Mode reports which surface currently receives input.
func (m *Model) Mode() Mode {
	switch {
	case m.selection.IsOpen():
		return ModeModal
	case m.picker.Visible:
		return ModeDropdown
	default:
		return ModeGrid
	}
}

// Theme returns the active theme mode.
func (m *Model) Theme() theme.Mode {
	return m.themeMode
}

func (m *Model) applyTheme() {
	m.styles = theme.For(m.themeMode)
	m.filterCursor.Style = m.styles.Cursor.Copy()
	m.filterCursor.TextStyle = m.styles.Filter.Copy()
	m.spinner.Style = m.styles.Loading.Copy()
	m.help.Styles.ShortKey = m.styles.HelpKey.Copy()
	m.help.Styles.ShortDesc = m.styles.HelpDesc.Copy()
	m.help.Styles.ShortSeparator = m.styles.HelpDesc.Copy()
	m.help.Styles.FullKey = m.styles.HelpKey.Copy()
	m.help.Styles.FullDesc = m.styles.HelpDesc.Copy()
	m.help.Styles.FullSeparator = m.styles.HelpDesc.Copy()
}
