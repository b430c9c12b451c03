package theme

import "github.com/charmbracelet/lipgloss"

// Mode selects one of the two palettes.
type Mode int

const (
	Dark Mode = iota
	Light
)

// Toggle flips between Dark and Light.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// GlamourStyle names the glamour standard style matching the mode.
func (m Mode) GlamourStyle() string {
	return m.String()
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Mode              Mode
	App               *lipgloss.Style
	Header            *lipgloss.Style
	HeaderToggle      *lipgloss.Style
	Attribution       *lipgloss.Style
	Loading           *lipgloss.Style
	Card              *lipgloss.Style
	SelectedCard      *lipgloss.Style
	CardTitle         *lipgloss.Style
	CardType          *lipgloss.Style
	Empty             *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	Category          *lipgloss.Style
	CategoryActive    *lipgloss.Style
	Dropdown          *lipgloss.Style
	DropdownItem      *lipgloss.Style
	DropdownSelected  *lipgloss.Style
	Modal             *lipgloss.Style
	ModalTitle        *lipgloss.Style
	ModalType         *lipgloss.Style
	ModalHint         *lipgloss.Style
	HelpKey           *lipgloss.Style
	HelpDesc          *lipgloss.Style
}

var darkStyles = Styles{
	Mode: Dark,
	App: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true).Padding(0, 1),
	),
	HeaderToggle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(lipgloss.Color("25")).Padding(0, 1),
	),
	Attribution: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Card: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	SelectedCard: ptr(
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	CardTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	CardType: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Category: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	CategoryActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true).Padding(0, 1),
	),
	Dropdown: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")),
	),
	DropdownItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	DropdownSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Modal: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(1, 2),
	),
	ModalTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	ModalType: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
	),
	ModalHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	HelpDesc: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
}

var lightStyles = Styles{
	Mode: Light,
	App: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("26")).Bold(true).Padding(0, 1),
	),
	HeaderToggle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("26")).Padding(0, 1),
	),
	Attribution: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Italic(true),
	),
	Card: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
	),
	SelectedCard: ptr(
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("26")).Padding(0, 1),
	),
	CardTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Bold(true),
	),
	CardType: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("26")).Blink(true),
	),
	Category: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	CategoryActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("253")).Bold(true).Padding(0, 1),
	),
	Dropdown: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("26")),
	),
	DropdownItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	DropdownSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("253")).Bold(true),
	),
	Modal: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("26")).Padding(1, 2),
	),
	ModalTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Bold(true),
	),
	ModalType: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	ModalHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
	),
	HelpDesc: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
}

// For returns the style set for the given mode.
func For(mode Mode) *Styles {
	if mode == Light {
		return &lightStyles
	}
	return &darkStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
