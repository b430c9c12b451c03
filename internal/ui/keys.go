package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Open       key.Binding
	Categories key.Binding
	NextCat    key.Binding
	PrevCat    key.Binding
	Theme      key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "arriba")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "abajo")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "izquierda")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "derecha")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "página anterior")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "página siguiente")),
		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "inicio")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "final")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ver")),
		Categories: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "categorías")),
		NextCat:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "siguiente categoría")),
		PrevCat:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "categoría anterior")),
		Theme:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "tema")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cerrar")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "salir")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Categories, k.Theme, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Open, k.Categories, k.NextCat, k.PrevCat},
		{k.Theme, k.Back, k.Quit},
	}
}
