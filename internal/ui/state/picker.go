package state

// Picker is the category dropdown: a list of options with a cursor.
type Picker struct {
	Options []string
	Cursor  int
	Visible bool
}

// Show opens the dropdown with the cursor on current.
func (p *Picker) Show(options []string, current string) {
	p.Options = append([]string(nil), options...)
	p.Cursor = 0
	for i, option := range p.Options {
		if option == current {
			p.Cursor = i
			break
		}
	}
	p.Visible = true
}

// Hide closes the dropdown.
func (p *Picker) Hide() {
	p.Visible = false
}

// Chosen returns the option under the cursor.
func (p *Picker) Chosen() (string, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Options) {
		return "", false
	}
	return p.Options[p.Cursor], true
}

// MoveUp moves the cursor up, wrapping to the bottom.
func (p *Picker) MoveUp() {
	if n := len(p.Options); n > 0 {
		if p.Cursor > 0 {
			p.Cursor--
		} else {
			p.Cursor = n - 1
		}
	}
}

// MoveDown moves the cursor down, wrapping to the top.
func (p *Picker) MoveDown() {
	if n := len(p.Options); n > 0 {
		if p.Cursor < n-1 {
			p.Cursor++
		} else {
			p.Cursor = 0
		}
	}
}
