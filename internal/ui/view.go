package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/glossary/internal/catalog"
	"github.com/atomicstack/glossary/internal/format/table"
	"github.com/atomicstack/glossary/internal/logging"
	"github.com/atomicstack/glossary/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	titleText       = "Glosario de Términos Gramaticales"
	attributionText = "Página hecha por Ibai Farina. Muchos de los términos son de Hector Berger"
	emptyText       = "No se encontraron términos. Intente con una búsqueda diferente."
	loadingText     = "Cargando términos…"
	copyrightText   = "© 2024 Glosario de Términos Gramaticales. Todos los derechos reservados."
	modalHintText   = "esc cerrar · ↑/↓ desplazar"

	defaultLayoutWidth = 80
	cardHeight         = 4
	cardGap            = 1

	// header, attribution, blank, search, category, blank
	topChromeRows = 6
	categoryRow   = 4

	modalMaxWidth = 64
	modalMinWidth = 24

	// title, type, two separators, hint, padding and border
	modalChromeRows = 9
)

// columnsFor maps the terminal width onto the one, two and three column
// breakpoints of the card grid.
func columnsFor(width int) int {
	switch {
	case width < 60:
		return 1
	case width < 100:
		return 2
	default:
		return 3
	}
}

func (m *Model) layoutWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultLayoutWidth
}

func (m *Model) bottomRows() int {
	rows := 1 // status
	if m.showFooter {
		rows += 3
	}
	return rows
}

// visibleRows returns how many card rows fit on screen, or -1 when the height
// is unknown.
func (m *Model) visibleRows() int {
	if m.height <= 0 {
		return -1
	}
	rows := (m.height - topChromeRows - m.bottomRows()) / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) cardWidth() int {
	cols := columnsFor(m.layoutWidth())
	w := (m.layoutWidth() - cardGap*(cols-1)) / cols
	if w < 6 {
		return 6
	}
	return w
}

// View implements tea.Model.
func (m *Model) View() string {
	m.syncLayout()
	if m.selection.IsOpen() {
		return m.viewModal()
	}
	width := m.layoutWidth()
	top := []string{
		m.headerView(),
		m.styles.Attribution.Render(truncate.StringWithTail(attributionText, uint(width), "…")),
		"",
		m.searchPrompt(),
		m.categoryView(),
		"",
	}
	var body []string
	switch {
	case m.picker.Visible:
		body = strings.Split(m.dropdownView(), "\n")
	case m.board.Empty():
		body = m.emptyView()
	default:
		body = m.gridView()
	}
	bottom := []string{m.statusView()}
	if m.showFooter {
		bottom = append(bottom, "", m.styles.Footer.Render(copyrightText), m.help.View(m.keys))
	}
	if m.height > 0 {
		avail := m.height - len(top) - len(bottom)
		if avail < 0 {
			avail = 0
		}
		if len(body) > avail {
			body = body[:avail]
		}
		for len(body) < avail {
			body = append(body, "")
		}
	}
	lines := make([]string, 0, len(top)+len(body)+len(bottom))
	lines = append(lines, top...)
	lines = append(lines, body...)
	lines = append(lines, bottom...)
	return m.styles.App.Render(strings.Join(fitWidth(lines, width), "\n"))
}

func (m *Model) headerView() string {
	width := m.layoutWidth()
	toggle := m.styles.HeaderToggle.Render(m.themeIcon())
	titleWidth := width - lipgloss.Width(toggle)
	if titleWidth < 1 {
		titleWidth = 1
	}
	title := truncate.StringWithTail("📖 "+titleText, uint(max(titleWidth-2, 1)), "…")
	return m.styles.Header.Copy().Width(titleWidth).Render(title) + toggle
}

// themeIcon shows the mode the toggle switches to.
func (m *Model) themeIcon() string {
	if m.themeMode == theme.Dark {
		return "☀"
	}
	return "☾"
}

func (m *Model) onThemeToggle(x, y int) bool {
	if y != 0 {
		return false
	}
	toggleWidth := lipgloss.Width(m.styles.HeaderToggle.Render(m.themeIcon()))
	return x >= m.layoutWidth()-toggleWidth
}

func (m *Model) categoryView() string {
	label := m.styles.Category.Render("Categoría:")
	current := m.styles.CategoryActive.Render(m.board.Category + " ▾")
	counts := m.styles.Info.Render(fmt.Sprintf("%d de %d términos", len(m.board.Items), len(m.board.Full)))
	return label + " " + current + "  " + counts
}

func (m *Model) onCategorySelector(x, y int) bool {
	if y != categoryRow {
		return false
	}
	label := lipgloss.Width(m.styles.Category.Render("Categoría:")) + 1
	current := lipgloss.Width(m.styles.CategoryActive.Render(m.board.Category + " ▾"))
	return x >= label && x < label+current
}

func (m *Model) dropdownView() string {
	counts := catalog.Counts(m.board.Full)
	rows := make([][]string, len(m.picker.Options))
	for i, option := range m.picker.Options {
		rows[i] = []string{option, strconv.Itoa(counts[option])}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	lines := make([]string, len(formatted))
	for i, row := range formatted {
		style := m.styles.DropdownItem
		if i == m.picker.Cursor {
			style = m.styles.DropdownSelected
		}
		lines[i] = style.Render(" " + row + " ")
	}
	return m.styles.Dropdown.Render(strings.Join(lines, "\n"))
}

// dropdownOptionAt maps a screen position onto a dropdown option index.
func (m *Model) dropdownOptionAt(x, y int) int {
	idx := y - topChromeRows - 1
	if idx < 0 || idx >= len(m.picker.Options) {
		return -1
	}
	if x <= 0 || x >= lipgloss.Width(m.dropdownView())-1 {
		return -1
	}
	return idx
}

func (m *Model) emptyView() []string {
	width := m.layoutWidth()
	block := m.styles.Empty.Copy().Width(width).Align(lipgloss.Center).Render("ⓘ\n" + emptyText)
	return strings.Split(block, "\n")
}

func (m *Model) gridView() []string {
	b := m.board
	cols := b.Columns
	cw := m.cardWidth()
	first := b.ViewportOffset
	last := b.Rows()
	if rows := m.visibleRows(); rows > 0 && first+rows < last {
		last = first + rows
	}
	gap := strings.Repeat(" ", cardGap)
	lines := make([]string, 0, (last-first)*cardHeight)
	for row := first; row < last; row++ {
		parts := make([]string, 0, cols*2)
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx >= len(b.Items) {
				break
			}
			if col > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, m.cardView(b.Items[idx], idx == b.Cursor, cw))
		}
		lines = append(lines, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, parts...), "\n")...)
	}
	return lines
}

func (m *Model) cardView(term catalog.Term, selected bool, width int) string {
	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}
	inner := uint(max(width-4, 1))
	title := m.styles.CardTitle.Render(truncate.StringWithTail(term.Name, inner, "…"))
	kind := m.styles.CardType.Render(truncate.StringWithTail(term.Type, inner, "…"))
	return style.Copy().Width(width - 2).Render(title + "\n" + kind)
}

// cardAt maps a screen position onto a visible card index, or -1.
func (m *Model) cardAt(x, y int) int {
	b := m.board
	offset := y - topChromeRows
	if offset < 0 || x < 0 {
		return -1
	}
	screenRow := offset / cardHeight
	if rows := m.visibleRows(); rows > 0 && screenRow >= rows {
		return -1
	}
	cw := m.cardWidth()
	col := x / (cw + cardGap)
	if col >= b.Columns || x-col*(cw+cardGap) >= cw {
		return -1
	}
	idx := (b.ViewportOffset+screenRow)*b.Columns + col
	if idx >= len(b.Items) {
		return -1
	}
	return idx
}

func (m *Model) statusView() string {
	switch m.catalog.Phase {
	case catalog.PhasePending:
		return m.spinner.View() + " " + m.styles.Loading.Render(loadingText)
	case catalog.PhaseFailed:
		msg := "No se pudieron cargar los términos"
		if m.catalog.Err != nil {
			msg += ": " + m.catalog.Err.Error()
		}
		return m.styles.Error.Render("Error: " + msg)
	}
	return ""
}

func (m *Model) modalWidth() int {
	w := m.layoutWidth() - 4
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < modalMinWidth {
		w = modalMinWidth
	}
	return w
}

// modalInnerWidth is the content width inside the modal border and padding.
func (m *Model) modalInnerWidth() int {
	return m.modalWidth() - 2 - m.styles.Modal.GetHorizontalPadding()
}

// refreshModal renders the open term's description into the modal viewport.
func (m *Model) refreshModal() {
	term, ok := m.selection.Term()
	if !ok {
		return
	}
	inner := m.modalInnerWidth()
	body, err := m.renderer.RenderOrPlain(term.Description, inner, m.themeMode)
	if err != nil {
		logging.Error(err)
	}
	height := lipgloss.Height(body)
	if m.height > 0 {
		limit := m.height - modalChromeRows - 2
		if limit < 3 {
			limit = 3
		}
		if height > limit {
			height = limit
		}
	}
	m.modal.Width = inner
	m.modal.Height = height
	m.modal.SetContent(body)
}

func (m *Model) modalBox() string {
	term, _ := m.selection.Term()
	inner := m.modalInnerWidth()
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ModalTitle.Copy().Width(inner).Render(term.Name),
		m.styles.ModalType.Render(truncate.StringWithTail(term.Type, uint(inner), "…")),
		"",
		m.modal.View(),
		"",
		m.styles.ModalHint.Render(truncate.StringWithTail(modalHintText, uint(inner), "…")),
	)
	return m.styles.Modal.Copy().Width(m.modalWidth() - 2).Render(content)
}

func (m *Model) screenHeight(box string) int {
	if m.height > 0 {
		return m.height
	}
	return lipgloss.Height(box)
}

func (m *Model) viewModal() string {
	box := m.modalBox()
	return lipgloss.Place(m.layoutWidth(), m.screenHeight(box), lipgloss.Center, lipgloss.Center, box)
}

// insideModal reports whether a screen position falls on the modal box.
func (m *Model) insideModal(x, y int) bool {
	box := m.modalBox()
	w, h := lipgloss.Size(box)
	left := max(m.layoutWidth()-w, 0) / 2
	top := max(m.screenHeight(box)-h, 0) / 2
	return x >= left && x < left+w && y >= top && y < top+h
}

func fitWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncate.StringWithTail(line, uint(width-1), "…")
		}
	}
	return lines
}
