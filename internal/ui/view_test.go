package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestColumnsForBreakpoints(t *testing.T) {
	cases := map[int]int{0: 1, 59: 1, 60: 2, 99: 2, 100: 3, 200: 3}
	for width, want := range cases {
		if got := columnsFor(width); got != want {
			t.Fatalf("width %d: expected %d columns, got %d", width, want, got)
		}
	}
}

func TestPendingViewShowsChromeAndSpinner(t *testing.T) {
	m := newTestModel(t, nil, 80, 30)
	view := ansi.Strip(m.View())
	for _, want := range []string{titleText, attributionText, searchPlaceholder, loadingText, copyrightText, "Todos", emptyText} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in pending view:\n%s", want, view)
		}
	}
	if lines := strings.Split(m.View(), "\n"); len(lines) != 30 {
		t.Fatalf("expected view to fill 30 rows, got %d", len(lines))
	}
}

func TestViewRespectsWidth(t *testing.T) {
	h := loadedHarness(t, 50, 30)
	for i, line := range strings.Split(h.View(), "\n") {
		if w := lipgloss.Width(line); w > 50 {
			t.Fatalf("line %d exceeds width: %d > 50", i, w)
		}
	}
}

func TestLoadedViewShowsCards(t *testing.T) {
	h := loadedHarness(t, 100, 40)
	view := ansi.Strip(h.View())
	for _, want := range []string{"Sustantivo", "Sujeto", "Oración", "Categorías léxicas", "5 de 5 términos"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, loadingText) || strings.Contains(view, emptyText) {
		t.Fatalf("expected neither loading nor empty state:\n%s", view)
	}
}

func TestFailedViewShowsErrorAndEmptyState(t *testing.T) {
	h := NewHarness(newTestModel(t, staticSource{err: errors.New("boom")}, 100, 40))
	h.Load()
	view := ansi.Strip(h.View())
	if !strings.Contains(view, "Error:") || !strings.Contains(view, "boom") {
		t.Fatalf("expected error status line:\n%s", view)
	}
	if !strings.Contains(view, emptyText) {
		t.Fatalf("expected empty-state message:\n%s", view)
	}
	if strings.Contains(view, loadingText) {
		t.Fatalf("expected spinner to be gone:\n%s", view)
	}
}

func TestGridViewScrollsWithCursor(t *testing.T) {
	h := loadedHarness(t, 50, 6+1+3+cardHeight*2)
	if rows := h.Model().visibleRows(); rows != 2 {
		t.Fatalf("expected two visible rows, got %d", rows)
	}
	view := ansi.Strip(h.View())
	if strings.Contains(view, "Oración") {
		t.Fatalf("expected Oración below the fold:\n%s", view)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	view = ansi.Strip(h.View())
	if !strings.Contains(view, "Oración") || strings.Contains(view, "Sustantivo") {
		t.Fatalf("expected viewport to follow the cursor:\n%s", view)
	}
}

func TestDropdownViewShowsCounts(t *testing.T) {
	h := loadedHarness(t, 100, 40)
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	view := ansi.Strip(h.View())
	for _, line := range []string{"Todos", "Categorías léxicas", "Sintaxis"} {
		if !strings.Contains(view, line) {
			t.Fatalf("expected %q in dropdown:\n%s", line, view)
		}
	}
	found := false
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Todos") && strings.Contains(line, "5") && strings.Contains(line, "│") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected sentinel row with total count:\n%s", view)
	}
}

func TestModalViewRendersMarkdown(t *testing.T) {
	h := loadedHarness(t, 100, 40)
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	view := ansi.Strip(h.View())
	for _, want := range []string{"Sustantivo", "Categorías léxicas", "seres", "u objetos", "esc cerrar"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in modal view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "**seres**") {
		t.Fatalf("expected markdown emphasis to be rendered, got raw source:\n%s", view)
	}
}

func TestHeaderIconFollowsTheme(t *testing.T) {
	m := newTestModel(t, nil, 80, 30)
	if !strings.Contains(ansi.Strip(m.headerView()), "☀") {
		t.Fatal("expected sun icon in dark mode")
	}
	m.toggleTheme()
	if !strings.Contains(ansi.Strip(m.headerView()), "☾") {
		t.Fatal("expected moon icon in light mode")
	}
}

func TestFooterCanBeHidden(t *testing.T) {
	quietLogs(t)
	m := NewModel(Options{Width: 80, Height: 30})
	if strings.Contains(ansi.Strip(m.View()), copyrightText) {
		t.Fatal("expected footer to be hidden")
	}
}

func TestViewLinesShareTheBaseBlockWidth(t *testing.T) {
	h := loadedHarness(t, 80, 30)
	lines := strings.Split(h.View(), "\n")
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Fatalf("line %d: expected width %d, got %d (%q)", i, want, w, line)
		}
	}
}
