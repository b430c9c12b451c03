// Package markdown turns term descriptions into styled terminal text.
package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/atomicstack/glossary/internal/theme"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

const minWidth = 20

type rendererKey struct {
	mode  theme.Mode
	width int
}

// Renderer caches one glamour renderer per theme mode and wrap width.
type Renderer struct {
	mu        sync.Mutex
	renderers map[rendererKey]*glamour.TermRenderer
}

// NewRenderer returns an empty renderer cache.
func NewRenderer() *Renderer {
	return &Renderer{renderers: make(map[rendererKey]*glamour.TermRenderer)}
}

// Render converts md to styled text wrapped at width.
func (r *Renderer) Render(md string, width int, mode theme.Mode) (string, error) {
	if width < minWidth {
		width = minWidth
	}
	tr, err := r.termRenderer(rendererKey{mode: mode, width: width})
	if err != nil {
		return "", err
	}
	out, err := tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return compressBlankLines(strings.Trim(out, "\n")), nil
}

// RenderOrPlain renders md, falling back to word-wrapped source text when the
// markdown renderer fails. The error is returned alongside the fallback.
func (r *Renderer) RenderOrPlain(md string, width int, mode theme.Mode) (string, error) {
	out, err := r.Render(md, width, mode)
	if err == nil {
		return out, nil
	}
	return Plain(md, width), err
}

// Plain wraps md without interpreting it.
func Plain(md string, width int) string {
	if width < minWidth {
		width = minWidth
	}
	md = strings.ReplaceAll(md, "\r\n", "\n")
	return wordwrap.String(strings.TrimSpace(md), width)
}

func (r *Renderer) termRenderer(key rendererKey) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renderers == nil {
		r.renderers = make(map[rendererKey]*glamour.TermRenderer)
	}
	if tr, ok := r.renderers[key]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(key.mode.GlamourStyle()),
		glamour.WithWordWrap(key.width),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s markdown renderer: %w", key.mode, err)
	}
	r.renderers[key] = tr
	return tr, nil
}

// compressBlankLines collapses runs of blank lines down to one.
func compressBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
