package events

import "github.com/atomicstack/glossary/internal/logging"

type FilterTracer struct{}

type CategoryTracer struct{}

type CardTracer struct{}

type ModalTracer struct{}

type ThemeTracer struct{}

type ModalReason string

const (
	ModalReasonEscape   ModalReason = "escape"
	ModalReasonBackdrop ModalReason = "backdrop"
	ModalReasonStale    ModalReason = "stale"
)

var (
	Filter   = FilterTracer{}
	Category = CategoryTracer{}
	Card     = CardTracer{}
	Modal    = ModalTracer{}
	Theme    = ThemeTracer{}
)

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(search string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"search": search})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(search string, visible int) {
	logging.Trace("filter.append", map[string]interface{}{"search": search, "visible": visible})
}

func (FilterTracer) Backspace(search string, visible int) {
	logging.Trace("filter.backspace", map[string]interface{}{"search": search, "visible": visible})
}

func (CategoryTracer) Open(current string) {
	logging.Trace("category.open", map[string]interface{}{"current": current})
}

func (CategoryTracer) Select(category string, visible int) {
	logging.Trace("category.select", map[string]interface{}{"category": category, "visible": visible})
}

func (CategoryTracer) Cancel(current string) {
	logging.Trace("category.cancel", map[string]interface{}{"current": current})
}

func (CardTracer) Cursor(cursor int, name string) {
	logging.Trace("card.cursor", map[string]interface{}{"cursor": cursor, "name": name})
}

func (ModalTracer) Open(name, category string) {
	logging.Trace("modal.open", map[string]interface{}{"name": name, "type": category})
}

func (ModalTracer) Close(name string, reason ModalReason) {
	logging.Trace("modal.close", map[string]interface{}{"name": name, "reason": string(reason)})
}

func (ThemeTracer) Toggle(mode string) {
	logging.Trace("theme.toggle", map[string]interface{}{"mode": mode})
}
