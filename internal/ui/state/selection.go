package state

import "github.com/atomicstack/glossary/internal/catalog"

// Selection is the detail modal state machine: closed, or open on one term.
// It refers to the term by name so a catalog change can invalidate it.
type Selection struct {
	open bool
	term catalog.Term
}

// IsOpen reports whether a term is being shown.
func (s *Selection) IsOpen() bool {
	return s.open
}

// Term returns the open term.
func (s *Selection) Term() (catalog.Term, bool) {
	if !s.open {
		return catalog.Term{}, false
	}
	return s.term, true
}

// Open shows t. Re-opening the same term is a no-op, and a different term is
// refused until the modal is dismissed.
func (s *Selection) Open(t catalog.Term) bool {
	if s.open {
		return false
	}
	s.open = true
	s.term = t
	return true
}

// Close dismisses the modal regardless of which term is open.
func (s *Selection) Close() bool {
	if !s.open {
		return false
	}
	s.open = false
	s.term = catalog.Term{}
	return true
}

// Revalidate clears the selection when its term is missing from terms, and
// refreshes it when the term still exists. It reports whether the modal closed.
func (s *Selection) Revalidate(terms []catalog.Term) bool {
	if !s.open {
		return false
	}
	current, ok := catalog.Find(terms, s.term.Name)
	if !ok {
		return s.Close()
	}
	s.term = current
	return false
}
