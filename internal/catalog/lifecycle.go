package catalog

// Phase tracks the one-shot catalog load.
type Phase int

const (
	PhasePending Phase = iota
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the observable outcome of the catalog load. Terms and Categories
// are always consistent with each other.
type State struct {
	Phase      Phase
	Terms      []Term
	Categories []string
	Err        error
}

// Pending is the state before the load completes.
func Pending() State {
	return State{Phase: PhasePending, Terms: []Term{}, Categories: Categories(nil)}
}

// Loaded wraps a successfully decoded catalog.
func Loaded(terms []Term) State {
	terms = Clone(terms)
	return State{Phase: PhaseLoaded, Terms: terms, Categories: Categories(terms)}
}

// Failed degrades to an empty catalog with only the sentinel category.
func Failed(err error) State {
	return State{Phase: PhaseFailed, Terms: []Term{}, Categories: Categories(nil), Err: err}
}

// FromResult maps a Load result onto a State.
func FromResult(terms []Term, err error) State {
	if err != nil {
		return Failed(err)
	}
	return Loaded(terms)
}
