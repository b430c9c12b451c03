// Package ui contains the Bubble Tea program that browses the glossary.
// Model focuses on message orchestration while dedicated files own the rest.
//
// Message flow:
//   - Init starts the one-shot catalog load (commands.go), the pending spinner
//     and the search caret.
//   - Update routes each tea.Msg through a typed handler registry, so key
//     presses, mouse events, resizes and the load result each land in a
//     focused function.
//   - Key handling depends on the active surface: the detail modal, the
//     category dropdown, or the card grid with its search box
//     (navigation.go, input.go).
//
// State ownership:
//   - internal/ui/state.Board holds the catalog, the filter inputs, the
//     visible cards, the card cursor and the row viewport.
//   - internal/ui/state.Selection is the modal state machine and
//     internal/ui/state.Picker the category dropdown.
//   - The theme mode lives on the Model and is passed explicitly to the
//     style and markdown renderers.
//
// Rendering (view.go) derives everything from that state, so tests can drive
// the Model through a Harness and assert on View output.
package ui
