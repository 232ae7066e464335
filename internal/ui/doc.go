// Package ui contains the Bubble Tea program that renders the locality
// picker. The Model type focuses on message orchestration, while dedicated
// helpers own key handling, text input, mouse hit-testing and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (navigation for key presses, mouse.go for pointer
//     events, backend.go for loader results).
//   - Key and mouse handlers never mutate picker state directly. They look up
//     the event bound to a trigger on the combobox prop sets and dispatch it
//     to the combobox.Controller.
//
// State ownership:
//   - Interaction state (input text, open menu, highlight, selection) lives
//     in internal/ui/combobox and is independent of rendering.
//   - The loader outcome lives in an internal/state.LoadStore. The model
//     subscribes to it and hands the fetched items to the controller once the
//     store resolves.
//
// Backend interactions:
//   - A backend.Loader fetches the location list on its own goroutine; Update
//     waits for its single event and routes it through the dispatcher, which
//     resolves the load store.
//   - View picks one of three screens from the store: a spinner while loading,
//     the error message, or the picker itself.
package ui
