// Package ui renders the focus demos with Bubble Tea.
//
// Each demo page owns a dom.Document. Key presses are translated into focus key
// events and dispatched to that document, so the focus controllers see the same
// bubbling and default Tab navigation they would get from a browser.
//
// Core pieces:
//   - View: a screen or region with its own Init/Update/View (Elm-style)
//   - Overlay: a modal layer whose container is held by a focus.Trap
//   - FocusManager: rotates keyboard focus between screen regions
//   - KeyHandler: leader-key sequences handled before keys reach a page
package ui
