// Package focus provides keyboard focus behaviors for composed terminal UIs.
//
// Core abstractions:
//   - Handle: an element that can receive focus
//   - Host: owns the single "active element" and moves focus on request
//   - Container: a subtree that lists its focusable descendants and delivers key-down events
//   - Trap: confines Tab navigation to a Container while active, restoring prior focus on exit
//   - Roving: keeps exactly one item of a group active and moves it with arrow/Home/End keys
//
// Controllers are driven explicitly by the host: Trap.Attach is called whenever the activation
// flag or the container changes, Trap.Detach when the owner goes away. Nothing here is safe for
// concurrent use; Bubble Tea delivers messages to Update one at a time.
package focus
