// Package dom is a small in-process element tree that hosts the focus controllers.
//
// A Document owns a body element and the single active element. Elements carry a tag,
// attributes and children; the focus rules follow the usual interactive-content criterion
// (links with href, enabled buttons, form fields, non-negative tabindex) minus anything
// disabled or aria-hidden="true".
//
// Key events are dispatched to the active element and bubble through its ancestors. When no
// listener prevents the default, Tab and Shift+Tab move focus through tabbable elements in
// document order, and Enter or Space activate the focused button or link.
package dom
