// Package logging provides the package-level logger for focuskit.
//
// Logs go to a file configured at startup (log.file) because the terminal is owned by the
// Bubble Tea program. With no file configured, output is discarded.
//
//	logging.Debugf("opened modal %s", id)
//	logging.FocusEvent(ev) // usable as a focus.Observer
package logging
