package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"

	"focuskit/internal/focus"
)

// L is the package-level logger. It discards output until Setup points it at a file,
// because the terminal belongs to the UI while it runs.
var L = clog.New(io.Discard)

// Setup configures L to append to path at the given level ("debug", "info", "warn", "error").
// An empty path keeps logging disabled. The returned func closes the file.
func Setup(path, level string) (func() error, error) {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	if path == "" {
		L = clog.New(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	L = clog.NewWithOptions(f, clog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "focuskit",
	})
	return f.Close, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}

// FocusEvent logs a controller event at debug level. Its signature matches focus.Observer.
func FocusEvent(ev focus.Event) {
	L.Debug("focus", "event", string(ev.Type), "detail", ev.String())
}
