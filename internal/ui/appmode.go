package ui

import "focuskit/internal/config"

// AppMode selects which demo page is on screen.
type AppMode int

const (
	ModeModalDemo AppMode = iota
	ModeTabsDemo
)

func (m AppMode) String() string {
	switch m {
	case ModeModalDemo:
		return "Modal"
	case ModeTabsDemo:
		return "Tabs"
	default:
		return "Unknown"
	}
}

// ModeFromConfig maps the configured demo name to a mode. Unknown names select the modal demo.
func ModeFromConfig(demo string) AppMode {
	if demo == config.DemoTabs {
		return ModeTabsDemo
	}
	return ModeModalDemo
}
