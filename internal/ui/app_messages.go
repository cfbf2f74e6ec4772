package ui

// OpenModalMsg opens the dialog on the modal demo page (LDR o).
type OpenModalMsg struct{}

// CloseModalMsg closes the topmost dialog on the modal demo page, restoring focus.
type CloseModalMsg struct{}

// SwitchModeMsg shows another demo page (LDR 1, LDR 2).
type SwitchModeMsg struct {
	Mode AppMode
}

// CycleRegionMsg moves keyboard focus between the demo page and the focus log (LDR w).
type CycleRegionMsg struct{}
