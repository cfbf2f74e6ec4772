package ui

import "github.com/charmbracelet/lipgloss"

// Shared color palette (ANSI 256).
const (
	ColorAccent    = "86"  // Cyan; borders, active tab underline
	ColorHighlight = "205" // Pink; focused element
	ColorDanger    = "196" // Red
	ColorMuted     = "241" // Gray; hints, inactive tabs
	ColorText      = "252"
	ColorDim       = "243"
	ColorWarning   = "208"
)

// Styles holds the lipgloss styles used by the demos. Focus is always shown by
// the highlight color so the active element is visible in any layout.
var Styles = struct {
	Title     lipgloss.Style
	Box       lipgloss.Style
	Dialog    lipgloss.Style
	Panel     lipgloss.Style
	PanelDim  lipgloss.Style
	Button    lipgloss.Style
	Focused   lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	TabFocus  lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Hint      lipgloss.Style
	Status    lipgloss.Style
	Warning   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
	Dialog: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	PanelDim: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 1),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	TabFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}
