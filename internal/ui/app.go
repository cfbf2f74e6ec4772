package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"focuskit/internal/focus"
	"focuskit/internal/trace"
)

// logPanelHeight is the number of log lines shown below the demo.
const logPanelHeight = 6

// Options configures NewAppModel.
type Options struct {
	Mode     AppMode
	Tabs     []string
	Leader   string          // leader key in Bubble Tea notation; empty selects DefaultLeaderKey
	Recorder *trace.Recorder // receives every controller event; may be nil
	Observer focus.Observer  // additional observer, e.g. the debug log
}

// AppModel is the root model. It shows one demo page at a time with the focus log
// beneath it.
type AppModel struct {
	Mode       AppMode
	ModalDemo  *ModalDemoView
	TabsDemo   *TabsView
	Log        *FocusLogView
	Regions    *FocusManager
	KeyHandler *KeyHandler
	Recorder   *trace.Recorder

	help     help.Model
	keys     demoKeys
	logStale bool
	width    int
	height   int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model with both demos built.
func NewAppModel(opts Options) *AppModel {
	var record focus.Observer
	if opts.Recorder != nil {
		record = opts.Recorder.Observe
	}
	observer := focus.Tee(record, opts.Observer)

	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("LDR q", tea.Quit, "Quit")
	reg.Bind("LDR 1", switchMode(ModeModalDemo), "Modal demo")
	reg.Bind("LDR 2", switchMode(ModeTabsDemo), "Tabs demo")
	reg.Bind("LDR w", func() tea.Msg { return CycleRegionMsg{} }, "Switch panel")
	reg.BindForMode("LDR o", func() tea.Msg { return OpenModalMsg{} }, "Open modal", []AppMode{ModeModalDemo})
	reg.BindForMode("LDR c", func() tea.Msg { return CloseModalMsg{} }, "Close modal", []AppMode{ModeModalDemo})

	kh := NewKeyHandler(reg, opts.Leader)
	a := &AppModel{
		Mode:       opts.Mode,
		ModalDemo:  NewModalDemoView(observer),
		TabsDemo:   NewTabsView(opts.Tabs, observer),
		Log:        NewFocusLogView(),
		Regions:    NewFocusManager(RegionDemo, RegionLog),
		KeyHandler: kh,
		Recorder:   opts.Recorder,
		help:       help.New(),
		keys:       newDemoKeys(kh.LeaderKey),
	}
	a.Regions.OnChange = func(_, to string) {
		a.Log.SetFocused(to == RegionLog)
	}
	if a.Recorder != nil {
		a.logStale = true
		a.Recorder.SetOnChange(func() { a.logStale = true })
	}
	return a
}

func switchMode(m AppMode) tea.Cmd {
	return func() tea.Msg { return SwitchModeMsg{Mode: m} }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.initView(a.ModalDemo, a.TabsDemo)
}

func (a *AppModel) initView(views ...View) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(views))
	for _, v := range views {
		cmds = append(cmds, v.Init())
	}
	a.refreshLog()
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.refreshLog()
	return a, cmd
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.Log.SetSize(msg.Width-4, logPanelHeight)
		return nil
	case SwitchModeMsg:
		a.Mode = msg.Mode
		a.Regions.SetFocus(RegionDemo)
		return nil
	case CycleRegionMsg:
		a.Regions.Next()
		return nil
	case OpenModalMsg, CloseModalMsg:
		a.Mode = ModeModalDemo
		a.Regions.SetFocus(RegionDemo)
		_, cmd := a.ModalDemo.Update(msg)
		return cmd
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
			return cmd
		}
		if a.Regions.Is(RegionLog) {
			if msg.Type == tea.KeyEsc || msg.Type == tea.KeyTab {
				a.Regions.SetFocus(RegionDemo)
				return nil
			}
			_, cmd := a.Log.Update(msg)
			return cmd
		}
		_, cmd := a.currentView().Update(msg)
		return cmd
	}

	_, viewCmd := a.currentView().Update(msg)
	_, logCmd := a.Log.Update(msg)
	return tea.Batch(viewCmd, logCmd)
}

// refreshLog copies the recorder history into the log panel when it has changed.
func (a *AppModel) refreshLog() {
	if a.Recorder == nil || !a.logStale {
		return
	}
	a.logStale = false
	a.Log.SetEntries(a.Recorder.Recent())
}

func (a *AppModel) currentView() View {
	if a.Mode == ModeTabsDemo {
		return a.TabsDemo
	}
	return a.ModalDemo
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n")
	b.WriteString(a.currentView().View())
	b.WriteString("\n")
	b.WriteString(a.Log.View())
	b.WriteString("\n")
	if a.KeyHandler.LeaderWaiting {
		b.WriteString(RenderKeybindHelp(a.KeyHandler, a.Mode))
	} else {
		b.WriteString(a.help.View(a.keys))
	}
	return b.String()
}

func (a *AppModel) header() string {
	modes := []AppMode{ModeModalDemo, ModeTabsDemo}
	parts := make([]string, 0, len(modes))
	for i, m := range modes {
		label := string(rune('1'+i)) + " " + m.String()
		if m == a.Mode {
			parts = append(parts, Styles.TabActive.Render(label))
		} else {
			parts = append(parts, Styles.Tab.Render(label))
		}
	}
	return Styles.Title.Render("focuskit") + "  " + strings.Join(parts, "  ")
}
