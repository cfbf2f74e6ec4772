package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focuskit/internal/dom"
	"focuskit/internal/focus"
	"focuskit/internal/ui/textutil"
)

// tabCellWidth is the column width of one tab label.
const tabCellWidth = 14

// TabsView is a tablist driven by a roving index: only the active tab is in the
// Tab sequence, and arrows, Home and End move between tabs.
type TabsView struct {
	Labels []string
	Roving *focus.Roving

	s      *surface
	list   *dom.Element
	tabs   []*dom.Element
	panel  *dom.Element
	action *dom.Element
	Status string
}

// NewTabsView builds a tablist with one tab per label. An empty label list gets a single tab.
func NewTabsView(labels []string, observer focus.Observer) *TabsView {
	if len(labels) == 0 {
		labels = []string{"Tab 1"}
	}
	v := &TabsView{Labels: labels, s: newSurface()}
	doc := v.s.doc
	v.Roving = focus.NewRoving(doc, len(labels), focus.WithRovingObserver(observer))

	v.list = doc.CreateElement("div", "tablist").SetAttr("role", "tablist")
	for i, label := range labels {
		tab := v.s.button("tab-"+strconv.Itoa(i), label, func() {
			v.Roving.SetIndex(i)
			v.sync()
		})
		tab.SetAttr("role", "tab").SetAttr("aria-controls", "panel")
		v.tabs = append(v.tabs, tab)
		v.list.Append(tab)
		v.Roving.SetItem(i, tab)
	}
	v.list.OnKeyDown(func(ev *focus.KeyEvent) {
		v.Roving.OnKeyDown(ev)
		v.sync()
	})

	v.panel = doc.CreateElement("div", "panel").SetAttr("role", "tabpanel")
	v.action = v.s.button("panel-action", "", func() {
		v.Status = "Opened " + v.Labels[v.Roving.Index()]
	})
	v.panel.Append(v.action)
	doc.Body().Append(v.list, v.panel)
	v.sync()
	return v
}

// Document returns the page's document.
func (v *TabsView) Document() *dom.Document { return v.s.doc }

// sync mirrors the roving index into tabindex, aria-selected and the panel.
func (v *TabsView) sync() {
	idx := v.Roving.Index()
	for i, tab := range v.tabs {
		tab.SetTabIndex(v.Roving.TabIndex(i))
		tab.SetAttr("aria-selected", strconv.FormatBool(i == idx))
	}
	v.panel.SetAttr("aria-labelledby", v.tabs[idx].ID())
	v.panel.SetText(fmt.Sprintf("Content for %s.", v.Labels[idx]))
	v.action.SetText("Open " + v.Labels[idx])
}

// Init focuses the active tab unless something on the page already has focus.
func (v *TabsView) Init() tea.Cmd {
	if v.s.doc.Active() == nil {
		v.Roving.Focus()
	}
	return nil
}

// Update implements View.
func (v *TabsView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return v, v.s.handleKey(msg)
	}
	return v, nil
}

// View implements View.
func (v *TabsView) View() string {
	active := v.s.doc.Active()
	cells := make([]string, len(v.tabs))
	for i, tab := range v.tabs {
		label := textutil.Cell(v.Labels[i], tabCellWidth)
		switch {
		case tab == active:
			cells[i] = Styles.TabFocus.Render(label)
		case i == v.Roving.Index():
			cells[i] = Styles.TabActive.Render(label)
		default:
			cells[i] = Styles.Tab.Render(label)
		}
	}
	strip := strings.Join(cells, Styles.Muted.Render("│"))

	panelStyle := Styles.PanelDim
	if v.panel.Contains(active) {
		panelStyle = Styles.Panel
	}
	panel := panelStyle.Render(v.panel.Text + "\n\n" + v.s.render(v.action))

	page := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Roving tab index"),
		"",
		strip,
		panel,
	)
	if v.Status != "" {
		page += "\n" + Styles.Status.Render(v.Status)
	}
	return Styles.Box.Render(page)
}
