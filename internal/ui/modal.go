package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focuskit/internal/dom"
)

// Modal is a dialog drawn from a container element. Its rows are laid out top to
// bottom, each row's elements left to right, matching document order.
type Modal struct {
	Title string
	Body  string

	s         *surface
	container *dom.Element
	rows      [][]*dom.Element
}

func newModal(s *surface, id, title string) *Modal {
	return &Modal{
		Title:     title,
		s:         s,
		container: s.doc.CreateElement("div", id).SetAttr("role", "dialog").SetAttr("aria-modal", "true"),
	}
}

// row appends a row of elements to the dialog.
func (m *Modal) row(els ...*dom.Element) *Modal {
	m.container.Append(els...)
	m.rows = append(m.rows, els)
	return m
}

// Container returns the dialog's root element.
func (m *Modal) Container() *dom.Element { return m.container }

// Init implements View.
func (m *Modal) Init() tea.Cmd { return nil }

// Update forwards non-key messages (cursor blinks) to the dialog's text fields.
// Keys reach the dialog through the document.
func (m *Modal) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, nil
	}
	var cmds []tea.Cmd
	for _, r := range m.rows {
		for _, el := range r {
			if f, ok := m.s.fields[el]; ok {
				cmds = append(cmds, f.update(msg))
			}
		}
	}
	return m, tea.Batch(cmds...)
}

// View implements View.
func (m *Modal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(m.Title))
	if m.Body != "" {
		b.WriteString("\n" + Styles.Label.Render(m.Body))
	}
	for _, r := range m.rows {
		cells := make([]string, 0, len(r))
		for _, el := range r {
			cells = append(cells, m.s.render(el))
		}
		b.WriteString("\n\n" + lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	return Styles.Dialog.Render(b.String())
}
