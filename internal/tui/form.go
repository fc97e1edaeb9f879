package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label       string
	placeholder string
	value       string
	password    bool
	charLimit   int
}

// formModel is a column of labelled text inputs. Enter handling is left to
// the owner; the form only moves focus and edits the focused input.
type formModel struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
	notice string
}

func newFormModel(title string, fields ...formField) formModel {
	m := formModel{
		title:  title,
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Width = 48
		in.CharLimit = 2048
		if f.charLimit > 0 {
			in.CharLimit = f.charLimit
		}
		if f.password {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		in.SetValue(f.value)

		m.labels[i] = f.label
		m.inputs[i] = in
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m formModel) value(i int) string {
	if i < 0 || i >= len(m.inputs) {
		return ""
	}
	return m.inputs[i].Value()
}

func (m formModel) onLastField() bool {
	return m.focus >= len(m.inputs)-1
}

func (m formModel) next() (formModel, tea.Cmd) {
	return m.setFocus(m.focus + 1)
}

func (m formModel) prev() (formModel, tea.Cmd) {
	return m.setFocus(m.focus - 1)
}

func (m formModel) setFocus(i int) (formModel, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	i = (i + len(m.inputs)) % len(m.inputs)

	m.inputs[m.focus].Blur()
	m.focus = i
	return m, m.inputs[m.focus].Focus()
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return m.next()
		case key.Matches(keyMsg, keys.backtab):
			return m.prev()
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View(busy bool) string {
	width := 0
	for _, l := range m.labels {
		width = max(width, len(l))
	}

	var b strings.Builder
	for i, in := range m.inputs {
		fmt.Fprintf(&b, "%-*s │ [%s]\n", width, m.labels[i], in.View())
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if busy {
		b.WriteString("\nworking...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: next / save")
}
