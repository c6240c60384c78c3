package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/eventengine/internal/forms"
	"github.com/fragmede/eventengine/internal/ui/inputs"
	"github.com/fragmede/eventengine/internal/ui/messages"
)

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Width(9)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57")).Bold(true).
			Padding(1, 0)
)

// Model is the login form view.
type Model struct {
	fields  *inputs.Set
	handler forms.Handler
	pending int
	width   int
	height  int
}

// New creates a login form whose handler posts through client and reports
// failures to message.
func New(client forms.Poster, message forms.MessageSink) Model {
	fields := inputs.New(
		inputs.Spec{ID: forms.FieldUsername, Label: "Email:", Placeholder: "email"},
		inputs.Spec{ID: forms.FieldPassword, Label: "Password:", Placeholder: "password", Secret: true},
	)
	return Model{
		fields:  fields,
		handler: forms.NewLoginSubmitHandler(client, fields, message),
	}
}

// Fields exposes the form inputs.
func (m Model) Fields() *inputs.Set {
	return m.fields
}

// Pending is the number of login requests in flight.
func (m Model) Pending() int {
	return m.pending
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.fields.SetWidth(w)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, inputs.Keys.Submit) {
			return m.submit()
		}

	case messages.SubmitResultMsg:
		if msg.Form == messages.LoginForm && m.pending > 0 {
			m.pending--
		}
		return m, nil
	}

	return m, m.fields.Update(msg)
}

// submit fires a login request without waiting for earlier ones.
func (m Model) submit() (Model, tea.Cmd) {
	ev := forms.NewSubmitEvent(messages.LoginForm)
	sub := m.handler.OnSubmit(ev)

	m.pending++
	return m, func() tea.Msg {
		return messages.SubmitResultMsg{
			Form:    messages.LoginForm,
			Outcome: sub(context.Background()),
		}
	}
}

// View renders the login form.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Log in to EventEngine"))
	sb.WriteString("\n\n")
	sb.WriteString(m.fields.View(labelStyle))
	sb.WriteString("\n\n")

	if m.pending > 0 {
		sb.WriteString("Logging in...")
	} else {
		sb.WriteString(focusedStyle.Render("Enter") + " to submit, " + focusedStyle.Render("Tab") + " to switch fields")
	}

	content := sb.String()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
