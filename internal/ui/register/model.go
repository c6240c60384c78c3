package register

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
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Width(9)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
)

// Model is the registration form.
type Model struct {
	fields  *inputs.Set
	handler forms.Handler
	pending int
	width   int
	height  int
}

// New creates a registration form.
func New(client forms.Poster, message forms.MessageSink) Model {
	fields := inputs.New(
		inputs.Spec{ID: forms.FieldImie, Label: "imię", Placeholder: "Jan"},
		inputs.Spec{ID: forms.FieldNazwisko, Label: "nazwisko", Placeholder: "Kowalski"},
		inputs.Spec{ID: forms.FieldKlasa, Label: "klasa", Placeholder: "3B"},
		inputs.Spec{ID: forms.FieldEmail, Label: "email", Placeholder: "jan@example.com"},
		inputs.Spec{ID: forms.FieldPassword, Label: "hasło", Placeholder: "password", Secret: true},
	)
	return Model{
		fields:  fields,
		handler: forms.NewRegisterSubmitHandler(client, fields, message),
	}
}

func (m Model) Fields() *inputs.Set { return m.fields }

func (m Model) Pending() int { return m.pending }

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
		if msg.Form == messages.RegisterForm && m.pending > 0 {
			m.pending--
		}
		return m, nil
	}

	return m, m.fields.Update(msg)
}

func (m Model) submit() (Model, tea.Cmd) {
	ev := forms.NewSubmitEvent(messages.RegisterForm)
	sub := m.handler.OnSubmit(ev)

	m.pending++
	return m, func() tea.Msg {
		return messages.SubmitResultMsg{
			Form:    messages.RegisterForm,
			Outcome: sub(context.Background()),
		}
	}
}

// View renders the registration form.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Rejestracja"))
	sb.WriteString("\n\n")
	sb.WriteString(m.fields.View(labelStyle))
	sb.WriteString("\n\n")

	if m.pending > 0 {
		sb.WriteString("Submitting...")
	} else {
		sb.WriteString(hintStyle.Render("Tab to switch fields | Enter to submit | Ctrl+L to log in"))
	}

	content := sb.String()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
