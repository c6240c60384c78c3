package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/eventengine/internal/ui/messages"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF"))

	activeTabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2E8B57")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#555555")).
				Foreground(lipgloss.Color("#CCCCCC")).
				Padding(0, 1)

	pendingStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#B8860B")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)
)

type tab struct {
	label string
	form  string
}

var tabs = []tab{
	{"Login ^L", messages.LoginForm},
	{"Register ^R", messages.RegisterForm},
}

// Model is the bar at the bottom of the screen. It owns the page's message
// element: whatever the last finished submission wrote stays there until the
// next one overwrites it.
type Model struct {
	width      int
	activeForm string
	pending    int
	message    string
}

// New creates a new status bar.
func New() Model {
	return Model{activeForm: messages.LoginForm}
}

// SetSize sets the width.
func (m *Model) SetSize(w int) {
	m.width = w
}

// SetActiveForm highlights the tab of the shown form.
func (m *Model) SetActiveForm(form string) {
	m.activeForm = form
}

// SetPending sets the number of requests in flight.
func (m *Model) SetPending(n int) {
	m.pending = n
}

// Pending returns the number of requests in flight.
func (m Model) Pending() int {
	return m.pending
}

// SetText overwrites the message element.
func (m *Model) SetText(text string) {
	m.message = text
}

// Text returns the message element's current text.
func (m Model) Text() string {
	return m.message
}

// View renders the status bar.
func (m Model) View() string {
	var tabsStr string
	for _, t := range tabs {
		if t.form == m.activeForm {
			tabsStr += activeTabStyle.Render(t.label)
		} else {
			tabsStr += inactiveTabStyle.Render(t.label)
		}
	}

	var right string
	if m.pending > 0 {
		right += pendingStyle.Render(fmt.Sprintf("sending %d", m.pending))
	}
	if m.message != "" {
		right += messageStyle.Render(m.message)
	}

	// Fill middle with background.
	tabsWidth := lipgloss.Width(tabsStr)
	rightWidth := lipgloss.Width(right)
	gap := m.width - tabsWidth - rightWidth
	if gap < 0 {
		gap = 0
	}
	mid := barStyle.Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, tabsStr, mid, right)
}
