package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/eventengine/internal/config"
	"github.com/fragmede/eventengine/internal/forms"
	"github.com/fragmede/eventengine/internal/logger"
	"github.com/fragmede/eventengine/internal/ui/login"
	"github.com/fragmede/eventengine/internal/ui/messages"
	"github.com/fragmede/eventengine/internal/ui/register"
	"github.com/fragmede/eventengine/internal/ui/statusbar"
)

// ViewType identifies the active view.
type ViewType int

const (
	ViewLogin ViewType = iota
	ViewRegister
)

// App is the root Bubble Tea model.
type App struct {
	activeView ViewType

	// Child models
	loginForm    login.Model
	registerForm register.Model
	statusBar    statusbar.Model

	cfg config.Config

	// Dimensions
	width  int
	height int
}

// NewApp creates the root application model. Both forms write into the
// status bar's message element.
func NewApp(cfg config.Config, client forms.Poster) *App {
	a := &App{
		activeView: ViewLogin,
		statusBar:  statusbar.New(),
		cfg:        cfg,
	}
	a.loginForm = login.New(client, &a.statusBar)
	a.registerForm = register.New(client, &a.statusBar)
	return a
}

// Init starts the application.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// ActiveView returns the shown form.
func (a *App) ActiveView() ViewType {
	return a.activeView
}

// Message returns the text of the message element.
func (a *App) Message() string {
	return a.statusBar.Text()
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentHeight := msg.Height - 2 // header and status bar
		a.loginForm.SetSize(msg.Width, contentHeight)
		a.registerForm.SetSize(msg.Width, contentHeight)
		a.statusBar.SetSize(msg.Width)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, Keys.Login):
			return a, func() tea.Msg { return messages.OpenLoginMsg{} }
		case key.Matches(msg, Keys.Register):
			return a, func() tea.Msg { return messages.OpenRegisterMsg{} }
		}

	case messages.OpenLoginMsg:
		a.show(ViewLogin)
		return a, nil

	case messages.OpenRegisterMsg:
		a.show(ViewRegister)
		return a, nil

	case messages.SubmitResultMsg:
		// Results land whichever form is shown; the last one to arrive wins.
		logger.Log.Debugw("submission finished",
			"form", msg.Form,
			"display", msg.Outcome.Display,
			"text", msg.Outcome.Text,
		)
		msg.Outcome.Apply(&a.statusBar)

		var cmd tea.Cmd
		switch msg.Form {
		case messages.LoginForm:
			a.loginForm, cmd = a.loginForm.Update(msg)
		case messages.RegisterForm:
			a.registerForm, cmd = a.registerForm.Update(msg)
		}
		a.syncPending()
		return a, cmd
	}

	// Route to active view.
	var cmd tea.Cmd
	switch a.activeView {
	case ViewLogin:
		a.loginForm, cmd = a.loginForm.Update(msg)
	case ViewRegister:
		a.registerForm, cmd = a.registerForm.Update(msg)
	}
	a.syncPending()

	return a, cmd
}

// View renders the application.
func (a *App) View() string {
	var content string
	switch a.activeView {
	case ViewLogin:
		content = a.loginForm.View()
	case ViewRegister:
		content = a.registerForm.View()
	}

	header := HeaderStyle.Render("EventEngine") + " " + DimStyle.Render(a.cfg.APIBaseURL)
	return lipgloss.JoinVertical(lipgloss.Left, header, content, a.statusBar.View())
}

func (a *App) show(v ViewType) {
	a.activeView = v
	switch v {
	case ViewLogin:
		a.statusBar.SetActiveForm(messages.LoginForm)
	case ViewRegister:
		a.statusBar.SetActiveForm(messages.RegisterForm)
	}
}

func (a *App) syncPending() {
	a.statusBar.SetPending(a.loginForm.Pending() + a.registerForm.Pending())
}
