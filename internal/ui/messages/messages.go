package messages

import "github.com/fragmede/eventengine/internal/forms"

// Form names, also used as submit event names.
const (
	LoginForm    = "loginForm"
	RegisterForm = "registerForm"
)

// View transition messages.
type (
	OpenLoginMsg    struct{}
	OpenRegisterMsg struct{}
)

// Data messages.
type (
	// SubmitResultMsg carries a finished submission back to the event loop.
	SubmitResultMsg struct {
		Form    string
		Outcome forms.Outcome
	}
)
