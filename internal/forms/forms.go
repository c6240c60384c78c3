// Package forms holds the submit handlers for the login and registration
// pages. Handlers are bound to injected field readers and a message element
// instead of looking anything up globally, so the same handlers drive the
// terminal UI and the headless commands.
package forms

//go:generate mockgen -destination=mocks.go -package=forms github.com/fragmede/eventengine/internal/forms Poster

import (
	"context"
	"encoding/json"

	"github.com/fragmede/eventengine/internal/api"
)

// Field ids read by the handlers.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldImie     = "imie"
	FieldNazwisko = "nazwisko"
	FieldKlasa    = "klasa"
	FieldEmail    = "email"
)

// Fields reads the current value of a form input by id. Unknown ids read as "".
type Fields interface {
	Value(id string) string
}

// MessageSink is the page's message element.
type MessageSink interface {
	SetText(text string)
}

// Poster is the user API as seen by the handlers.
type Poster interface {
	Login(ctx context.Context, creds api.Credentials) (json.RawMessage, error)
	Register(ctx context.Context, req api.RegistrationRequest) (*api.RegisterResponse, error)
}

// Event is a form submit event.
type Event interface {
	PreventDefault()
}

// SubmitEvent is the concrete submit event raised by a form.
type SubmitEvent struct {
	Form      string
	prevented bool
}

// NewSubmitEvent creates a submit event for the named form.
func NewSubmitEvent(form string) *SubmitEvent {
	return &SubmitEvent{Form: form}
}

// PreventDefault cancels the form's default action.
func (e *SubmitEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a handler cancelled the form's default
// action.
func (e *SubmitEvent) DefaultPrevented() bool { return e.prevented }

// Outcome is what a finished submission does to the message element.
type Outcome struct {
	Text    string
	Display bool
}

// Apply writes the outcome into the message element. Outcomes that display
// nothing leave the element untouched.
func (o Outcome) Apply(sink MessageSink) {
	if o.Display {
		sink.SetText(o.Text)
	}
}

func show(text string) Outcome {
	return Outcome{Text: text, Display: true}
}

// Submission is the pending network half of a submit. It may run on any
// goroutine; it touches neither the fields nor the message element.
type Submission func(ctx context.Context) Outcome

// Handler is implemented by both submit handlers.
type Handler interface {
	// OnSubmit runs the synchronous half of a submit: it prevents the
	// default action and snapshots the field values.
	OnSubmit(ev Event) Submission
	// Handle runs a whole submit inline and writes the outcome.
	Handle(ctx context.Context, ev Event)
}

func handle(ctx context.Context, h Handler, sink MessageSink, ev Event) {
	h.OnSubmit(ev)(ctx).Apply(sink)
}
