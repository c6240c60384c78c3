package forms

import (
	"context"
	"errors"

	"github.com/fragmede/eventengine/internal/api"
)

// RegistrationFailed is shown when a failed registration carries no detail.
const RegistrationFailed = "Registration failed"

// RegisterSubmitHandler posts the registration form.
type RegisterSubmitHandler struct {
	client  Poster
	fields  Fields
	message MessageSink
}

// NewRegisterSubmitHandler binds a registration handler to its inputs and
// message element.
func NewRegisterSubmitHandler(client Poster, fields Fields, message MessageSink) *RegisterSubmitHandler {
	return &RegisterSubmitHandler{client: client, fields: fields, message: message}
}

// OnSubmit reads the five registration inputs as they are now.
func (h *RegisterSubmitHandler) OnSubmit(ev Event) Submission {
	ev.PreventDefault()

	req := api.RegistrationRequest{
		Imie:     h.fields.Value(FieldImie),
		Nazwisko: h.fields.Value(FieldNazwisko),
		Klasa:    h.fields.Value(FieldKlasa),
		Email:    h.fields.Value(FieldEmail),
		Password: h.fields.Value(FieldPassword),
	}
	client := h.client

	return func(ctx context.Context) Outcome {
		resp, err := client.Register(ctx, req)
		if err != nil {
			return show(registerFailure(err))
		}
		return show(registerSuccess(resp))
	}
}

// Handle runs a whole registration submit inline.
func (h *RegisterSubmitHandler) Handle(ctx context.Context, ev Event) {
	handle(ctx, h, h.message, ev)
}

// registerSuccess picks detail, then message. With neither the element is
// cleared.
func registerSuccess(resp *api.RegisterResponse) string {
	if resp == nil {
		return ""
	}
	if resp.Detail != "" {
		return resp.Detail
	}
	return resp.Message
}

func registerFailure(err error) string {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		if detail := httpErr.Detail(); detail != "" {
			return detail
		}
	}
	return RegistrationFailed
}
