package forms

import (
	"context"
	"encoding/json"

	"github.com/fragmede/eventengine/internal/api"
	"github.com/fragmede/eventengine/internal/logger"
)

// LoginFailed is shown for every failed login, whatever the cause.
const LoginFailed = "Login failed"

// LoginSubmitHandler posts the login form.
type LoginSubmitHandler struct {
	client  Poster
	fields  Fields
	message MessageSink
}

// NewLoginSubmitHandler binds a login handler to its inputs and message element.
func NewLoginSubmitHandler(client Poster, fields Fields, message MessageSink) *LoginSubmitHandler {
	return &LoginSubmitHandler{client: client, fields: fields, message: message}
}

// OnSubmit reads username and password as they are now. The username input
// is sent as the email.
func (h *LoginSubmitHandler) OnSubmit(ev Event) Submission {
	ev.PreventDefault()

	creds := api.Credentials{
		Email:    h.fields.Value(FieldUsername),
		Password: h.fields.Value(FieldPassword),
	}
	client := h.client

	return func(ctx context.Context) Outcome {
		payload, err := client.Login(ctx, creds)
		if err != nil {
			logger.Log.Debugw("login failed", "email", creds.Email, "err", err)
			return show(LoginFailed)
		}
		logLoginPayload(creds.Email, payload)
		return Outcome{}
	}
}

// Handle runs a whole login submit inline.
func (h *LoginSubmitHandler) Handle(ctx context.Context, ev Event) {
	handle(ctx, h, h.message, ev)
}

func logLoginPayload(email string, payload json.RawMessage) {
	fields := []interface{}{"email", email, "payload", string(payload)}
	if claims, err := api.TokenClaims(payload); err == nil {
		fields = append(fields, "claims", claims)
	}
	logger.Log.Infow("login response", fields...)
}
