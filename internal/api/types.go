package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationRequest is the register request body. None of the fields are
// validated client-side.
type RegistrationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Imie     string `json:"imie"`
	Nazwisko string `json:"nazwisko"`
	Klasa    string `json:"klasa"`
}

// RegisterResponse is the success body of the register endpoint. Either
// field may be absent.
type RegisterResponse struct {
	Detail  string `json:"detail,omitempty"`
	Message string `json:"message,omitempty"`
}

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d %s from %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// Detail returns the "detail" field of a JSON error body, or "" when the body
// is missing, not JSON, or carries no usable detail. FastAPI validation
// errors put a list of {"msg": ...} objects there; their messages are joined,
// as are the items of a plain list of strings.
func (e *HTTPError) Detail() string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if len(e.Body) == 0 || json.Unmarshal(e.Body, &body) != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	var strs []string
	if err := json.Unmarshal(body.Detail, &strs); err == nil {
		return strings.Join(strs, "; ")
	}
	return ""
}
