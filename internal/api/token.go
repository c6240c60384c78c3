package api

import (
	"encoding/json"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned by TokenClaims when the payload has no token.
var ErrNoToken = errors.New("login payload has no token")

// TokenClaims extracts the "token" field of a login payload and decodes its
// JWT claims without verifying the signature. The client never holds the
// signing secret; the claims are only used for diagnostics.
func TokenClaims(payload json.RawMessage) (jwt.MapClaims, error) {
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.Token == "" {
		return nil, ErrNoToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(body.Token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
