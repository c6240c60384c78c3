package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedPayload(t *testing.T, claims jwt.MapClaims) json.RawMessage {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	payload, err := json.Marshal(map[string]interface{}{
		"token": token,
		"user":  map[string]interface{}{"id": 7, "email": "jan@szkola.pl"},
	})
	require.NoError(t, err)
	return payload
}

func TestTokenClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	payload := signedPayload(t, jwt.MapClaims{
		"user_id": float64(7),
		"email":   "jan@szkola.pl",
		"exp":     float64(exp),
	})

	claims, err := TokenClaims(payload)
	require.NoError(t, err)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "jan@szkola.pl", claims["email"])
	assert.Equal(t, float64(exp), claims["exp"])
}

func TestTokenClaims_ExpiredTokenStillDecodes(t *testing.T) {
	payload := signedPayload(t, jwt.MapClaims{
		"user_id": float64(1),
		"exp":     float64(time.Now().Add(-time.Hour).Unix()),
	})

	claims, err := TokenClaims(payload)
	require.NoError(t, err)
	assert.Equal(t, float64(1), claims["user_id"])
}

func TestTokenClaims_NoToken(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"error shape", `{"error":"User not found"}`},
		{"empty token", `{"token":""}`},
		{"not json", `ok`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := TokenClaims(json.RawMessage(tt.payload))
			assert.ErrorIs(t, err, ErrNoToken)
			assert.Nil(t, claims)
		})
	}
}

func TestTokenClaims_Malformed(t *testing.T) {
	claims, err := TokenClaims(json.RawMessage(`{"token":"not.a.jwt"}`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoToken)
	assert.Nil(t, claims)
}
