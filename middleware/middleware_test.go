package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roamly/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	a := NewAuth("test-secret")

	token, err := a.IssueToken("64f000000000000000000001", "guide@example.com", "guide1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.UserID)
	assert.Equal(t, "guide@example.com", claims.Email)
	assert.Equal(t, "guide1", claims.Username)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := NewAuth("secret-a").IssueToken("u1", "a@b.co", "a")
	require.NoError(t, err)

	_, err = NewAuth("secret-b").ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	a := NewAuth("test-secret")
	claims := &Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.Secret)
	require.NoError(t, err)

	_, err = a.ParseToken(token)
	assert.Error(t, err)
}

func authedHandler(t *testing.T, wantID string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		id, ok := UserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, wantID, id)
		assert.Equal(t, "guide@example.com", r.Context().Value(globals.EmailKey))
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticate(t *testing.T) {
	a := NewAuth("test-secret")
	token, err := a.IssueToken("u42", "guide@example.com", "guide1")
	require.NoError(t, err)

	handler := a.Authenticate(authedHandler(t, "u42"))

	tests := []struct {
		name    string
		header  string
		want    int
		wantMsg string
	}{
		{"missing token", "", http.StatusUnauthorized, "Missing token"},
		{"not bearer", token, http.StatusUnauthorized, "Invalid token format"},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized, "Invalid token"},
		{"valid token", "Bearer " + token, http.StatusOK, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/users/reset-password", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			handler(w, r, nil)
			assert.Equal(t, tc.want, w.Code)
			if tc.wantMsg != "" {
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
				assert.JSONEq(t, `{"error":"`+tc.wantMsg+`"}`, w.Body.String())
			}
		})
	}
}
