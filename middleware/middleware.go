package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"roamly/apperr"
	"roamly/globals"
	"roamly/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

const TokenTTL = 24 * time.Hour

// Auth validates bearer tokens for protected routes.
type Auth struct {
	Secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{Secret: []byte(secret)}
}

// IssueToken signs a 24h token embedding the user's identity.
func (a *Auth) IssueToken(userID, email, username string) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Email:    email,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.Secret)
}

// ParseToken verifies the signature and expiry of a raw token string.
func (a *Auth) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return a.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Authenticate rejects requests without a valid bearer token and stores the
// decoded identity in the request context for downstream handlers.
func (a *Auth) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			utils.WriteErr(w, apperr.Auth("Missing token"))
			return
		}

		if !strings.HasPrefix(tokenString, "Bearer ") {
			utils.WriteErr(w, apperr.Auth("Invalid token format"))
			return
		}

		claims, err := a.ParseToken(strings.TrimPrefix(tokenString, "Bearer "))
		if err != nil {
			utils.WriteErr(w, apperr.Auth("Invalid token"))
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.EmailKey, claims.Email)
		ctx = context.WithValue(ctx, globals.UsernameKey, claims.Username)
		next(w, r.WithContext(ctx), ps)
	}
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(globals.UserIDKey).(string)
	return id, ok
}
