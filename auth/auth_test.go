package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roamly/apperr"
	"roamly/models"

	"github.com/stretchr/testify/assert"
)

func validSignup() signupInput {
	return signupInput{
		Username: "guide1",
		Email:    "guide@example.com",
		Password: "Str0ng&Pass",
		UserType: "guide",
	}
}

func TestValidateSignup(t *testing.T) {
	assert.NoError(t, validateSignup(validSignup()))

	for _, tc := range []struct {
		name   string
		mutate func(*signupInput)
	}{
		{"missing username", func(in *signupInput) { in.Username = "" }},
		{"missing email", func(in *signupInput) { in.Email = "" }},
		{"malformed email", func(in *signupInput) { in.Email = "not-an-email" }},
		{"missing password", func(in *signupInput) { in.Password = "" }},
		{"weak password", func(in *signupInput) { in.Password = "weakpw" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := validSignup()
			tc.mutate(&in)
			err := validateSignup(in)
			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, validateLogin(loginInput{Email: "a@b.co", Password: "Str0ng&Pass"}))

	err := validateLogin(loginInput{Password: "Str0ng&Pass"})
	assert.Error(t, err, "missing email")

	err = validateLogin(loginInput{Email: "a@b.co"})
	assert.Error(t, err, "missing password")

	// the strength policy applies to login as well: a correct but weak
	// password is rejected before the hash is ever compared
	err = validateLogin(loginInput{Email: "a@b.co", Password: "weakpw"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestNormalizeUserType(t *testing.T) {
	assert.Equal(t, models.UserTypeAdmin, normalizeUserType("admin"))
	assert.Equal(t, models.UserTypeGuide, normalizeUserType("guide"))
	assert.Equal(t, models.UserTypeGuide, normalizeUserType(""))
	assert.Equal(t, models.UserTypeGuide, normalizeUserType("superuser"))
	assert.Equal(t, models.UserTypeGuide, normalizeUserType("Admin"))
}

func TestSignupRejectsInvalidBodyBeforeStore(t *testing.T) {
	h := &Handlers{} // no store: validation must fail first

	for _, body := range []string{
		`{`,
		`{"username":"","email":"a@b.co","password":"Str0ng&Pass"}`,
		`{"username":"g","email":"bad","password":"Str0ng&Pass"}`,
		`{"username":"g","email":"a@b.co","password":"weakpw"}`,
	} {
		r := httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.Signup(w, r, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "error")
	}
}

func TestUserListProjectionDropsPassword(t *testing.T) {
	all := []models.User{
		{Username: "g1", Email: "g1@example.com", Password: "$2a$10$hash1", UserType: models.UserTypeGuide},
		{Username: "g2", Email: "g2@example.com", Password: "$2a$10$hash2", UserType: models.UserTypeAdmin},
	}

	users := make([]models.PublicUser, 0, len(all))
	for _, user := range all {
		users = append(users, user.Public())
	}

	out, err := json.Marshal(users)
	assert.NoError(t, err)
	assert.NotContains(t, string(out), "hash1")
	assert.NotContains(t, string(out), "password")
	assert.Contains(t, string(out), "g2@example.com")
}

func TestLoginRejectsBadEmailBeforeStore(t *testing.T) {
	h := &Handlers{}

	for _, body := range []string{
		`{"password":"Str0ng&Pass"}`,
		`{"email":"nonsense","password":"Str0ng&Pass"}`,
	} {
		r := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.Login(w, r, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}
