package auth

import (
	"roamly/apperr"
	"roamly/db"
	"roamly/middleware"
	"roamly/models"
	"roamly/rdx"
	"roamly/utils"
)

// Handlers serves /api/users: signup, login, password reset and the
// user listing/delete admin operations.
type Handlers struct {
	DB    *db.DB
	Auth  *middleware.Auth
	Cache *rdx.Cache
}

func NewHandlers(database *db.DB, auth *middleware.Auth, cache *rdx.Cache) *Handlers {
	return &Handlers{DB: database, Auth: auth, Cache: cache}
}

type signupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"usertype"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validateSignup(in signupInput) error {
	if in.Username == "" {
		return apperr.Validation("Username is required")
	}
	if in.Email == "" {
		return apperr.Validation("Email is required")
	}
	if !utils.ValidEmail(in.Email) {
		return apperr.Validation("Invalid email format")
	}
	if in.Password == "" {
		return apperr.Validation("Password is required")
	}
	if !utils.StrongPassword(in.Password) {
		return apperr.Validation("Password must be at least 6 characters long and include uppercase, lowercase, number, and special character")
	}
	return nil
}

// The login path checks password strength as well as correctness; a legacy
// account with a weak stored password cannot log in. Kept as specified.
func validateLogin(in loginInput) error {
	if in.Email == "" {
		return apperr.Validation("Email is Required")
	}
	if !utils.ValidEmail(in.Email) {
		return apperr.Validation("Invalid email format")
	}
	if in.Password == "" {
		return apperr.Validation("Password is Required")
	}
	if !utils.StrongPassword(in.Password) {
		return apperr.Validation("Password must be at least 6 characters long and include uppercase, lowercase, number, and special character.")
	}
	return nil
}

// normalizeUserType forces everything that is not explicitly admin to guide.
func normalizeUserType(t string) string {
	if t == models.UserTypeAdmin {
		return models.UserTypeAdmin
	}
	return models.UserTypeGuide
}
