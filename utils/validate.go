package utils

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^0[79]\d{8}$`)
)

const passwordSpecials = "@$!%*?&"

// ValidEmail checks the basic user@host.tld shape.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPhone checks the 10-digit 07/09-prefixed phone format.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// StrongPassword enforces the signup policy: at least 6 characters with at
// least one lowercase, one uppercase, one digit and one of @$!%*?&, and no
// characters outside that set.
func StrongPassword(pw string) bool {
	if len(pw) < 6 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
