package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP layer can pick a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuth
)

// Error is the single error type handlers translate into responses.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Msg: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Auth(msg string) *Error       { return &Error{Kind: KindAuth, Msg: msg} }

// Internal wraps an unexpected store/runtime failure. The wrapped error is
// logged by the HTTP layer but never shown to clients outside development.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// Status maps an error to its HTTP status code. Unknown errors are 500.
func Status(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for an error. Internal and
// unclassified errors get a generic message unless dev mode is on.
func Message(err error, dev bool) string {
	var ae *Error
	if !errors.As(err, &ae) || ae.Kind == KindInternal {
		if dev {
			return err.Error()
		}
		return "Internal server error"
	}
	return ae.Msg
}
