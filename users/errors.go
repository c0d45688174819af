package users

import (
	"fmt"
	"net/http"
)

// Error is a user-domain failure carrying its HTTP status mapping.
type Error struct {
	status  int
	message string
}

func (e *Error) Error() string { return e.message }

// StatusCode reports the HTTP status this failure maps to.
func (e *Error) StatusCode() int { return e.status }

var (
	ErrEmptyUsername            = &Error{http.StatusUnprocessableEntity, "`username` field of `User` cannot be empty!"}
	ErrUsernameLength           = &Error{http.StatusUnprocessableEntity, fmt.Sprintf("`username` field of `User` must be at least %d characters!", MinUsernameLength)}
	ErrUsernameInvalidCharacter = &Error{http.StatusUnprocessableEntity, "`username` field of `User` cannot contain whitespaces!"}
	ErrEmptyPassword            = &Error{http.StatusUnprocessableEntity, "`password` field of `User` cannot be empty!"}
	ErrPasswordLength           = &Error{http.StatusUnprocessableEntity, fmt.Sprintf("`password` field of `User` must be at least %d characters!", MinPasswordLength)}
	ErrPasswordInvalidCharacter = &Error{http.StatusUnprocessableEntity, "`password` field of `User` cannot contain whitespaces!"}

	ErrEmpty        = &Error{http.StatusNotFound, "Could not find any `User`!"}
	ErrLoginFailed  = &Error{http.StatusUnauthorized, "Failed to login user!"}
	ErrNotLoggedIn  = &Error{http.StatusUnauthorized, "User is not logged in!"}
	ErrInvalidToken = &Error{http.StatusUnauthorized, "Invalid authorization token!"}
)

// ErrNotFound reports a missing user id.
func ErrNotFound(id int64) *Error {
	return &Error{http.StatusNotFound, fmt.Sprintf("Could not find any `User` for id: `%d`!", id)}
}
