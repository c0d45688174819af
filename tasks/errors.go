package tasks

import (
	"fmt"
	"net/http"
)

// Error is a task-domain failure carrying its HTTP status mapping.
type Error struct {
	status  int
	message string
}

func (e *Error) Error() string { return e.message }

// StatusCode reports the HTTP status this failure maps to.
func (e *Error) StatusCode() int { return e.status }

var (
	ErrEmptyTitle   = &Error{http.StatusUnprocessableEntity, "`title` field of `Task` cannot be empty!"}
	ErrNoneFavorite = &Error{http.StatusNotFound, "You have not favorited any `Task` yet!"}
	ErrEmpty        = &Error{http.StatusNotFound, "Could not find any `Task`!"}
)

// ErrNotFound reports a missing task id.
func ErrNotFound(id int64) *Error {
	return &Error{http.StatusNotFound, fmt.Sprintf("Could not find any `Task` for id: `%d`!", id)}
}
