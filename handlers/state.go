// Package handlers implements the HTTP surface: user and task routes, the
// session-backed favorite slot, and the router wiring them together.
package handlers

import (
	"strconv"

	"github.com/meowjesty/tasknest/tasks"
	"github.com/meowjesty/tasknest/users"
)

// SessionState is everything the session cookie carries: who is logged in
// and which task they favorited. Both slots are optional; an all-empty state
// is a valid anonymous session.
type SessionState struct {
	Identity     *users.LoggedUser `json:"identity,omitempty"`
	FavoriteTask *tasks.Task       `json:"favorite_task,omitempty"`
}

// IdentityToken reports the logged-in user's token in its wire form.
// The second return value is false for anonymous sessions.
func IdentityToken(state SessionState) (string, bool) {
	if state.Identity == nil {
		return "", false
	}
	return strconv.FormatUint(state.Identity.Token, 10), true
}
