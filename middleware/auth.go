// Package middleware provides the HTTP middleware stack: bearer-token
// authentication, request IDs, request logging, Prometheus metrics, and rate
// limiting. Everything is standard func(http.Handler) http.Handler and
// composes with chi routers.
package middleware

import (
	"net/http"
	"strings"

	"github.com/meowjesty/tasknest/core/response"
	"github.com/meowjesty/tasknest/core/session"
)

const bearerPrefix = "Bearer "

// BearerAuth guards routes behind two checks: the request must carry an
// Authorization bearer token, and the session must hold an identity whose
// token matches it. The session is only read, never written, so a guarded
// request cannot extend or alter the session.
type BearerAuth[Data any] struct {
	Sessions *session.Manager[Data]

	// Token extracts the expected token from the session data. The second
	// return value reports whether an identity is present at all.
	Token func(Data) (string, bool)

	// ErrNotLoggedIn and ErrInvalidToken override the failure values
	// surfaced when the identity is missing or the tokens disagree.
	// Both default to a generic 401.
	ErrNotLoggedIn  error
	ErrInvalidToken error
}

// Middleware returns the guard as a standard middleware.
func (ba BearerAuth[Data]) Middleware(next http.Handler) http.Handler {
	notLoggedIn := ba.ErrNotLoggedIn
	if notLoggedIn == nil {
		notLoggedIn = response.ErrUnauthorized
	}
	invalidToken := ba.ErrInvalidToken
	if invalidToken == nil {
		invalidToken = response.ErrUnauthorized
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header, ok := bearerToken(r)
		if !ok {
			response.JSONError(w, notLoggedIn)
			return
		}

		sess, err := ba.Sessions.Load(r)
		if err != nil {
			// A cookie that cannot be decoded is a server-side problem,
			// not a client authentication failure.
			response.JSONError(w, err)
			return
		}

		expected, ok := ba.Token(sess.Data)
		if !ok {
			response.JSONError(w, notLoggedIn)
			return
		}
		if header != expected {
			response.JSONError(w, invalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
