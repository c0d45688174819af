// Package session implements a fully client-held session container. The whole
// session state is serialized into a versioned envelope, encrypted, and
// round-tripped through a cookie: there is no server-side session table.
// Expiry is evaluated lazily on the next read, measured from the last write.
//
// The Data type parameter carries the application's session state as one typed
// struct, decoded and encoded as a unit.
package session

import "time"

// Session holds the per-client state decoded from (or destined for) the
// session cookie.
type Session[Data any] struct {
	// Data is the application-specific session state.
	Data Data

	// IssuedAt is the time of the last write that produced this session.
	IssuedAt time.Time

	// ExpiresAt is the moment the session stops being readable.
	ExpiresAt time.Time

	exists bool
}

// Exists reports whether the session was decoded from a live cookie, as
// opposed to being a fresh default returned when no usable cookie was present.
func (s Session[Data]) Exists() bool {
	return s.exists
}

// IsExpired reports whether the session has passed its time-to-live.
func (s Session[Data]) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
