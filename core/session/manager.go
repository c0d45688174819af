package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/meowjesty/tasknest/core/cookie"
)

// Manager reads and writes sessions through an encrypted cookie. It is
// stateless apart from its configuration; every request's session is local to
// that request/response pair.
type Manager[Data any] struct {
	cookies *cookie.Manager
	name    string
	ttl     time.Duration
	secure  bool
}

// NewManager creates a session manager on top of a cookie manager.
// The signing/encryption key lives in the cookie manager, injected at startup.
func NewManager[Data any](cookies *cookie.Manager, name string, ttl time.Duration, opts ...Option[Data]) (*Manager[Data], error) {
	if cookies == nil {
		return nil, ErrNoCookieManager
	}
	if name == "" {
		return nil, ErrNoCookieName
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	m := &Manager[Data]{
		cookies: cookies,
		name:    name,
		ttl:     ttl,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Option configures a session manager.
type Option[Data any] func(*Manager[Data])

// WithSecure marks the session cookie as HTTPS-only.
func WithSecure[Data any](secure bool) Option[Data] {
	return func(m *Manager[Data]) {
		m.secure = secure
	}
}

// Load decodes the session carried by the request.
//
// A missing cookie or an expired envelope yields a fresh session (Exists()
// reports false) with no error. A cookie that cannot be decrypted or decoded
// is reported as ErrDecodeFailed: tampering and schema drift are surfaced,
// never silently swallowed.
func (m *Manager[Data]) Load(r *http.Request) (Session[Data], error) {
	raw, err := m.cookies.GetEncrypted(r, m.name)
	switch {
	case errors.Is(err, cookie.ErrCookieNotFound):
		return Session[Data]{}, nil
	case err != nil:
		return Session[Data]{}, errors.Join(ErrDecodeFailed, err)
	}

	sess, err := decode[Data](raw)
	if err != nil {
		return Session[Data]{}, err
	}

	if sess.IsExpired() {
		return Session[Data]{}, nil
	}

	return sess, nil
}

// Save writes the session state back to the client. The full envelope is
// rewritten on every save and the TTL restarts from now; there is no partial
// update of individual slots.
func (m *Manager[Data]) Save(w http.ResponseWriter, sess Session[Data]) error {
	now := time.Now()
	sess.IssuedAt = now
	sess.ExpiresAt = now.Add(m.ttl)

	raw, err := encode(sess)
	if err != nil {
		return err
	}

	return m.cookies.SetEncrypted(w, m.name, raw,
		cookie.WithHTTPOnly(true),
		cookie.WithSecure(m.secure),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithMaxAge(int(m.ttl.Seconds())),
	)
}

// Delete drops the session cookie entirely.
func (m *Manager[Data]) Delete(w http.ResponseWriter) {
	m.cookies.Delete(w, m.name)
}

// TTL returns the configured session time-to-live.
func (m *Manager[Data]) TTL() time.Duration {
	return m.ttl
}
