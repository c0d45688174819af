package session

import (
	"time"

	"github.com/meowjesty/tasknest/core/cookie"
)

// Config holds session manager configuration.
// The TTL is a deployment knob; observed deployments range from 30s to 10m.
type Config struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"tasknest-session"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"2m"`
	Secure     bool          `env:"SESSION_SECURE" envDefault:"false"`
}

// NewFromConfig creates a session manager from configuration.
func NewFromConfig[Data any](cfg Config, cookies *cookie.Manager, opts ...Option[Data]) (*Manager[Data], error) {
	combined := append([]Option[Data]{WithSecure[Data](cfg.Secure)}, opts...)
	return NewManager(cookies, cfg.CookieName, cfg.TTL, combined...)
}
