package session

import "errors"

var (
	// ErrNoCookieManager is returned when constructing a manager without a cookie manager.
	ErrNoCookieManager = errors.New("cookie manager is required")
	// ErrNoCookieName is returned when constructing a manager without a cookie name.
	ErrNoCookieName = errors.New("session cookie name is required")
	// ErrInvalidTTL is returned when the configured time-to-live is not positive.
	ErrInvalidTTL = errors.New("session ttl must be positive")
	// ErrEncodeFailed is returned when the session state cannot be serialized.
	ErrEncodeFailed = errors.New("failed to encode session envelope")
	// ErrDecodeFailed is returned when a session cookie cannot be decrypted or parsed.
	ErrDecodeFailed = errors.New("failed to decode session envelope")
)
