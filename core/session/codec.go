package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// schemaVersion is bumped when the envelope layout changes. Decoders accept
// only versions they know how to read; newer cookies fail decoding instead of
// being silently misread.
const schemaVersion = 1

// envelope is the wire form of a session: a version tag, write/expiry
// timestamps (unix seconds), and the application state as one JSON object.
type envelope[Data any] struct {
	Version   int   `json:"v"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
	Data      Data  `json:"data"`
}

// encode serializes a session into its envelope form.
func encode[Data any](sess Session[Data]) (string, error) {
	env := envelope[Data]{
		Version:   schemaVersion,
		IssuedAt:  sess.IssuedAt.Unix(),
		ExpiresAt: sess.ExpiresAt.Unix(),
		Data:      sess.Data,
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return "", errors.Join(ErrEncodeFailed, err)
	}
	return string(raw), nil
}

// decode parses an envelope back into a session. The returned session is
// marked as existing; expiry is the caller's concern.
func decode[Data any](raw string) (Session[Data], error) {
	var env envelope[Data]
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Session[Data]{}, errors.Join(ErrDecodeFailed, err)
	}

	if env.Version != schemaVersion {
		return Session[Data]{}, fmt.Errorf("%w: unsupported envelope version %d", ErrDecodeFailed, env.Version)
	}

	return Session[Data]{
		Data:      env.Data,
		IssuedAt:  time.Unix(env.IssuedAt, 0),
		ExpiresAt: time.Unix(env.ExpiresAt, 0),
		exists:    true,
	}, nil
}
