package binder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// config holds JSON binder settings.
type config struct {
	maxBodySize int64
}

// JSONOption configures the JSON binder.
type JSONOption func(*config)

// WithMaxBodySize overrides the maximum accepted body size in bytes.
func WithMaxBodySize(size int64) JSONOption {
	return func(c *config) {
		if size > 0 {
			c.maxBodySize = size
		}
	}
}

// JSON creates a JSON binder function. Oversized payloads are rejected before
// decoding; unknown fields and trailing data are structural errors.
func JSON(opts ...JSONOption) Binder {
	cfg := config{maxBodySize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: missing content-type header, expected application/json", ErrMissingContentType)
		}

		// Strip charset and other parameters (e.g., "application/json; charset=utf-8")
		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		if mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		// Read with +1 byte to detect oversized requests efficiently
		limitedReader := io.LimitReader(r.Body, cfg.maxBodySize+1)
		body, err := io.ReadAll(limitedReader)
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}

		if int64(len(body)) > cfg.maxBodySize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrBodyTooLarge, cfg.maxBodySize)
		}

		decoder := json.NewDecoder(strings.NewReader(string(body)))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			if err == io.EOF {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		// Verify no trailing data exists after the JSON value
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}

// ValidJSON decodes the request body into v and, when v carries semantic
// validation, runs it. Structural failures surface as binder errors; semantic
// failures surface as the command's own typed error.
func ValidJSON(r *http.Request, v any, opts ...JSONOption) error {
	if err := JSON(opts...)(r, v); err != nil {
		return err
	}

	if validatable, ok := v.(Validatable); ok {
		if err := validatable.Validate(); err != nil {
			return err
		}
	}

	return nil
}
