package binder

import "errors"

// Binding failures map to client errors; they never reach validation logic or
// handlers.
var (
	// ErrUnsupportedMediaType indicates the Content-Type header specifies a media
	// type the binder doesn't support.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseJSON indicates the request body contains invalid JSON
	// or doesn't match the target struct schema.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrBodyTooLarge indicates the request body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrMissingContentType indicates the request lacks a Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
)
