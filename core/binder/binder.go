// Package binder turns raw HTTP request bodies into validated command values.
// Decoding is strictly ordered: body size enforcement, structural JSON
// decoding, then the command's own semantic validation. Handlers only ever see
// fully valid commands.
package binder

import "net/http"

// Binder binds HTTP request data to a Go value.
type Binder func(r *http.Request, v any) error

// Validatable is implemented by command types that carry semantic validation
// rules beyond JSON structure. Validate returns the first violated rule.
type Validatable interface {
	Validate() error
}
