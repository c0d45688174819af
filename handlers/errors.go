package handlers

import (
	"errors"

	"github.com/meowjesty/tasknest/core/binder"
	"github.com/meowjesty/tasknest/core/response"
)

// bindError maps structural binder failures to their HTTP status. Semantic
// validation errors already carry a status and pass through untouched.
func bindError(err error) error {
	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return response.ErrRequestEntityTooLarge.WithError(err)
	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType):
		return response.ErrUnsupportedMediaType.WithError(err)
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return response.ErrBadRequest.WithMessage("malformed JSON body").WithError(err)
	default:
		return err
	}
}
