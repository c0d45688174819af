package response

import (
	"errors"
	"net/http"
)

// statusCode is implemented by errors that know their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError converts any error to an HTTPError. Errors without a
// status mapping become 500s carrying the underlying error text.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError

	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	return baseErr.WithMessage(err.Error()).WithError(err)
}

// JSONError writes an error as a JSON response with the status the error maps to.
func JSONError(w http.ResponseWriter, err error) {
	httpErr := convertToHTTPError(err)
	_ = JSONWithStatus(w, httpErr, httpErr.Status)
}
