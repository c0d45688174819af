// Package response renders HTTP responses and converts typed domain failures
// into one JSON error shape at the service boundary.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes an application/json response with 200 OK status.
func JSON(w http.ResponseWriter, v any) error {
	return JSONWithStatus(w, v, http.StatusOK)
}

// JSONWithStatus writes an application/json response with a custom status code.
// Encoding goes directly to the response writer.
func JSONWithStatus(w http.ResponseWriter, v any, status int) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if status == 0 {
		if v == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}

	w.WriteHeader(status)

	// 204 and 304 must not carry a body per the HTTP spec.
	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return nil
	}

	return json.NewEncoder(w).Encode(v)
}

// String writes a text/plain response with 200 OK status.
func String(w http.ResponseWriter, body string) error {
	return StringWithStatus(w, body, http.StatusOK)
}

// StringWithStatus writes a text/plain response with a custom status code.
func StringWithStatus(w http.ResponseWriter, body string, status int) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)

	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return nil
	}

	_, err := w.Write([]byte(body))
	return err
}
