// Package httputil holds the JSON helpers shared by every HTTP handler.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "komek/pkg/domain-errors"
)

type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// WriteError renders a domain error as JSON. Internal errors keep their
// message out of the response body.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := errorBody{
		Error:       string(code),
		Description: dErrors.MessageOf(err),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(dErrors.ToHTTPStatus(code))
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSON renders v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Decode parses the request body into dst, rejecting unknown fields.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}

// Validatable is implemented by request DTOs that parse and check their own
// fields after decoding.
type Validatable interface {
	Validate() error
}

// DecodeAndPrepare decodes the body into a fresh T and runs its validation,
// writing the error response itself on failure. Handlers use the returned
// ok flag to bail out early.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (PT, bool) {
	req := PT(new(T))
	if err := Decode(r, req); err != nil {
		WriteError(w, err)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		if logger != nil {
			logger.WarnContext(r.Context(), "request validation failed",
				"path", r.URL.Path,
				"error", err,
			)
		}
		WriteError(w, err)
		return nil, false
	}
	return req, true
}
