package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable wraps transport-level failures: the server could not be
	// reached or the response could not be read.
	ErrUnavailable = errors.New("server unavailable")

	// ErrSessionExpired is returned when the server rejects the credential.
	// The gateway never clears the stored token itself; the session owns
	// that recovery.
	ErrSessionExpired = errors.New("session expired")
)

// APIError is a structured rejection from the campus API. Message carries the
// server-supplied reason when the error body was parseable, and the HTTP
// status text otherwise.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// errorBody is the structured error shape the campus API returns. FastAPI
// style uses "detail"; some endpoints use "message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func newAPIError(status int, body []byte) *APIError {
	msg := http.StatusText(status)
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		switch {
		case eb.Detail != "":
			msg = eb.Detail
		case eb.Message != "":
			msg = eb.Message
		}
	}
	return &APIError{Status: status, Message: msg}
}
