package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)

// ConnectivityMessage is the message of every error that has no structured
// backend body behind it.
const ConnectivityMessage = "connection error, check your network and try again"

// APIError is the failure shape of every backend call.
type APIError struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int                 `json:"-"`
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Errors     map[string][]string `json:"errors,omitempty"`

	connectivity bool
	cause        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.cause }

// Is lets errors.Is match a 401 against ErrUnauthorized and a connectivity
// failure against ErrUnavailable.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrUnavailable:
		return e.connectivity
	}
	return false
}

// Connectivity reports whether the error stands for an unreachable or
// unintelligible backend rather than a structured rejection.
func (e *APIError) Connectivity() bool { return e.connectivity }

// FieldErrors returns the first message per field.
func (e *APIError) FieldErrors() map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Errors))
	for k, msgs := range e.Errors {
		if len(msgs) > 0 {
			out[k] = msgs[0]
		}
	}
	return out
}

func connectivityError(status int, cause error) *APIError {
	return &APIError{
		StatusCode:   status,
		Message:      ConnectivityMessage,
		connectivity: true,
		cause:        cause,
	}
}
