// Package gymapi is a thin client for the gym backend's REST API.  It
// forwards parameters, reshapes JSON and maps upstream failures onto a
// small error taxonomy that handlers translate into HTTP responses.
package gymapi

import (
    "errors"
    "fmt"
)

// ErrUnauthorized is returned when the upstream rejects the bearer
// token (HTTP 401).  Handlers should translate this into a redirect
// to the login route, never into a retry.
var ErrUnauthorized = errors.New("unauthorized")

// GenericErrorMessage is shown to users when the backend's error
// payload carries no usable message.  The user-facing language of the
// service is Spanish.
const GenericErrorMessage = "Ha ocurrido un error inesperado. Inténtalo de nuevo."

// APIError is a validation or business rejection from the backend on
// a write path.  Message holds the backend payload's message field
// when present, or GenericErrorMessage otherwise, and is safe to show
// inline next to the triggering action.
type APIError struct {
    Status  int
    Message string
}

func (e *APIError) Error() string {
    return fmt.Sprintf("gym api error (status %d): %s", e.Status, e.Message)
}

// errorBody mirrors the shapes the backends use for error payloads.
// Some endpoints answer {"message": ...}, others {"error": ...}.
type errorBody struct {
    Message string `json:"message"`
    Err     string `json:"error"`
}

func (b errorBody) text() string {
    if b.Message != "" {
        return b.Message
    }
    if b.Err != "" {
        return b.Err
    }
    return GenericErrorMessage
}
