package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError carries the original response payload so callers can
// surface the backend's business errors verbatim.
type APIError struct {
	StatusCode int
	Message    string
	// RequiresVerification is set when login is refused because the
	// account's email has not been verified yet. No token is issued
	// in that case and no session must be created.
	RequiresVerification bool
	// Email echoes the account the verification prompt should target.
	Email   string
	Payload []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// errorBody is the backend's structured error envelope. Some
// endpoints use "error", others "message".
type errorBody struct {
	Error                string `json:"error"`
	Message              string `json:"message"`
	RequiresVerification bool   `json:"requiresVerification"`
	Email                string `json:"email"`
}

func newAPIError(status int, payload []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Payload: payload}

	var body errorBody
	if err := json.Unmarshal(payload, &body); err == nil {
		apiErr.Message = body.Error
		if apiErr.Message == "" {
			apiErr.Message = body.Message
		}
		apiErr.RequiresVerification = body.RequiresVerification
		apiErr.Email = body.Email
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// AsAPIError unwraps err into an APIError if possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
