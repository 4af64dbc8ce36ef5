package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrMutationInFlight = errors.New("another change to this item is still in flight")
)

// APIError carries the HTTP status and the machine-readable error code the
// backend services return in their {error, message} envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d %s)", e.Message, e.StatusCode, e.Code)
}

func NewAPIError(status int, code, message string) *APIError {
	if code == "" {
		code = "REQUEST_FAILED"
	}
	if message == "" {
		message = "request failed"
	}
	return &APIError{StatusCode: status, Code: code, Message: message}
}

func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsAuthFailure(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

func IsForbidden(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.StatusCode == http.StatusForbidden
}

func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	apiErr, ok := asAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// UserMessage maps an error to the copy shown in banners and status bars.
// 401 and 403 get distinct wording; everything else falls back to a generic
// message instead of leaking Go error chains at the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotLoggedIn):
		return "You are not logged in."
	case errors.Is(err, ErrMutationInFlight):
		return "Still saving the previous change for this item."
	case IsAuthFailure(err):
		return "Authentication failed. Please log in again."
	case IsForbidden(err):
		return "Access denied. You don't have permission for this study plan."
	case IsNotFound(err):
		return "Not found."
	default:
		if apiErr, ok := asAPIError(err); ok {
			return apiErr.Message
		}
		return "Request failed. Please try again."
	}
}
