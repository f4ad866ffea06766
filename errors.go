package imgbb

import (
	"errors"
	"fmt"
)

var (
	// Validation errors, raised before any request is sent
	ErrMissingImage = errors.New("missing required field: image")

	// Provider errors, mapped from the error code in the response body
	ErrInvalidAPIKey     = errors.New("invalid API key")
	ErrInvalidBase64     = errors.New("invalid base64-encoded image")
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// APIError is a provider failure that does not map to one of the sentinel
// errors above. It preserves the provider's raw message, the HTTP status of
// the response and the provider error code (0 when the body carried none).
type APIError struct {
	Message string
	Status  int
	Code    int
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("imgbb: %s (status %d, code %d)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("imgbb: %s (status %d)", e.Message, e.Status)
}
