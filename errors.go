package webscale

import (
	"errors"
	"fmt"

	"github.com/webscale/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingBaseURL is returned when no base URL is provided.
	ErrMissingBaseURL = apierrors.ErrMissingBaseURL

	// ErrEmptySetID is returned when an operation receives an empty
	// address set id.
	ErrEmptySetID = apierrors.ErrEmptySetID

	// ErrUnauthorized is returned when the service rejects the request as
	// forbidden or unauthorized (401/403).
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrSetNotFound is returned when the referenced address set does not
	// exist on the service.
	ErrSetNotFound = apierrors.ErrSetNotFound

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited
)

// WebscaleError is implemented by all SDK errors.
type WebscaleError interface {
	error
	WebscaleError() // marker method
}

// APIError represents an HTTP error from the Webscale API. The server's
// message is preserved verbatim for diagnosis.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// WebscaleError implements the WebscaleError interface.
func (e *APIError) WebscaleError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 404:
		return target == ErrSetNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// TransportError represents a network-level failure reaching the service,
// including request timeouts.
type TransportError struct {
	Err error
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// WebscaleError implements the WebscaleError interface.
func (e *TransportError) WebscaleError() {}

// IsAuthError reports whether err indicates an authentication or
// authorization failure. The HTTP status code (401/403) is the primary
// signal; a case-insensitive substring match on "forbidden" or
// "authorization" in the failure text is kept as a fallback for servers
// that surface auth failures under other status codes.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403) {
		return true
	}
	return apierrors.IsAuthFailure(err)
}

// wrapError converts internal API errors to public errors so that
// errors.Is() checks work with the package sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &TransportError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
