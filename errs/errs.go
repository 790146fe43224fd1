package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel classes for the failure taxonomy. Handlers translate these
// into stable status codes; errors.Is works through APIError.
var (
	ErrValidation     = errors.New("validation failed")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("resource conflict")
	ErrUploadRejected = errors.New("upload rejected")
	ErrUpstream       = errors.New("upstream failure")
)

// APIError pairs an error with the HTTP status it should produce.
type APIError struct {
	StatusCode int
	err        error

	// MissingFields is set on validation errors so the response can
	// report every violation in one round trip.
	MissingFields []string
}

func (e *APIError) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("%s: missing fields %v", e.err.Error(), e.MissingFields)
	}
	return e.err.Error()
}

func (e *APIError) Unwrap() error {
	return e.err
}

// NewValidationError reports every missing/empty required field together.
func NewValidationError(missing []string) *APIError {
	return &APIError{
		StatusCode:    http.StatusBadRequest,
		err:           ErrValidation,
		MissingFields: missing,
	}
}

// NewBadRequestError covers shape violations that are not missing
// fields, e.g. length bounds or malformed ids.
func NewBadRequestError(message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, err: fmt.Errorf("%s: %w", message, ErrValidation)}
}

// NewUnauthorizedError deliberately carries no detail about which check
// failed.
func NewUnauthorizedError() *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, err: ErrUnauthorized}
}

func NewNotFoundError(what string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, err: fmt.Errorf("%s: %w", what, ErrNotFound)}
}

func NewConflictError(what string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, err: fmt.Errorf("%s: %w", what, ErrConflict)}
}

func NewUploadRejectedError(reason string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, err: fmt.Errorf("%s: %w", reason, ErrUploadRejected)}
}

// NewUpstreamError wraps asset-host and document-store failures. The
// cause is preserved for logs; response bodies only expose it outside
// release mode.
func NewUpstreamError(cause error) *APIError {
	return &APIError{StatusCode: http.StatusInternalServerError, err: fmt.Errorf("%w: %w", ErrUpstream, cause)}
}

// StatusOf resolves the HTTP status for any error, defaulting to 500.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
