package documents

import (
	"errors"
	"net/http"
)

// Domain errors for document operations.
var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicate    = errors.New("document already exists")
	ErrInvalidOwner = errors.New("document owner missing or inactive")
	ErrInvalidName  = errors.New("document name must not be empty")

	// ErrConflict indicates a concurrent writer won the race for the same
	// document row. Callers may retry the whole operation.
	ErrConflict = errors.New("document modified concurrently")
)

// MapHTTPStatus maps document domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidOwner) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrInvalidName) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
