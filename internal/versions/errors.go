package versions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/docket/internal/documents"
)

// Domain errors for version operations. Parent-document and concurrency
// errors come from the documents package since the ledger mutates the
// document row under the same guard.
var (
	ErrNotFound     = errors.New("version not found")
	ErrEmptyFile    = errors.New("version file must not be empty")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
	ErrInvalidFile  = errors.New("invalid file")
)

// MapHTTPStatus maps version domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrEmptyFile) || errors.Is(err, ErrInvalidFile) {
		return http.StatusBadRequest
	}
	return documents.MapHTTPStatus(err)
}
