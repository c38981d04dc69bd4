package workflow

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/docket/internal/documents"
	"github.com/JaimeStill/docket/internal/users"
)

// Domain errors for approval workflow operations.
var (
	// ErrInvalidTransition indicates the requested transition is not legal
	// from the document's current status.
	ErrInvalidTransition = errors.New("invalid workflow transition")

	// ErrUnauthorizedApprover indicates the acting user lacks approval
	// capability or is inactive. No state is written when this occurs.
	ErrUnauthorizedApprover = errors.New("user is not an authorized approver")

	// ErrNewVersionRequired indicates a rejected document was re-submitted
	// without a new version while the engine requires one.
	ErrNewVersionRequired = errors.New("re-submission requires a new version")

	// ErrNoApprovers indicates no active approver exists to receive the
	// review request, so a submission cannot proceed.
	ErrNoApprovers = errors.New("no active approvers available")

	ErrInvalidPriority = errors.New("invalid priority")
)

// MapHTTPStatus maps workflow domain errors to appropriate HTTP status
// codes, falling through to the user and document mappings for errors
// raised by the collaborating domains.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnauthorizedApprover) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrNewVersionRequired) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNoApprovers) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrInvalidPriority) {
		return http.StatusBadRequest
	}
	if errors.Is(err, users.ErrNotFound) {
		return http.StatusNotFound
	}
	return documents.MapHTTPStatus(err)
}
