// Package audit implements the append-only audit trail for Docket.
// Every state-changing operation across the core writes one record of
// who did what, when, and from where. Records are never updated or
// deleted. The Trail wrapper makes writes best-effort: a failed append
// is counted and logged but never propagated to the primary operation.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Well-known action descriptions written by the core domains.
const (
	ActionDocumentCreated = "document created"
	ActionDocumentDeleted = "document deleted"
	ActionVersionAdded    = "version added"
	ActionReviewSubmitted = "submitted for review"
	ActionApproved        = "document approved"
	ActionRejected        = "document rejected"
	ActionUserCreated     = "user created"
)

// Record is one immutable audit log entry.
type Record struct {
	ID         uuid.UUID  `json:"id"`
	ActorID    uuid.UUID  `json:"actor_id"`
	Action     string     `json:"action"`
	Details    string     `json:"details"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	Origin     string     `json:"origin"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Entry carries the data for a new audit record.
type Entry struct {
	ActorID    uuid.UUID
	Action     string
	Details    string
	DocumentID *uuid.UUID
	Origin     string
}
