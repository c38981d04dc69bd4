// Package notifications implements the outbound notification queue for
// Docket. Workflow transitions enqueue rows inside their transaction; an
// external delivery collaborator drains pending rows and marks them sent.
// Deleting a document nulls the reference on its notifications rather
// than deleting them, so recipients keep their history.
package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Type tags the reason a notification was enqueued.
type Type string

const (
	TypeApprovalRequest Type = "ApprovalRequest"
	TypeApproved        Type = "Approved"
	TypeRejected        Type = "Rejected"
	TypeNewVersion      Type = "NewVersion"
)

// Notification is one queued message to a user. SentAt is nil until the
// delivery collaborator marks it sent.
type Notification struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	DocumentID  *uuid.UUID `json:"document_id,omitempty"`
	Type        Type       `json:"type"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
}

// EnqueueCommand carries the data for a new queued notification.
type EnqueueCommand struct {
	RecipientID uuid.UUID
	DocumentID  *uuid.UUID
	Type        Type
	Subject     string
	Body        string
}
