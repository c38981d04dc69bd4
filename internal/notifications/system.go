package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/pkg/pagination"
)

// System defines the public contract for notification queue operations.
// Enqueueing inside a transaction goes through the package-level Enqueue
// function so workflow writes stay atomic with their status change.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Notification], error)

	Find(ctx context.Context, id uuid.UUID) (*Notification, error)

	// Pending returns queued notifications not yet marked sent, oldest
	// first, limited to the given count. Used by the delivery collaborator.
	Pending(ctx context.Context, limit int) ([]Notification, error)

	MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error)

	// MarkSent stamps the notification's sent time once; marking an
	// already-sent notification is an idempotent no-op returning the
	// row unchanged.
	MarkSent(ctx context.Context, id uuid.UUID) (*Notification, error)
}
