package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/documents"
	"github.com/JaimeStill/docket/internal/notifications"
)

// Tx is the write surface available inside one workflow transaction.
// Everything performed through a Tx commits or rolls back as a unit.
type Tx interface {
	// Document loads the document row and locks it for the duration of
	// the transaction, returning documents.ErrNotFound when absent.
	Document(ctx context.Context, id uuid.UUID) (*documents.Document, error)

	// SetStatus updates the document's status guarded by its row version,
	// returning documents.ErrConflict when a concurrent writer won.
	SetStatus(ctx context.Context, id uuid.UUID, status documents.Status, rowVersion int) error

	// InsertEvent appends a workflow event and returns the stored row.
	InsertEvent(ctx context.Context, e Event) (*Event, error)

	// Enqueue inserts a queued notification within the transaction.
	Enqueue(ctx context.Context, cmd notifications.EnqueueCommand) error

	// Latest returns the most recent event for a document, or nil when
	// the document has no workflow history yet.
	Latest(ctx context.Context, documentID uuid.UUID) (*Event, error)
}

// Store is the persistence contract for the approval engine.
type Store interface {
	// InTx runs fn inside a transaction, committing on nil and rolling
	// back on error.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// History returns every event for a document ordered oldest first.
	History(ctx context.Context, documentID uuid.UUID) ([]Event, error)
}
