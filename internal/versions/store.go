package versions

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/documents"
	"github.com/JaimeStill/docket/internal/notifications"
)

// Tx is the write surface available inside one ledger transaction.
// Everything performed through a Tx commits or rolls back as a unit.
type Tx interface {
	// Insert appends the version row and returns the stored row. A
	// concurrent append racing the same (document, sequence) pair
	// surfaces as documents.ErrConflict.
	Insert(ctx context.Context, v Version) (*Version, error)

	// Advance moves the document's current version pointer and status,
	// guarded by the document's row version, returning
	// documents.ErrConflict when a concurrent writer won.
	Advance(ctx context.Context, id uuid.UUID, sequence int, status documents.Status, rowVersion int) error

	// Enqueue inserts a queued notification within the transaction.
	Enqueue(ctx context.Context, cmd notifications.EnqueueCommand) error
}

// Store is the persistence contract for the version ledger.
type Store interface {
	// InTx runs fn inside a transaction, committing on nil and rolling
	// back on error.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// Versions returns every version of a document ordered by sequence
	// ascending.
	Versions(ctx context.Context, documentID uuid.UUID) ([]Version, error)

	// Version returns a single version by document and sequence,
	// ErrNotFound when absent.
	Version(ctx context.Context, documentID uuid.UUID, sequence int) (*Version, error)
}
