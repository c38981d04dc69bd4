package versions

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// System defines the public contract for version ledger operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	// List returns all versions of a document ordered by sequence ascending.
	List(ctx context.Context, documentID uuid.UUID) ([]Version, error)

	// Find returns a specific version by document and sequence number.
	Find(ctx context.Context, documentID uuid.UUID, sequence int) (*Version, error)

	// Add appends the next version: the blob write completes before the
	// row commits, the document's current version pointer advances, and a
	// terminal document reopens to Pending.
	Add(ctx context.Context, cmd AddCommand) (*Version, error)

	// Download streams the stored bytes of a version. A sequence of zero
	// selects the document's current version. The caller must close the
	// reader.
	Download(ctx context.Context, documentID uuid.UUID, sequence int) (*Version, io.ReadCloser, error)
}
