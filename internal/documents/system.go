package documents

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/pkg/pagination"
)

// System defines the public contract for document registry operations.
// Status transitions during review belong to the workflow engine; the
// registry owns identity, metadata, and removal.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)

	// Delete removes the document and cascades its versions and workflow
	// events. Notifications keep their rows with the document reference
	// nulled. Blob deletes happen after the metadata commit; failures are
	// logged as orphans, never retried.
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, origin string) error
}
