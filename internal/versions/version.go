// Package versions implements the version ledger for Docket. Versions
// are immutable snapshots of a document's file content, numbered from 1
// with no gaps. The blob write always lands before the version row
// commits, and appending a version to an approved or rejected document
// reopens it to Pending.
package versions

import (
	"time"

	"github.com/google/uuid"
)

// Version is one immutable file snapshot. StorageKey is the opaque blob
// store reference and is never re-derived after creation.
type Version struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	Filename   string    `json:"filename"`
	StorageKey string    `json:"storage_key"`
	Sequence   int       `json:"sequence"`
	PageCount  *int      `json:"page_count"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// AddCommand carries the data needed to append a new version.
// Data holds the raw file bytes. PageCount is optional and may be
// extracted by the caller via pdfcpu; nil values are stored as NULL.
type AddCommand struct {
	DocumentID  uuid.UUID
	Data        []byte
	Filename    string
	ContentType string
	Comment     string
	PageCount   *int
	ActorID     uuid.UUID
	Origin      string
}
