// Package documents implements the document registry for Docket.
// It owns document identity, metadata, the canonical status state
// machine, and the optimistic concurrency guard every status or
// version mutation goes through.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Document represents one managed document and its denormalized
// lifecycle state. CurrentVersion equals the highest version sequence
// and is zero until the first version is added. RowVersion increments
// on every mutation and backs conflict detection between concurrent
// writers.
type Document struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OwnerID        uuid.UUID `json:"owner_id"`
	OwnerName      string    `json:"owner_name"`
	Description    string    `json:"description"`
	Status         Status    `json:"status"`
	CurrentVersion int       `json:"current_version"`
	RowVersion     int       `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	ModifiedAt     time.Time `json:"modified_at"`
}

// CreateCommand carries the data needed to register a new document.
// The first file upload is a separate AddVersion call.
type CreateCommand struct {
	Name        string    `json:"name"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Description string    `json:"description"`
	Origin      string    `json:"-"`
}
