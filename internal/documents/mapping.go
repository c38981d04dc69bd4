package documents

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/pkg/query"
	"github.com/JaimeStill/docket/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("name", "Name").
	Project("owner_id", "OwnerID").
	Project("description", "Description").
	Project("status", "Status").
	Project("current_version", "CurrentVersion").
	Project("row_version", "RowVersion").
	Project("created_at", "CreatedAt").
	Project("modified_at", "ModifiedAt").
	Join("public", "users", "u", "INNER JOIN", "d.owner_id = u.id").
	Project("display_name", "OwnerName")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document queries.
// Nil fields are ignored. Status and OwnerID use exact matching;
// Name uses case-insensitive contains matching.
type Filters struct {
	Status  *string    `json:"status,omitempty"`
	Name    *string    `json:"name,omitempty"`
	OwnerID *uuid.UUID `json:"owner_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereContains("Name", f.Name).
		WhereEquals("OwnerID", f.OwnerID)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if o := values.Get("owner_id"); o != "" {
		if id, err := uuid.Parse(o); err == nil {
			f.OwnerID = &id
		}
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.Name,
		&d.OwnerID,
		&d.Description,
		&d.Status,
		&d.CurrentVersion,
		&d.RowVersion,
		&d.CreatedAt,
		&d.ModifiedAt,
		&d.OwnerName,
	)
	return d, err
}
