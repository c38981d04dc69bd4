package notifications

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/pkg/query"
	"github.com/JaimeStill/docket/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "notifications", "n").
	Project("id", "ID").
	Project("recipient_id", "RecipientID").
	Project("document_id", "DocumentID").
	Project("type", "Type").
	Project("subject", "Subject").
	Project("body", "Body").
	Project("read", "Read").
	Project("created_at", "CreatedAt").
	Project("sent_at", "SentAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for notification queries.
// Nil fields are ignored.
type Filters struct {
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"`
	DocumentID  *uuid.UUID `json:"document_id,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Read        *bool      `json:"read,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("RecipientID", f.RecipientID).
		WhereEquals("DocumentID", f.DocumentID).
		WhereEquals("Type", f.Type).
		WhereEquals("Read", f.Read)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if rec := values.Get("recipient_id"); rec != "" {
		if id, err := uuid.Parse(rec); err == nil {
			f.RecipientID = &id
		}
	}

	if d := values.Get("document_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			f.DocumentID = &id
		}
	}

	if t := values.Get("type"); t != "" {
		f.Type = &t
	}

	if rd := values.Get("read"); rd != "" {
		if v, err := strconv.ParseBool(rd); err == nil {
			f.Read = &v
		}
	}

	return f
}

func scanNotification(s repository.Scanner) (Notification, error) {
	var n Notification
	err := s.Scan(
		&n.ID,
		&n.RecipientID,
		&n.DocumentID,
		&n.Type,
		&n.Subject,
		&n.Body,
		&n.Read,
		&n.CreatedAt,
		&n.SentAt,
	)
	return n, err
}
