package audit

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/pkg/query"
	"github.com/JaimeStill/docket/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "audit_records", "a").
	Project("id", "ID").
	Project("actor_id", "ActorID").
	Project("action", "Action").
	Project("details", "Details").
	Project("document_id", "DocumentID").
	Project("origin", "Origin").
	Project("occurred_at", "OccurredAt")

var defaultSort = query.SortField{
	Field:      "OccurredAt",
	Descending: true,
}

// Filters contains optional filtering criteria for audit queries.
// Nil fields are ignored. From and To bound the occurred_at range
// inclusively on From and exclusively on To.
type Filters struct {
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	Action     *string    `json:"action,omitempty"`
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("ActorID", f.ActorID).
		WhereContains("Action", f.Action).
		WhereEquals("DocumentID", f.DocumentID)

	if f.From != nil {
		b.WhereAtLeast("OccurredAt", *f.From)
	}
	if f.To != nil {
		b.WhereBefore("OccurredAt", *f.To)
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Time bounds accept RFC 3339 timestamps.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if a := values.Get("actor_id"); a != "" {
		if id, err := uuid.Parse(a); err == nil {
			f.ActorID = &id
		}
	}

	if d := values.Get("document_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			f.DocumentID = &id
		}
	}

	if ac := values.Get("action"); ac != "" {
		f.Action = &ac
	}

	if from := values.Get("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			f.From = &t
		}
	}

	if to := values.Get("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			f.To = &t
		}
	}

	return f
}

func scanRecord(s repository.Scanner) (Record, error) {
	var rec Record
	err := s.Scan(
		&rec.ID,
		&rec.ActorID,
		&rec.Action,
		&rec.Details,
		&rec.DocumentID,
		&rec.Origin,
		&rec.OccurredAt,
	)
	return rec, err
}
