package workflow

import (
	"github.com/JaimeStill/docket/pkg/query"
	"github.com/JaimeStill/docket/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "workflow_events", "e").
	Project("id", "ID").
	Project("document_id", "DocumentID").
	Project("status", "Status").
	Project("approver_id", "ApproverID").
	Project("comment", "Comment").
	Project("priority", "Priority").
	Project("occurred_at", "OccurredAt")

var byOccurrence = query.SortField{Field: "OccurredAt"}

func scanEvent(s repository.Scanner) (Event, error) {
	var e Event
	err := s.Scan(
		&e.ID,
		&e.DocumentID,
		&e.Status,
		&e.ApproverID,
		&e.Comment,
		&e.Priority,
		&e.OccurredAt,
	)
	return e, err
}
