// Package workflow implements the approval engine for Docket. It is the
// sole writer of workflow events: submit moves a pending or rejected
// document into review, approve and reject close the cycle. Every
// successful transition writes one event and at least one queued
// notification in a single transaction, then appends one audit record.
package workflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/documents"
)

// Priority tags the urgency of a review request.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
)

// Valid reports whether the priority is one of the recognized values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

// Event is one recorded transition in the approval state machine.
// Events are append-only and ordered by timestamp; the latest event for
// a document determines its current status. ApproverID is nil until an
// approver acts.
type Event struct {
	ID         uuid.UUID        `json:"id"`
	DocumentID uuid.UUID        `json:"document_id"`
	Status     documents.Status `json:"status"`
	ApproverID *uuid.UUID       `json:"approver_id,omitempty"`
	Comment    string           `json:"comment"`
	Priority   Priority         `json:"priority"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// SubmitCommand carries the data for a review submission.
// An empty Priority defaults to Normal.
type SubmitCommand struct {
	DocumentID  uuid.UUID
	RequesterID uuid.UUID
	Priority    Priority
	Origin      string
}

// DecisionCommand carries the data for an approve or reject decision.
type DecisionCommand struct {
	DocumentID uuid.UUID
	ApproverID uuid.UUID
	Comment    string
	Origin     string
}
