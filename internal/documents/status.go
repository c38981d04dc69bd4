package documents

// Status is the approval lifecycle state of a document. The latest
// workflow event is the source of truth; the status column on the
// document row is a denormalized copy maintained in the same
// transaction as every event write.
type Status string

const (
	// StatusPending is the sole initial state, also restored when a new
	// version reopens an approved or rejected document.
	StatusPending Status = "Pending"
	// StatusUnderReview means the document awaits an approver decision.
	StatusUnderReview Status = "UnderReview"
	// StatusApproved is terminal for the current review cycle.
	StatusApproved Status = "Approved"
	// StatusRejected is terminal for the current review cycle but
	// re-submittable.
	StatusRejected Status = "Rejected"
)

// Valid reports whether the status is one of the recognized values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the status ends the current review cycle.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition reports whether the approval workflow may move a document
// from one status to another. Reopening a terminal document to Pending is
// driven by version appends, not the workflow, and is deliberately absent.
func CanTransition(from, to Status) bool {
	switch to {
	case StatusUnderReview:
		return from == StatusPending || from == StatusRejected
	case StatusApproved, StatusRejected:
		return from == StatusUnderReview
	}
	return false
}
