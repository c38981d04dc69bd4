// Package users implements the user domain for Docket.
// Users are referenced by the document, workflow, audit, and notification
// domains for ownership and approval attribution. Credential management
// and authentication are external concerns.
package users

import (
	"time"

	"github.com/google/uuid"
)

// Role determines what a user may do within the approval workflow.
type Role string

const (
	// RoleRequester may create documents and submit them for review.
	RoleRequester Role = "Requester"
	// RoleApprover may approve or reject documents under review.
	RoleApprover Role = "Approver"
	// RoleAdmin holds approver capability plus user administration.
	RoleAdmin Role = "Admin"
)

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	switch r {
	case RoleRequester, RoleApprover, RoleAdmin:
		return true
	}
	return false
}

// CanApprove reports whether the role carries approval capability.
func (r Role) CanApprove() bool {
	return r == RoleApprover || r == RoleAdmin
}

// User represents a system user referenced by documents and workflow events.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to register a new user.
// An empty Role defaults to Requester.
type CreateCommand struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
	Origin      string `json:"-"`
}
