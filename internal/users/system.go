package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/pkg/pagination"
)

// System defines the public contract for user domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[User], error)

	Find(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, cmd CreateCommand) (*User, error)
	SetRole(ctx context.Context, id uuid.UUID, role Role) (*User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*User, error)

	// Approvers returns all active users holding approval capability,
	// used by the workflow engine to broadcast review requests.
	Approvers(ctx context.Context) ([]User, error)
}
