package audit

import (
	"context"

	"github.com/JaimeStill/docket/pkg/pagination"
)

// System defines the persistence contract for audit records.
// Record returns the persisted row; callers needing the best-effort
// contract wrap the system in a Trail instead of calling Record directly.
type System interface {
	Handler() *Handler

	Record(ctx context.Context, e Entry) (*Record, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Record], error)
}
