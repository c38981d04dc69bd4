package users

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/audit"
	"github.com/JaimeStill/docket/pkg/pagination"
	"github.com/JaimeStill/docket/pkg/query"
	"github.com/JaimeStill/docket/pkg/repository"
)

type repo struct {
	db         *sql.DB
	trail      *audit.Trail
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a user repository implementing the System interface.
func New(db *sql.DB, trail *audit.Trail, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		trail:      trail,
		logger:     logger.With("system", "users"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[User], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Email", "DisplayName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	found, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanUser)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	result := pagination.NewPageResult(found, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*User, error) {
	if cmd.Email == "" {
		return nil, ErrInvalidEmail
	}
	if cmd.Role == "" {
		cmd.Role = RoleRequester
	}
	if !cmd.Role.Valid() {
		return nil, ErrInvalidRole
	}

	q := `
		INSERT INTO users(email, display_name, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, display_name, role, active, created_at`

	u, err := repository.QueryOne(ctx, r.db, q, []any{cmd.Email, cmd.DisplayName, cmd.Role}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.trail.Append(ctx, audit.Entry{
		ActorID: u.ID,
		Action:  audit.ActionUserCreated,
		Details: fmt.Sprintf("%s (%s)", u.Email, u.Role),
		Origin:  cmd.Origin,
	})

	r.logger.Info("user created", "id", u.ID, "email", u.Email, "role", u.Role)
	return &u, nil
}

func (r *repo) SetRole(ctx context.Context, id uuid.UUID, role Role) (*User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	q := `
		UPDATE users SET role = $2
		WHERE id = $1
		RETURNING id, email, display_name, role, active, created_at`

	u, err := repository.QueryOne(ctx, r.db, q, []any{id, role}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user role updated", "id", id, "role", role)
	return &u, nil
}

func (r *repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*User, error) {
	q := `
		UPDATE users SET active = $2
		WHERE id = $1
		RETURNING id, email, display_name, role, active, created_at`

	u, err := repository.QueryOne(ctx, r.db, q, []any{id, active}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user active flag updated", "id", id, "active", active)
	return &u, nil
}

func (r *repo) Approvers(ctx context.Context) ([]User, error) {
	q, args := query.
		NewBuilder(projection, query.SortField{Field: "Email"}).
		WhereIn("Role", []any{RoleApprover, RoleAdmin}).
		WhereEquals("Active", true).
		Build()

	found, err := repository.QueryMany(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, fmt.Errorf("query approvers: %w", err)
	}

	return found, nil
}
