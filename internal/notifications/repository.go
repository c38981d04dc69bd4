package notifications

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/pkg/pagination"
	"github.com/JaimeStill/docket/pkg/query"
	"github.com/JaimeStill/docket/pkg/repository"
)

const insertReturning = `
	INSERT INTO notifications(recipient_id, document_id, type, subject, body)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, recipient_id, document_id, type, subject, body, read, created_at, sent_at`

// Enqueue inserts a notification through the given querier, which may be a
// transaction. Workflow transitions call this inside their transaction so
// the enqueue commits or rolls back with the status change.
func Enqueue(ctx context.Context, q repository.Querier, cmd EnqueueCommand) (*Notification, error) {
	args := []any{cmd.RecipientID, cmd.DocumentID, cmd.Type, cmd.Subject, cmd.Body}

	n, err := repository.QueryOne(ctx, q, insertReturning, args, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("enqueue notification: %w", err)
	}

	return &n, nil
}

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a notification repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "notifications"),
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
) (*pagination.PageResult[Notification], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Subject", "Body")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	found, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}

	result := pagination.NewPageResult(found, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Notification, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	n, err := repository.QueryOne(ctx, r.db, q, args, scanNotification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &n, nil
}

func (r *repo) Pending(ctx context.Context, limit int) ([]Notification, error) {
	if limit < 1 {
		limit = r.pagination.DefaultPageSize
	}

	q := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE n.sent_at IS NULL
		ORDER BY n.created_at ASC
		LIMIT $1`,
		projection.Columns(),
		projection.From(),
	)

	found, err := repository.QueryMany(ctx, r.db, q, []any{limit}, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("query pending notifications: %w", err)
	}

	return found, nil
}

func (r *repo) MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error) {
	q := `
		UPDATE notifications SET read = true
		WHERE id = $1
		RETURNING id, recipient_id, document_id, type, subject, body, read, created_at, sent_at`

	n, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanNotification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &n, nil
}

// MarkSent stamps sent_at once. An already-sent notification keeps its
// original timestamp and returns unchanged, so delivery retries are safe.
func (r *repo) MarkSent(ctx context.Context, id uuid.UUID) (*Notification, error) {
	q := `
		UPDATE notifications SET sent_at = COALESCE(sent_at, now())
		WHERE id = $1
		RETURNING id, recipient_id, document_id, type, subject, body, read, created_at, sent_at`

	n, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanNotification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("notification sent", "id", id, "recipient", n.RecipientID)
	return &n, nil
}
