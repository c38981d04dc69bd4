package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/audit"
	"github.com/JaimeStill/docket/internal/users"
	"github.com/JaimeStill/docket/pkg/pagination"
	"github.com/JaimeStill/docket/pkg/query"
	"github.com/JaimeStill/docket/pkg/repository"
	"github.com/JaimeStill/docket/pkg/storage"
)

type repo struct {
	db         *sql.DB
	users      users.System
	storage    storage.System
	trail      *audit.Trail
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a document repository implementing the System interface.
func New(
	db *sql.DB,
	usersSys users.System,
	store storage.System,
	trail *audit.Trail,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		users:      usersSys,
		storage:    store,
		trail:      trail,
		logger:     logger.With("system", "documents"),
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
) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	if cmd.Name == "" {
		return nil, ErrInvalidName
	}

	owner, err := r.users.Find(ctx, cmd.OwnerID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidOwner
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}
	if !owner.Active {
		return nil, ErrInvalidOwner
	}

	q := `
		INSERT INTO documents(name, owner_id, description)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	if err := r.db.QueryRowContext(ctx, q, cmd.Name, cmd.OwnerID, cmd.Description).Scan(&id); err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	d, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	r.trail.Append(ctx, audit.Entry{
		ActorID:    cmd.OwnerID,
		Action:     audit.ActionDocumentCreated,
		Details:    cmd.Name,
		DocumentID: &id,
		Origin:     cmd.Origin,
	})

	r.logger.Info("document created", "id", d.ID, "name", d.Name, "owner", d.OwnerID)
	return d, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, origin string) error {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	keys, err := repository.QueryMany(
		ctx, r.db,
		"SELECT storage_key FROM versions WHERE document_id = $1",
		[]any{id},
		func(s repository.Scanner) (string, error) {
			var key string
			err := s.Scan(&key)
			return key, err
		},
	)
	if err != nil {
		return fmt.Errorf("query version storage keys: %w", err)
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM documents WHERE id = $1",
			id,
		)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	// Versions and workflow events cascade; notifications keep nulled
	// references. Blob deletes come last so a crash can only orphan
	// blobs, never leave metadata pointing at missing files.
	for _, key := range keys {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("orphaned blob after document delete", "key", key, "error", delErr)
		}
	}

	r.trail.Append(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     audit.ActionDocumentDeleted,
		Details:    doc.Name,
		DocumentID: &id,
		Origin:     origin,
	})

	r.logger.Info("document deleted", "id", id, "versions", len(keys))
	return nil
}
