package workflow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/documents"
	"github.com/JaimeStill/docket/internal/notifications"
	"github.com/JaimeStill/docket/pkg/query"
	"github.com/JaimeStill/docket/pkg/repository"
)

type pgStore struct {
	db *sql.DB
}

// NewStore creates the PostgreSQL-backed workflow store.
func NewStore(db *sql.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) InTx(ctx context.Context, fn func(tx Tx) error) error {
	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, fn(&pgTx{tx: tx})
	})
	return err
}

func (s *pgStore) History(ctx context.Context, documentID uuid.UUID) ([]Event, error) {
	q, args := query.
		NewBuilder(projection, byOccurrence).
		WhereEquals("DocumentID", documentID).
		Build()

	found, err := repository.QueryMany(ctx, s.db, q, args, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("query workflow events: %w", err)
	}

	return found, nil
}

type pgTx struct {
	tx *sql.Tx
}

// Document locks the row so concurrent transitions against the same
// document serialize instead of racing the row version guard.
func (t *pgTx) Document(ctx context.Context, id uuid.UUID) (*documents.Document, error) {
	q := `
		SELECT id, name, owner_id, description, status, current_version, row_version, created_at, modified_at
		FROM documents
		WHERE id = $1
		FOR UPDATE`

	var d documents.Document
	err := t.tx.QueryRowContext(ctx, q, id).Scan(
		&d.ID,
		&d.Name,
		&d.OwnerID,
		&d.Description,
		&d.Status,
		&d.CurrentVersion,
		&d.RowVersion,
		&d.CreatedAt,
		&d.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, documents.ErrNotFound
		}
		return nil, fmt.Errorf("lock document: %w", err)
	}

	return &d, nil
}

func (t *pgTx) SetStatus(ctx context.Context, id uuid.UUID, status documents.Status, rowVersion int) error {
	q := `
		UPDATE documents
		SET status = $2, modified_at = now(), row_version = row_version + 1
		WHERE id = $1 AND row_version = $3`

	if err := repository.ExecExpectOne(ctx, t.tx, q, id, status, rowVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return documents.ErrConflict
		}
		return fmt.Errorf("update document status: %w", err)
	}

	return nil
}

func (t *pgTx) InsertEvent(ctx context.Context, e Event) (*Event, error) {
	q := `
		INSERT INTO workflow_events(document_id, status, approver_id, comment, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, document_id, status, approver_id, comment, priority, occurred_at`

	args := []any{e.DocumentID, e.Status, e.ApproverID, e.Comment, e.Priority}

	stored, err := repository.QueryOne(ctx, t.tx, q, args, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("insert workflow event: %w", err)
	}

	return &stored, nil
}

func (t *pgTx) Enqueue(ctx context.Context, cmd notifications.EnqueueCommand) error {
	_, err := notifications.Enqueue(ctx, t.tx, cmd)
	return err
}

func (t *pgTx) Latest(ctx context.Context, documentID uuid.UUID) (*Event, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE e.document_id = $1
		ORDER BY e.occurred_at DESC
		LIMIT 1`,
		projection.Columns(),
		projection.From(),
	)

	e, err := repository.QueryOne(ctx, t.tx, q, []any{documentID}, scanEvent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest workflow event: %w", err)
	}

	return &e, nil
}
