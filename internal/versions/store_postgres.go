package versions

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

// NewStore creates the PostgreSQL-backed version store.
func NewStore(db *sql.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) InTx(ctx context.Context, fn func(tx Tx) error) error {
	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, fn(&pgTx{tx: tx})
	})
	return err
}

func (s *pgStore) Versions(ctx context.Context, documentID uuid.UUID) ([]Version, error) {
	q, args := query.
		NewBuilder(projection, bySequence).
		WhereEquals("DocumentID", documentID).
		Build()

	found, err := repository.QueryMany(ctx, s.db, q, args, scanVersion)
	if err != nil {
		return nil, fmt.Errorf("query versions: %w", err)
	}

	return found, nil
}

func (s *pgStore) Version(ctx context.Context, documentID uuid.UUID, sequence int) (*Version, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("DocumentID", documentID).
		WhereEquals("Sequence", sequence).
		BuildSingleOrNull()

	v, err := repository.QueryOne(ctx, s.db, q, args, scanVersion)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, documents.ErrConflict)
	}
	return &v, nil
}

type pgTx struct {
	tx *sql.Tx
}

// Insert relies on the (document_id, sequence) unique index to turn a
// concurrent append racing the same sequence into a conflict.
func (t *pgTx) Insert(ctx context.Context, v Version) (*Version, error) {
	q := `
		INSERT INTO versions(document_id, filename, storage_key, sequence, page_count, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, document_id, filename, storage_key, sequence, page_count, comment, created_at`

	args := []any{v.DocumentID, v.Filename, v.StorageKey, v.Sequence, v.PageCount, v.Comment}

	stored, err := repository.QueryOne(ctx, t.tx, q, args, scanVersion)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, documents.ErrConflict)
	}

	return &stored, nil
}

func (t *pgTx) Advance(ctx context.Context, id uuid.UUID, sequence int, status documents.Status, rowVersion int) error {
	q := `
		UPDATE documents
		SET current_version = $2, status = $3, modified_at = now(), row_version = row_version + 1
		WHERE id = $1 AND row_version = $4`

	if err := repository.ExecExpectOne(ctx, t.tx, q, id, sequence, status, rowVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return documents.ErrConflict
		}
		return fmt.Errorf("advance document version: %w", err)
	}

	return nil
}

func (t *pgTx) Enqueue(ctx context.Context, cmd notifications.EnqueueCommand) error {
	_, err := notifications.Enqueue(ctx, t.tx, cmd)
	return err
}
