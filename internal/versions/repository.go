package versions

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/audit"
	"github.com/JaimeStill/docket/internal/documents"
	"github.com/JaimeStill/docket/internal/notifications"
	"github.com/JaimeStill/docket/pkg/storage"
)

type repo struct {
	store     Store
	documents documents.System
	storage   storage.System
	trail     *audit.Trail
	logger    *slog.Logger
}

// New creates a version ledger implementing the System interface.
func New(
	store Store,
	docs documents.System,
	blob storage.System,
	trail *audit.Trail,
	logger *slog.Logger,
) System {
	return &repo{
		store:     store,
		documents: docs,
		storage:   blob,
		trail:     trail,
		logger:    logger.With("system", "versions"),
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, maxUploadSize)
}

func (r *repo) List(ctx context.Context, documentID uuid.UUID) ([]Version, error) {
	if _, err := r.documents.Find(ctx, documentID); err != nil {
		return nil, err
	}

	return r.store.Versions(ctx, documentID)
}

func (r *repo) Find(ctx context.Context, documentID uuid.UUID, sequence int) (*Version, error) {
	return r.store.Version(ctx, documentID, sequence)
}

// Add appends the next version inside one transaction guarded by the
// document's row version. The blob is uploaded first; if the transaction
// fails, a compensating delete removes it so no unreferenced metadata or
// dangling reference survives.
func (r *repo) Add(ctx context.Context, cmd AddCommand) (*Version, error) {
	if len(cmd.Data) == 0 {
		return nil, ErrEmptyFile
	}

	doc, err := r.documents.Find(ctx, cmd.DocumentID)
	if err != nil {
		return nil, err
	}

	sequence := doc.CurrentVersion + 1
	key := buildStorageKey(doc.ID, sequence, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload version blob: %w", err)
	}

	reopened := doc.Status.Terminal()
	status := doc.Status
	if reopened {
		status = documents.StatusPending
	}

	var v *Version
	err = r.store.InTx(ctx, func(tx Tx) error {
		v, err = tx.Insert(ctx, Version{
			DocumentID: cmd.DocumentID,
			Filename:   cmd.Filename,
			StorageKey: key,
			Sequence:   sequence,
			PageCount:  cmd.PageCount,
			Comment:    cmd.Comment,
		})
		if err != nil {
			return err
		}

		if err := tx.Advance(ctx, doc.ID, sequence, status, doc.RowVersion); err != nil {
			return err
		}

		if reopened {
			return tx.Enqueue(ctx, notifications.EnqueueCommand{
				RecipientID: doc.OwnerID,
				DocumentID:  &doc.ID,
				Type:        notifications.TypeNewVersion,
				Subject:     fmt.Sprintf("New version of %q", doc.Name),
				Body: fmt.Sprintf(
					"Version %d was added to %q; the document returned to pending and requires a new review.",
					sequence, doc.Name,
				),
			})
		}

		return nil
	})
	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, err
	}

	r.trail.Append(ctx, audit.Entry{
		ActorID:    cmd.ActorID,
		Action:     audit.ActionVersionAdded,
		Details:    fmt.Sprintf("%s v%d: %s", doc.Name, sequence, cmd.Comment),
		DocumentID: &doc.ID,
		Origin:     cmd.Origin,
	})

	r.logger.Info(
		"version added",
		"document", doc.ID,
		"sequence", sequence,
		"reopened", reopened,
	)
	return v, nil
}

func (r *repo) Download(ctx context.Context, documentID uuid.UUID, sequence int) (*Version, io.ReadCloser, error) {
	if sequence == 0 {
		doc, err := r.documents.Find(ctx, documentID)
		if err != nil {
			return nil, nil, err
		}
		if doc.CurrentVersion == 0 {
			return nil, nil, ErrNotFound
		}
		sequence = doc.CurrentVersion
	}

	v, err := r.Find(ctx, documentID, sequence)
	if err != nil {
		return nil, nil, err
	}

	reader, err := r.storage.Download(ctx, v.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download version blob: %w", err)
	}

	return v, reader, nil
}

func buildStorageKey(documentID uuid.UUID, sequence int, filename string) string {
	return fmt.Sprintf("documents/%s/v%d/%s", documentID, sequence, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "document"
	}
	return url.PathEscape(name)
}
