package notifications_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/notifications"
	"github.com/JaimeStill/docket/pkg/pagination"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeQueue implements the queue contract over a fixed set: MarkSent
// stamps sent_at once and returns the row unchanged on repeat calls.
type fakeQueue struct {
	byID map[uuid.UUID]notifications.Notification
}

func newFakeQueue(set ...notifications.Notification) *fakeQueue {
	f := &fakeQueue{byID: make(map[uuid.UUID]notifications.Notification)}
	for _, n := range set {
		f.byID[n.ID] = n
	}
	return f
}

func (f *fakeQueue) Handler() *notifications.Handler { return nil }

func (f *fakeQueue) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters notifications.Filters,
) (*pagination.PageResult[notifications.Notification], error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQueue) Find(ctx context.Context, id uuid.UUID) (*notifications.Notification, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, notifications.ErrNotFound
	}
	return &n, nil
}

func (f *fakeQueue) Pending(ctx context.Context, limit int) ([]notifications.Notification, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQueue) MarkRead(ctx context.Context, id uuid.UUID) (*notifications.Notification, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQueue) MarkSent(ctx context.Context, id uuid.UUID) (*notifications.Notification, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, notifications.ErrNotFound
	}
	if n.SentAt == nil {
		now := time.Now().UTC()
		n.SentAt = &now
		f.byID[id] = n
	}
	return &n, nil
}

func markSent(t *testing.T, h *notifications.Handler, id string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("PUT", "/notifications/"+id+"/sent", nil)
	req.SetPathValue("id", id)

	rec := httptest.NewRecorder()
	h.MarkSent(rec, req)
	return rec
}

func TestMarkSentIdempotent(t *testing.T) {
	n := notifications.Notification{
		ID:          uuid.New(),
		RecipientID: uuid.New(),
		Type:        notifications.TypeApprovalRequest,
		Subject:     "Review requested: Q3 Budget",
		CreatedAt:   time.Now().UTC(),
	}
	h := notifications.NewHandler(newFakeQueue(n), discard(), pagination.Config{})

	first := markSent(t, h, n.ID.String())
	if first.Code != 200 {
		t.Fatalf("first mark-sent status = %d, want 200", first.Code)
	}
	var sent notifications.Notification
	if err := json.NewDecoder(first.Body).Decode(&sent); err != nil {
		t.Fatalf("decode first response: %v", err)
	}
	if sent.SentAt == nil {
		t.Fatal("first mark-sent left sent_at unset")
	}

	second := markSent(t, h, n.ID.String())
	if second.Code != 200 {
		t.Fatalf("repeat mark-sent status = %d, want 200", second.Code)
	}
	var repeat notifications.Notification
	if err := json.NewDecoder(second.Body).Decode(&repeat); err != nil {
		t.Fatalf("decode repeat response: %v", err)
	}
	if repeat.SentAt == nil || !repeat.SentAt.Equal(*sent.SentAt) {
		t.Errorf("repeat sent_at = %v, want original %v", repeat.SentAt, sent.SentAt)
	}
}

func TestMarkSentUnknown(t *testing.T) {
	h := notifications.NewHandler(newFakeQueue(), discard(), pagination.Config{})

	rec := markSent(t, h, uuid.NewString())
	if rec.Code != 404 {
		t.Errorf("mark-sent status = %d, want 404", rec.Code)
	}
}

func TestMarkSentInvalidID(t *testing.T) {
	h := notifications.NewHandler(newFakeQueue(), discard(), pagination.Config{})

	rec := markSent(t, h, "not-a-uuid")
	if rec.Code != 400 {
		t.Errorf("mark-sent status = %d, want 400", rec.Code)
	}
}
