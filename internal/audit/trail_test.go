package audit_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/audit"
	"github.com/JaimeStill/docket/pkg/pagination"
)

type stubSystem struct {
	entries []audit.Entry
	err     error
}

func (s *stubSystem) Handler() *audit.Handler { return nil }

func (s *stubSystem) Record(ctx context.Context, e audit.Entry) (*audit.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.entries = append(s.entries, e)
	return &audit.Record{ActorID: e.ActorID, Action: e.Action}, nil
}

func (s *stubSystem) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters audit.Filters,
) (*pagination.PageResult[audit.Record], error) {
	return nil, errors.New("not implemented")
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrailAppend(t *testing.T) {
	stub := &stubSystem{}
	trail := audit.NewTrail(stub, discard())

	trail.Append(context.Background(), audit.Entry{
		ActorID: uuid.New(),
		Action:  audit.ActionDocumentCreated,
	})

	if len(stub.entries) != 1 {
		t.Fatalf("recorded entries = %d, want 1", len(stub.entries))
	}
	if trail.Failures() != 0 {
		t.Errorf("Failures() = %d, want 0", trail.Failures())
	}
}

func TestTrailAppendSwallowsFailures(t *testing.T) {
	stub := &stubSystem{err: errors.New("connection refused")}
	trail := audit.NewTrail(stub, discard())

	for range 3 {
		trail.Append(context.Background(), audit.Entry{
			ActorID: uuid.New(),
			Action:  audit.ActionApproved,
		})
	}

	if trail.Failures() != 3 {
		t.Errorf("Failures() = %d, want 3", trail.Failures())
	}
}

func TestFiltersFromQuery(t *testing.T) {
	actor := uuid.New()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	values := url.Values{
		"actor_id": {actor.String()},
		"action":   {"approved"},
		"from":     {from.Format(time.RFC3339)},
		"to":       {"not-a-timestamp"},
	}

	f := audit.FiltersFromQuery(values)

	if f.ActorID == nil || *f.ActorID != actor {
		t.Errorf("ActorID = %v, want %s", f.ActorID, actor)
	}
	if f.Action == nil || *f.Action != "approved" {
		t.Errorf("Action = %v, want approved", f.Action)
	}
	if f.From == nil || !f.From.Equal(from) {
		t.Errorf("From = %v, want %v", f.From, from)
	}
	if f.To != nil {
		t.Errorf("To = %v, want nil for malformed input", f.To)
	}
	if f.DocumentID != nil {
		t.Errorf("DocumentID = %v, want nil", f.DocumentID)
	}
}
