package documents_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/audit"
	"github.com/JaimeStill/docket/internal/documents"
	"github.com/JaimeStill/docket/internal/users"
	"github.com/JaimeStill/docket/pkg/pagination"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUsers serves Find from a fixed set, optionally failing every
// lookup with an injected error; the remaining System methods are
// unused by Create.
type fakeUsers struct {
	set     map[uuid.UUID]users.User
	findErr error
}

func newFakeUsers(set ...users.User) *fakeUsers {
	f := &fakeUsers{set: make(map[uuid.UUID]users.User)}
	for _, u := range set {
		f.set[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Handler() *users.Handler { return nil }

func (f *fakeUsers) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters users.Filters,
) (*pagination.PageResult[users.User], error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUsers) Find(ctx context.Context, id uuid.UUID) (*users.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.set[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) Create(ctx context.Context, cmd users.CreateCommand) (*users.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUsers) SetRole(ctx context.Context, id uuid.UUID, role users.Role) (*users.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUsers) SetActive(ctx context.Context, id uuid.UUID, active bool) (*users.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUsers) Approvers(ctx context.Context) ([]users.User, error) {
	return nil, errors.New("not implemented")
}

// recordingAudit captures entries so tests can assert on trail writes.
type recordingAudit struct {
	entries []audit.Entry
}

func (a *recordingAudit) Handler() *audit.Handler { return nil }

func (a *recordingAudit) Record(ctx context.Context, e audit.Entry) (*audit.Record, error) {
	a.entries = append(a.entries, e)
	return &audit.Record{ActorID: e.ActorID, Action: e.Action}, nil
}

func (a *recordingAudit) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters audit.Filters,
) (*pagination.PageResult[audit.Record], error) {
	return nil, errors.New("not implemented")
}

func newRegistry(fu *fakeUsers) (documents.System, *recordingAudit) {
	rec := &recordingAudit{}
	sys := documents.New(nil, fu, nil, audit.NewTrail(rec, discard()), discard(), pagination.Config{})
	return sys, rec
}

func TestCreateRejectsEmptyName(t *testing.T) {
	sys, _ := newRegistry(newFakeUsers())

	_, err := sys.Create(context.Background(), documents.CreateCommand{
		OwnerID: uuid.New(),
	})
	if !errors.Is(err, documents.ErrInvalidName) {
		t.Fatalf("Create() error = %v, want ErrInvalidName", err)
	}
}

func TestCreateUnknownOwner(t *testing.T) {
	sys, rec := newRegistry(newFakeUsers())

	_, err := sys.Create(context.Background(), documents.CreateCommand{
		Name:    "Q3 Budget",
		OwnerID: uuid.New(),
	})
	if !errors.Is(err, documents.ErrInvalidOwner) {
		t.Fatalf("Create() error = %v, want ErrInvalidOwner", err)
	}
	if len(rec.entries) != 0 {
		t.Errorf("audit entries = %d, want none", len(rec.entries))
	}
}

func TestCreateInactiveOwner(t *testing.T) {
	owner := users.User{
		ID:          uuid.New(),
		Email:       "former@docket.dev",
		DisplayName: "Former Requester",
		Role:        users.RoleRequester,
		Active:      false,
	}
	sys, _ := newRegistry(newFakeUsers(owner))

	_, err := sys.Create(context.Background(), documents.CreateCommand{
		Name:    "Q3 Budget",
		OwnerID: owner.ID,
	})
	if !errors.Is(err, documents.ErrInvalidOwner) {
		t.Fatalf("Create() error = %v, want ErrInvalidOwner", err)
	}
}

func TestCreateOwnerLookupFailurePropagates(t *testing.T) {
	lookupErr := errors.New("connection reset")
	fu := newFakeUsers()
	fu.findErr = lookupErr
	sys, _ := newRegistry(fu)

	_, err := sys.Create(context.Background(), documents.CreateCommand{
		Name:    "Q3 Budget",
		OwnerID: uuid.New(),
	})
	if errors.Is(err, documents.ErrInvalidOwner) {
		t.Fatalf("Create() error = %v, want the lookup failure, not ErrInvalidOwner", err)
	}
	if !errors.Is(err, lookupErr) {
		t.Fatalf("Create() error = %v, want wrapped %v", err, lookupErr)
	}
}
