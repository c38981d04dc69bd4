package documents_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/internal/documents"
)

func TestStatusValid(t *testing.T) {
	valid := []documents.Status{
		documents.StatusPending,
		documents.StatusUnderReview,
		documents.StatusApproved,
		documents.StatusRejected,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false, want true", s)
		}
	}

	if documents.Status("Archived").Valid() {
		t.Error(`Status("Archived").Valid() = true, want false`)
	}
	if documents.Status("").Valid() {
		t.Error(`Status("").Valid() = true, want false`)
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status documents.Status
		want   bool
	}{
		{documents.StatusPending, false},
		{documents.StatusUnderReview, false},
		{documents.StatusApproved, true},
		{documents.StatusRejected, true},
	}

	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	all := []documents.Status{
		documents.StatusPending,
		documents.StatusUnderReview,
		documents.StatusApproved,
		documents.StatusRejected,
	}

	allowed := map[[2]documents.Status]bool{
		{documents.StatusPending, documents.StatusUnderReview}:     true,
		{documents.StatusRejected, documents.StatusUnderReview}:    true,
		{documents.StatusUnderReview, documents.StatusApproved}:    true,
		{documents.StatusUnderReview, documents.StatusRejected}:    true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]documents.Status{from, to}]
			if got := documents.CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", documents.ErrNotFound, http.StatusNotFound},
		{"duplicate", documents.ErrDuplicate, http.StatusConflict},
		{"conflict", documents.ErrConflict, http.StatusConflict},
		{"invalid owner", documents.ErrInvalidOwner, http.StatusUnprocessableEntity},
		{"invalid name", documents.ErrInvalidName, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped conflict", fmt.Errorf("update failed: %w", documents.ErrConflict), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := documents.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("all params present", func(t *testing.T) {
		owner := uuid.New()
		values := url.Values{
			"status":   {"Pending"},
			"name":     {"budget"},
			"owner_id": {owner.String()},
		}

		f := documents.FiltersFromQuery(values)

		if f.Status == nil || *f.Status != "Pending" {
			t.Errorf("Status = %v, want Pending", f.Status)
		}
		if f.Name == nil || *f.Name != "budget" {
			t.Errorf("Name = %v, want budget", f.Name)
		}
		if f.OwnerID == nil || *f.OwnerID != owner {
			t.Errorf("OwnerID = %v, want %s", f.OwnerID, owner)
		}
	})

	t.Run("empty params yield nil fields", func(t *testing.T) {
		f := documents.FiltersFromQuery(url.Values{})

		if f.Status != nil || f.Name != nil || f.OwnerID != nil {
			t.Errorf("Filters = %+v, want all nil", f)
		}
	})

	t.Run("malformed owner id ignored", func(t *testing.T) {
		f := documents.FiltersFromQuery(url.Values{"owner_id": {"not-a-uuid"}})
		if f.OwnerID != nil {
			t.Errorf("OwnerID = %v, want nil", f.OwnerID)
		}
	})
}
