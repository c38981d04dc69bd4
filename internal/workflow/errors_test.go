package workflow_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/docket/internal/documents"
	"github.com/JaimeStill/docket/internal/users"
	"github.com/JaimeStill/docket/internal/workflow"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid transition", workflow.ErrInvalidTransition, http.StatusConflict},
		{"unauthorized approver", workflow.ErrUnauthorizedApprover, http.StatusForbidden},
		{"new version required", workflow.ErrNewVersionRequired, http.StatusConflict},
		{"no approvers", workflow.ErrNoApprovers, http.StatusUnprocessableEntity},
		{"invalid priority", workflow.ErrInvalidPriority, http.StatusBadRequest},
		{"unknown user", users.ErrNotFound, http.StatusNotFound},
		{"unknown document", documents.ErrNotFound, http.StatusNotFound},
		{"concurrent modification", documents.ErrConflict, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped transition", fmt.Errorf("submit: %w", workflow.ErrInvalidTransition), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := workflow.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestPriorityValid(t *testing.T) {
	for _, p := range []workflow.Priority{
		workflow.PriorityLow,
		workflow.PriorityNormal,
		workflow.PriorityHigh,
	} {
		if !p.Valid() {
			t.Errorf("%s.Valid() = false, want true", p)
		}
	}

	if workflow.Priority("Critical").Valid() {
		t.Error(`Priority("Critical").Valid() = true, want false`)
	}
}
