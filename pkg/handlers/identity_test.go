package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/pkg/handlers"
)

func TestActingUser(t *testing.T) {
	t.Run("valid header", func(t *testing.T) {
		id := uuid.New()
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-User-Id", id.String())

		got, err := handlers.ActingUser(r)
		if err != nil {
			t.Fatalf("ActingUser() error = %v", err)
		}
		if got != id {
			t.Errorf("ActingUser() = %s, want %s", got, id)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		if _, err := handlers.ActingUser(r); err == nil {
			t.Error("ActingUser() error = nil, want parse error")
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-User-Id", "not-a-uuid")
		if _, err := handlers.ActingUser(r); err == nil {
			t.Error("ActingUser() error = nil, want parse error")
		}
	})
}

func TestClientOrigin(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		want   string
	}{
		{"host and port", "192.168.1.10:54321", "192.168.1.10"},
		{"no port passthrough", "192.168.1.10", "192.168.1.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote

			if got := handlers.ClientOrigin(r); got != tt.want {
				t.Errorf("ClientOrigin() = %q, want %q", got, tt.want)
			}
		})
	}
}
