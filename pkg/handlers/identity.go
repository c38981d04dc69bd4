package handlers

import (
	"net"
	"net/http"

	"github.com/google/uuid"
)

// ActingUser extracts the acting user id from the X-User-Id header.
// Identity is asserted by the fronting auth layer; the service only
// attributes actions to it.
func ActingUser(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.Header.Get("X-User-Id"))
}

// ClientOrigin returns the remote address without the port for audit records.
func ClientOrigin(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
