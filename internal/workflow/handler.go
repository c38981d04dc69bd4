package workflow

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/docket/pkg/handlers"
	"github.com/JaimeStill/docket/pkg/routes"
)

// Handler provides HTTP endpoints for approval workflow operations.
// The acting user comes from the X-User-Id header.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "workflow"),
	}
}

// Routes returns the route group definition for workflow endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/workflow",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}/history", Handler: h.History},
			{Method: "POST", Pattern: "/{id}/submit", Handler: h.Submit},
			{Method: "POST", Pattern: "/{id}/approve", Handler: h.Approve},
			{Method: "POST", Pattern: "/{id}/reject", Handler: h.Reject},
		},
	}
}

type submitRequest struct {
	Priority Priority `json:"priority"`
}

type decisionRequest struct {
	Comment string `json:"comment"`
}

// Submit moves a document into review.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req submitRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
	}

	event, err := h.sys.Submit(r.Context(), SubmitCommand{
		DocumentID:  id,
		RequesterID: actor,
		Priority:    req.Priority,
		Origin:      handlers.ClientOrigin(r),
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, event)
}

// Approve records an approval decision.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.sys.Approve)
}

// Reject records a rejection decision.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.sys.Reject)
}

// History returns the document's workflow events oldest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	events, err := h.sys.History(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, events)
}

func (h *Handler) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, cmd DecisionCommand) (*Event, error),
) {
	id, actor, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req decisionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
	}

	event, err := fn(r.Context(), DecisionCommand{
		DocumentID: id,
		ApproverID: actor,
		Comment:    req.Comment,
		Origin:     handlers.ClientOrigin(r),
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, event)
}

func (h *Handler) identify(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, uuid.Nil, false
	}

	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, uuid.Nil, false
	}

	return id, actor, true
}
