package versions

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/JaimeStill/docket/pkg/formatting"
	"github.com/JaimeStill/docket/pkg/handlers"
	"github.com/JaimeStill/docket/pkg/routes"
)

// Handler provides HTTP endpoints for version ledger operations,
// mounted under the document routes.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, and upload size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "versions"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for version endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/documents",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}/versions", Handler: h.List},
			{Method: "GET", Pattern: "/{id}/versions/{sequence}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/versions/{sequence}/download", Handler: h.Download},
			{Method: "GET", Pattern: "/{id}/download", Handler: h.DownloadCurrent},
			{Method: "POST", Pattern: "/{id}/versions", Handler: h.Add},
		},
	}
}

// List returns all versions of a document ordered by sequence.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	found, err := h.sys.List(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, found)
}

// Find returns a single version by document id and sequence number.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, sequence, err := pathParams(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	v, err := h.sys.Find(r.Context(), id, sequence)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, v)
}

// Add processes a multipart form upload appending a new version.
// The acting user comes from the X-User-Id header; PDF page counts are
// extracted automatically using pdfcpu.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		limit := fmt.Errorf("%w: limit %s", ErrFileTooLarge, formatting.FormatBytes(h.maxUploadSize, 0))
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, limit)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	contentType := detectContentType(header.Header.Get("Content-Type"), data)

	cmd := AddCommand{
		DocumentID:  id,
		Data:        data,
		Filename:    header.Filename,
		ContentType: contentType,
		Comment:     r.FormValue("comment"),
		PageCount:   extractPDFPageCount(h.logger, data, contentType),
		ActorID:     actor,
		Origin:      handlers.ClientOrigin(r),
	}

	v, err := h.sys.Add(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, v)
}

// Download streams the bytes of a specific version.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, sequence, err := pathParams(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	h.stream(w, r, id, sequence)
}

// DownloadCurrent streams the bytes of the document's current version.
func (h *Handler) DownloadCurrent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	h.stream(w, r, id, 0)
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request, id uuid.UUID, sequence int) {
	v, reader, err := h.sys.Download(r.Context(), id, sequence)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", v.Filename),
	)

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("version download interrupted", "document", id, "sequence", v.Sequence, "error", err)
	}
}

func pathParams(r *http.Request) (uuid.UUID, int, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, 0, err
	}

	sequence, err := strconv.Atoi(r.PathValue("sequence"))
	if err != nil || sequence < 1 {
		return uuid.Nil, 0, ErrNotFound
	}

	return id, sequence, nil
}

func detectContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return http.DetectContentType(data)
}

func extractPDFPageCount(logger *slog.Logger, data []byte, contentType string) *int {
	if contentType != "application/pdf" {
		return nil
	}

	count, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		logger.Warn("failed to extract PDF page count", "error", err)
		return nil
	}

	return &count
}
