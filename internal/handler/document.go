package handler

import (
	"log/slog"
	"net/http"

	"sixfigure/internal/domain/services"
	"sixfigure/internal/httputil"
)

// DocumentHandler handles project document HTTP requests
type DocumentHandler struct {
	documentService services.DocumentService
	logger          *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService services.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
	}
}

// ListProjectDocuments lists a project's documents, newest first
// GET /api/projects/{id}/files
func (h *DocumentHandler) ListProjectDocuments(w http.ResponseWriter, r *http.Request) {
	clerkID := httputil.GetClerkID(r)

	projectID, err := parseResourceID(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	docs, err := h.documentService.ListProjectDocuments(r.Context(), projectID, clerkID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, docs)
}
