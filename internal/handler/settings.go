package handler

import (
	"log/slog"
	"net/http"

	"sixfigure/internal/domain/services"
	"sixfigure/internal/httputil"
)

// SettingsHandler handles project settings HTTP requests
type SettingsHandler struct {
	settingsService services.SettingsService
	logger          *slog.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService services.SettingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings retrieves a project's settings
// GET /api/projects/{id}/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	clerkID := httputil.GetClerkID(r)

	projectID, err := parseResourceID(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := h.settingsService.GetSettings(r.Context(), projectID, clerkID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, settings)
}

// UpdateSettings replaces a project's settings in full
// PUT /api/projects/{id}/settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	clerkID := httputil.GetClerkID(r)

	projectID, err := parseResourceID(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req services.UpdateSettingsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(r.Context(), projectID, clerkID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, settings)
}
