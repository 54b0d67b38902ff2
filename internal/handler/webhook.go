package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/services"
	"sixfigure/internal/httputil"
)

// WebhookHandler receives Clerk provisioning webhooks
type WebhookHandler struct {
	provisionService services.ProvisionService
	logger           *slog.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(provisionService services.ProvisionService, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		provisionService: provisionService,
		logger:           logger,
	}
}

// webhookResponse mirrors the envelope the frontend provisioning flow expects
type webhookResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	ClerkID string       `json:"clerk_id,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// HandleClerkWebhook handles a Clerk webhook delivery
// POST /api/users/webhook
func (h *WebhookHandler) HandleClerkWebhook(w http.ResponseWriter, r *http.Request) {
	var event models.ProvisioningEvent
	if err := httputil.ParseJSON(w, r, &event); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid webhook payload format")
		return
	}

	result, err := h.provisionService.HandleEvent(r.Context(), &event)
	if err != nil {
		handleError(w, err)
		return
	}

	switch result.Status {
	case models.ProvisionIgnored:
		httputil.RespondJSON(w, http.StatusOK, webhookResponse{
			Success: true,
			Message: fmt.Sprintf("Event type '%s' ignored", event.Type),
		})
	case models.ProvisionAlreadyExists:
		httputil.RespondJSON(w, http.StatusOK, webhookResponse{
			Success: true,
			Message: "User already exists",
			ClerkID: result.ClerkID,
		})
	default:
		httputil.RespondJSON(w, http.StatusOK, webhookResponse{
			Success: true,
			Message: "User created successfully",
			ClerkID: result.ClerkID,
			User:    result.User,
		})
	}
}
