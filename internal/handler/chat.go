package handler

import (
	"log/slog"
	"net/http"

	"sixfigure/internal/domain/services"
	"sixfigure/internal/httputil"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chatService services.ChatService
	logger      *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService services.ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// CreateChat creates a chat in one of the user's projects
// POST /api/chats
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	clerkID := httputil.GetClerkID(r)

	var req services.CreateChatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ClerkID = clerkID

	chat, err := h.chatService.CreateChat(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, chat)
}

// ListProjectChats lists a project's chats, newest first
// GET /api/projects/{id}/chats
func (h *ChatHandler) ListProjectChats(w http.ResponseWriter, r *http.Request) {
	clerkID := httputil.GetClerkID(r)

	projectID, err := parseResourceID(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	chats, err := h.chatService.ListProjectChats(r.Context(), projectID, clerkID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chats)
}

// DeleteChat deletes a chat
// DELETE /api/chats/{id}
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	clerkID := httputil.GetClerkID(r)

	id, err := parseResourceID(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.chatService.DeleteChat(r.Context(), id, clerkID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
