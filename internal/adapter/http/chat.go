package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/port"
)

type chatRequest struct {
	Text string `json:"text"`
}

// handleChat runs one conversation turn. A turn arriving while another one
// of the same conversation is in flight gets HTTP 409.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	reply, err := h.svc.Assistant.Handle(r.Context(), h.accountFromRequest(r), conversationID, req.Text)
	if err != nil {
		if errors.Is(err, port.ErrConversationBusy) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.logger.Error("chat error", slog.String("conversation", conversationID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, reply)
}
