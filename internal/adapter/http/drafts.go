package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type idResponse struct {
	ID string `json:"id"`
}

type publishRequest struct {
	Selected []string `json:"selected"`
}

type publishResponse struct {
	RunID string `json:"runId"`
}

func (h *Handler) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	var tree domain.DraftTree
	if err := json.NewDecoder(r.Body).Decode(&tree); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if tree.Campaign.Name == "" {
		http.Error(w, "campaign name is required", http.StatusBadRequest)
		return
	}

	id, err := h.svc.Drafts.CreateDraft(r.Context(), h.accountFromRequest(r).UserID, tree)
	if err != nil {
		h.logger.Error("create draft error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	tree, err := h.svc.Drafts.GetDraft(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storageError(w, r, "get draft", err)
		return
	}
	h.writeJSON(w, http.StatusOK, tree)
}

// handlePublish starts a background publish run. An empty or missing body
// publishes every node of the draft.
func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	runID, err := h.svc.Publisher.Start(r.Context(), h.accountFromRequest(r), chi.URLParam(r, "id"), req.Selected)
	if err != nil {
		h.storageError(w, r, "start publish", err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, publishResponse{RunID: runID})
}

func (h *Handler) handleRunProgress(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Publisher.Progress(chi.URLParam(r, "runID"))
	if err != nil {
		h.storageError(w, r, "run progress", err)
		return
	}
	h.writeJSON(w, http.StatusOK, status)
}

// handleRunStop asks a run to stop before its next item. The item in flight
// still completes.
func (h *Handler) handleRunStop(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Publisher.Stop(chi.URLParam(r, "runID")); err != nil {
		h.storageError(w, r, "stop run", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// storageError maps lookup failures to 404 and everything else to 500.
func (h *Handler) storageError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, port.ErrDraftNotFound) || errors.Is(err, port.ErrRunNotFound) {
		http.NotFound(w, r)
		return
	}
	h.logger.Error(op+" error", slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
