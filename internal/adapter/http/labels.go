package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type labelsBody struct {
	EntityID string   `json:"entityId,omitempty"`
	Labels   []string `json:"labels"`
}

func (h *Handler) handleGetLabels(w http.ResponseWriter, r *http.Request) {
	entityID := chi.URLParam(r, "entityID")
	labels, err := h.svc.Labels.LabelsFor(r.Context(), []string{entityID})
	if err != nil {
		h.logger.Error("get labels error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	names := labels[entityID]
	if names == nil {
		names = []string{}
	}
	h.writeJSON(w, http.StatusOK, labelsBody{EntityID: entityID, Labels: names})
}

// handleSetLabels replaces the labels of an entity. Blank and repeated
// names are dropped.
func (h *Handler) handleSetLabels(w http.ResponseWriter, r *http.Request) {
	var body labelsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	seen := make(map[string]bool, len(body.Labels))
	names := make([]string, 0, len(body.Labels))
	for _, l := range body.Labels {
		l = strings.TrimSpace(l)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		names = append(names, l)
	}

	if err := h.svc.Labels.SetLabels(r.Context(), chi.URLParam(r, "entityID"), names); err != nil {
		h.logger.Error("set labels error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
