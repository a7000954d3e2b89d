package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// Services are the inbound and storage ports the HTTP adapter exposes.
type Services struct {
	Assistant port.Assistant
	Publisher port.Publisher
	Drafts    port.DraftRepository
	Labels    port.LabelStore
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router.
type Handler struct {
	svc      Services
	defaults domain.Account
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. defaults fills
// the account fields a request does not send. A nil m disables the metrics
// middleware and the /metrics route.
func NewHandler(svc Services, defaults domain.Account, allowedOrigins []string, m *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, defaults: defaults, logger: logger}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", headerToken, headerAdAccount, headerPageID, headerUserID},
		MaxAge:         300,
	}))
	r.Use(m.Middleware)

	r.Get("/healthz", h.handleHealth)
	if m != nil {
		r.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat/{conversationID}", h.handleChat)

		r.Post("/drafts", h.handleCreateDraft)
		r.Get("/drafts/{id}", h.handleGetDraft)
		r.Post("/drafts/{id}/publish", h.handlePublish)

		r.Get("/runs/{runID}", h.handleRunProgress)
		r.Delete("/runs/{runID}", h.handleRunStop)

		r.Get("/labels/{entityID}", h.handleGetLabels)
		r.Put("/labels/{entityID}", h.handleSetLabels)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// writeJSON encodes v with the given status. Encoding failures are only
// logged since the header is already sent.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
