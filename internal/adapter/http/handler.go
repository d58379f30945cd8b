package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spendguard/internal/core/port"
)

// Handler is the inbound admin adapter. It lets operators and the URL
// creation path drive the campaign controller over HTTP. Routes are
// registered on a chi.Router.
type Handler struct {
	ctrl   port.CampaignController
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. When gatherer is
// non-nil its metrics are served on /metrics.
func NewHandler(ctrl port.CampaignController, logger *slog.Logger, gatherer prometheus.Gatherer) *Handler {
	h := &Handler{ctrl: ctrl, logger: logger.With(slog.String("component", "http"))}
	r := chi.NewRouter()

	r.Get("/healthz", h.handleHealth)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	r.Route("/api/v1/campaigns/{id}", func(r chi.Router) {
		r.Post("/evaluate", h.handleEvaluate)
		r.Get("/state", h.handleState)
		r.Post("/urls/{urlID}", h.handleURLAdded)
		r.Delete("/monitor", h.handleTeardown)
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
