package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"spendguard/internal/core/domain"
)

type stateResponse struct {
	CampaignID int64        `json:"campaign_id"`
	State      domain.State `json:"state"`
}

// handleEvaluate runs one controller tick for the campaign and returns the
// resulting state. Adapter failures leave the state unchanged and are
// reported as 502 with the state that was kept.
func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	state, err := h.ctrl.Evaluate(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		http.NotFound(w, r)
		return
	case errors.Is(err, domain.ErrTransientIO):
		h.logger.Warn("evaluate error", slog.Int64("campaign_id", id), slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, stateResponse{CampaignID: id, State: state})
		return
	case err != nil:
		h.logger.Error("evaluate error", slog.Int64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, stateResponse{CampaignID: id, State: state})
}

// handleState returns the persisted lifecycle state. Unknown campaigns
// produce HTTP 404.
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	state, err := h.ctrl.State(r.Context(), id)
	if errors.Is(err, domain.ErrCampaignNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("state error", slog.Int64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, stateResponse{CampaignID: id, State: state})
}

// handleURLAdded registers a newly created URL with the controller. A late
// URL is queued for the next batch, so the response is 202 either way.
func (h *Handler) handleURLAdded(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	urlID, ok := pathID(w, r, "urlID")
	if !ok {
		return
	}
	err := h.ctrl.NotifyURLAdded(r.Context(), id, urlID)
	if errors.Is(err, domain.ErrCampaignNotFound) || errors.Is(err, domain.ErrURLNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("url added error",
			slog.Int64("campaign_id", id),
			slog.Int64("url_id", urlID),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// handleTeardown cancels the campaign's monitor and drops its pending batch.
func (h *Handler) handleTeardown(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.ctrl.Teardown(id)
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a positive int64 path parameter, writing 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
