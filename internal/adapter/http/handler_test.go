package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port/mocks"
)

func newTestHandler(t *testing.T, gatherer prometheus.Gatherer) (*mocks.MockCampaignController, http.Handler) {
	t.Helper()
	ctrl := mocks.NewMockCampaignController(t)
	h := NewHandler(ctrl, slog.New(slog.NewTextHandler(io.Discard, nil)), gatherer)
	return ctrl, h.Router()
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestEvaluate(t *testing.T) {
	ctrl, h := newTestHandler(t, nil)
	ctrl.EXPECT().Evaluate(mock.Anything, int64(7)).Return(domain.StateHighSpendWaiting, nil).Once()

	rec := serve(h, http.MethodPost, "/api/v1/campaigns/7/evaluate")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body stateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(7), body.CampaignID)
	assert.Equal(t, domain.StateHighSpendWaiting, body.State)
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unknown campaign", domain.ErrCampaignNotFound, http.StatusNotFound},
		{"adapter failure", fmt.Errorf("pause r1: %w", domain.ErrTransientIO), http.StatusBadGateway},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, h := newTestHandler(t, nil)
			ctrl.EXPECT().Evaluate(mock.Anything, int64(3)).Return(domain.StateLowSpend, tc.err).Once()

			rec := serve(h, http.MethodPost, "/api/v1/campaigns/3/evaluate")
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestInvalidID(t *testing.T) {
	_, h := newTestHandler(t, nil)

	for _, tc := range []struct{ method, target string }{
		{http.MethodPost, "/api/v1/campaigns/abc/evaluate"},
		{http.MethodPost, "/api/v1/campaigns/0/evaluate"},
		{http.MethodGet, "/api/v1/campaigns/-4/state"},
		{http.MethodDelete, "/api/v1/campaigns/x/monitor"},
	} {
		rec := serve(h, tc.method, tc.target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.target)
	}
}

func TestState(t *testing.T) {
	ctrl, h := newTestHandler(t, nil)
	ctrl.EXPECT().State(mock.Anything, int64(1)).Return(domain.StateHighSpend, nil).Once()
	ctrl.EXPECT().State(mock.Anything, int64(2)).Return(domain.StateUnknown, domain.ErrCampaignNotFound).Once()

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/1/state")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"campaign_id":1,"state":"high_spend"}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/v1/campaigns/2/state")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestURLAdded(t *testing.T) {
	ctrl, h := newTestHandler(t, nil)
	ctrl.EXPECT().NotifyURLAdded(mock.Anything, int64(1), int64(10)).Return(nil).Once()
	ctrl.EXPECT().NotifyURLAdded(mock.Anything, int64(1), int64(11)).Return(domain.ErrURLNotFound).Once()

	rec := serve(h, http.MethodPost, "/api/v1/campaigns/1/urls/10")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = serve(h, http.MethodPost, "/api/v1/campaigns/1/urls/11")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodPost, "/api/v1/campaigns/1/urls/x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeardown(t *testing.T) {
	ctrl, h := newTestHandler(t, nil)
	ctrl.EXPECT().Teardown(int64(5)).Return().Once()

	rec := serve(h, http.MethodDelete, "/api/v1/campaigns/5/monitor")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "spendguard_test_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	_, h := newTestHandler(t, registry)

	rec := serve(h, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "spendguard_test_total 1")

	_, noMetrics := newTestHandler(t, nil)
	rec = serve(noMetrics, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
