package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
	"github.com/bokzor/revenue-boost-sub004/internal/core/port"
)

// stubUseCase is a canned port.FrequencyUseCase for handler tests.
type stubUseCase struct {
	recordResult domain.RecordResult
	decision     domain.DisplayDecision
	stats        port.StatsResp

	lastReq port.DisplayReq
}

func (s *stubUseCase) Decide(ctx context.Context, req port.DisplayReq) (domain.DisplayDecision, error) {
	if err := req.Validate(); err != nil {
		return domain.DisplayDecision{}, err
	}
	s.lastReq = req
	return s.decision, nil
}

func (s *stubUseCase) RecordDisplay(ctx context.Context, req port.DisplayReq) (domain.RecordResult, error) {
	if err := req.Validate(); err != nil {
		return domain.RecordResult{}, err
	}
	s.lastReq = req
	return s.recordResult, nil
}

func (s *stubUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return &s.stats, nil
}

func newTestHandler(svc port.FrequencyUseCase, limiter *IPRateLimiter) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger, limiter)
}

func TestHandleRecordDisplay_Accepted(t *testing.T) {
	svc := &stubUseCase{recordResult: domain.RecordResult{Status: domain.RecordAccepted}}
	h := newTestHandler(svc, nil)

	body := `{"trackingKey":"campaign-1","storeId":"store-1","visitorId":"visitor-12345678","sessionId":"s1","pageUrl":"https://shop.example.com/"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/display/record", strings.NewReader(body))
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()

	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	var resp recordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "recorded", resp.Status)
	assert.Empty(t, resp.Reason)

	assert.Equal(t, "203.0.113.7", svc.lastReq.Context.IPAddress, "first X-Forwarded-For entry wins")
	assert.Equal(t, "Mozilla/5.0", svc.lastReq.Context.UserAgent)
}

func TestHandleRecordDisplay_Rejected(t *testing.T) {
	svc := &stubUseCase{recordResult: domain.RecordResult{
		Status: domain.RecordRejected,
		Reason: domain.DenialCooldownActive,
	}}
	h := newTestHandler(svc, nil)

	body := `{"trackingKey":"campaign-1","storeId":"store-1","visitorId":"visitor-12345678","sessionId":"s1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/display/record", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Router().ServeHTTP(rec, req)

	// a denied display is still a successful API call
	assert.Equal(t, http.StatusAccepted, rec.Code)
	var resp recordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rejected", resp.Status)
	assert.Equal(t, "COOLDOWN_ACTIVE", resp.Reason)
}

func TestHandleRecordDisplay_MissingIdentifiers(t *testing.T) {
	h := newTestHandler(&stubUseCase{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/display/record",
		strings.NewReader(`{"storeId":"store-1","visitorId":"visitor-12345678"}`))
	rec := httptest.NewRecorder()

	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRecordDisplay_InvalidJSON(t *testing.T) {
	h := newTestHandler(&stubUseCase{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/display/record", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDecide(t *testing.T) {
	svc := &stubUseCase{decision: domain.DisplayDecision{Reason: domain.DenialSessionCap}}
	h := newTestHandler(svc, nil)

	body := `{"trackingKey":"campaign-1","storeId":"store-1","visitorId":"visitor-12345678","sessionId":"s1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/display/decide", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp decideResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Allowed)
	assert.Equal(t, "SESSION_CAP", resp.Reason)
}

func TestHandleStatsOverview(t *testing.T) {
	svc := &stubUseCase{stats: port.StatsResp{Impressions: 42, SuspectedBots: 3, UniqueVisitors: 17}}
	h := newTestHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview?tracking_key=campaign-1", nil)
	rec := httptest.NewRecorder()

	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Impressions    int64 `json:"impressions"`
		SuspectedBots  int64 `json:"suspectedBots"`
		UniqueVisitors int64 `json:"uniqueVisitors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Impressions)
	assert.Equal(t, int64(3), resp.SuspectedBots)
	assert.Equal(t, int64(17), resp.UniqueVisitors)
}

func TestHandleStatsOverview_BadTimestamp(t *testing.T) {
	h := newTestHandler(&stubUseCase{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview?from=yesterday", nil)
	rec := httptest.NewRecorder()

	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDisplayRoutes_RateLimited(t *testing.T) {
	svc := &stubUseCase{recordResult: domain.RecordResult{Status: domain.RecordAccepted}}
	h := newTestHandler(svc, NewIPRateLimiter(1, 1))

	body := `{"trackingKey":"campaign-1","storeId":"store-1","visitorId":"visitor-12345678","sessionId":"s1"}`
	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/display/record", strings.NewReader(body))
		req.RemoteAddr = "203.0.113.7:51000"
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusAccepted, codes[0])
	assert.Equal(t, http.StatusTooManyRequests, codes[1], "burst of 1 rejects the immediate second call")

	// stats endpoint is not visitor-facing and stays unguarded
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview", nil)
	req.RemoteAddr = "203.0.113.7:51000"
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
