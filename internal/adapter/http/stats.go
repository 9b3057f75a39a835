package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bokzor/revenue-boost-sub004/internal/core/port"
)

// handleStatsOverview returns aggregated impression statistics over a
// period. It accepts optional `from`, `to` (RFC3339 timestamps) and
// `tracking_key` query parameters. If no period is provided it defaults to
// the last 24 hours. Invalid parameters result in HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if key := q.Get("tracking_key"); key != "" {
		req.TrackingKey = &key
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(struct {
		Impressions    int64 `json:"impressions"`
		SuspectedBots  int64 `json:"suspectedBots"`
		UniqueVisitors int64 `json:"uniqueVisitors"`
	}{stats.Impressions, stats.SuspectedBots, stats.UniqueVisitors}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
