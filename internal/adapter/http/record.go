package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
	"github.com/bokzor/revenue-boost-sub004/internal/core/port"
)

// displayRequest is the wire shape shared by the record and decide
// endpoints. FrequencyRules and StoreSettings are passed through as raw
// JSON; they are validated at the policy-resolver boundary.
type displayRequest struct {
	TrackingKey  string            `json:"trackingKey"`
	StoreID      string            `json:"storeId"`
	ExperimentID string            `json:"experimentId,omitempty"`
	TemplateType string            `json:"templateType,omitempty"`
	VisitorID    string            `json:"visitorId"`
	SessionID    string            `json:"sessionId"`
	PageURL      string            `json:"pageUrl,omitempty"`
	Referrer     string            `json:"referrer,omitempty"`
	DeviceType   string            `json:"deviceType,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`

	FrequencyRules json.RawMessage `json:"frequencyRules,omitempty"`
	StoreSettings  json.RawMessage `json:"storeSettings,omitempty"`
}

func (req displayRequest) toPort(r *http.Request) port.DisplayReq {
	return port.DisplayReq{
		StoreID:      req.StoreID,
		TrackingKey:  req.TrackingKey,
		ExperimentID: req.ExperimentID,
		TemplateType: req.TemplateType,
		Context: domain.DisplayContext{
			VisitorID:  req.VisitorID,
			SessionID:  req.SessionID,
			PageURL:    req.PageURL,
			Referrer:   req.Referrer,
			UserAgent:  r.UserAgent(),
			IPAddress:  clientIP(r),
			DeviceType: req.DeviceType,
			Metadata:   req.Metadata,
		},
		FrequencyRules: req.FrequencyRules,
		StoreSettings:  req.StoreSettings,
	}
}

type recordResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// handleRecordDisplay processes the storefront's recordDisplay call. The
// request body is decoded into a displayRequest. Missing identifiers are
// the only client error; every degraded condition still answers 202 so the
// popup pipeline never breaks on internal failures.
func (h *Handler) handleRecordDisplay(w http.ResponseWriter, r *http.Request) {
	var req displayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := h.svc.RecordDisplay(r.Context(), req.toPort(r))
	if err != nil {
		if errors.Is(err, port.ErrInvalidInput) {
			http.Error(w, "missing trackingKey, storeId or visitorId", http.StatusBadRequest)
			return
		}
		h.logger.Error("record display error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if result.Status == domain.RecordDegraded {
		h.logger.Warn("display recorded in degraded mode",
			slog.String("trackingKey", req.TrackingKey), slog.Any("error", result.Err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err = json.NewEncoder(w).Encode(recordResponse{
		Status: string(result.Status),
		Reason: string(result.Reason),
	}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
