package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bokzor/revenue-boost-sub004/internal/core/port"
)

type decideResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// handleDecide answers whether a display would be allowed right now
// without consuming a display slot. Used by triggers that want to check
// before rendering.
func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req displayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	decision, err := h.svc.Decide(r.Context(), req.toPort(r))
	if err != nil {
		if errors.Is(err, port.ErrInvalidInput) {
			http.Error(w, "missing trackingKey, storeId or visitorId", http.StatusBadRequest)
			return
		}
		h.logger.Error("decide error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(decideResponse{
		Allowed: decision.Allowed,
		Reason:  string(decision.Reason),
	}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
