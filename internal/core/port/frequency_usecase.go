package port

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
)

// ErrInvalidInput is returned when the caller omits a required identifier.
// It is the only error class surfaced as a non-success response.
var ErrInvalidInput = errors.New("invalid input")

// FrequencyUseCase is the primary port into the frequency-capping core.
// Mock implementations can be generated from this interface for testing.
type FrequencyUseCase interface {
	// Decide evaluates the effective policy against current counters and
	// returns an allow/deny decision without consuming a display slot.
	Decide(ctx context.Context, req DisplayReq) (domain.DisplayDecision, error)

	// RecordDisplay is the sole mutation entry point. It resolves the
	// policy, performs the atomic increment-if-under-cap, and queues the
	// durable analytics event. It never fails for degraded conditions;
	// the typed result reports what happened. The only error returned is
	// ErrInvalidInput.
	RecordDisplay(ctx context.Context, req DisplayReq) (domain.RecordResult, error)

	// GetStats returns aggregated impression statistics.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// DisplayReq carries one decision or recording request. FrequencyRules and
// StoreSettings are the raw JSON documents from the campaign and store
// entities; they are validated once at the policy-resolver boundary and
// never travel further as untyped JSON.
type DisplayReq struct {
	StoreID      string
	TrackingKey  string
	ExperimentID string
	TemplateType string
	Context      domain.DisplayContext

	FrequencyRules json.RawMessage
	StoreSettings  json.RawMessage
}

// Validate checks the identifiers the core cannot work without.
func (r DisplayReq) Validate() error {
	if r.StoreID == "" || r.TrackingKey == "" || r.Context.VisitorID == "" {
		return ErrInvalidInput
	}
	return nil
}
