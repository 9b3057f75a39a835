package port

import (
	"context"
	"time"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
)

// EventSink is the outbound port for the durable analytics log. It is
// independent of the counter store; a sink failure must never block or
// roll back a display decision.
type EventSink interface {
	// AppendImpression writes one impression event. Events are append-only
	// and are written even when flagged as suspected bot traffic.
	AppendImpression(ctx context.Context, ev domain.ImpressionEvent) error

	// GetStats returns aggregated impression statistics for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsReq selects the aggregation period and an optional tracking key.
type StatsReq struct {
	From        time.Time
	To          time.Time
	TrackingKey *string
}

// StatsResp contains aggregated impression counts for the period.
// SuspectedBots counts events flagged by the validity filter; they are
// included in Impressions as well since flagged events are never dropped.
type StatsResp struct {
	Impressions    int64
	SuspectedBots  int64
	UniqueVisitors int64
}
