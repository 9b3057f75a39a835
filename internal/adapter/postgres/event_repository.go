package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
	"github.com/bokzor/revenue-boost-sub004/internal/core/port"
)

// EventRepository implements port.EventSink using pgxpool for PostgreSQL.
// The impression_events table is append-only; rows are never updated or
// deleted by the application.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// AppendImpression inserts one impression event.
func (r *EventRepository) AppendImpression(ctx context.Context, ev domain.ImpressionEvent) error {
	var metadata []byte
	if len(ev.Metadata) > 0 {
		var err error
		metadata, err = json.Marshal(ev.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO impression_events
(id, store_id, campaign_id, experiment_id, visitor_id, session_id, event_type,
 page_url, referrer, user_agent, ip_address, device_type, metadata, suspected_bot, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		ev.ID, ev.StoreID, ev.CampaignID, nullable(ev.ExperimentID), ev.VisitorID, ev.SessionID,
		string(ev.EventType), ev.PageURL, ev.Referrer, ev.UserAgent, ev.IPAddress,
		ev.DeviceType, metadata, ev.SuspectedBot, ev.CreatedAt)
	return err
}

// GetStats returns aggregated impression counts for a period.
func (r *EventRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.TrackingKey != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.TrackingKey)
	}
	query := fmt.Sprintf(`SELECT
        COALESCE(count(*), 0),
        COALESCE(count(*) FILTER (WHERE suspected_bot), 0),
        COALESCE(count(DISTINCT visitor_id), 0)
    FROM impression_events
    WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)

	var resp port.StatsResp
	err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Impressions, &resp.SuspectedBots, &resp.UniqueVisitors)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
