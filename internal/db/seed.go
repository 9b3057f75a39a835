package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo impression events so the stats endpoint has data to
// aggregate in local development.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	stores := []string{"demo-store-1", "demo-store-2"}
	campaigns := []string{"campaign-welcome", "campaign-exit-intent", "campaign-newsletter"}
	devices := []string{"desktop", "mobile", "tablet"}
	agents := []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15",
		"Googlebot/2.1 (+http://www.google.com/bot.html)",
	}

	for i := 0; i < 500; i++ {
		storeID := stores[r.Intn(len(stores))]
		campaignID := campaigns[r.Intn(len(campaigns))]
		visitorID := fmt.Sprintf("visitor-%08d", r.Intn(100))
		sessionID := uuid.NewString()
		ua := agents[r.Intn(len(agents))]
		// the seeded bot agent mirrors what the filter would flag live
		suspectedBot := ua == agents[2]
		createdAt := time.Now().UTC().Add(-time.Duration(r.Intn(48)) * time.Hour)

		_, err := db.Exec(ctx, `INSERT INTO impression_events
(id, store_id, campaign_id, visitor_id, session_id, event_type, page_url,
 referrer, user_agent, ip_address, device_type, suspected_bot, created_at)
VALUES ($1,$2,$3,$4,$5,'VIEW',$6,$7,$8,$9,$10,$11,$12) ON CONFLICT DO NOTHING`,
			uuid.NewString(), storeID, campaignID, visitorID, sessionID,
			fmt.Sprintf("https://%s.example.com/products/%d", storeID, r.Intn(30)),
			"https://www.google.com/",
			ua,
			fmt.Sprintf("203.0.113.%d", r.Intn(255)),
			devices[r.Intn(len(devices))],
			suspectedBot, createdAt)
		if err != nil {
			return err
		}
	}
	return nil
}
