package domain

import "time"

// CounterKey identifies the logical counter entity for one visitor and one
// campaign (or experiment) within a store. TrackingKey is the identifier
// the storefront counts against; it is a campaign or experiment ID and may
// differ from the database campaign row ID.
type CounterKey struct {
	StoreID     string
	TrackingKey string
	VisitorID   string
	SessionID   string
}

// DisplayCounter is a read snapshot of the counters for one visitor and
// campaign. Counters are owned by the counter store and mutated only
// through its atomic increment operation.
type DisplayCounter struct {
	SessionCount  int64
	DayCount      int64
	LifetimeCount int64
	// GlobalSessionCount counts displays across all campaigns for the
	// store within the current session.
	GlobalSessionCount int64
	LastDisplayedAt    *time.Time
}
