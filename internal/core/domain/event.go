package domain

import "time"

// EventType enumerates the analytics event kinds the recorder emits.
type EventType string

const EventView EventType = "VIEW"

// ImpressionEvent is the durable, append-only analytics record written once
// per accepted display. Its loss never blocks the decision path.
type ImpressionEvent struct {
	ID           string
	StoreID      string
	CampaignID   string
	ExperimentID string
	VisitorID    string
	SessionID    string
	EventType    EventType
	PageURL      string
	Referrer     string
	UserAgent    string
	IPAddress    string
	DeviceType   string
	Metadata     map[string]string
	SuspectedBot bool
	CreatedAt    time.Time
}
