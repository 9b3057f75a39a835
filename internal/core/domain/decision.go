package domain

// DenialReason identifies which cap dimension blocked a display. Values
// travel over the wire to the storefront, so they are stable strings.
type DenialReason string

const (
	DenialCooldownActive DenialReason = "COOLDOWN_ACTIVE"
	DenialSessionCap     DenialReason = "SESSION_CAP"
	DenialDayCap         DenialReason = "DAY_CAP"
	DenialLifetimeCap    DenialReason = "LIFETIME_CAP"
	DenialGlobalCap      DenialReason = "GLOBAL_CAP"
)

// DisplayDecision is the outcome of evaluating a policy against current
// counters. It is ephemeral and never persisted.
type DisplayDecision struct {
	Allowed bool
	Reason  DenialReason // empty when Allowed
}

// RecordStatus classifies the outcome of a recordDisplay call.
type RecordStatus string

const (
	// RecordAccepted means counters were incremented and the analytics
	// event queued.
	RecordAccepted RecordStatus = "recorded"
	// RecordRejected means a cap dimension denied the display.
	RecordRejected RecordStatus = "rejected"
	// RecordDegraded means the counter store was unreachable and the
	// display was treated as allowed without counting (fail-open).
	RecordDegraded RecordStatus = "degraded"
)

// RecordResult is the typed result of the recording path. The core never
// returns an error for degraded conditions; it reports them here and lets
// the transport layer decide what to log.
type RecordResult struct {
	Status RecordStatus
	Reason DenialReason // set when Status == RecordRejected
	// Err carries the underlying store failure when Status ==
	// RecordDegraded. Informational only.
	Err error
}
