package port

import (
	"context"
	"errors"
	"time"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
)

// ErrCounterStoreUnavailable wraps any transport or timeout failure talking
// to the counter store. The usecase maps it to the fail-open degraded path.
var ErrCounterStoreUnavailable = errors.New("counter store unavailable")

// IncrementOutcome is the result of the atomic increment-if-under-cap
// operation. When Allowed is false no counter was mutated and Reason names
// the first failing dimension.
type IncrementOutcome struct {
	Allowed bool
	Reason  domain.DenialReason
	Counter domain.DisplayCounter
}

// CounterStore is the outbound port for display counters. It is shared by
// every storefront request across all stores and campaigns; counters may
// only be mutated through IncrementIfAllowed so that the cap invariant
// holds under concurrent duplicate calls.
type CounterStore interface {
	// IncrementIfAllowed atomically re-checks every configured cap in the
	// policy and, only if all pass, increments the session, day, lifetime
	// and store-wide counters and stamps the last display time. The check
	// and the increments execute as a single atomic unit on the store.
	IncrementIfAllowed(ctx context.Context, key domain.CounterKey, policy domain.FrequencyPolicy, now time.Time) (IncrementOutcome, error)

	// Peek returns the current counter snapshot without mutating anything.
	// A missing counter reads as all-zero.
	Peek(ctx context.Context, key domain.CounterKey) (domain.DisplayCounter, error)

	// CountVelocity bumps the short-window event counter for the given
	// client IP and returns the count within the current window. Used by
	// the bot filter's velocity heuristic.
	CountVelocity(ctx context.Context, storeID, ipAddress string, window time.Duration) (int64, error)
}
