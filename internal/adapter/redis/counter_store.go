package redisstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
	"github.com/bokzor/revenue-boost-sub004/internal/core/port"
)

const (
	keyPrefix         = "fc:"
	velocityKeyPrefix = "vel:"

	// dayKeyTTL keeps the previous UTC day around long enough for stats
	// debugging before it ages out.
	dayKeyTTL = 48 * time.Hour
	// lifetimeKeyTTL bounds "lifetime" counters so abandoned visitors
	// eventually expire. Refreshed on every increment.
	lifetimeKeyTTL = 400 * 24 * time.Hour
)

// incrScript re-checks every cap and performs all increments as one atomic
// unit, closing the check-then-act race between concurrent duplicate calls.
// KEYS: 1 session, 2 day, 3 lifetime, 4 last-display, 5 global-session.
// ARGV: now, cooldown, sessionCap, dayCap, lifetimeCap, globalCap,
// sessionTTL, dayTTL, lifetimeTTL. A cap of -1 means unbounded.
// Denials evaluate in fixed order: cooldown, session, day, lifetime, global.
var incrScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local cooldown = tonumber(ARGV[2])
local sessCap = tonumber(ARGV[3])
local dayCap = tonumber(ARGV[4])
local lifeCap = tonumber(ARGV[5])
local globalCap = tonumber(ARGV[6])
local sessTTL = tonumber(ARGV[7])
local dayTTL = tonumber(ARGV[8])
local lifeTTL = tonumber(ARGV[9])

if cooldown >= 0 then
  local last = tonumber(redis.call('GET', KEYS[4]) or '-1')
  if last >= 0 and (now - last) < cooldown then
    return {0, 'COOLDOWN_ACTIVE'}
  end
end
local sess = tonumber(redis.call('GET', KEYS[1]) or '0')
if sessCap >= 0 and sess >= sessCap then
  return {0, 'SESSION_CAP'}
end
local day = tonumber(redis.call('GET', KEYS[2]) or '0')
if dayCap >= 0 and day >= dayCap then
  return {0, 'DAY_CAP'}
end
local life = tonumber(redis.call('GET', KEYS[3]) or '0')
if lifeCap >= 0 and life >= lifeCap then
  return {0, 'LIFETIME_CAP'}
end
local glob = tonumber(redis.call('GET', KEYS[5]) or '0')
if globalCap >= 0 and glob >= globalCap then
  return {0, 'GLOBAL_CAP'}
end

redis.call('INCR', KEYS[1])
redis.call('EXPIRE', KEYS[1], sessTTL)
redis.call('INCR', KEYS[2])
redis.call('EXPIRE', KEYS[2], dayTTL)
redis.call('INCR', KEYS[3])
redis.call('EXPIRE', KEYS[3], lifeTTL)
redis.call('SET', KEYS[4], ARGV[1])
redis.call('EXPIRE', KEYS[4], lifeTTL)
redis.call('INCR', KEYS[5])
redis.call('EXPIRE', KEYS[5], sessTTL)
return {1, '', sess + 1, day + 1, life + 1, glob + 1}
`)

// CounterStore implements port.CounterStore on Redis. All counters are
// plain string keys with per-dimension TTLs; day counters embed the UTC
// date so a fresh key starts at zero at midnight UTC.
type CounterStore struct {
	rdb        redis.UniversalClient
	sessionTTL time.Duration
	opTimeout  time.Duration
}

type Option func(*CounterStore)

// WithSessionTTL overrides how long session-scoped counters live after the
// last display. Defaults to 30 minutes.
func WithSessionTTL(d time.Duration) Option {
	return func(s *CounterStore) { s.sessionTTL = d }
}

// WithOpTimeout bounds every Redis round trip. The counter store sits on
// the storefront's critical rendering path. Defaults to 150ms.
func WithOpTimeout(d time.Duration) Option {
	return func(s *CounterStore) { s.opTimeout = d }
}

func NewCounterStore(rdb redis.UniversalClient, opts ...Option) *CounterStore {
	s := &CounterStore{
		rdb:        rdb,
		sessionTTL: 30 * time.Minute,
		opTimeout:  150 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sessionKey(k domain.CounterKey) string {
	return fmt.Sprintf("%s%s:%s:%s:s:%s", keyPrefix, k.StoreID, k.TrackingKey, k.VisitorID, k.SessionID)
}

func dayKey(k domain.CounterKey, now time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s:d:%s", keyPrefix, k.StoreID, k.TrackingKey, k.VisitorID, now.UTC().Format("20060102"))
}

func lifetimeKey(k domain.CounterKey) string {
	return fmt.Sprintf("%s%s:%s:%s:l", keyPrefix, k.StoreID, k.TrackingKey, k.VisitorID)
}

func lastDisplayedKey(k domain.CounterKey) string {
	return fmt.Sprintf("%s%s:%s:%s:t", keyPrefix, k.StoreID, k.TrackingKey, k.VisitorID)
}

// globalSessionKey is keyed by visitor as well as session so that forging
// fresh session IDs does not also reset the visitor-scoped dimensions.
func globalSessionKey(k domain.CounterKey) string {
	return fmt.Sprintf("%s%s:g:%s:%s", keyPrefix, k.StoreID, k.VisitorID, k.SessionID)
}

func capArg(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}

// IncrementIfAllowed implements port.CounterStore.
func (s *CounterStore) IncrementIfAllowed(ctx context.Context, key domain.CounterKey, policy domain.FrequencyPolicy, now time.Time) (port.IncrementOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	keys := []string{
		sessionKey(key),
		dayKey(key, now),
		lifetimeKey(key),
		lastDisplayedKey(key),
		globalSessionKey(key),
	}
	args := []interface{}{
		now.Unix(),
		capArg(policy.CooldownSeconds),
		capArg(policy.MaxDisplaysPerSession),
		capArg(policy.MaxDisplaysPerDay),
		capArg(policy.MaxDisplaysPerVisitor),
		capArg(policy.GlobalMaxPerSessionAcrossCampaigns),
		int(s.sessionTTL.Seconds()),
		int(dayKeyTTL.Seconds()),
		int(lifetimeKeyTTL.Seconds()),
	}

	res, err := incrScript.Run(ctx, s.rdb, keys, args...).Slice()
	if err != nil {
		return port.IncrementOutcome{}, fmt.Errorf("%w: %v", port.ErrCounterStoreUnavailable, err)
	}
	if len(res) < 2 {
		return port.IncrementOutcome{}, fmt.Errorf("%w: short script reply", port.ErrCounterStoreUnavailable)
	}

	allowed, _ := res[0].(int64)
	if allowed != 1 {
		reason, _ := res[1].(string)
		return port.IncrementOutcome{Allowed: false, Reason: domain.DenialReason(reason)}, nil
	}

	out := port.IncrementOutcome{Allowed: true}
	if len(res) >= 6 {
		out.Counter.SessionCount = toInt64(res[2])
		out.Counter.DayCount = toInt64(res[3])
		out.Counter.LifetimeCount = toInt64(res[4])
		out.Counter.GlobalSessionCount = toInt64(res[5])
	}
	t := now
	out.Counter.LastDisplayedAt = &t
	return out, nil
}

// Peek implements port.CounterStore. Missing keys read as zero.
func (s *CounterStore) Peek(ctx context.Context, key domain.CounterKey) (domain.DisplayCounter, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	vals, err := s.rdb.MGet(ctx,
		sessionKey(key),
		dayKey(key, time.Now()),
		lifetimeKey(key),
		lastDisplayedKey(key),
		globalSessionKey(key),
	).Result()
	if err != nil {
		return domain.DisplayCounter{}, fmt.Errorf("%w: %v", port.ErrCounterStoreUnavailable, err)
	}

	var c domain.DisplayCounter
	c.SessionCount = toInt64(vals[0])
	c.DayCount = toInt64(vals[1])
	c.LifetimeCount = toInt64(vals[2])
	if ts := toInt64(vals[3]); ts > 0 {
		t := time.Unix(ts, 0).UTC()
		c.LastDisplayedAt = &t
	}
	c.GlobalSessionCount = toInt64(vals[4])
	return c, nil
}

// CountVelocity implements port.CounterStore.
func (s *CounterStore) CountVelocity(ctx context.Context, storeID, ipAddress string, window time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	key := fmt.Sprintf("%s%s:%s", velocityKeyPrefix, storeID, ipAddress)
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", port.ErrCounterStoreUnavailable, err)
	}
	if n == 1 {
		// first event in the window starts the clock
		s.rdb.Expire(ctx, key, window)
	}
	return n, nil
}

func toInt64(v interface{}) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case string:
		n, _ := strconv.ParseInt(x, 10, 64)
		return n
	default:
		return 0
	}
}
