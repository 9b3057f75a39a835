package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
	"github.com/bokzor/revenue-boost-sub004/internal/core/port"
)

// FrequencyUseCase implements the frequency-capping core: policy
// resolution, display decisions, and the sole counter mutation path. It
// orchestrates the counter store and the durable analytics sink.
//
// Degraded conditions (store outage, malformed policy, failed analytics
// write) never surface as errors; they are reported through the typed
// RecordResult and logged. The only hard error is port.ErrInvalidInput.
type FrequencyUseCase struct {
	counters port.CounterStore
	sink     port.EventSink
	bots     *BotFilter
	logger   *slog.Logger

	now            func() time.Time
	velocityWindow time.Duration
	sinkTimeout    time.Duration
	maxSinkRetries uint64

	wg sync.WaitGroup
}

type Option func(*FrequencyUseCase)

// WithClock substitutes the time source. Tests use it to drive cooldown
// windows deterministically.
func WithClock(now func() time.Time) Option {
	return func(u *FrequencyUseCase) { u.now = now }
}

// WithVelocityWindow sets the window for the bot filter's per-IP velocity
// counter. Defaults to 10 seconds.
func WithVelocityWindow(d time.Duration) Option {
	return func(u *FrequencyUseCase) { u.velocityWindow = d }
}

// WithSinkTimeout bounds the whole async analytics write, retries
// included. Defaults to 5 seconds.
func WithSinkTimeout(d time.Duration) Option {
	return func(u *FrequencyUseCase) { u.sinkTimeout = d }
}

func NewFrequencyUseCase(counters port.CounterStore, sink port.EventSink, bots *BotFilter, logger *slog.Logger, opts ...Option) *FrequencyUseCase {
	u := &FrequencyUseCase{
		counters:       counters,
		sink:           sink,
		bots:           bots,
		logger:         logger,
		now:            time.Now,
		velocityWindow: 10 * time.Second,
		sinkTimeout:    5 * time.Second,
		maxSinkRetries: 3,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Decide evaluates the effective policy against current counters without
// consuming a display slot. A slot is consumed only by RecordDisplay, so
// an allowed decision that the client subsequently aborts costs nothing.
// On counter-store failure the decision fails open.
func (u *FrequencyUseCase) Decide(ctx context.Context, req port.DisplayReq) (domain.DisplayDecision, error) {
	if err := req.Validate(); err != nil {
		return domain.DisplayDecision{}, err
	}
	policy := u.resolve(req)
	counter, err := u.counters.Peek(ctx, counterKey(req))
	if err != nil {
		u.logger.Warn("counter store unavailable, deciding open",
			slog.String("trackingKey", req.TrackingKey), slog.Any("error", err))
		return domain.DisplayDecision{Allowed: true}, nil
	}
	return Evaluate(policy, counter, u.now()), nil
}

// RecordDisplay resolves the policy and performs the atomic
// increment-if-under-cap against the counter store. The cap re-check runs
// inside the same atomic unit as the increments, so two concurrent
// duplicate calls cannot both pass a cap. On success the durable analytics
// event is queued asynchronously; on store unavailability the display is
// treated as allowed in degraded mode and the event is still queued.
func (u *FrequencyUseCase) RecordDisplay(ctx context.Context, req port.DisplayReq) (domain.RecordResult, error) {
	if err := req.Validate(); err != nil {
		return domain.RecordResult{}, err
	}
	policy := u.resolve(req)
	now := u.now()

	outcome, err := u.counters.IncrementIfAllowed(ctx, counterKey(req), policy, now)
	if err != nil {
		u.queueEvent(req, now)
		return domain.RecordResult{Status: domain.RecordDegraded, Err: err}, nil
	}
	if !outcome.Allowed {
		return domain.RecordResult{Status: domain.RecordRejected, Reason: outcome.Reason}, nil
	}
	u.queueEvent(req, now)
	return domain.RecordResult{Status: domain.RecordAccepted}, nil
}

// GetStats returns aggregated impression statistics from the durable log.
func (u *FrequencyUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.sink.GetStats(ctx, req)
}

// Wait blocks until all queued analytics writes have finished. Called on
// shutdown and by tests.
func (u *FrequencyUseCase) Wait() {
	u.wg.Wait()
}

func (u *FrequencyUseCase) resolve(req port.DisplayReq) domain.FrequencyPolicy {
	policy, err := ResolvePolicy(req.FrequencyRules, req.StoreSettings, req.TemplateType)
	if err != nil {
		u.logger.Warn("malformed frequency rules, using conservative default",
			slog.String("trackingKey", req.TrackingKey), slog.Any("error", err))
	}
	return policy
}

// queueEvent hands the durable analytics write to a goroutine. The write
// is detached from the request context: the caller's response must not
// wait on it, and its failure is logged, never propagated.
func (u *FrequencyUseCase) queueEvent(req port.DisplayReq, at time.Time) {
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), u.sinkTimeout)
		defer cancel()
		u.writeEvent(ctx, req, at)
	}()
}

func (u *FrequencyUseCase) writeEvent(ctx context.Context, req port.DisplayReq, at time.Time) {
	velocity, err := u.counters.CountVelocity(ctx, req.StoreID, req.Context.IPAddress, u.velocityWindow)
	if err != nil {
		// velocity is an abuse signal, not a prerequisite
		u.logger.Warn("velocity lookup failed", slog.Any("error", err))
	}
	flagged := u.bots.IsLikelyBot(req.Context.VisitorID, req.Context.IPAddress, req.Context.UserAgent, velocity)

	ev := domain.ImpressionEvent{
		ID:           uuid.NewString(),
		StoreID:      req.StoreID,
		CampaignID:   req.TrackingKey,
		ExperimentID: req.ExperimentID,
		VisitorID:    req.Context.VisitorID,
		SessionID:    req.Context.SessionID,
		EventType:    domain.EventView,
		PageURL:      req.Context.PageURL,
		Referrer:     req.Context.Referrer,
		UserAgent:    req.Context.UserAgent,
		IPAddress:    req.Context.IPAddress,
		DeviceType:   req.Context.DeviceType,
		Metadata:     req.Context.Metadata,
		SuspectedBot: flagged,
		CreatedAt:    at.UTC(),
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), u.maxSinkRetries), ctx)
	err = backoff.Retry(func() error {
		return u.sink.AppendImpression(ctx, ev)
	}, bo)
	if err != nil {
		u.logger.Error("analytics write failed",
			slog.String("trackingKey", req.TrackingKey),
			slog.String("visitorId", req.Context.VisitorID),
			slog.Any("error", err))
	}
}

func counterKey(req port.DisplayReq) domain.CounterKey {
	return domain.CounterKey{
		StoreID:     req.StoreID,
		TrackingKey: req.TrackingKey,
		VisitorID:   req.Context.VisitorID,
		SessionID:   req.Context.SessionID,
	}
}
