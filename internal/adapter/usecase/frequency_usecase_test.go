package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
	"github.com/bokzor/revenue-boost-sub004/internal/core/port"
	"github.com/bokzor/revenue-boost-sub004/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func displayReq() port.DisplayReq {
	return port.DisplayReq{
		StoreID:     "store-1",
		TrackingKey: "campaign-1",
		Context: domain.DisplayContext{
			VisitorID: "visitor-12345678",
			SessionID: "session-1",
			PageURL:   "https://shop.example.com/",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
			IPAddress: "203.0.113.7",
		},
	}
}

func TestRecordDisplay_InvalidInput(t *testing.T) {
	counters := mocks.NewMockCounterStore(t)
	sink := mocks.NewMockEventSink(t)
	u := NewFrequencyUseCase(counters, sink, NewBotFilter(30), discardLogger())

	req := displayReq()
	req.TrackingKey = ""
	_, err := u.RecordDisplay(context.Background(), req)
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	req = displayReq()
	req.Context.VisitorID = ""
	_, err = u.RecordDisplay(context.Background(), req)
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestRecordDisplay_AcceptedWritesEvent(t *testing.T) {
	counters := mocks.NewMockCounterStore(t)
	sink := mocks.NewMockEventSink(t)

	counters.EXPECT().
		IncrementIfAllowed(mock.Anything, mock.AnythingOfType("domain.CounterKey"), mock.AnythingOfType("domain.FrequencyPolicy"), mock.AnythingOfType("time.Time")).
		Return(port.IncrementOutcome{Allowed: true}, nil)
	counters.EXPECT().
		CountVelocity(mock.Anything, "store-1", "203.0.113.7", mock.Anything).
		Return(1, nil)

	var (
		mu      sync.Mutex
		written []domain.ImpressionEvent
	)
	sink.EXPECT().
		AppendImpression(mock.Anything, mock.AnythingOfType("domain.ImpressionEvent")).
		Run(func(ctx context.Context, ev domain.ImpressionEvent) {
			mu.Lock()
			written = append(written, ev)
			mu.Unlock()
		}).
		Return(nil)

	u := NewFrequencyUseCase(counters, sink, NewBotFilter(30), discardLogger())

	result, err := u.RecordDisplay(context.Background(), displayReq())
	require.NoError(t, err)
	assert.Equal(t, domain.RecordAccepted, result.Status)

	u.Wait()
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, written, 1)
	assert.Equal(t, "campaign-1", written[0].CampaignID)
	assert.Equal(t, domain.EventView, written[0].EventType)
	assert.False(t, written[0].SuspectedBot)
	assert.NotEmpty(t, written[0].ID)
}

func TestRecordDisplay_RejectedWritesNoEvent(t *testing.T) {
	counters := mocks.NewMockCounterStore(t)
	sink := mocks.NewMockEventSink(t)

	counters.EXPECT().
		IncrementIfAllowed(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(port.IncrementOutcome{Allowed: false, Reason: domain.DenialSessionCap}, nil)

	u := NewFrequencyUseCase(counters, sink, NewBotFilter(30), discardLogger())

	result, err := u.RecordDisplay(context.Background(), displayReq())
	require.NoError(t, err)
	assert.Equal(t, domain.RecordRejected, result.Status)
	assert.Equal(t, domain.DenialSessionCap, result.Reason)

	u.Wait()
	sink.AssertNotCalled(t, "AppendImpression", mock.Anything, mock.Anything)
}

// Counter store outage fails open: the caller-visible outcome is a
// degraded (allowed) display and the analytics event is still written.
func TestRecordDisplay_StoreUnavailableFailsOpen(t *testing.T) {
	counters := mocks.NewMockCounterStore(t)
	sink := mocks.NewMockEventSink(t)

	storeErr := port.ErrCounterStoreUnavailable
	counters.EXPECT().
		IncrementIfAllowed(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(port.IncrementOutcome{}, storeErr)
	counters.EXPECT().
		CountVelocity(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, storeErr)
	sink.EXPECT().
		AppendImpression(mock.Anything, mock.AnythingOfType("domain.ImpressionEvent")).
		Return(nil)

	u := NewFrequencyUseCase(counters, sink, NewBotFilter(30), discardLogger())

	result, err := u.RecordDisplay(context.Background(), displayReq())
	require.NoError(t, err, "degraded conditions never error")
	assert.Equal(t, domain.RecordDegraded, result.Status)
	assert.ErrorIs(t, result.Err, port.ErrCounterStoreUnavailable)

	u.Wait()
}

// A bot-flagged event is still written, with the flag set, never dropped.
func TestRecordDisplay_BotFlaggedEventStillWritten(t *testing.T) {
	counters := mocks.NewMockCounterStore(t)
	sink := mocks.NewMockEventSink(t)

	counters.EXPECT().
		IncrementIfAllowed(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(port.IncrementOutcome{Allowed: true}, nil)
	counters.EXPECT().
		CountVelocity(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(500, nil)

	var (
		mu sync.Mutex
		ev domain.ImpressionEvent
	)
	sink.EXPECT().
		AppendImpression(mock.Anything, mock.AnythingOfType("domain.ImpressionEvent")).
		Run(func(ctx context.Context, e domain.ImpressionEvent) {
			mu.Lock()
			ev = e
			mu.Unlock()
		}).
		Return(nil)

	u := NewFrequencyUseCase(counters, sink, NewBotFilter(30), discardLogger())

	result, err := u.RecordDisplay(context.Background(), displayReq())
	require.NoError(t, err)
	assert.Equal(t, domain.RecordAccepted, result.Status)

	u.Wait()
	mu.Lock()
	defer mu.Unlock()
	assert.True(t, ev.SuspectedBot)
	assert.Equal(t, "visitor-12345678", ev.VisitorID)
}

// Sink failures are retried and then only logged; the decision stands.
func TestRecordDisplay_SinkFailureNeverPropagates(t *testing.T) {
	counters := mocks.NewMockCounterStore(t)
	sink := mocks.NewMockEventSink(t)

	counters.EXPECT().
		IncrementIfAllowed(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(port.IncrementOutcome{Allowed: true}, nil)
	counters.EXPECT().
		CountVelocity(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(1, nil)
	sink.EXPECT().
		AppendImpression(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	u := NewFrequencyUseCase(counters, sink, NewBotFilter(30), discardLogger(),
		WithSinkTimeout(50*time.Millisecond))

	result, err := u.RecordDisplay(context.Background(), displayReq())
	require.NoError(t, err)
	assert.Equal(t, domain.RecordAccepted, result.Status)

	u.Wait()
}

func TestDecide_UsesResolvedPolicy(t *testing.T) {
	counters := mocks.NewMockCounterStore(t)
	sink := mocks.NewMockEventSink(t)

	counters.EXPECT().
		Peek(mock.Anything, mock.AnythingOfType("domain.CounterKey")).
		Return(domain.DisplayCounter{SessionCount: 2}, nil)

	u := NewFrequencyUseCase(counters, sink, NewBotFilter(30), discardLogger())

	req := displayReq()
	req.FrequencyRules = json.RawMessage(`{"enhancedTriggers":{"frequency_capping":{"maxDisplaysPerSession":2}}}`)

	dec, err := u.Decide(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, domain.DenialSessionCap, dec.Reason)
}

func TestDecide_FailsOpenOnStoreError(t *testing.T) {
	counters := mocks.NewMockCounterStore(t)
	sink := mocks.NewMockEventSink(t)

	counters.EXPECT().
		Peek(mock.Anything, mock.Anything).
		Return(domain.DisplayCounter{}, port.ErrCounterStoreUnavailable)

	u := NewFrequencyUseCase(counters, sink, NewBotFilter(30), discardLogger())

	dec, err := u.Decide(context.Background(), displayReq())
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
}

// Malformed rules collapse to the conservative default (one per session)
// rather than failing the request.
func TestRecordDisplay_MalformedRulesUseConservativeDefault(t *testing.T) {
	counters := mocks.NewMockCounterStore(t)
	sink := mocks.NewMockEventSink(t)

	var seen domain.FrequencyPolicy
	counters.EXPECT().
		IncrementIfAllowed(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, key domain.CounterKey, policy domain.FrequencyPolicy, now time.Time) {
			seen = policy
		}).
		Return(port.IncrementOutcome{Allowed: false, Reason: domain.DenialSessionCap}, nil)

	u := NewFrequencyUseCase(counters, sink, NewBotFilter(30), discardLogger())

	req := displayReq()
	req.FrequencyRules = json.RawMessage(`{"enhancedTriggers":`)
	result, err := u.RecordDisplay(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.RecordRejected, result.Status)
	assert.Equal(t, ConservativeDefaultPolicy(), seen)
}
