package usecase

import (
	"time"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
)

// Evaluate checks each configured cap dimension against the counter
// snapshot in fixed order: cooldown first, then session, day, lifetime,
// store-wide cap. The first failing dimension determines the denial reason
// and evaluation short-circuits. A count at the cap denies further
// displays (a cap of N allows exactly N).
//
// The read path and the counter store's atomic increment script enforce
// the same order and boundary; Evaluate never mutates counters.
func Evaluate(p domain.FrequencyPolicy, c domain.DisplayCounter, now time.Time) domain.DisplayDecision {
	if p.CooldownSeconds != nil && c.LastDisplayedAt != nil {
		cooldown := time.Duration(*p.CooldownSeconds) * time.Second
		if now.Sub(*c.LastDisplayedAt) < cooldown {
			return domain.DisplayDecision{Reason: domain.DenialCooldownActive}
		}
	}
	if atCap(p.MaxDisplaysPerSession, c.SessionCount) {
		return domain.DisplayDecision{Reason: domain.DenialSessionCap}
	}
	if atCap(p.MaxDisplaysPerDay, c.DayCount) {
		return domain.DisplayDecision{Reason: domain.DenialDayCap}
	}
	if atCap(p.MaxDisplaysPerVisitor, c.LifetimeCount) {
		return domain.DisplayDecision{Reason: domain.DenialLifetimeCap}
	}
	if atCap(p.GlobalMaxPerSessionAcrossCampaigns, c.GlobalSessionCount) {
		return domain.DisplayDecision{Reason: domain.DenialGlobalCap}
	}
	return domain.DisplayDecision{Allowed: true}
}

func atCap(limit *int, count int64) bool {
	return limit != nil && count >= int64(*limit)
}
