package usecase

import (
	"encoding/json"

	"github.com/bokzor/revenue-boost-sub004/internal/core/domain"
)

// one is used for template overrides that force a single lifetime display.
var one = 1

// templateOverrides declares caps forced by template type regardless of the
// configured policy. One-shot templates can never repeat for a visitor.
var templateOverrides = map[string]domain.CapConfig{
	"announcement_banner": {MaxDisplaysPerVisitor: &one},
	"one_time_offer":      {MaxDisplaysPerVisitor: &one},
}

// ConservativeDefaultPolicy is the fallback applied when either JSON
// document is malformed: one display per session. Display blocking fails
// safe without breaking legitimate campaigns outright.
func ConservativeDefaultPolicy() domain.FrequencyPolicy {
	capped := 1
	return domain.FrequencyPolicy{MaxDisplaysPerSession: &capped}
}

// ResolvePolicy merges campaign-level frequency rules with store-level
// global settings into one effective policy. Per dimension the effective
// value is the minimum of the two, with nil meaning unbounded; campaign
// caps can therefore never loosen a store cap. Pure function: identical
// inputs always yield identical output.
//
// On malformed JSON the returned policy is ConservativeDefaultPolicy and
// the parse error is returned alongside for the caller to log; resolution
// itself never fails a request.
func ResolvePolicy(rules, settings json.RawMessage, templateType string) (domain.FrequencyPolicy, error) {
	campaignRules, err := domain.ParseCampaignRules(rules)
	if err != nil {
		return ConservativeDefaultPolicy(), err
	}
	storeSettings, err := domain.ParseStoreSettings(settings)
	if err != nil {
		return ConservativeDefaultPolicy(), err
	}

	campaign := campaignRules.EnhancedTriggers.FrequencyCapping
	store := storeSettings.FrequencyCapping

	policy := domain.FrequencyPolicy{
		MaxDisplaysPerSession:              minCap(field(campaign, capSession), field(store, capSession)),
		MaxDisplaysPerDay:                  minCap(field(campaign, capDay), field(store, capDay)),
		MaxDisplaysPerVisitor:              minCap(field(campaign, capVisitor), field(store, capVisitor)),
		GlobalMaxPerSessionAcrossCampaigns: minCap(field(campaign, capGlobal), field(store, capGlobal)),
		// Cooldown is a spacing constraint, not a count ceiling; the
		// stricter spacing is the larger value.
		CooldownSeconds: maxCap(field(campaign, capCooldown), field(store, capCooldown)),
	}

	if override, ok := templateOverrides[templateType]; ok {
		if override.MaxDisplaysPerVisitor != nil {
			policy.MaxDisplaysPerVisitor = minCap(policy.MaxDisplaysPerVisitor, override.MaxDisplaysPerVisitor)
		}
	}
	return policy, nil
}

type capDimension int

const (
	capSession capDimension = iota
	capDay
	capVisitor
	capCooldown
	capGlobal
)

func field(c *domain.CapConfig, dim capDimension) *int {
	if c == nil {
		return nil
	}
	switch dim {
	case capSession:
		return c.MaxDisplaysPerSession
	case capDay:
		return c.MaxDisplaysPerDay
	case capVisitor:
		return c.MaxDisplaysPerVisitor
	case capCooldown:
		return c.CooldownSeconds
	case capGlobal:
		return c.GlobalMaxPerSessionAcrossCampaigns
	}
	return nil
}

// minCap returns the tighter of two caps, treating nil as unbounded. The
// result is a fresh pointer so resolved policies never alias input docs.
func minCap(a, b *int) *int {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		v := *b
		return &v
	case b == nil:
		v := *a
		return &v
	}
	v := *a
	if *b < v {
		v = *b
	}
	return &v
}

func maxCap(a, b *int) *int {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		v := *b
		return &v
	case b == nil:
		v := *a
		return &v
	}
	v := *a
	if *b > v {
		v = *b
	}
	return &v
}
