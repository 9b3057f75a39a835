package domain

import "encoding/json"

// CapConfig is the typed form of a frequency-capping JSON document. It is
// the single shape used for both campaign-level rules and store-level
// global settings. Nil fields mean "unbounded" for that dimension.
type CapConfig struct {
	MaxDisplaysPerSession              *int `json:"maxDisplaysPerSession"`
	MaxDisplaysPerDay                  *int `json:"maxDisplaysPerDay"`
	MaxDisplaysPerVisitor              *int `json:"maxDisplaysPerVisitor"`
	CooldownSeconds                    *int `json:"cooldownSeconds"`
	GlobalMaxPerSessionAcrossCampaigns *int `json:"globalMaxPerSessionAcrossCampaigns"`
}

// CampaignRules mirrors the relevant slice of a campaign's targetRules
// document. Only the frequency-capping block is decoded; everything else
// in the document is ignored.
type CampaignRules struct {
	EnhancedTriggers struct {
		FrequencyCapping *CapConfig `json:"frequency_capping"`
	} `json:"enhancedTriggers"`
}

// StoreSettings mirrors the slice of a store's settings document that
// carries the optional global frequency-capping overrides.
type StoreSettings struct {
	FrequencyCapping *CapConfig `json:"frequencyCapping"`
}

// FrequencyPolicy is the effective, fully-resolved policy for one decision.
// It is computed fresh per request and never cached beyond it. Nil means
// the dimension is unbounded.
type FrequencyPolicy struct {
	MaxDisplaysPerSession              *int
	MaxDisplaysPerDay                  *int
	MaxDisplaysPerVisitor              *int
	CooldownSeconds                    *int
	GlobalMaxPerSessionAcrossCampaigns *int
}

// Unbounded reports whether no dimension is configured at all.
func (p FrequencyPolicy) Unbounded() bool {
	return p.MaxDisplaysPerSession == nil &&
		p.MaxDisplaysPerDay == nil &&
		p.MaxDisplaysPerVisitor == nil &&
		p.CooldownSeconds == nil &&
		p.GlobalMaxPerSessionAcrossCampaigns == nil
}

// ParseCampaignRules decodes a raw campaign targetRules document. A nil or
// empty document yields empty rules, not an error.
func ParseCampaignRules(raw json.RawMessage) (CampaignRules, error) {
	var rules CampaignRules
	if len(raw) == 0 {
		return rules, nil
	}
	if err := json.Unmarshal(raw, &rules); err != nil {
		return CampaignRules{}, err
	}
	return rules, nil
}

// ParseStoreSettings decodes a raw store settings document. A nil or empty
// document yields empty settings, not an error.
func ParseStoreSettings(raw json.RawMessage) (StoreSettings, error) {
	var settings StoreSettings
	if len(raw) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return StoreSettings{}, err
	}
	return settings, nil
}
