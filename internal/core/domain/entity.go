package domain

import "strings"

// Scope is the hierarchy level an operation applies to.
type Scope string

const (
	ScopeCampaign Scope = "CAMPAIGN"
	ScopeAdSet    Scope = "ADSET"
	ScopeAd       Scope = "AD"
)

// Platform run states. Paused has several derived variants.
const (
	StatusActive         = "ACTIVE"
	StatusPaused         = "PAUSED"
	StatusCampaignPaused = "CAMPAIGN_PAUSED"
	StatusAdSetPaused    = "ADSET_PAUSED"
)

// EntityMatch is a normalized view of a remote campaign, ad set or ad. It is
// always derived fresh from a catalog fetch and never persisted.
type EntityMatch struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Status          string   `json:"status"`
	EffectiveStatus string   `json:"effective_status"`
	Scope           Scope    `json:"scope"`
	Spend           *float64 `json:"spend,omitempty"`
	Results         *int64   `json:"results,omitempty"`
	CostPerResult   *float64 `json:"cost_per_result,omitempty"`
	Labels          []string `json:"labels,omitempty"`
}

// IsActive reports whether the platform considers the entity running.
func (e EntityMatch) IsActive() bool {
	return strings.EqualFold(e.effective(), StatusActive)
}

// IsPaused reports whether the entity is in any paused variant.
func (e EntityMatch) IsPaused() bool {
	switch strings.ToUpper(e.effective()) {
	case StatusPaused, StatusCampaignPaused, StatusAdSetPaused:
		return true
	}
	return false
}

func (e EntityMatch) effective() string {
	if e.EffectiveStatus != "" {
		return e.EffectiveStatus
	}
	return e.Status
}
