package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// Catalog fetches the current remote entities of one scope. The result is a
// point-in-time snapshot; callers never mutate it in place.
type Catalog interface {
	GetEntities(ctx context.Context, acct domain.Account, scope domain.Scope) ([]domain.EntityMatch, error)
}

// Interpreter turns free text into a best-effort draft campaign. It may fail
// with an *InsufficientBalanceError, a timeout, or a generic parse failure.
type Interpreter interface {
	Interpret(ctx context.Context, text string, acct domain.Account) (*domain.DraftCampaign, error)
}

// PostResolver resolves a post URL into a "<page>_<post>" identifier. It is
// idempotent and may be called more than once for the same input.
type PostResolver interface {
	ResolvePost(ctx context.Context, url, pageID, token string) (string, error)
}

// GeoResolver looks up platform geography keys for place names.
type GeoResolver interface {
	SearchLocation(ctx context.Context, acct domain.Account, query string) (*domain.Location, error)
}

// StatusMutator changes the configured run state of a remote entity.
type StatusMutator interface {
	SetEntityStatus(ctx context.Context, acct domain.Account, id string, action domain.Action) error
}

// AdPlatform performs the three dependent creation calls.
type AdPlatform interface {
	CreateCampaign(ctx context.Context, acct domain.Account, spec CampaignSpec) (string, error)
	CreateAdSet(ctx context.Context, acct domain.Account, spec AdSetSpec) (string, error)
	CreateAd(ctx context.Context, acct domain.Account, spec AdSpec) (domain.AdResult, error)
}

// LabelStore keeps associations between entity ids and label names. It is
// consulted for display only.
type LabelStore interface {
	LabelsFor(ctx context.Context, entityIDs []string) (map[string][]string, error)
	SetLabels(ctx context.Context, entityID string, labels []string) error
}

// DraftRepository stores draft hierarchies for batch publishing.
type DraftRepository interface {
	CreateDraft(ctx context.Context, owner string, tree domain.DraftTree) (string, error)
	GetDraft(ctx context.Context, id string) (*domain.DraftTree, error)
	SaveDraft(ctx context.Context, tree domain.DraftTree) error
}

// SessionStore persists conversation sessions between turns. Lock serializes
// turns of one conversation and returns a release func.
type SessionStore interface {
	Load(ctx context.Context, conversationID string) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) error
	Lock(ctx context.Context, conversationID string) (func(), error)
}

// StatusNotifier broadcasts run-state changes to other components. Delivery
// is fire-and-forget.
type StatusNotifier interface {
	Notify(ctx context.Context, change domain.StatusChange) error
}

// CampaignSpec is the payload of the campaign creation step.
type CampaignSpec struct {
	Name      string
	Objective string
}

// AdSetSpec is the payload of the ad set creation step. Exactly one of
// DailyBudget or LifetimeBudget is set.
type AdSetSpec struct {
	CampaignID       string
	Name             string
	DailyBudget      int64
	LifetimeBudget   int64
	StartTime        string
	EndTime          string
	Schedule         []ScheduleBlock
	Targeting        domain.Targeting
	OptimizationGoal string
	BillingEvent     string
}

// ScheduleBlock is a weekly delivery window expressed in minutes of day.
type ScheduleBlock struct {
	StartMinute int   `json:"start_minute"`
	EndMinute   int   `json:"end_minute"`
	Days        []int `json:"days"`
}

// AdSpec is the payload of the ad creation step.
type AdSpec struct {
	AdSetID        string
	Name           string
	PageID         string
	ResolvedPostID string
}
