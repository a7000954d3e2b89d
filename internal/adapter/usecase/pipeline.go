package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

const (
	defaultObjective = "OUTCOME_ENGAGEMENT"
	billingEvent     = "IMPRESSIONS"
)

// Step names used in rejection errors.
const (
	stepCreateCampaign = "create campaign"
	stepCreateAdSet    = "create ad set"
	stepCreateAd       = "create ad"
)

// optimizationGoals maps a campaign objective to the ad set goal the
// platform accepts for it.
var optimizationGoals = map[string]string{
	"OUTCOME_TRAFFIC":    "LINK_CLICKS",
	"OUTCOME_ENGAGEMENT": "POST_ENGAGEMENT",
	"OUTCOME_AWARENESS":  "REACH",
	"OUTCOME_LEADS":      "LEAD_GENERATION",
	"OUTCOME_SALES":      "OFFSITE_CONVERSIONS",
}

var (
	postIDPattern = regexp.MustCompile(`^\d+_\d+$`)

	// ctaMarkers identify the platform refusal for posts without a
	// call-to-action button. Only the ad step can produce it.
	ctaMarkers = []string{"call to action", "call_to_action", "call-to-action"}
)

// Pipeline executes the three dependent creation steps. Each step is also
// callable on its own so a caller can resume from a cached identifier.
type Pipeline struct {
	platform port.AdPlatform
	posts    port.PostResolver
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewPipeline wires the creation pipeline.
func NewPipeline(platform port.AdPlatform, posts port.PostResolver, logger *slog.Logger, m *metrics.Metrics) *Pipeline {
	return &Pipeline{platform: platform, posts: posts, logger: logger, metrics: m}
}

// Run creates campaign, ad set and ad in order. The result always carries
// the identifiers created before a failure; nothing is rolled back.
func (p *Pipeline) Run(ctx context.Context, acct domain.Account, draft domain.DraftCampaign, targeting domain.Targeting) (domain.PipelineResult, error) {
	var res domain.PipelineResult

	campaignID, err := p.CreateCampaign(ctx, acct, draft.Name, draft.Objective)
	if err != nil {
		return res, err
	}
	res.CampaignID = campaignID

	adSetID, err := p.CreateAdSet(ctx, acct, campaignID, adSetName(draft.Name), draft, targeting)
	if err != nil {
		p.logger.Warn("ad set failed after campaign was created", "campaign_id", campaignID, "err", err)
		return res, err
	}
	res.AdSetID = adSetID

	ad, err := p.CreateAd(ctx, acct, adSetID, adName(draft.Name), draft)
	if err != nil {
		p.logger.Warn("ad failed after ad set was created", "campaign_id", campaignID, "adset_id", adSetID, "err", err)
		return res, err
	}
	res.AdID = ad.AdID
	res.CreativeID = ad.CreativeID

	p.logger.Info("campaign created",
		"campaign_id", res.CampaignID,
		"adset_id", res.AdSetID,
		"ad_id", res.AdID,
	)
	return res, nil
}

// CreateCampaign is step one. A rejection is fatal and not retried.
func (p *Pipeline) CreateCampaign(ctx context.Context, acct domain.Account, name, objective string) (string, error) {
	if objective == "" {
		objective = defaultObjective
	}
	id, err := p.platform.CreateCampaign(ctx, acct, port.CampaignSpec{Name: name, Objective: objective})
	err = classifyPlatformError(stepCreateCampaign, err)
	p.metrics.IncPipelineStep("campaign", err)
	if err != nil {
		return "", err
	}
	return id, nil
}

// CreateAdSet is step two. The budget shape follows the draft budget type.
func (p *Pipeline) CreateAdSet(
	ctx context.Context,
	acct domain.Account,
	campaignID, name string,
	draft domain.DraftCampaign,
	targeting domain.Targeting,
) (string, error) {
	spec := port.AdSetSpec{
		CampaignID:       campaignID,
		Name:             name,
		Targeting:        targeting,
		OptimizationGoal: optimizationGoal(draft.Objective),
		BillingEvent:     billingEvent,
	}
	if draft.IsLifetime() {
		spec.LifetimeBudget = draft.EffectiveBudget()
		spec.StartTime = draft.StartTime
		spec.EndTime = draft.EndTime
		spec.Schedule = scheduleBlocks(draft.ScheduleSlots)
	} else {
		spec.DailyBudget = draft.Budget
	}

	id, err := p.platform.CreateAdSet(ctx, acct, spec)
	err = classifyPlatformError(stepCreateAdSet, err)
	p.metrics.IncPipelineStep("adset", err)
	if err != nil {
		return "", err
	}
	return id, nil
}

// CreateAd is step three. Without a cached post id the post URL is resolved
// first; the id must look like "<page>_<post>".
func (p *Pipeline) CreateAd(ctx context.Context, acct domain.Account, adSetID, name string, draft domain.DraftCampaign) (domain.AdResult, error) {
	pageID := draft.PageID
	if pageID == "" {
		pageID = acct.PageID
	}

	postID, err := p.resolvePost(ctx, acct, draft, pageID)
	if err != nil {
		p.metrics.IncPipelineStep("ad", err)
		return domain.AdResult{}, err
	}

	res, err := p.platform.CreateAd(ctx, acct, port.AdSpec{
		AdSetID:        adSetID,
		Name:           name,
		PageID:         pageID,
		ResolvedPostID: postID,
	})
	err = classifyPlatformError(stepCreateAd, err)
	p.metrics.IncPipelineStep("ad", err)
	if err != nil {
		return domain.AdResult{}, err
	}
	res.PostID = postID
	return res, nil
}

func (p *Pipeline) resolvePost(ctx context.Context, acct domain.Account, draft domain.DraftCampaign, pageID string) (string, error) {
	id := strings.TrimSpace(draft.ResolvedPostID)
	if id == "" && postIDPattern.MatchString(strings.TrimSpace(draft.PostURL)) {
		id = strings.TrimSpace(draft.PostURL)
	}
	if id == "" {
		if draft.PostURL == "" {
			return "", fmt.Errorf("%w: no post url", port.ErrPostResolution)
		}
		resolved, err := p.posts.ResolvePost(ctx, draft.PostURL, pageID, acct.AccessToken)
		if err != nil {
			return "", fmt.Errorf("%w: %w", port.ErrPostResolution, err)
		}
		id = strings.TrimSpace(resolved)
	}
	if !postIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q", port.ErrInvalidPostID, id)
	}
	return id, nil
}

// classifyPlatformError sorts a creation failure into the known causes.
// Timeouts and cancellations pass through unchanged.
func classifyPlatformError(step string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, port.ErrMissingCallToAction) || errors.Is(err, port.ErrPlatformRejected) {
		return err
	}
	if step == stepCreateAd {
		lower := strings.ToLower(err.Error())
		for _, m := range ctaMarkers {
			if strings.Contains(lower, m) {
				return fmt.Errorf("%w: %w", port.ErrMissingCallToAction, err)
			}
		}
	}
	return fmt.Errorf("%w: %s: %w", port.ErrPlatformRejected, step, err)
}

func optimizationGoal(objective string) string {
	if g, ok := optimizationGoals[objective]; ok {
		return g
	}
	return optimizationGoals[defaultObjective]
}

// scheduleBlocks converts hour-of-day slots into minute-of-day blocks.
func scheduleBlocks(slots []domain.ScheduleSlot) []port.ScheduleBlock {
	if len(slots) == 0 {
		return nil
	}
	blocks := make([]port.ScheduleBlock, 0, len(slots))
	for _, s := range slots {
		blocks = append(blocks, port.ScheduleBlock{
			StartMinute: s.StartHour * 60,
			EndMinute:   s.EndHour * 60,
			Days:        s.Days,
		})
	}
	return blocks
}

func adSetName(campaign string) string { return campaign + " - Nhóm quảng cáo" }
func adName(campaign string) string    { return campaign + " - Quảng cáo" }
