package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// createdStatus is the configured status of every created object.
const createdStatus = domain.StatusActive

// CreateCampaign creates a campaign and returns its id.
func (c *Client) CreateCampaign(ctx context.Context, acct domain.Account, spec port.CampaignSpec) (string, error) {
	params := url.Values{
		"name":                  {spec.Name},
		"objective":             {spec.Objective},
		"status":                {createdStatus},
		"special_ad_categories": {"[]"},
	}
	return c.create(ctx, acct, "campaigns", params)
}

// CreateAdSet creates an ad set under spec.CampaignID.
func (c *Client) CreateAdSet(ctx context.Context, acct domain.Account, spec port.AdSetSpec) (string, error) {
	targeting, err := json.Marshal(spec.Targeting)
	if err != nil {
		return "", err
	}

	params := url.Values{
		"name":              {spec.Name},
		"campaign_id":       {spec.CampaignID},
		"targeting":         {string(targeting)},
		"optimization_goal": {spec.OptimizationGoal},
		"billing_event":     {spec.BillingEvent},
		"status":            {createdStatus},
	}
	if spec.LifetimeBudget > 0 {
		params.Set("lifetime_budget", strconv.FormatInt(spec.LifetimeBudget, 10))
	} else {
		params.Set("daily_budget", strconv.FormatInt(spec.DailyBudget, 10))
	}
	if spec.StartTime != "" {
		params.Set("start_time", spec.StartTime)
	}
	if spec.EndTime != "" {
		params.Set("end_time", spec.EndTime)
	}
	if len(spec.Schedule) > 0 {
		schedule, err := json.Marshal(spec.Schedule)
		if err != nil {
			return "", err
		}
		params.Set("adset_schedule", string(schedule))
		params.Set("pacing_type", `["day_parting"]`)
	}

	return c.create(ctx, acct, "adsets", params)
}

// CreateAd creates a creative from the resolved post and an ad using it.
func (c *Client) CreateAd(ctx context.Context, acct domain.Account, spec port.AdSpec) (domain.AdResult, error) {
	creativeID, err := c.create(ctx, acct, "adcreatives", url.Values{
		"name":            {spec.Name},
		"object_story_id": {spec.ResolvedPostID},
	})
	if err != nil {
		return domain.AdResult{}, fmt.Errorf("creative: %w", err)
	}

	creative, err := json.Marshal(map[string]string{"creative_id": creativeID})
	if err != nil {
		return domain.AdResult{}, err
	}
	adID, err := c.create(ctx, acct, "ads", url.Values{
		"name":     {spec.Name},
		"adset_id": {spec.AdSetID},
		"creative": {string(creative)},
		"status":   {createdStatus},
	})
	if err != nil {
		return domain.AdResult{CreativeID: creativeID}, err
	}

	return domain.AdResult{AdID: adID, CreativeID: creativeID, PostID: spec.ResolvedPostID}, nil
}

func (c *Client) create(ctx context.Context, acct domain.Account, edge string, params url.Values) (string, error) {
	res, err := c.post(ctx, acct.AccessToken, accountPath(acct, edge), params)
	if err != nil {
		return "", err
	}
	id := res.Get("id").String()
	if id == "" {
		return "", fmt.Errorf("create %s: response carries no id", edge)
	}
	return id, nil
}
