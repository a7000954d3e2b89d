package db

import (
	"context"
	"fmt"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Seed stores a demo draft hierarchy for owner and tags it with the "demo"
// label. It returns the id of the stored draft.
func Seed(ctx context.Context, drafts port.DraftRepository, labels port.LabelStore, owner, postURL string) (string, error) {
	budget := domain.DraftCampaign{
		Budget:       200000,
		BudgetType:   domain.BudgetDaily,
		Age:          &domain.AgeRange{Min: 22, Max: 45},
		Gender:       domain.GenderAll,
		LocationType: domain.LocationCity,
		RadiusKm:     20,
	}

	hanoi := budget
	hanoi.Location = []domain.Location{{Key: "2347", Name: "Hà Nội", Type: domain.LocationCity}}
	saigon := budget
	saigon.Location = []domain.Location{{Key: "2374", Name: "Hồ Chí Minh", Type: domain.LocationCity}}

	tree := domain.DraftTree{
		Campaign: domain.CampaignNode{
			Name:      "Demo - Khai trương",
			Objective: "OUTCOME_ENGAGEMENT",
			AdSets: []domain.AdSetNode{
				{Name: "Hà Nội", Draft: hanoi, Ads: []domain.AdNode{{Name: "Bài viết khai trương", PostURL: postURL}}},
				{Name: "Hồ Chí Minh", Draft: saigon, Ads: []domain.AdNode{{Name: "Bài viết khai trương", PostURL: postURL}}},
			},
		},
	}

	id, err := drafts.CreateDraft(ctx, owner, tree)
	if err != nil {
		return "", fmt.Errorf("create demo draft: %w", err)
	}

	if err = labels.SetLabels(ctx, id, []string{"demo"}); err != nil {
		return "", fmt.Errorf("label demo draft: %w", err)
	}
	return id, nil
}
