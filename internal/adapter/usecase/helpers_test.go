package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

var testAccount = domain.Account{
	UserID:      "u1",
	AccessToken: "token",
	AdAccountID: "act_1",
	PageID:      "100",
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMessages(t *testing.T) *Messages {
	t.Helper()
	msgs, err := NewMessages()
	require.NoError(t, err)
	return msgs
}

func ptr[T any](v T) *T { return &v }

// completeDraft has every slot filled for a city geography.
func completeDraft() *domain.DraftCampaign {
	return &domain.DraftCampaign{
		Name:      "Spa khai trương",
		Objective: "OUTCOME_ENGAGEMENT",
		Budget:    200000,
		Age:       &domain.AgeRange{Min: 22, Max: 45},
		Gender:    domain.GenderFemale,
		Location:  []domain.Location{{Key: "2347", Name: "Hà Nội", Type: domain.LocationCity}},
		RadiusKm:  20,
		PostURL:   "https://www.facebook.com/spa/posts/1",
	}
}
