package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"200k", 200000, true},
		{"200 k", 200000, true},
		{"300.000", 300000, true},
		{"1.500.000đ", 1500000, true},
		{"1,5 triệu", 1500000, true},
		{"2tr", 2000000, true},
		{"500 nghìn mỗi ngày", 500000, true},
		{"80000", 80000, true},
		{"100 mỗi ngày", 100, true},
		{"không biết", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := parseAmount(tc.in)
			require.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		in   string
		want *domain.AgeRange
	}{
		{"18-45", &domain.AgeRange{Min: 18, Max: 45}},
		{"từ 25 đến 40 tuổi", &domain.AgeRange{Min: 25, Max: 40}},
		{"22 – 35", &domain.AgeRange{Min: 22, Max: 35}},
		{"45-18", nil},
		{"10-20", nil},
		{"khoảng 30", nil},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := parseAge(tc.in)
			assert.Equal(t, tc.want != nil, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Gender
	}{
		{"Nữ", domain.GenderFemale},
		{"nam", domain.GenderMale},
		{"cả nam nữ", domain.GenderAll},
		{"tất cả", domain.GenderAll},
		{"female", domain.GenderFemale},
		{"chị em phụ nữ", domain.GenderFemale},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := parseGender(tc.in)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := parseGender("không rõ")
	assert.False(t, ok)
}

func TestConfirmationWords(t *testing.T) {
	assert.True(t, isAffirmative("Ok"))
	assert.True(t, isAffirmative("đồng ý nhé"))
	assert.True(t, isNegative("không đồng ý"))
	assert.True(t, isNegative("Hủy"))
	assert.False(t, isAffirmative("để mình nghĩ đã"))
	assert.False(t, isNegative("để mình nghĩ đã"))
}

func TestNextStageAgeBeforeEverythingElse(t *testing.T) {
	// Age is owed even though gender, geography and radius are missing too.
	draft := domain.DraftCampaign{Budget: 100000}
	assert.Equal(t, domain.StageAwaitingAge, nextStage(draft, 50000))

	draft.Gender = domain.GenderMale
	assert.Equal(t, domain.StageAwaitingAge, nextStage(draft, 50000))

	draft.Location = []domain.Location{{Key: "2347", Type: domain.LocationCity}}
	assert.Equal(t, domain.StageAwaitingAge, nextStage(draft, 50000))
}

func TestNextStageOrder(t *testing.T) {
	draft := domain.DraftCampaign{}
	assert.Equal(t, domain.StageAwaitingBudget, nextStage(draft, 50000))

	draft.Budget = 40000
	assert.Equal(t, domain.StageAwaitingBudget, nextStage(draft, 50000), "below minimum")

	draft.Budget = 50000
	draft.Age = &domain.AgeRange{Min: 18, Max: 40}
	assert.Equal(t, domain.StageAwaitingGender, nextStage(draft, 50000))

	draft.Gender = domain.GenderAll
	assert.Equal(t, domain.StageAwaitingLocation, nextStage(draft, 50000))

	draft.Location = []domain.Location{{Key: "2347", Type: domain.LocationCity}}
	assert.Equal(t, domain.StageAwaitingRadius, nextStage(draft, 50000))

	draft.RadiusKm = 17
	assert.Equal(t, domain.StageConfirming, nextStage(draft, 50000))
}

func TestNextStageLifetimeBudget(t *testing.T) {
	draft := *completeDraft()
	draft.Budget = 0
	draft.BudgetType = domain.BudgetLifetime
	assert.Equal(t, domain.StageAwaitingBudget, nextStage(draft, 50000))

	draft.LifetimeBudget = 5000000
	assert.Equal(t, domain.StageConfirming, nextStage(draft, 50000))
}

func TestNextStageRadiusPolicy(t *testing.T) {
	base := func() domain.DraftCampaign {
		d := *completeDraft()
		d.RadiusKm = 0
		return d
	}

	city := base()
	city.RadiusKm = 16
	assert.Equal(t, domain.StageAwaitingRadius, nextStage(city, 50000))
	city.RadiusKm = 17
	assert.Equal(t, domain.StageConfirming, nextStage(city, 50000))

	coord := base()
	coord.Location = nil
	coord.Latitude, coord.Longitude = ptr(21.0), ptr(105.8)
	coord.RadiusKm = 0.5
	assert.Equal(t, domain.StageAwaitingRadius, nextStage(coord, 50000))
	coord.RadiusKm = 1
	assert.Equal(t, domain.StageConfirming, nextStage(coord, 50000))

	country := base()
	country.Location = []domain.Location{{Key: "VN", Type: domain.LocationCountry}}
	assert.Equal(t, domain.StageConfirming, nextStage(country, 50000))
}

func TestPrefillRadiusOnlyForCoordinates(t *testing.T) {
	coord := domain.DraftCampaign{Location: []domain.Location{{Key: "21.02,105.85"}}}
	prefillRadius(&coord, "chạy quanh quán bán kính 3 km nhé")
	assert.Equal(t, 3.0, coord.RadiusKm)

	city := domain.DraftCampaign{Location: []domain.Location{{Key: "2347", Type: domain.LocationCity}}}
	prefillRadius(&city, "Hà Nội 5km")
	assert.Zero(t, city.RadiusKm)

	set := domain.DraftCampaign{RadiusKm: 2, Latitude: ptr(21.0), Longitude: ptr(105.8)}
	prefillRadius(&set, "8 km")
	assert.Equal(t, 2.0, set.RadiusKm)
}
