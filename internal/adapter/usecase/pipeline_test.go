package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

func newTestPipeline(t *testing.T) (*Pipeline, *mocks.MockAdPlatform, *mocks.MockPostResolver) {
	t.Helper()
	platform := mocks.NewMockAdPlatform(t)
	posts := mocks.NewMockPostResolver(t)
	return NewPipeline(platform, posts, discardLogger(), nil), platform, posts
}

func TestPipelineRunCreatesAllThreeSteps(t *testing.T) {
	p, platform, posts := newTestPipeline(t)
	draft := *completeDraft()
	targeting, err := Compile(draft, nil)
	require.NoError(t, err)

	platform.EXPECT().
		CreateCampaign(mock.Anything, testAccount, port.CampaignSpec{Name: draft.Name, Objective: "OUTCOME_ENGAGEMENT"}).
		Return("c1", nil)
	platform.EXPECT().
		CreateAdSet(mock.Anything, testAccount, mock.MatchedBy(func(s port.AdSetSpec) bool {
			return s.CampaignID == "c1" &&
				s.DailyBudget == 200000 &&
				s.LifetimeBudget == 0 &&
				s.OptimizationGoal == "POST_ENGAGEMENT" &&
				s.BillingEvent == "IMPRESSIONS" &&
				len(s.Targeting.GeoLocations.Cities) == 1
		})).
		Return("as1", nil)
	posts.EXPECT().
		ResolvePost(mock.Anything, draft.PostURL, "100", "token").
		Return("100_200", nil)
	platform.EXPECT().
		CreateAd(mock.Anything, testAccount, port.AdSpec{
			AdSetID:        "as1",
			Name:           adName(draft.Name),
			PageID:         "100",
			ResolvedPostID: "100_200",
		}).
		Return(domain.AdResult{AdID: "ad1", CreativeID: "cr1"}, nil)

	res, err := p.Run(context.Background(), testAccount, draft, *targeting)
	require.NoError(t, err)
	assert.Equal(t, domain.PipelineResult{CampaignID: "c1", AdSetID: "as1", AdID: "ad1", CreativeID: "cr1"}, res)
	assert.True(t, res.Complete())
}

func TestPipelineAdSetFailureKeepsCampaignID(t *testing.T) {
	p, platform, _ := newTestPipeline(t)
	draft := *completeDraft()

	platform.EXPECT().CreateCampaign(mock.Anything, testAccount, mock.Anything).Return("c1", nil)
	platform.EXPECT().CreateAdSet(mock.Anything, testAccount, mock.Anything).
		Return("", errors.New("Invalid parameter: budget too low"))

	res, err := p.Run(context.Background(), testAccount, draft, domain.Targeting{})
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrPlatformRejected)
	assert.Equal(t, "c1", res.CampaignID)
	assert.Empty(t, res.AdSetID)
	assert.False(t, res.Complete())
}

func TestPipelineCampaignRejectionIsFatal(t *testing.T) {
	p, platform, _ := newTestPipeline(t)

	platform.EXPECT().CreateCampaign(mock.Anything, testAccount, mock.Anything).
		Return("", errors.New("invalid objective")).Once()

	res, err := p.Run(context.Background(), testAccount, *completeDraft(), domain.Targeting{})
	assert.ErrorIs(t, err, port.ErrPlatformRejected)
	assert.Equal(t, domain.PipelineResult{}, res)
}

func TestPipelineLifetimeBudgetSchedule(t *testing.T) {
	p, platform, _ := newTestPipeline(t)
	draft := *completeDraft()
	draft.BudgetType = domain.BudgetLifetime
	draft.LifetimeBudget = 3000000
	draft.StartTime = "2026-11-01T00:00:00+0700"
	draft.EndTime = "2026-11-30T23:59:00+0700"
	draft.ScheduleSlots = []domain.ScheduleSlot{{Days: []int{1, 2, 3}, StartHour: 8, EndHour: 22}}

	platform.EXPECT().
		CreateAdSet(mock.Anything, testAccount, mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.Account, s port.AdSetSpec) (string, error) {
			assert.Zero(t, s.DailyBudget)
			assert.Equal(t, int64(3000000), s.LifetimeBudget)
			assert.Equal(t, draft.StartTime, s.StartTime)
			assert.Equal(t, draft.EndTime, s.EndTime)
			assert.Equal(t, []port.ScheduleBlock{{StartMinute: 480, EndMinute: 1320, Days: []int{1, 2, 3}}}, s.Schedule)
			return "as1", nil
		})

	id, err := p.CreateAdSet(context.Background(), testAccount, "c1", "set", draft, domain.Targeting{})
	require.NoError(t, err)
	assert.Equal(t, "as1", id)
}

func TestPipelineCreateAdUsesCachedPostID(t *testing.T) {
	p, platform, _ := newTestPipeline(t)
	draft := domain.DraftCampaign{ResolvedPostID: "100_300", PageID: "200"}

	platform.EXPECT().
		CreateAd(mock.Anything, testAccount, port.AdSpec{AdSetID: "as1", Name: "ad", PageID: "200", ResolvedPostID: "100_300"}).
		Return(domain.AdResult{AdID: "ad1", CreativeID: "cr1"}, nil)

	res, err := p.CreateAd(context.Background(), testAccount, "as1", "ad", draft)
	require.NoError(t, err)
	assert.Equal(t, domain.AdResult{AdID: "ad1", CreativeID: "cr1", PostID: "100_300"}, res)
}

func TestPipelineCreateAdPostResolutionFailure(t *testing.T) {
	p, _, posts := newTestPipeline(t)
	draft := domain.DraftCampaign{PostURL: "https://fb.com/p/1"}

	posts.EXPECT().ResolvePost(mock.Anything, "https://fb.com/p/1", "100", "token").
		Return("", errors.New("permission denied"))

	_, err := p.CreateAd(context.Background(), testAccount, "as1", "ad", draft)
	assert.ErrorIs(t, err, port.ErrPostResolution)

	_, err = p.CreateAd(context.Background(), testAccount, "as1", "ad", domain.DraftCampaign{})
	assert.ErrorIs(t, err, port.ErrPostResolution)
}

func TestPipelineCreateAdRejectsMalformedPostID(t *testing.T) {
	p, _, posts := newTestPipeline(t)

	posts.EXPECT().ResolvePost(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("pfbid02abc", nil)

	_, err := p.CreateAd(context.Background(), testAccount, "as1", "ad", domain.DraftCampaign{PostURL: "https://fb.com/p/1"})
	require.ErrorIs(t, err, port.ErrInvalidPostID)
	assert.Contains(t, err.Error(), `"pfbid02abc"`)
}

func TestPipelineCreateAdMissingCallToAction(t *testing.T) {
	p, platform, _ := newTestPipeline(t)

	platform.EXPECT().CreateAd(mock.Anything, testAccount, mock.Anything).
		Return(domain.AdResult{}, errors.New("(#100) The post must have a call_to_action button"))

	_, err := p.CreateAd(context.Background(), testAccount, "as1", "ad", domain.DraftCampaign{ResolvedPostID: "1_2"})
	assert.ErrorIs(t, err, port.ErrMissingCallToAction)
	assert.NotErrorIs(t, err, port.ErrPlatformRejected)
}

func TestPipelineCallToActionOnlyAtAdStep(t *testing.T) {
	p, platform, _ := newTestPipeline(t)

	platform.EXPECT().CreateCampaign(mock.Anything, testAccount, mock.Anything).
		Return("", errors.New("graph: (#100) Expectation failed for objective"))

	_, err := p.CreateCampaign(context.Background(), testAccount, "Spa", "")
	require.ErrorIs(t, err, port.ErrPlatformRejected)
	assert.NotErrorIs(t, err, port.ErrMissingCallToAction)
	assert.Contains(t, err.Error(), "create campaign")
}

func TestClassifyPlatformError(t *testing.T) {
	tests := []struct {
		name string
		step string
		err  error
		want error
	}{
		{"cta at ad step", stepCreateAd, errors.New("(#100) Post has no call-to-action"), port.ErrMissingCallToAction},
		{"cta wording at campaign step", stepCreateCampaign, errors.New("(#100) call_to_action is invalid"), port.ErrPlatformRejected},
		{"cta wording at ad set step", stepCreateAdSet, errors.New("(#100) call to action missing"), port.ErrPlatformRejected},
		{"word containing cta at ad step", stepCreateAd, errors.New("(#100) Expectation failed"), port.ErrPlatformRejected},
		{"dictate at ad step", stepCreateAd, errors.New("(#100) policies dictate review"), port.ErrPlatformRejected},
		{"deadline passes through", stepCreateAd, context.DeadlineExceeded, context.DeadlineExceeded},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyPlatformError(tc.step, tc.err)
			assert.ErrorIs(t, err, tc.want)
			if tc.want == port.ErrPlatformRejected {
				assert.NotErrorIs(t, err, port.ErrMissingCallToAction)
			}
		})
	}
	assert.NoError(t, classifyPlatformError(stepCreateAd, nil))
}

func TestPipelinePostURLMayBeAnID(t *testing.T) {
	p, platform, _ := newTestPipeline(t)

	platform.EXPECT().CreateAd(mock.Anything, testAccount, mock.MatchedBy(func(s port.AdSpec) bool {
		return s.ResolvedPostID == "100_42"
	})).Return(domain.AdResult{AdID: "ad"}, nil)

	_, err := p.CreateAd(context.Background(), testAccount, "as1", "ad", domain.DraftCampaign{PostURL: "100_42"})
	require.NoError(t, err)
}

func TestOptimizationGoal(t *testing.T) {
	assert.Equal(t, "LINK_CLICKS", optimizationGoal("OUTCOME_TRAFFIC"))
	assert.Equal(t, "LEAD_GENERATION", optimizationGoal("OUTCOME_LEADS"))
	assert.Equal(t, "POST_ENGAGEMENT", optimizationGoal("SOMETHING_ELSE"))
}

func TestDescribeError(t *testing.T) {
	msgs := newTestMessages(t)

	balance := &port.InsufficientBalanceError{Message: "Số dư không đủ, vui lòng nạp thêm 50.000đ."}
	assert.Equal(t, balance.Message, describeError(msgs, balance))

	assert.Contains(t, describeError(msgs, errors.New("interpreter: rate limit exceeded")), "quá tải")
	assert.Contains(t, describeError(msgs, errors.New("invalid character 'x' looking for value")), "Chưa hiểu")
	assert.Equal(t, "Đã có lỗi xảy ra: boom", describeError(msgs, errors.New("boom")))
	assert.Contains(t, describeError(msgs, port.ErrInterpreterTimeout), "quá lâu")
}
