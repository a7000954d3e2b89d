package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

type dialogueFixture struct {
	dialogue    *Dialogue
	interpreter *mocks.MockInterpreter
	geo         *mocks.MockGeoResolver
	platform    *mocks.MockAdPlatform
	posts       *mocks.MockPostResolver
}

func newDialogueFixture(t *testing.T, timeout time.Duration) dialogueFixture {
	t.Helper()
	f := dialogueFixture{
		interpreter: mocks.NewMockInterpreter(t),
		geo:         mocks.NewMockGeoResolver(t),
		platform:    mocks.NewMockAdPlatform(t),
		posts:       mocks.NewMockPostResolver(t),
	}
	pipeline := NewPipeline(f.platform, f.posts, discardLogger(), nil)
	f.dialogue = NewDialogue(f.interpreter, f.geo, pipeline, newTestMessages(t), DialogueConfig{
		MinBudget:          50000,
		InterpreterTimeout: timeout,
	}, discardLogger(), nil)
	return f
}

func TestDialogueStartAsksForMissingAge(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	draft := &domain.DraftCampaign{Name: "Spa", Budget: 100000}
	f.interpreter.EXPECT().Interpret(mock.Anything, "tạo camp spa 100k", testAccount).Return(draft, nil)

	var state domain.DialogueState
	reply := f.dialogue.Start(context.Background(), testAccount, &state, "tạo camp spa 100k")

	assert.Equal(t, domain.StageAwaitingAge, state.Stage)
	assert.Equal(t, string(domain.StageAwaitingAge), reply.Stage)
	assert.True(t, reply.Handled)
	assert.Equal(t, "OUTCOME_ENGAGEMENT", state.Draft.Objective)
	assert.Equal(t, "tạo camp spa 100k", state.RawText)
	assert.Equal(t, reply.Message, state.LastMessage)
}

func TestDialogueStartCompleteDraftGoesToConfirming(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	f.interpreter.EXPECT().Interpret(mock.Anything, mock.Anything, testAccount).Return(completeDraft(), nil)

	var state domain.DialogueState
	reply := f.dialogue.Start(context.Background(), testAccount, &state, "tạo chiến dịch spa")

	assert.Equal(t, domain.StageConfirming, state.Stage)
	assert.Contains(t, reply.Message, "200.000đ")
	assert.Contains(t, reply.Message, "Hà Nội")
}

func TestDialogueStartPrefillsRadiusFromText(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	draft := completeDraft()
	draft.RadiusKm = 0
	draft.Location = nil
	draft.Latitude, draft.Longitude = ptr(10.77), ptr(106.7)
	f.interpreter.EXPECT().Interpret(mock.Anything, mock.Anything, testAccount).Return(draft, nil)

	var state domain.DialogueState
	f.dialogue.Start(context.Background(), testAccount, &state, "tạo quảng cáo quanh quán bán kính 3 km")

	assert.Equal(t, domain.StageConfirming, state.Stage)
	assert.Equal(t, 3.0, state.Draft.RadiusKm)
}

func TestDialogueStartTimeout(t *testing.T) {
	f := newDialogueFixture(t, 20*time.Millisecond)
	f.interpreter.EXPECT().Interpret(mock.Anything, mock.Anything, testAccount).
		RunAndReturn(func(ctx context.Context, _ string, _ domain.Account) (*domain.DraftCampaign, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	previous := completeDraft()
	state := domain.DialogueState{Stage: domain.StageDone, Draft: previous}
	reply := f.dialogue.Start(context.Background(), testAccount, &state, "tạo chiến dịch")

	assert.Equal(t, domain.StageError, state.Stage)
	assert.Same(t, previous, state.Draft, "draft must not change on timeout")
	assert.Contains(t, reply.Message, "quá lâu")
}

func TestDialogueStartInsufficientBalanceVerbatim(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	f.interpreter.EXPECT().Interpret(mock.Anything, mock.Anything, testAccount).
		Return(nil, &port.InsufficientBalanceError{Message: "Tài khoản AI đã hết lượt, vui lòng nạp thêm."})

	var state domain.DialogueState
	reply := f.dialogue.Start(context.Background(), testAccount, &state, "tạo chiến dịch")

	assert.Equal(t, domain.StageError, state.Stage)
	assert.Equal(t, "Tài khoản AI đã hết lượt, vui lòng nạp thêm.", reply.Message)
	assert.Nil(t, state.Draft)
}

func TestDialogueBudgetValidation(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	draft := completeDraft()
	draft.Budget = 0
	state := domain.DialogueState{Stage: domain.StageAwaitingBudget, Draft: draft}

	reply := f.dialogue.HandleInput(context.Background(), testAccount, &state, "20k")
	assert.Equal(t, domain.StageAwaitingBudget, state.Stage)
	assert.Contains(t, reply.Message, "50.000đ")
	assert.Zero(t, state.Draft.Budget)

	f.dialogue.HandleInput(context.Background(), testAccount, &state, "150k")
	assert.Equal(t, int64(150000), state.Draft.Budget)
	assert.Equal(t, domain.StageConfirming, state.Stage)
}

func TestDialogueAgeThenGender(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	draft := completeDraft()
	draft.Age = nil
	draft.Gender = ""
	state := domain.DialogueState{Stage: domain.StageAwaitingAge, Draft: draft}

	f.dialogue.HandleInput(context.Background(), testAccount, &state, "tầm ba mươi")
	assert.Equal(t, domain.StageAwaitingAge, state.Stage)
	assert.Nil(t, state.Draft.Age)

	f.dialogue.HandleInput(context.Background(), testAccount, &state, "25-40")
	assert.Equal(t, &domain.AgeRange{Min: 25, Max: 40}, state.Draft.Age)
	assert.Equal(t, domain.StageAwaitingGender, state.Stage)

	f.dialogue.HandleInput(context.Background(), testAccount, &state, "???")
	assert.Equal(t, domain.StageAwaitingGender, state.Stage)

	f.dialogue.HandleInput(context.Background(), testAccount, &state, "nữ")
	assert.Equal(t, domain.GenderFemale, state.Draft.Gender)
	assert.Equal(t, domain.StageConfirming, state.Stage)
}

func TestDialogueRadiusBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		draft    func() *domain.DraftCampaign
		rejected string
		accepted string
	}{
		{
			name: "city",
			draft: func() *domain.DraftCampaign {
				d := completeDraft()
				d.RadiusKm = 0
				return d
			},
			rejected: "16",
			accepted: "17",
		},
		{
			name: "coordinate",
			draft: func() *domain.DraftCampaign {
				d := completeDraft()
				d.RadiusKm = 0
				d.Location = []domain.Location{{Name: "21.0285,105.8542"}}
				return d
			},
			rejected: "0,5 km",
			accepted: "1",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newDialogueFixture(t, time.Second)
			state := domain.DialogueState{Stage: domain.StageAwaitingRadius, Draft: tc.draft()}

			f.dialogue.HandleInput(context.Background(), testAccount, &state, tc.rejected)
			assert.Equal(t, domain.StageAwaitingRadius, state.Stage)
			assert.Zero(t, state.Draft.RadiusKm)

			f.dialogue.HandleInput(context.Background(), testAccount, &state, tc.accepted)
			assert.Equal(t, domain.StageConfirming, state.Stage)
		})
	}
}

func TestDialogueLocationLookup(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	draft := completeDraft()
	draft.Location = nil
	draft.RadiusKm = 0
	state := domain.DialogueState{Stage: domain.StageAwaitingLocation, Draft: draft}

	f.geo.EXPECT().SearchLocation(mock.Anything, testAccount, "Atlantis").Return(nil, errors.New("no results")).Once()
	reply := f.dialogue.HandleInput(context.Background(), testAccount, &state, "Atlantis")
	assert.Equal(t, domain.StageAwaitingLocation, state.Stage)
	assert.Contains(t, reply.Message, "Atlantis")
	assert.Empty(t, state.Draft.Location)

	f.geo.EXPECT().SearchLocation(mock.Anything, testAccount, "Đà Nẵng").
		Return(&domain.Location{Key: "1035", Name: "Đà Nẵng", Type: domain.LocationCity}, nil).Once()
	f.geo.EXPECT().SearchLocation(mock.Anything, testAccount, "Huế").
		Return(&domain.Location{Key: "1036", Name: "Huế", Type: domain.LocationCity}, nil).Once()

	f.dialogue.HandleInput(context.Background(), testAccount, &state, "Đà Nẵng, Huế")
	require.Len(t, state.Draft.Location, 2)
	assert.Equal(t, domain.LocationCity, state.Draft.LocationType)
	assert.Equal(t, domain.StageAwaitingRadius, state.Stage)
}

func TestDialogueLocationCoordinates(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	draft := completeDraft()
	draft.Location = nil
	draft.RadiusKm = 0
	state := domain.DialogueState{Stage: domain.StageAwaitingLocation, Draft: draft}

	f.dialogue.HandleInput(context.Background(), testAccount, &state, "21.0285, 105.8542")

	require.True(t, state.Draft.HasCoordinates())
	assert.Equal(t, domain.LocationCoordinate, state.Draft.LocationType)
	assert.Equal(t, domain.StageAwaitingRadius, state.Stage)
}

func TestDialogueConfirmCancel(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	state := domain.DialogueState{Stage: domain.StageConfirming, Draft: completeDraft()}

	reply := f.dialogue.HandleInput(context.Background(), testAccount, &state, "để mình xem lại")
	assert.Equal(t, domain.StageConfirming, state.Stage)
	assert.Contains(t, reply.Message, "Xác nhận")

	f.dialogue.HandleInput(context.Background(), testAccount, &state, "hủy")
	assert.Equal(t, domain.StageIdle, state.Stage)
	assert.Nil(t, state.Draft)
}

func TestDialogueConfirmCreates(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	draft := completeDraft()
	draft.ResolvedPostID = "100_1"
	state := domain.DialogueState{Stage: domain.StageConfirming, Draft: draft}

	f.platform.EXPECT().CreateCampaign(mock.Anything, testAccount, mock.Anything).Return("c1", nil)
	f.platform.EXPECT().CreateAdSet(mock.Anything, testAccount, mock.Anything).Return("as1", nil)
	f.platform.EXPECT().CreateAd(mock.Anything, testAccount, mock.MatchedBy(func(s port.AdSpec) bool {
		return s.PageID == testAccount.PageID && s.ResolvedPostID == "100_1"
	})).Return(domain.AdResult{AdID: "ad1", CreativeID: "cr1"}, nil)

	reply := f.dialogue.HandleInput(context.Background(), testAccount, &state, "ok")

	assert.Equal(t, domain.StageDone, state.Stage)
	assert.Nil(t, state.Draft)
	require.NotNil(t, reply.Result)
	assert.Equal(t, "ad1", reply.Result.AdID)
	assert.Contains(t, reply.Message, "c1")
}

func TestDialogueConfirmPartialFailure(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	state := domain.DialogueState{Stage: domain.StageConfirming, Draft: completeDraft()}

	f.platform.EXPECT().CreateCampaign(mock.Anything, testAccount, mock.Anything).Return("c9", nil)
	f.platform.EXPECT().CreateAdSet(mock.Anything, testAccount, mock.Anything).Return("", errors.New("budget too low"))

	reply := f.dialogue.HandleInput(context.Background(), testAccount, &state, "đồng ý")

	assert.Equal(t, domain.StageError, state.Stage)
	require.NotNil(t, state.Result)
	assert.Equal(t, "c9", state.Result.CampaignID)
	assert.Contains(t, reply.Message, "budget too low")
	assert.Contains(t, reply.Message, "c9")
}

func TestDialogueIdleInputStartsOver(t *testing.T) {
	f := newDialogueFixture(t, time.Second)
	f.interpreter.EXPECT().Interpret(mock.Anything, "tạo lại", testAccount).Return(completeDraft(), nil)

	state := domain.DialogueState{Stage: domain.StageDone}
	f.dialogue.HandleInput(context.Background(), testAccount, &state, "tạo lại")
	assert.Equal(t, domain.StageConfirming, state.Stage)
}
