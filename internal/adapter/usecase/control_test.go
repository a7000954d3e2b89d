package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

type matcherFixture struct {
	matcher  *Matcher
	catalog  *mocks.MockCatalog
	mutator  *mocks.MockStatusMutator
	labels   *mocks.MockLabelStore
	notifier *mocks.MockStatusNotifier
}

func newMatcherFixture(t *testing.T) matcherFixture {
	t.Helper()
	f := matcherFixture{
		catalog:  mocks.NewMockCatalog(t),
		mutator:  mocks.NewMockStatusMutator(t),
		labels:   mocks.NewMockLabelStore(t),
		notifier: mocks.NewMockStatusNotifier(t),
	}
	f.matcher = NewMatcher(f.catalog, f.mutator, f.labels, f.notifier, newTestMessages(t), discardLogger(), nil)
	return f
}

func sampleCatalog() []domain.EntityMatch {
	return []domain.EntityMatch{
		{ID: "1", Name: "Tết sale", Status: "PAUSED", EffectiveStatus: "PAUSED", Scope: domain.ScopeCampaign},
		{ID: "2", Name: "Spa làm đẹp", Status: "ACTIVE", EffectiveStatus: "ACTIVE", Scope: domain.ScopeCampaign},
		{ID: "3", Name: "Spa cuối tuần", Status: "ACTIVE", EffectiveStatus: "CAMPAIGN_PAUSED", Scope: domain.ScopeCampaign},
		{ID: "4", Name: "Khai trương", Status: "ACTIVE", EffectiveStatus: "ACTIVE", Scope: domain.ScopeCampaign},
	}
}

func TestMatcherToggleEndToEnd(t *testing.T) {
	f := newMatcherFixture(t)
	intent := Classify("Tắt chiến dịch Spa")
	require.Equal(t, domain.ToggleIntent{Action: domain.ActionPause, TargetName: "spa", Scope: domain.ScopeCampaign}, intent)

	f.catalog.EXPECT().GetEntities(mock.Anything, testAccount, domain.ScopeCampaign).
		Return([]domain.EntityMatch{{ID: "42", Name: "Spa làm đẹp", Status: "ACTIVE", EffectiveStatus: "ACTIVE", Scope: domain.ScopeCampaign}}, nil)

	var state domain.ControlState
	reply := f.matcher.Handle(context.Background(), testAccount, &state, intent)

	assert.Equal(t, domain.ControlConfirming, state.Stage)
	require.Len(t, state.FoundCampaigns, 1)
	assert.Equal(t, domain.ActionPause, state.TargetAction)
	assert.Contains(t, reply.Message, "Spa làm đẹp")

	f.mutator.EXPECT().SetEntityStatus(mock.Anything, testAccount, "42", domain.ActionPause).Return(nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.EntityID == "42" && c.Status == "PAUSED" && c.Action == domain.ActionPause
	})).Return(nil)

	reply = f.matcher.Confirm(context.Background(), testAccount, &state, "ok")

	assert.Equal(t, domain.ControlIdle, state.Stage)
	assert.Empty(t, state.FoundCampaigns)
	require.Len(t, reply.Entities, 1)
	assert.Equal(t, "PAUSED", reply.Entities[0].EffectiveStatus)
}

func TestMatcherToggleNoMatchIsDone(t *testing.T) {
	f := newMatcherFixture(t)
	f.catalog.EXPECT().GetEntities(mock.Anything, testAccount, domain.ScopeCampaign).Return(sampleCatalog(), nil)

	var state domain.ControlState
	reply := f.matcher.Handle(context.Background(), testAccount, &state,
		domain.ToggleIntent{Action: domain.ActionActivate, TargetName: "noel", Scope: domain.ScopeCampaign})

	assert.Equal(t, domain.ControlDone, state.Stage)
	assert.Empty(t, state.FoundCampaigns)
	assert.Contains(t, reply.Message, "noel")
}

func TestMatcherToggleWithoutNameSkipsCatalog(t *testing.T) {
	f := newMatcherFixture(t)

	var state domain.ControlState
	f.matcher.Handle(context.Background(), testAccount, &state,
		domain.ToggleIntent{Action: domain.ActionPause, Scope: domain.ScopeAd})

	assert.Equal(t, domain.ControlDone, state.Stage)
	f.catalog.AssertNotCalled(t, "GetEntities", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatcherConfirmPicksByNumber(t *testing.T) {
	f := newMatcherFixture(t)
	f.catalog.EXPECT().GetEntities(mock.Anything, testAccount, domain.ScopeCampaign).Return(sampleCatalog(), nil)

	var state domain.ControlState
	f.matcher.Handle(context.Background(), testAccount, &state,
		domain.ToggleIntent{Action: domain.ActionPause, TargetName: "spa", Scope: domain.ScopeCampaign})
	require.Equal(t, domain.ControlConfirming, state.Stage)
	require.Len(t, state.FoundCampaigns, 2)
	// Active first.
	assert.Equal(t, "2", state.FoundCampaigns[0].ID)

	reply := f.matcher.Confirm(context.Background(), testAccount, &state, "ok")
	assert.Equal(t, domain.ControlConfirming, state.Stage, "ambiguous yes asks for a number")
	assert.Contains(t, reply.Message, "1-2")

	reply = f.matcher.Confirm(context.Background(), testAccount, &state, "chờ chút")
	assert.Equal(t, domain.ControlConfirming, state.Stage)
	assert.Len(t, reply.Entities, 2)

	f.mutator.EXPECT().SetEntityStatus(mock.Anything, testAccount, "3", domain.ActionPause).Return(nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("redis down"))

	f.matcher.Confirm(context.Background(), testAccount, &state, "số 2")
	assert.Equal(t, domain.ControlIdle, state.Stage)
}

func TestMatcherConfirmNegativeCancels(t *testing.T) {
	f := newMatcherFixture(t)
	state := domain.ControlState{
		Stage:          domain.ControlConfirming,
		FoundCampaigns: sampleCatalog()[:1],
		TargetAction:   domain.ActionActivate,
	}

	reply := f.matcher.Confirm(context.Background(), testAccount, &state, "không")

	assert.Equal(t, domain.ControlIdle, state.Stage)
	assert.Empty(t, state.FoundCampaigns)
	assert.Equal(t, "Đã hủy.", reply.Message)
}

func TestMatcherMutationFailureIsReported(t *testing.T) {
	f := newMatcherFixture(t)
	state := domain.ControlState{
		Stage:          domain.ControlConfirming,
		FoundCampaigns: []domain.EntityMatch{{ID: "1", Name: "Tết sale", Status: "PAUSED", Scope: domain.ScopeCampaign}},
		TargetAction:   domain.ActionActivate,
	}
	f.mutator.EXPECT().SetEntityStatus(mock.Anything, testAccount, "1", domain.ActionActivate).
		Return(errors.New("(#200) permissions error"))

	reply := f.matcher.Confirm(context.Background(), testAccount, &state, "có")

	assert.Equal(t, domain.ControlDone, state.Stage)
	assert.Contains(t, reply.Message, "permissions error")
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestMatcherListFiltersSortsAndLabels(t *testing.T) {
	f := newMatcherFixture(t)
	catalog := sampleCatalog()
	f.catalog.EXPECT().GetEntities(mock.Anything, testAccount, domain.ScopeCampaign).Return(catalog, nil)
	f.labels.EXPECT().LabelsFor(mock.Anything, []string{"2", "4", "1", "3"}).
		Return(map[string][]string{"4": {"VIP"}}, nil)

	var state domain.ControlState
	reply := f.matcher.Handle(context.Background(), testAccount, &state,
		domain.ListIntent{Status: domain.ListAll, Scope: domain.ScopeCampaign})

	assert.Equal(t, domain.ControlDone, state.Stage)
	require.Len(t, reply.Entities, 4)
	ids := []string{reply.Entities[0].ID, reply.Entities[1].ID, reply.Entities[2].ID, reply.Entities[3].ID}
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids)
	assert.Equal(t, []string{"VIP"}, reply.Entities[1].Labels)
	assert.Contains(t, reply.Message, "[VIP]")
	assert.Nil(t, catalog[3].Labels, "catalog snapshot is not mutated")
}

func TestMatcherListStatusFilter(t *testing.T) {
	tests := []struct {
		status domain.ListStatus
		want   []string
	}{
		{domain.ListActive, []string{"2", "4"}},
		{domain.ListPaused, []string{"1", "3"}},
	}
	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			f := newMatcherFixture(t)
			f.catalog.EXPECT().GetEntities(mock.Anything, testAccount, domain.ScopeCampaign).Return(sampleCatalog(), nil)
			f.labels.EXPECT().LabelsFor(mock.Anything, tc.want).Return(nil, errors.New("db down"))

			var state domain.ControlState
			reply := f.matcher.Handle(context.Background(), testAccount, &state,
				domain.ListIntent{Status: tc.status, Scope: domain.ScopeCampaign})

			var got []string
			for _, e := range reply.Entities {
				got = append(got, e.ID)
			}
			assert.Equal(t, tc.want, got)
			assert.Contains(t, reply.Message, "Tìm thấy 2")
		})
	}
}

func TestMatcherCatalogFailure(t *testing.T) {
	f := newMatcherFixture(t)
	f.catalog.EXPECT().GetEntities(mock.Anything, testAccount, domain.ScopeAdSet).Return(nil, errors.New("timeout"))

	var state domain.ControlState
	reply := f.matcher.Handle(context.Background(), testAccount, &state,
		domain.ListIntent{Status: domain.ListAll, Scope: domain.ScopeAdSet})

	assert.Equal(t, domain.ControlDone, state.Stage)
	assert.Contains(t, reply.Message, "nhóm quảng cáo")
}
