package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adpilot/internal/core/domain"
)

func TestClassifyReservedMarkersWin(t *testing.T) {
	inputs := []string{
		"tắt chiến dịch {{ten_khach}}",
		"xem danh sách tệp đối tượng",
		"tạo đối tượng tùy chỉnh cho chiến dịch Spa",
		"show lookalike campaigns",
		"bật custom audience mới",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, domain.UnknownIntent{}, Classify(in))
		})
	}
}

func TestClassifyList(t *testing.T) {
	tests := []struct {
		in   string
		want domain.ListIntent
	}{
		{"xem chiến dịch đang chạy", domain.ListIntent{Status: domain.ListActive, Scope: domain.ScopeCampaign}},
		{"Liệt kê nhóm quảng cáo đã tạm dừng", domain.ListIntent{Status: domain.ListPaused, Scope: domain.ScopeAdSet}},
		{"xem quảng cáo", domain.ListIntent{Status: domain.ListAll, Scope: domain.ScopeAd}},
		{"danh sách", domain.ListIntent{Status: domain.ListAll, Scope: domain.ScopeCampaign}},
		{"show paused campaigns", domain.ListIntent{Status: domain.ListPaused, Scope: domain.ScopeCampaign}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.in))
		})
	}
}

func TestClassifyCreateNeedsLeadingVerb(t *testing.T) {
	assert.Equal(t,
		domain.CreateIntent{Text: "Tạo chiến dịch spa ở Hà Nội 200k/ngày"},
		Classify("  Tạo chiến dịch spa ở Hà Nội 200k/ngày "),
	)
	// "tạo" in the middle is not a create command.
	assert.Equal(t, domain.IntentUnknown, Classify("chiến dịch mới tạo hôm qua").Type())
}

func TestClassifyToggle(t *testing.T) {
	tests := []struct {
		in   string
		want domain.ToggleIntent
	}{
		{"Tắt chiến dịch Spa", domain.ToggleIntent{Action: domain.ActionPause, TargetName: "spa", Scope: domain.ScopeCampaign}},
		{"tạm dừng nhóm quảng cáo Hà Nội", domain.ToggleIntent{Action: domain.ActionPause, TargetName: "hà nội", Scope: domain.ScopeAdSet}},
		{"bật lại quảng cáo Tết", domain.ToggleIntent{Action: domain.ActionActivate, TargetName: "tết", Scope: domain.ScopeAd}},
		{"kích hoạt camp khuyến mãi", domain.ToggleIntent{Action: domain.ActionActivate, TargetName: "khuyến mãi", Scope: domain.ScopeCampaign}},
		{"pause campaign Summer Sale", domain.ToggleIntent{Action: domain.ActionPause, TargetName: "summer sale", Scope: domain.ScopeCampaign}},
		{"tắt chiến dịch", domain.ToggleIntent{Action: domain.ActionPause, TargetName: "", Scope: domain.ScopeCampaign}},
		{"Tắt chiến dịch Spa đang chạy", domain.ToggleIntent{Action: domain.ActionPause, TargetName: "spa", Scope: domain.ScopeCampaign}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.in))
		})
	}
}

func TestClassifyToggleFirstVerbWins(t *testing.T) {
	// The status words after the verb describe the target's current state.
	tests := []struct {
		in   string
		want domain.ToggleIntent
	}{
		{"Bật lại chiến dịch đã tắt Spa", domain.ToggleIntent{Action: domain.ActionActivate, TargetName: "spa", Scope: domain.ScopeCampaign}},
		{"Chạy lại chiến dịch Spa đang dừng", domain.ToggleIntent{Action: domain.ActionActivate, TargetName: "spa", Scope: domain.ScopeCampaign}},
		{"mở lại quảng cáo Tết đã dừng", domain.ToggleIntent{Action: domain.ActionActivate, TargetName: "tết", Scope: domain.ScopeAd}},
		{"dừng chiến dịch Spa đang bật", domain.ToggleIntent{Action: domain.ActionPause, TargetName: "spa", Scope: domain.ScopeCampaign}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.in))
		})
	}
}

func TestClassifyListBeatsToggle(t *testing.T) {
	// "dừng" is a toggle verb but a list keyword is present.
	assert.Equal(t,
		domain.ListIntent{Status: domain.ListPaused, Scope: domain.ScopeCampaign},
		Classify("xem chiến dịch đã dừng"),
	)
}

func TestClassifyUnknown(t *testing.T) {
	assert.Equal(t, domain.UnknownIntent{}, Classify("hôm nay trời đẹp quá"))
	assert.Equal(t, domain.UnknownIntent{}, Classify(""))
}

func TestResolveScopePrecedence(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Scope
	}{
		{"chiến dịch nhóm quảng cáo quảng cáo", domain.ScopeCampaign},
		{"nhóm quảng cáo", domain.ScopeAdSet},
		{"adset ads", domain.ScopeAdSet},
		{"ad set và ad", domain.ScopeAdSet},
		{"quảng cáo", domain.ScopeAd},
		{"bài viết", domain.ScopeAd},
		{"spa", domain.ScopeCampaign},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveScope(tokenize(tc.in)))
		})
	}
}

func TestClassifyNormalizesDecomposedInput(t *testing.T) {
	// "Tắt" typed with combining marks.
	decomposed := "Ta\u0306\u0301t chiến dịch Spa"
	assert.Equal(t,
		domain.ToggleIntent{Action: domain.ActionPause, TargetName: "spa", Scope: domain.ScopeCampaign},
		Classify(decomposed),
	)
}
