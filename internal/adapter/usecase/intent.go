package usecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"adpilot/internal/core/domain"
)

// Keyword families. Matching is on whole words; multi-word phrases must
// appear contiguously.
var (
	campaignWords = []string{"chiến dịch", "campaign", "campaigns", "camp"}
	adSetWords    = []string{"nhóm quảng cáo", "nhóm qc", "adset", "adsets", "ad set", "ad sets"}
	adWords       = []string{"quảng cáo", "bài quảng cáo", "bài viết", "ad", "ads", "post", "qc"}

	listWords     = []string{"xem", "liệt kê", "danh sách", "hiển thị", "show", "list", "display"}
	pausedWords   = []string{"tạm dừng", "đang tắt", "đã tắt", "đã dừng", "ngừng", "dừng", "tắt", "paused", "inactive"}
	activeWords   = []string{"đang chạy", "đang hoạt động", "hoạt động", "đang bật", "active", "running"}
	createWords   = []string{"tạo", "tạo mới", "lên camp", "lên chiến dịch", "lên quảng cáo", "create", "new campaign"}
	pauseVerbs    = []string{"tạm dừng", "dừng", "tắt", "ngừng", "pause", "stop", "turn off", "disable"}
	activateVerbs = []string{"bật", "bật lại", "chạy", "chạy lại", "mở", "mở lại", "kích hoạt", "activate", "resume", "turn on", "enable", "start"}

	// statusQualifiers describe the target's current state, not the action.
	statusQualifiers = []string{"đã tắt", "đã dừng", "đang tắt", "đang dừng", "đang chạy", "đang bật", "đã", "đang"}

	// Markers owned by other assistants: template tags and custom audience
	// vocabulary.
	audienceMarkers = []string{
		"tệp đối tượng", "đối tượng tùy chỉnh", "đối tượng tuỳ chỉnh", "tệp khách hàng",
		"tệp tương tự", "custom audience", "lookalike",
	}

	templateTagPattern = regexp.MustCompile(`\{\{[^{}]*\}\}`)
)

var (
	campaignVocab = newVocabulary(campaignWords)
	adSetVocab    = newVocabulary(adSetWords)
	adVocab       = newVocabulary(adWords)
	listVocab     = newVocabulary(listWords)
	pausedVocab   = newVocabulary(pausedWords)
	activeVocab   = newVocabulary(activeWords)
	createVocab   = newVocabulary(createWords)
	pauseVocab    = newVocabulary(pauseVerbs)
	activateVocab = newVocabulary(activateVerbs)
	toggleVocab   = newVocabulary(pauseVerbs, activateVerbs)

	// strippable holds everything removed when extracting a toggle target.
	strippable = newVocabulary(statusQualifiers, pauseVerbs, activateVerbs, campaignWords, adSetWords, adWords)
)

// command is one line of input prepared for rule evaluation.
type command struct {
	raw    string
	lower  string
	tokens []string
}

// intentRule pairs a predicate with the intent it produces. Rules are
// evaluated in order and the first match wins.
type intentRule struct {
	name  string
	match func(c command) bool
	build func(c command) domain.Intent
}

// intentRules is the precedence order of classification. Reordering it
// changes behaviour for ambiguous commands; intent_test.go pins each rule.
var intentRules = []intentRule{
	{name: "reserved-marker", match: hasReservedMarker, build: func(command) domain.Intent { return domain.UnknownIntent{} }},
	{name: "list", match: func(c command) bool { return listVocab.in(c.tokens) }, build: buildList},
	{name: "create", match: func(c command) bool { return createVocab.prefixOf(c.tokens) }, build: buildCreate},
	{name: "toggle", match: func(c command) bool { return toggleVocab.in(c.tokens) }, build: buildToggle},
}

// scopeRule maps a vocabulary to a scope; earlier rules win.
type scopeRule struct {
	scope domain.Scope
	vocab vocabulary
}

// An explicit campaign keyword always wins, ad-set keywords beat ad
// keywords, and "quảng cáo" only means AD when nothing else matched.
var scopeRules = []scopeRule{
	{scope: domain.ScopeCampaign, vocab: campaignVocab},
	{scope: domain.ScopeAdSet, vocab: adSetVocab},
	{scope: domain.ScopeAd, vocab: adVocab},
}

// Classify turns one line of free text into an intent.
func Classify(text string) domain.Intent {
	c := command{
		raw:    text,
		lower:  strings.ToLower(norm.NFC.String(text)),
		tokens: tokenize(text),
	}
	for _, r := range intentRules {
		if r.match(c) {
			return r.build(c)
		}
	}
	return domain.UnknownIntent{}
}

// ResolveScope returns the hierarchy level named by the text, defaulting to
// campaigns.
func ResolveScope(tokens []string) domain.Scope {
	for _, r := range scopeRules {
		if r.vocab.in(tokens) {
			return r.scope
		}
	}
	return domain.ScopeCampaign
}

func hasReservedMarker(c command) bool {
	if templateTagPattern.MatchString(c.raw) {
		return true
	}
	for _, m := range audienceMarkers {
		if strings.Contains(c.lower, m) {
			return true
		}
	}
	return false
}

func buildList(c command) domain.Intent {
	status := domain.ListAll
	switch {
	case pausedVocab.in(c.tokens):
		status = domain.ListPaused
	case activeVocab.in(c.tokens):
		status = domain.ListActive
	}
	return domain.ListIntent{Status: status, Scope: ResolveScope(c.tokens)}
}

func buildCreate(c command) domain.Intent {
	return domain.CreateIntent{Text: strings.TrimSpace(c.raw)}
}

// buildToggle takes the action from the first toggle verb. Later words such
// as "đã tắt" describe the target and do not change the action.
func buildToggle(c command) domain.Intent {
	action := domain.ActionActivate
	for i := range c.tokens {
		if activateVocab.at(c.tokens, i) {
			break
		}
		if pauseVocab.at(c.tokens, i) {
			action = domain.ActionPause
			break
		}
	}
	return domain.ToggleIntent{
		Action:     action,
		TargetName: strings.TrimSpace(strings.Join(strippable.strip(c.tokens), " ")),
		Scope:      ResolveScope(c.tokens),
	}
}
