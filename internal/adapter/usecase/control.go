package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/osteele/liquid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// Matcher runs list and toggle commands against the remote catalog. Toggles
// wait in the confirming stage for an explicit yes or no.
type Matcher struct {
	catalog  port.Catalog
	mutator  port.StatusMutator
	labels   port.LabelStore
	notifier port.StatusNotifier
	msgs     *Messages
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewMatcher wires the control-flow matcher. labels and notifier may be nil.
func NewMatcher(
	catalog port.Catalog,
	mutator port.StatusMutator,
	labels port.LabelStore,
	notifier port.StatusNotifier,
	msgs *Messages,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Matcher {
	return &Matcher{
		catalog:  catalog,
		mutator:  mutator,
		labels:   labels,
		notifier: notifier,
		msgs:     msgs,
		logger:   logger,
		metrics:  m,
	}
}

// Handle starts a control cycle for a classified intent.
func (m *Matcher) Handle(ctx context.Context, acct domain.Account, state *domain.ControlState, intent domain.Intent) *port.Reply {
	switch it := intent.(type) {
	case domain.ListIntent:
		return m.list(ctx, acct, state, it)
	case domain.ToggleIntent:
		return m.toggle(ctx, acct, state, it)
	case domain.CreateIntent, domain.UnknownIntent:
		return &port.Reply{Handled: false, Intent: intent.Type()}
	}
	return &port.Reply{Handled: false, Intent: domain.IntentUnknown}
}

func (m *Matcher) list(ctx context.Context, acct domain.Account, state *domain.ControlState, it domain.ListIntent) *port.Reply {
	state.Reset()
	state.Stage = domain.ControlAnalyzing

	all, err := m.catalog.GetEntities(ctx, acct, it.Scope)
	if err != nil {
		m.logger.Error("catalog fetch failed", "scope", it.Scope, "err", err)
		state.Stage = domain.ControlDone
		return m.reply(state, domain.IntentList, m.msgs.Render(msgControlFetchFailed, liquid.Bindings{
			"scope": scopeLabel(string(it.Scope)),
			"error": err.Error(),
		}))
	}

	found := filterByStatus(all, it.Status)
	sortActiveFirst(found)
	m.attachLabels(ctx, found)

	state.Stage = domain.ControlDone
	r := m.reply(state, domain.IntentList, m.msgs.Render(msgListResult, liquid.Bindings{
		"count":    len(found),
		"scope":    scopeLabel(string(it.Scope)),
		"status":   listStatusLabel(it.Status),
		"entities": entityBindings(found),
	}))
	r.Entities = found
	return r
}

func (m *Matcher) toggle(ctx context.Context, acct domain.Account, state *domain.ControlState, it domain.ToggleIntent) *port.Reply {
	state.Reset()
	state.Stage = domain.ControlAnalyzing
	intent := it
	state.Intent = &intent
	state.TargetAction = it.Action

	scope := scopeLabel(string(it.Scope))
	action := actionLabel(string(it.Action))

	if strings.TrimSpace(it.TargetName) == "" {
		state.Stage = domain.ControlDone
		return m.reply(state, domain.IntentToggle, m.msgs.Render(msgToggleNeedName, liquid.Bindings{
			"scope":  scope,
			"action": action,
		}))
	}

	all, err := m.catalog.GetEntities(ctx, acct, it.Scope)
	if err != nil {
		m.logger.Error("catalog fetch failed", "scope", it.Scope, "err", err)
		state.Stage = domain.ControlDone
		return m.reply(state, domain.IntentToggle, m.msgs.Render(msgControlFetchFailed, liquid.Bindings{
			"scope": scope,
			"error": err.Error(),
		}))
	}

	found := filterByName(all, it.TargetName)
	sortActiveFirst(found)
	state.FoundCampaigns = found

	if len(found) == 0 {
		state.Stage = domain.ControlDone
		return m.reply(state, domain.IntentToggle, m.msgs.Render(msgToggleNotFound, liquid.Bindings{
			"scope": scope,
			"name":  it.TargetName,
		}))
	}

	state.Stage = domain.ControlConfirming
	r := m.reply(state, domain.IntentToggle, m.msgs.Render(msgToggleConfirm, liquid.Bindings{
		"count":    len(found),
		"scope":    scope,
		"action":   action,
		"entities": entityBindings(found),
	}))
	r.Entities = found
	return r
}

// Confirm consumes a reply in the confirming stage. Anything that is not a
// yes, a no, or a candidate number keeps the stage and repeats the question.
func (m *Matcher) Confirm(ctx context.Context, acct domain.Account, state *domain.ControlState, text string) *port.Reply {
	if isNegative(text) {
		state.Reset()
		return m.reply(state, domain.IntentToggle, m.msgs.Render(msgCancelled, nil))
	}

	if n, ok := candidateNumber(text); ok && n >= 1 && n <= len(state.FoundCampaigns) {
		return m.apply(ctx, acct, state, n-1)
	}

	if isAffirmative(text) {
		if len(state.FoundCampaigns) == 1 {
			return m.apply(ctx, acct, state, 0)
		}
		return m.reply(state, domain.IntentToggle, m.msgs.Render(msgTogglePickNumber, liquid.Bindings{
			"count": len(state.FoundCampaigns),
		}))
	}

	msg := state.LastMessage
	r := m.reply(state, domain.IntentToggle, msg)
	r.Entities = state.FoundCampaigns
	return r
}

// apply flips the candidate locally, sends the mutation, then broadcasts.
// A failed mutation is reported and not rolled back; the next catalog fetch
// shows the real state.
func (m *Matcher) apply(ctx context.Context, acct domain.Account, state *domain.ControlState, idx int) *port.Reply {
	action := state.TargetAction
	target := state.FoundCampaigns[idx]
	target.Status = action.TargetStatus()
	target.EffectiveStatus = action.TargetStatus()
	state.FoundCampaigns[idx] = target

	err := m.mutator.SetEntityStatus(ctx, acct, target.ID, action)
	m.metrics.IncControlAction(string(action), err)
	if err != nil {
		m.logger.Error("set entity status failed", "id", target.ID, "action", action, "err", err)
		state.Stage = domain.ControlDone
		r := m.reply(state, domain.IntentToggle, m.msgs.Render(msgToggleFailed, liquid.Bindings{
			"action": actionLabel(string(action)),
			"name":   target.Name,
			"error":  err.Error(),
		}))
		r.Entities = []domain.EntityMatch{target}
		return r
	}

	m.notify(ctx, domain.StatusChange{
		EntityID: target.ID,
		Name:     target.Name,
		Scope:    target.Scope,
		Action:   action,
		Status:   target.Status,
		At:       time.Now().UTC(),
	})

	state.Reset()
	r := m.reply(state, domain.IntentToggle, m.msgs.Render(msgToggleDone, liquid.Bindings{
		"action": actionLabel(string(action)),
		"scope":  scopeLabel(string(target.Scope)),
		"name":   target.Name,
	}))
	r.Entities = []domain.EntityMatch{target}
	return r
}

func (m *Matcher) notify(ctx context.Context, change domain.StatusChange) {
	if m.notifier == nil {
		return
	}
	if err := m.notifier.Notify(ctx, change); err != nil {
		m.logger.Warn("status notify failed", "id", change.EntityID, "err", err)
	}
}

// attachLabels decorates entities with stored labels. Labels are for
// display only, so lookup errors are logged and ignored.
func (m *Matcher) attachLabels(ctx context.Context, entities []domain.EntityMatch) {
	if m.labels == nil || len(entities) == 0 {
		return
	}
	ids := make([]string, len(entities))
	for i, e := range entities {
		ids[i] = e.ID
	}
	labels, err := m.labels.LabelsFor(ctx, ids)
	if err != nil {
		m.logger.Warn("label lookup failed", "err", err)
		return
	}
	for i := range entities {
		entities[i].Labels = labels[entities[i].ID]
	}
}

func (m *Matcher) reply(state *domain.ControlState, it domain.IntentType, msg string) *port.Reply {
	state.LastMessage = msg
	return &port.Reply{
		Message: msg,
		Handled: true,
		Intent:  it,
		Stage:   string(state.Stage),
	}
}

// filterByStatus returns a new slice; the catalog snapshot is not touched.
func filterByStatus(all []domain.EntityMatch, status domain.ListStatus) []domain.EntityMatch {
	out := make([]domain.EntityMatch, 0, len(all))
	for _, e := range all {
		switch status {
		case domain.ListActive:
			if !e.IsActive() {
				continue
			}
		case domain.ListPaused:
			if !e.IsPaused() {
				continue
			}
		case domain.ListAll:
		}
		out = append(out, e)
	}
	return out
}

// filterByName keeps entities whose name contains target, ignoring case
// and Unicode composition.
func filterByName(all []domain.EntityMatch, target string) []domain.EntityMatch {
	needle := normalize(target)
	out := make([]domain.EntityMatch, 0, len(all))
	for _, e := range all {
		if strings.Contains(normalize(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

func sortActiveFirst(entities []domain.EntityMatch) {
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].IsActive() && !entities[j].IsActive()
	})
}

func entityBindings(entities []domain.EntityMatch) []map[string]any {
	out := make([]map[string]any, len(entities))
	for i, e := range entities {
		status := e.EffectiveStatus
		if status == "" {
			status = e.Status
		}
		out[i] = map[string]any{
			"id":     e.ID,
			"name":   e.Name,
			"status": status,
			"labels": strings.Join(e.Labels, ", "),
		}
	}
	return out
}

func listStatusLabel(s domain.ListStatus) string {
	switch s {
	case domain.ListActive:
		return "đang chạy"
	case domain.ListPaused:
		return "đang tạm dừng"
	}
	return ""
}

// candidateNumber reads replies like "2" or "số 2".
func candidateNumber(text string) (int, bool) {
	tokens := tokenize(text)
	if len(tokens) == 2 && tokens[0] == "số" {
		tokens = tokens[1:]
	}
	if len(tokens) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, false
	}
	return n, true
}
