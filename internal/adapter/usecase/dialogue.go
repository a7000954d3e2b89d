package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/osteele/liquid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// DialogueConfig tunes the slot-filling dialogue.
type DialogueConfig struct {
	MinBudget          int64
	DefaultObjective   string
	InterpreterTimeout time.Duration
}

// Dialogue is the slot-filling state machine of the campaign creation path.
// It mutates the DialogueState handed to it and never keeps state of its own.
type Dialogue struct {
	interpreter port.Interpreter
	geo         port.GeoResolver
	pipeline    *Pipeline
	msgs        *Messages
	cfg         DialogueConfig
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// NewDialogue wires the dialogue engine.
func NewDialogue(
	interpreter port.Interpreter,
	geo port.GeoResolver,
	pipeline *Pipeline,
	msgs *Messages,
	cfg DialogueConfig,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Dialogue {
	if cfg.MinBudget <= 0 {
		cfg.MinBudget = 50000
	}
	if cfg.InterpreterTimeout <= 0 {
		cfg.InterpreterTimeout = 30 * time.Second
	}
	if cfg.DefaultObjective == "" {
		cfg.DefaultObjective = defaultObjective
	}
	return &Dialogue{
		interpreter: interpreter,
		geo:         geo,
		pipeline:    pipeline,
		msgs:        msgs,
		cfg:         cfg,
		logger:      logger,
		metrics:     m,
	}
}

// Start submits the raw text to the interpreter and moves to the first
// missing slot. A failed interpretation leaves any previous draft untouched.
func (d *Dialogue) Start(ctx context.Context, acct domain.Account, state *domain.DialogueState, text string) *port.Reply {
	d.enter(state, domain.StageParsing)

	ictx, cancel := context.WithTimeout(ctx, d.cfg.InterpreterTimeout)
	draft, err := d.interpreter.Interpret(ictx, text, acct)
	timedOut := errors.Is(ictx.Err(), context.DeadlineExceeded)
	cancel()

	if err == nil && draft == nil {
		err = errors.New("interpreter returned no draft")
	}
	if err != nil {
		if timedOut || errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", port.ErrInterpreterTimeout, err)
		}
		d.logger.Warn("interpret failed", "err", err)
		return d.fail(state, err)
	}

	if draft.Objective == "" {
		draft.Objective = d.cfg.DefaultObjective
	}
	if draft.Name == "" {
		draft.Name = draftName(text)
	}
	prefillRadius(draft, text)

	state.RawText = text
	state.Draft = draft
	state.Result = nil
	return d.advance(state)
}

// HandleInput parses the field owed by the current stage. Invalid replies
// re-prompt for the same stage and leave the draft untouched.
func (d *Dialogue) HandleInput(ctx context.Context, acct domain.Account, state *domain.DialogueState, text string) *port.Reply {
	if state.Draft == nil && state.Stage != domain.StageIdle {
		state.Stage = domain.StageIdle
	}

	switch state.Stage {
	case domain.StageAwaitingBudget:
		amount, ok := parseAmount(text)
		if !ok || amount < d.cfg.MinBudget {
			return d.prompt(state, msgInvalidBudget, liquid.Bindings{"min": formatVND(d.cfg.MinBudget)})
		}
		if state.Draft.IsLifetime() {
			state.Draft.LifetimeBudget = amount
		} else {
			state.Draft.Budget = amount
		}
		return d.advance(state)

	case domain.StageAwaitingAge:
		age, ok := parseAge(text)
		if !ok {
			return d.prompt(state, msgInvalidAge, nil)
		}
		state.Draft.Age = age
		return d.advance(state)

	case domain.StageAwaitingGender:
		g, ok := parseGender(text)
		if !ok {
			return d.prompt(state, msgInvalidGender, nil)
		}
		state.Draft.Gender = g
		return d.advance(state)

	case domain.StageAwaitingLocation:
		return d.handleLocation(ctx, acct, state, text)

	case domain.StageAwaitingRadius:
		floor := minRadius(geographyType(*state.Draft))
		km, ok := parseNumber(text)
		if !ok || km < floor {
			return d.prompt(state, msgInvalidRadius, liquid.Bindings{"min": formatKm(floor)})
		}
		state.Draft.RadiusKm = km
		return d.advance(state)

	case domain.StageConfirming:
		switch {
		case isNegative(text):
			*state = domain.DialogueState{Stage: domain.StageIdle}
			d.metrics.IncStage(string(domain.StageIdle))
			return d.reply(state, d.msgs.Render(msgCancelled, nil))
		case isAffirmative(text):
			return d.create(ctx, acct, state)
		default:
			return d.reply(state, d.summary(*state.Draft))
		}

	case domain.StageParsing, domain.StageCreating:
		return d.reply(state, d.msgs.Render(msgBusy, nil))

	case domain.StageIdle, domain.StageDone, domain.StageError:
		return d.Start(ctx, acct, state, text)
	}
	return d.Start(ctx, acct, state, text)
}

// handleLocation accepts "lat,lng" or a comma separated list of place
// names resolved through the geo search.
func (d *Dialogue) handleLocation(ctx context.Context, acct domain.Account, state *domain.DialogueState, text string) *port.Reply {
	if lat, lng, ok := parseCoordinatePair(strings.TrimSpace(text)); ok {
		state.Draft.Latitude = &lat
		state.Draft.Longitude = &lng
		state.Draft.LocationType = domain.LocationCoordinate
		return d.advance(state)
	}

	var found []domain.Location
	for _, part := range strings.Split(text, ",") {
		place := strings.TrimSpace(part)
		if place == "" {
			continue
		}
		loc, err := d.geo.SearchLocation(ctx, acct, place)
		if err != nil || loc == nil {
			d.logger.Info("location lookup failed", "place", place, "err", err)
			return d.prompt(state, msgInvalidLocation, liquid.Bindings{"place": place})
		}
		found = append(found, *loc)
	}
	if len(found) == 0 {
		return d.prompt(state, msgAskLocation, nil)
	}

	state.Draft.Location = found
	state.Draft.LocationType = found[0].Type
	return d.advance(state)
}

// create hands the completed draft to the targeting compiler and pipeline.
// The draft is consumed: the state keeps only the result.
func (d *Dialogue) create(ctx context.Context, acct domain.Account, state *domain.DialogueState) *port.Reply {
	d.enter(state, domain.StageCreating)
	draft := *state.Draft
	if draft.PageID == "" {
		draft.PageID = acct.PageID
	}

	targeting, err := Compile(draft, nil)
	if err != nil {
		return d.fail(state, err)
	}

	result, err := d.pipeline.Run(ctx, acct, draft, *targeting)
	state.Draft = nil
	state.Result = &result
	if err != nil {
		d.enter(state, domain.StageError)
		r := d.reply(state, d.msgs.Render(msgCreateFailed, liquid.Bindings{
			"reason":      describeError(d.msgs, err),
			"campaign_id": result.CampaignID,
		}))
		r.Result = state.Result
		return r
	}

	d.enter(state, domain.StageDone)
	r := d.reply(state, d.msgs.Render(msgCreated, liquid.Bindings{
		"campaign_id": result.CampaignID,
		"adset_id":    result.AdSetID,
		"ad_id":       result.AdID,
	}))
	r.Result = state.Result
	return r
}

// advance moves to the next missing slot and asks for it.
func (d *Dialogue) advance(state *domain.DialogueState) *port.Reply {
	stage := nextStage(*state.Draft, d.cfg.MinBudget)
	d.enter(state, stage)

	switch stage {
	case domain.StageAwaitingBudget:
		return d.reply(state, d.msgs.Render(msgAskBudget, liquid.Bindings{"lifetime": state.Draft.IsLifetime()}))
	case domain.StageAwaitingAge:
		return d.reply(state, d.msgs.Render(msgAskAge, nil))
	case domain.StageAwaitingGender:
		return d.reply(state, d.msgs.Render(msgAskGender, nil))
	case domain.StageAwaitingLocation:
		return d.reply(state, d.msgs.Render(msgAskLocation, nil))
	case domain.StageAwaitingRadius:
		t := geographyType(*state.Draft)
		return d.reply(state, d.msgs.Render(msgAskRadius, liquid.Bindings{
			"type": string(t),
			"min":  formatKm(minRadius(t)),
		}))
	default:
		return d.reply(state, d.summary(*state.Draft))
	}
}

// prompt re-emits the current stage with a corrective message.
func (d *Dialogue) prompt(state *domain.DialogueState, name string, b liquid.Bindings) *port.Reply {
	return d.reply(state, d.msgs.Render(name, b))
}

// fail stops the dialogue at the error stage.
func (d *Dialogue) fail(state *domain.DialogueState, err error) *port.Reply {
	d.enter(state, domain.StageError)
	return d.reply(state, describeError(d.msgs, err))
}

func (d *Dialogue) enter(state *domain.DialogueState, stage domain.Stage) {
	state.Stage = stage
	d.metrics.IncStage(string(stage))
}

func (d *Dialogue) reply(state *domain.DialogueState, msg string) *port.Reply {
	state.LastMessage = msg
	return &port.Reply{
		Message: msg,
		Handled: true,
		Intent:  domain.IntentCreate,
		Stage:   string(state.Stage),
	}
}

func (d *Dialogue) summary(draft domain.DraftCampaign) string {
	b := liquid.Bindings{
		"name":      draft.Name,
		"objective": draft.Objective,
		"budget":    formatVND(draft.EffectiveBudget()),
		"lifetime":  draft.IsLifetime(),
		"gender":    genderLabel(draft.NormalizedGender()),
		"geo":       geographyLabel(draft),
		"radius":    "",
		"interests": "",
	}
	if draft.Age != nil {
		b["age_min"] = draft.Age.Min
		b["age_max"] = draft.Age.Max
	}
	if t := geographyType(draft); t != domain.LocationCountry {
		if r := effectiveRadius(draft); r > 0 {
			b["radius"] = formatKm(r)
		}
	}
	names := make([]string, 0, len(draft.Interests))
	for _, in := range draft.Interests {
		if in.Name != "" {
			names = append(names, in.Name)
		}
	}
	b["interests"] = strings.Join(names, ", ")
	return d.msgs.Render(msgConfirmDraft, b)
}

func genderLabel(g domain.Gender) string {
	switch g {
	case domain.GenderMale:
		return "nam"
	case domain.GenderFemale:
		return "nữ"
	default:
		return "tất cả"
	}
}

func geographyLabel(d domain.DraftCampaign) string {
	if d.HasCoordinates() {
		return fmt.Sprintf("%.4f, %.4f", *d.Latitude, *d.Longitude)
	}
	names := make([]string, 0, len(d.Location))
	for _, l := range d.Location {
		switch {
		case l.Name != "":
			names = append(names, l.Name)
		case l.Key != "":
			names = append(names, l.Key)
		}
	}
	return strings.Join(names, ", ")
}

func formatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}

// draftName derives a campaign name when the interpreter gave none.
func draftName(text string) string {
	const maxRunes = 40
	r := []rune(strings.TrimSpace(text))
	if len(r) > maxRunes {
		r = r[:maxRunes]
	}
	return fmt.Sprintf("%s - %s", strings.TrimSpace(string(r)), time.Now().Format("02/01/2006"))
}
