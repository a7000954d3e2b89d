package domain

// Stage is a state of the campaign creation dialogue.
type Stage string

const (
	StageIdle             Stage = "idle"
	StageParsing          Stage = "parsing"
	StageAwaitingBudget   Stage = "awaiting_budget"
	StageAwaitingAge      Stage = "awaiting_age"
	StageAwaitingGender   Stage = "awaiting_gender"
	StageAwaitingLocation Stage = "awaiting_location"
	StageAwaitingRadius   Stage = "awaiting_radius"
	StageConfirming       Stage = "confirming"
	StageCreating         Stage = "creating"
	StageDone             Stage = "done"
	StageError            Stage = "error"
)

// Awaiting reports whether the stage expects a slot value from the user.
func (s Stage) Awaiting() bool {
	switch s {
	case StageAwaitingBudget, StageAwaitingAge, StageAwaitingGender,
		StageAwaitingLocation, StageAwaitingRadius:
		return true
	}
	return false
}

// DialogueState is the per-conversation state owned by the dialogue engine.
// RawText is the text the conversation started from; it is consulted for the
// "<N> km" radius hint.
type DialogueState struct {
	Stage       Stage           `json:"stage"`
	Draft       *DraftCampaign  `json:"draft,omitempty"`
	RawText     string          `json:"rawText,omitempty"`
	LastMessage string          `json:"lastMessage,omitempty"`
	Result      *PipelineResult `json:"result,omitempty"`
}

// Active reports whether the dialogue expects the next user turn.
func (s DialogueState) Active() bool {
	return s.Stage.Awaiting() || s.Stage == StageConfirming
}

// ControlStage is a state of the control-flow matcher.
type ControlStage string

const (
	ControlIdle       ControlStage = "idle"
	ControlAnalyzing  ControlStage = "analyzing"
	ControlConfirming ControlStage = "confirming"
	ControlDone       ControlStage = "done"
)

// ControlState lives for one confirm/cancel cycle. Only toggle intents
// outlive a turn, so Intent is kept in its concrete form.
type ControlState struct {
	Stage          ControlStage  `json:"stage"`
	Intent         *ToggleIntent `json:"intent,omitempty"`
	FoundCampaigns []EntityMatch `json:"foundCampaigns"`
	TargetAction   Action        `json:"targetAction,omitempty"`
	LastMessage    string        `json:"lastMessage,omitempty"`
}

// Reset returns the state to idle and drops the candidates.
func (s *ControlState) Reset() {
	*s = ControlState{Stage: ControlIdle}
}

// Session bundles both state machines of one conversation.
type Session struct {
	ConversationID string        `json:"conversationId"`
	Dialogue       DialogueState `json:"dialogue"`
	Control        ControlState  `json:"control"`
}
