package domain

// IntentType discriminates the Intent variants.
type IntentType string

const (
	IntentList    IntentType = "LIST"
	IntentToggle  IntentType = "TOGGLE"
	IntentCreate  IntentType = "CREATE"
	IntentUnknown IntentType = "UNKNOWN"
)

// ListStatus filters a LIST command.
type ListStatus string

const (
	ListActive ListStatus = "ACTIVE"
	ListPaused ListStatus = "PAUSED"
	ListAll    ListStatus = "ALL"
)

// Action is the run-state change requested by a TOGGLE command.
type Action string

const (
	ActionPause    Action = "PAUSE"
	ActionActivate Action = "ACTIVATE"
)

// TargetStatus is the configured status the platform receives for a.
func (a Action) TargetStatus() string {
	if a == ActionActivate {
		return StatusActive
	}
	return StatusPaused
}

// Intent is a classified command. The set of variants is closed: ListIntent,
// ToggleIntent, CreateIntent and UnknownIntent.
type Intent interface {
	Type() IntentType
	isIntent()
}

// ListIntent asks to display entities of a scope filtered by status.
type ListIntent struct {
	Status ListStatus `json:"status"`
	Scope  Scope      `json:"scope"`
}

// ToggleIntent asks to pause or activate the entities matching TargetName.
type ToggleIntent struct {
	Action     Action `json:"action"`
	TargetName string `json:"targetName"`
	Scope      Scope  `json:"scope"`
}

// CreateIntent starts the campaign creation dialogue with the raw text.
type CreateIntent struct {
	Text string `json:"text"`
}

// UnknownIntent means no rule matched or the text belongs to another assistant.
type UnknownIntent struct{}

func (ListIntent) Type() IntentType    { return IntentList }
func (ToggleIntent) Type() IntentType  { return IntentToggle }
func (CreateIntent) Type() IntentType  { return IntentCreate }
func (UnknownIntent) Type() IntentType { return IntentUnknown }

func (ListIntent) isIntent()    {}
func (ToggleIntent) isIntent()  {}
func (CreateIntent) isIntent()  {}
func (UnknownIntent) isIntent() {}
