package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// Assistant is the primary inbound port: one user turn in, one reply out.
type Assistant interface {
	Handle(ctx context.Context, acct domain.Account, conversationID, text string) (*Reply, error)
}

// Publisher runs batch publishing of draft hierarchies in the background.
type Publisher interface {
	Start(ctx context.Context, acct domain.Account, draftID string, selected []string) (string, error)
	Progress(runID string) (*RunStatus, error)
	Stop(runID string) error
}

// Reply is what the assistant says back after a turn. Handled is false when
// the text was not meant for this assistant.
type Reply struct {
	Message  string                 `json:"message"`
	Handled  bool                   `json:"handled"`
	Intent   domain.IntentType      `json:"intent,omitempty"`
	Stage    string                 `json:"stage,omitempty"`
	Entities []domain.EntityMatch   `json:"entities,omitempty"`
	Result   *domain.PipelineResult `json:"result,omitempty"`
}

// RunStatus is a snapshot of one publish run.
type RunStatus struct {
	ID       string             `json:"id"`
	DraftID  string             `json:"draftId"`
	Progress domain.Progress    `json:"progress"`
	Items    []domain.QueueItem `json:"items"`
}
