package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// Assistant routes one user turn to the state machine that owns it and
// persists the session afterwards. Turns of one conversation are serialized
// through the session store lock.
type Assistant struct {
	sessions port.SessionStore
	dialogue *Dialogue
	matcher  *Matcher
	msgs     *Messages
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

var _ port.Assistant = (*Assistant)(nil)

// NewAssistant wires the router.
func NewAssistant(
	sessions port.SessionStore,
	dialogue *Dialogue,
	matcher *Matcher,
	msgs *Messages,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Assistant {
	return &Assistant{
		sessions: sessions,
		dialogue: dialogue,
		matcher:  matcher,
		msgs:     msgs,
		logger:   logger,
		metrics:  m,
	}
}

// Handle processes one line of user input.
func (a *Assistant) Handle(ctx context.Context, acct domain.Account, conversationID, text string) (*port.Reply, error) {
	release, err := a.sessions.Lock(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	defer release()

	sess, err := a.sessions.Load(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	reply := a.route(ctx, acct, sess, strings.TrimSpace(text))

	if err := a.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return reply, nil
}

// route applies the turn precedence: a pending toggle confirmation first,
// then an active dialogue, then a fresh classification.
func (a *Assistant) route(ctx context.Context, acct domain.Account, sess *domain.Session, text string) *port.Reply {
	if sess.Control.Stage == domain.ControlConfirming {
		return a.matcher.Confirm(ctx, acct, &sess.Control, text)
	}
	if sess.Dialogue.Active() {
		return a.dialogue.HandleInput(ctx, acct, &sess.Dialogue, text)
	}

	intent := Classify(text)
	a.metrics.IncIntent(string(intent.Type()))
	a.logger.Debug("intent classified", "conversation_id", sess.ConversationID, "intent", intent.Type())

	switch it := intent.(type) {
	case domain.ListIntent, domain.ToggleIntent:
		return a.matcher.Handle(ctx, acct, &sess.Control, it)
	case domain.CreateIntent:
		sess.Control.Reset()
		return a.dialogue.Start(ctx, acct, &sess.Dialogue, it.Text)
	case domain.UnknownIntent:
		return &port.Reply{
			Message: a.msgs.Render(msgHelp, nil),
			Handled: false,
			Intent:  domain.IntentUnknown,
		}
	}
	return &port.Reply{Handled: false, Intent: domain.IntentUnknown}
}
