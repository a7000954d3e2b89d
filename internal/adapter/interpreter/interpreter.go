package interpreter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const (
	ProviderBedrock = "bedrock"
	ProviderGemini  = "gemini"

	defaultMaxTokens = 1024
)

// balanceMessage is used only when a billing refusal carries no wording of
// its own.
const balanceMessage = "Tài khoản AI đã hết hạn mức hoặc số dư. Vui lòng nạp thêm rồi gửi lại yêu cầu."

var balanceMarkers = []string{"billing", "credit balance", "insufficient balance", "insufficient_quota", "payment required"}

// generateFunc sends one prompt to a model and returns the raw answer.
type generateFunc func(ctx context.Context, system, user string) (string, error)

// Interpreter turns operator text into a draft campaign using a language
// model. The model answers with a JSON document shaped like
// domain.DraftCampaign.
type Interpreter struct {
	generate generateFunc
	provider string
	logger   *slog.Logger
	now      func() time.Time
}

// New builds the interpreter for cfg.Provider.
func New(ctx context.Context, cfg configs.Interpreter, logger *slog.Logger) (*Interpreter, error) {
	var (
		gen generateFunc
		err error
	)
	switch strings.ToLower(cfg.Provider) {
	case ProviderBedrock:
		gen, err = newBedrock(ctx, cfg)
	case ProviderGemini:
		gen, err = newGemini(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown interpreter provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s interpreter: %w", cfg.Provider, err)
	}

	return &Interpreter{
		generate: gen,
		provider: strings.ToLower(cfg.Provider),
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Interpret implements port.Interpreter.
func (i *Interpreter) Interpret(ctx context.Context, text string, acct domain.Account) (*domain.DraftCampaign, error) {
	start := time.Now()
	answer, err := i.generate(ctx, systemPrompt, userPrompt(text, i.now()))
	if err != nil {
		return nil, classifyError(ctx, err)
	}
	i.logger.Debug("interpreter answered",
		slog.String("provider", i.provider),
		slog.String("user", acct.UserID),
		slog.Duration("took", time.Since(start)),
	)

	draft, err := decodeDraft(answer)
	if err != nil {
		return nil, err
	}
	if draft.PageID == "" {
		draft.PageID = acct.PageID
	}
	return draft, nil
}

func classifyError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", port.ErrInterpreterTimeout, err)
	}

	lower := strings.ToLower(err.Error())
	for _, m := range balanceMarkers {
		if strings.Contains(lower, m) {
			return &port.InsufficientBalanceError{Message: providerMessage(err)}
		}
	}
	return fmt.Errorf("interpreter: %w", err)
}

// providerMessage returns the provider's own wording. AWS service errors
// expose it without the SDK's operation prefix.
func providerMessage(err error) string {
	var apiErr interface{ ErrorMessage() string }
	if errors.As(err, &apiErr) {
		if msg := strings.TrimSpace(apiErr.ErrorMessage()); msg != "" {
			return msg
		}
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return balanceMessage
}
