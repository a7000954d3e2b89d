package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

func newStubInterpreter(gen generateFunc) *Interpreter {
	return &Interpreter{
		generate: gen,
		provider: "stub",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      func() time.Time { return time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC) },
	}
}

func TestInterpretDecodesFencedAnswer(t *testing.T) {
	var gotUser string
	i := newStubInterpreter(func(_ context.Context, system, user string) (string, error) {
		assert.Contains(t, system, "JSON")
		gotUser = user
		return "Đây là kết quả:\n```json\n{\"name\":\" Spa Tết \",\"budget\":200000,\"gender\":\"female\"," +
			"\"age\":{\"min\":22,\"max\":45},\"location\":[{\"name\":\"Hà Nội\",\"type\":\"city\"}]}\n```", nil
	})

	draft, err := i.Interpret(context.Background(), "tạo chiến dịch spa 200k", domain.Account{UserID: "u1", PageID: "100"})
	require.NoError(t, err)

	assert.Contains(t, gotUser, "2026-01-20")
	assert.Contains(t, gotUser, "tạo chiến dịch spa 200k")
	assert.Equal(t, "Spa Tết", draft.Name)
	assert.Equal(t, int64(200000), draft.Budget)
	assert.Equal(t, domain.GenderFemale, draft.Gender)
	assert.Equal(t, &domain.AgeRange{Min: 22, Max: 45}, draft.Age)
	assert.Equal(t, "Hà Nội", draft.Location[0].Name)
	assert.Equal(t, "100", draft.PageID)
}

func TestInterpretParseFailure(t *testing.T) {
	i := newStubInterpreter(func(context.Context, string, string) (string, error) {
		return "xin lỗi, tôi không hiểu", nil
	})
	_, err := i.Interpret(context.Background(), "???", domain.Account{})
	assert.ErrorContains(t, err, "json")

	i = newStubInterpreter(func(context.Context, string, string) (string, error) {
		return `{"budget":"nhiều"}`, nil
	})
	_, err = i.Interpret(context.Background(), "???", domain.Account{})
	assert.ErrorContains(t, err, "parse")
}

func TestClassifyError(t *testing.T) {
	err := classifyError(context.Background(), errors.New("operation error Bedrock Runtime: InvokeModel, billing account is past due"))
	var balance *port.InsufficientBalanceError
	require.ErrorAs(t, err, &balance)
	assert.Equal(t, "operation error Bedrock Runtime: InvokeModel, billing account is past due", balance.Message)

	wrapped := fmt.Errorf("invoke: %w", serviceError{msg: "Your credit balance is too low. Top up 5 USD to continue."})
	err = classifyError(context.Background(), wrapped)
	require.ErrorAs(t, err, &balance)
	assert.Equal(t, "Your credit balance is too low. Top up 5 USD to continue.", balance.Message)

	err = classifyError(context.Background(), context.DeadlineExceeded)
	assert.ErrorIs(t, err, port.ErrInterpreterTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	err = classifyError(ctx, errors.New("request canceled"))
	assert.ErrorIs(t, err, port.ErrInterpreterTimeout)

	err = classifyError(context.Background(), errors.New("ThrottlingException: rate limit"))
	assert.EqualError(t, err, "interpreter: ThrottlingException: rate limit")
}

func TestBedrockText(t *testing.T) {
	text, err := bedrockText([]byte(`{"content":[{"type":"text","text":"{\"name\":"},{"type":"tool_use"},{"type":"text","text":"\"x\"}"}],"stop_reason":"end_turn"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x"}`, text)

	_, err = bedrockText([]byte("not json"))
	assert.Error(t, err)
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(context.Background(), configs.Interpreter{Provider: "openai"}, nil)
	assert.ErrorContains(t, err, "openai")

	_, err = New(context.Background(), configs.Interpreter{Provider: ProviderGemini}, nil)
	assert.ErrorContains(t, err, "INTERPRETER_API_KEY")
}

// serviceError mimics an SDK error that carries the provider's message
// separately from its formatted form.
type serviceError struct{ msg string }

func (e serviceError) Error() string        { return "api error PaymentRequired: " + e.msg }
func (e serviceError) ErrorMessage() string { return e.msg }
