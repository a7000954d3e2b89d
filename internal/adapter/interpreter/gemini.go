package interpreter

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"adpilot/internal/config/configs"
)

const defaultGeminiModel = "gemini-2.0-flash"

func newGemini(ctx context.Context, cfg configs.Interpreter) (generateFunc, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini requires INTERPRETER_API_KEY")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return func(ctx context.Context, system, user string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(user), &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			MaxOutputTokens:   int32(maxTokens),
			Temperature:       genai.Ptr[float32](0),
		})
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}, nil
}
