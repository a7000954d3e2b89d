package configs

import "time"

// Interpreter selects and configures the text interpreter backend.
type Interpreter struct {
	// Provider is "bedrock" or "gemini". An empty Model picks the
	// provider default.
	Provider string        `env:"PROVIDER" envDefault:"bedrock"`
	Model    string        `env:"MODEL"`
	Region   string        `env:"REGION" envDefault:"us-east-1"`
	APIKey   string        `env:"API_KEY"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// MaxTokens bounds the size of the structured answer.
	MaxTokens int `env:"MAX_TOKENS" envDefault:"1024"`
}
