package configs

import "time"

// Graph configures the ad platform client. AccessToken, AdAccountID and
// PageID are fallbacks used when a request does not carry its own.
type Graph struct {
	BaseURL     string        `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	Version     string        `env:"VERSION" envDefault:"v21.0"`
	RetryMax    int           `env:"RETRY_MAX" envDefault:"3"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
	AccessToken string        `env:"ACCESS_TOKEN"`
	AdAccountID string        `env:"AD_ACCOUNT_ID"`
	PageID      string        `env:"PAGE_ID"`
}
