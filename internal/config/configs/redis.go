package configs

import "time"

// Redis configures the session store and the status change channel.
type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// SessionTTL is how long an idle conversation is remembered.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// LockTTL bounds a single turn. A crashed turn frees the conversation
	// after this long.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"2m"`
	// Channel is the Pub/Sub channel status changes are published on.
	Channel string `env:"CHANNEL" envDefault:"adpilot:entity-status"`
}
