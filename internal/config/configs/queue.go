package configs

import "time"

// Queue configures batch publishing.
type Queue struct {
	// Delay is the pause between two remote calls.
	Delay time.Duration `env:"DELAY" envDefault:"1s"`
}
