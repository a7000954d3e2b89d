package domain

import (
	"time"
)

// StatusChange is broadcast after an entity run state was toggled.
type StatusChange struct {
	EntityID string    `json:"entityId"`
	Name     string    `json:"name"`
	Scope    Scope     `json:"scope"`
	Action   Action    `json:"action"`
	Status   string    `json:"status"`
	At       time.Time `json:"at"`
}
