package model

import (
	"time"
)

type User struct {
	ID             string       `json:"id"`
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	HashedPassword string       `json:"-"` // Not exposed
	CreatedAt      time.Time    `json:"created_at"`
	LoginHistory   []LoginEntry `json:"login_history,omitempty"`
}

// LoginEntry is one row of a user's authentication audit trail.
// Entries are append-only; insertion order is chronological order.
type LoginEntry struct {
	LoggedAt  time.Time `json:"date_time"`
	UserAgent string    `json:"user_agent"`
}
