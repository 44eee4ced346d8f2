package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventUserLoggedIn    EventType = "user_logged_in"
	EventTimezoneCreated EventType = "timezone_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TimezoneCreatedPayload payload.
type TimezoneCreatedPayload struct {
	TimezoneID      string  `json:"timezone_id"`
	Name            string  `json:"name"`
	City            string  `json:"city"`
	DifferenceToGMT int     `json:"difference_to_gmt"`
	CreatorID       *string `json:"creator_id,omitempty"`
}
