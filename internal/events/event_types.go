package events

import (
	"time"

	"github.com/spec-kit/hr-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered   EventType = "user_registered"
	EventUserVerified     EventType = "user_verified"
	EventUserAuthorized   EventType = "user_authorized"
	EventPermitAuthorized EventType = "permit_authorized"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
}

// UserAuthorizedPayload payload.
type UserAuthorizedPayload struct {
	Answer   string           `json:"answer"`
	OldState domain.UserState `json:"old_state"`
	NewState domain.UserState `json:"new_state"`
}

// PermitAuthorizedPayload payload.
type PermitAuthorizedPayload struct {
	PermitID string             `json:"permit_id"`
	NewState domain.PermitState `json:"new_state"`
}
