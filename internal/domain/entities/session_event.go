package entities

import (
	"time"
)

// SessionEventType represents the type of session state change
type SessionEventType string

const (
	SessionEventTypeUserSet              SessionEventType = "user_set"
	SessionEventTypeUserCleared          SessionEventType = "user_cleared"
	SessionEventTypeReservationAdded     SessionEventType = "reservation_added"
	SessionEventTypeReservationCancelled SessionEventType = "reservation_cancelled"
	SessionEventTypeReservationsLoaded   SessionEventType = "reservations_loaded"
)

// SessionEvent represents a state change published by the session store so
// presentation layers can re-render.
type SessionEvent struct {
	EventType     SessionEventType `json:"event_type"`
	UserEmail     string           `json:"user_email,omitempty"`
	ReservationID string           `json:"reservation_id,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}

// NewSessionEvent creates a new session event stamped with the current time
func NewSessionEvent(eventType SessionEventType, userEmail, reservationID string) *SessionEvent {
	return &SessionEvent{
		EventType:     eventType,
		UserEmail:     userEmail,
		ReservationID: reservationID,
		Timestamp:     time.Now(),
	}
}
