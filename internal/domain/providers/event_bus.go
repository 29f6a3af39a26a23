package providers

import (
	"context"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to session
// state changes
type EventBus interface {
	// Publish publishes an event to all subscribers of a channel
	Publish(ctx context.Context, channel string, event *entities.SessionEvent) error

	// Subscribe subscribes to events on a channel; the returned channel is
	// closed when ctx is cancelled or the bus shuts down
	Subscribe(ctx context.Context, channel string) (<-chan *entities.SessionEvent, error)

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannel constants for the session store's channels
const (
	// EventChannelSession carries login/logout state changes
	EventChannelSession = "session:updates"

	// EventChannelReservations carries reservation list changes
	EventChannelReservations = "reservations:updates"
)
