package repositories

import (
	"context"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
)

// ReservationRepository defines the interface for reservation persistence.
// The persisted set is the union of every user's reservations; listing by
// user filters on the reservation's UserID (the user's email).
type ReservationRepository interface {
	// Create persists a new reservation under its ID
	Create(ctx context.Context, reservation *entities.Reservation) error

	// GetByID retrieves a reservation by ID
	GetByID(ctx context.Context, id string) (*entities.Reservation, error)

	// Delete removes a reservation by ID; deleting an absent ID is not an error
	Delete(ctx context.Context, id string) error

	// ListByUser retrieves the reservations whose UserID equals userID,
	// in creation order
	ListByUser(ctx context.Context, userID string) ([]*entities.Reservation, error)

	// ListAll retrieves every persisted reservation in creation order
	ListAll(ctx context.Context) ([]*entities.Reservation, error)
}
