package repositories

import (
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
)

// RoomRepository defines the interface for the room catalog. The catalog is
// fixed at build time, so the interface exposes reads only and takes no
// context.
type RoomRepository interface {
	// List returns every room in catalog order
	List() []*entities.Room

	// GetByID retrieves a room by ID, or nil when absent
	GetByID(id int) *entities.Room
}
