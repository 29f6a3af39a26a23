package catalog

import (
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/repositories"
)

// StaticAdapter implements RoomRepository over the compiled-in catalog.
type StaticAdapter struct {
	rooms []*entities.Room
}

// rooms is the storefront's fixed catalog.
var rooms = []*entities.Room{
	{
		ID:          1,
		Name:        "Habitación Estándar",
		Description: "Habitación cómoda con todas las comodidades básicas para una estancia agradable.",
		Price:       100,
		Images:      []string{"habitaciones/habitacionStandar.png"},
		Features:    []string{"Cama doble", "Baño privado", "TV", "WiFi"},
		Available:   true,
	},
	{
		ID:          2,
		Name:        "Habitación Superior",
		Description: "Habitación espaciosa con vistas y comodidades adicionales para una estancia superior.",
		Price:       150,
		Images:      []string{"habitaciones/habitacionSuperior.png"},
		Features:    []string{"Cama king", "Baño de lujo", "TV", "WiFi", "Minibar"},
		Available:   true,
	},
	{
		ID:          3,
		Name:        "Suite Ejecutiva",
		Description: "Suite de lujo con sala de estar separada y todas las comodidades premium.",
		Price:       250,
		Images:      []string{"habitaciones/SuiteEjecutiva.png"},
		Features:    []string{"Cama king", "Sala de estar", "Jacuzzi", "TV", "WiFi", "Minibar", "Desayuno incluido"},
		Available:   true,
	},
}

// NewStaticAdapter creates the catalog repository
func NewStaticAdapter() repositories.RoomRepository {
	return &StaticAdapter{rooms: rooms}
}

// List returns every room in catalog order
func (a *StaticAdapter) List() []*entities.Room {
	out := make([]*entities.Room, len(a.rooms))
	copy(out, a.rooms)
	return out
}

// GetByID retrieves a room by ID, or nil when absent
func (a *StaticAdapter) GetByID(id int) *entities.Room {
	for _, room := range a.rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}
