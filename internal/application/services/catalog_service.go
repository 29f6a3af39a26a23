package services

import (
	"strings"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/repositories"
)

// RoomFilter is the search criteria of the explore screen. MinPrice and
// MaxPrice bound an inclusive range; an empty Features slice selects
// everything.
type RoomFilter struct {
	Query    string
	MinPrice float64
	MaxPrice float64
	Features []string
}

// CatalogService answers room queries against the static catalog.
type CatalogService struct {
	rooms repositories.RoomRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(rooms repositories.RoomRepository) *CatalogService {
	return &CatalogService{rooms: rooms}
}

// Rooms returns the full catalog in catalog order.
func (s *CatalogService) Rooms() []*entities.Room {
	return s.rooms.List()
}

// Room retrieves a room by ID, or nil when absent.
func (s *CatalogService) Room(id int) *entities.Room {
	return s.rooms.GetByID(id)
}

// Filter returns the rooms matching the given criteria: name or description
// contains the query case-insensitively, price within the inclusive range,
// and every selected feature present.
func (s *CatalogService) Filter(filter RoomFilter) []*entities.Room {
	query := strings.ToLower(filter.Query)

	matched := make([]*entities.Room, 0)
	for _, room := range s.rooms.List() {
		matchesSearch := strings.Contains(strings.ToLower(room.Name), query) ||
			strings.Contains(strings.ToLower(room.Description), query)
		matchesPrice := room.Price >= filter.MinPrice && room.Price <= filter.MaxPrice
		if matchesSearch && matchesPrice && hasAllFeatures(room, filter.Features) {
			matched = append(matched, room)
		}
	}
	return matched
}

// AvailableFeatures returns the de-duplicated union of catalog features in
// first-seen order.
func (s *CatalogService) AvailableFeatures() []string {
	seen := make(map[string]struct{})
	features := make([]string, 0)
	for _, room := range s.rooms.List() {
		for _, feature := range room.Features {
			if _, ok := seen[feature]; ok {
				continue
			}
			seen[feature] = struct{}{}
			features = append(features, feature)
		}
	}
	return features
}

func hasAllFeatures(room *entities.Room, features []string) bool {
	for _, feature := range features {
		if !room.HasFeature(feature) {
			return false
		}
	}
	return true
}
