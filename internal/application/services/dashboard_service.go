package services

import (
	"sort"
	"time"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
)

// RoomPopularity is one entry of the popularity ranking.
type RoomPopularity struct {
	RoomName string `json:"roomName"`
	Count    int    `json:"count"`
}

// DashboardSummary is the admin dashboard's derived view of a reservation
// list.
type DashboardSummary struct {
	TotalRevenue float64                 `json:"totalRevenue"`
	ActiveCount  int                     `json:"activeCount"`
	TotalCount   int                     `json:"totalCount"`
	PopularRooms []RoomPopularity        `json:"popularRooms"`
	Recent       []*entities.Reservation `json:"recent"`
}

// recentLimit caps how many reservations the summary carries verbatim.
const recentLimit = 3

// DashboardService derives read-only aggregate views from reservation
// lists. Every method is pure and deterministic; nothing here touches
// storage, so the figures are recomputed on every call.
type DashboardService struct{}

// NewDashboardService creates a new dashboard service
func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// TotalRevenue sums the effective total of every reservation.
func (s *DashboardService) TotalRevenue(reservations []*entities.Reservation) float64 {
	var total float64
	for _, res := range reservations {
		total += res.EffectiveTotal()
	}
	return total
}

// ActiveReservations returns the reservations whose check-out date is
// strictly after now, preserving relative order.
func (s *DashboardService) ActiveReservations(reservations []*entities.Reservation, now time.Time) []*entities.Reservation {
	active := make([]*entities.Reservation, 0, len(reservations))
	for _, res := range reservations {
		if res.IsActive(now) {
			active = append(active, res)
		}
	}
	return active
}

// PopularRooms groups reservations by room name and returns the counts in
// descending order. Ties keep the order in which a room first appears.
func (s *DashboardService) PopularRooms(reservations []*entities.Reservation) []RoomPopularity {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, res := range reservations {
		if _, seen := counts[res.RoomName]; !seen {
			order = append(order, res.RoomName)
		}
		counts[res.RoomName]++
	}

	ranking := make([]RoomPopularity, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, RoomPopularity{RoomName: name, Count: counts[name]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	return ranking
}

// Summary assembles the admin dashboard view.
func (s *DashboardService) Summary(reservations []*entities.Reservation, now time.Time) *DashboardSummary {
	recent := reservations
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	return &DashboardSummary{
		TotalRevenue: s.TotalRevenue(reservations),
		ActiveCount:  len(s.ActiveReservations(reservations, now)),
		TotalCount:   len(reservations),
		PopularRooms: s.PopularRooms(reservations),
		Recent:       recent,
	}
}
