package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/application/services"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
)

func TestTotalRevenue_MixedPricingFields(t *testing.T) {
	svc := services.NewDashboardService()
	list := []*entities.Reservation{
		{RoomName: "A", TotalPrice: 100},
		{RoomName: "A", RoomPrice: 50, DaysStaying: 2},
		{RoomName: "B", TotalPrice: 30},
	}

	assert.Equal(t, 230.0, svc.TotalRevenue(list))
}

func TestTotalRevenue_SkipsUnpriceable(t *testing.T) {
	svc := services.NewDashboardService()
	list := []*entities.Reservation{
		{RoomName: "A", TotalPrice: 100},
		{RoomName: "B"},
		{RoomName: "C", DaysStaying: 3},
	}

	assert.Equal(t, 100.0, svc.TotalRevenue(list))
}

func TestTotalRevenue_Additive(t *testing.T) {
	svc := services.NewDashboardService()
	a := []*entities.Reservation{{TotalPrice: 100}, {RoomPrice: 50, DaysStaying: 2}}
	b := []*entities.Reservation{{TotalPrice: 30}}

	combined := append(append([]*entities.Reservation{}, a...), b...)
	assert.Equal(t, svc.TotalRevenue(a)+svc.TotalRevenue(b), svc.TotalRevenue(combined))
}

func TestPopularRooms_DescendingWithStableTies(t *testing.T) {
	svc := services.NewDashboardService()
	list := []*entities.Reservation{
		{RoomName: "A", TotalPrice: 100},
		{RoomName: "A", RoomPrice: 50, DaysStaying: 2},
		{RoomName: "B", TotalPrice: 30},
	}

	ranking := svc.PopularRooms(list)

	require.Len(t, ranking, 2)
	assert.Equal(t, services.RoomPopularity{RoomName: "A", Count: 2}, ranking[0])
	assert.Equal(t, services.RoomPopularity{RoomName: "B", Count: 1}, ranking[1])
}

func TestPopularRooms_TieKeepsFirstSeenOrder(t *testing.T) {
	svc := services.NewDashboardService()
	list := []*entities.Reservation{
		{RoomName: "Suite Ejecutiva"},
		{RoomName: "Habitación Estándar"},
		{RoomName: "Habitación Estándar"},
		{RoomName: "Suite Ejecutiva"},
		{RoomName: "Habitación Superior"},
	}

	ranking := svc.PopularRooms(list)

	require.Len(t, ranking, 3)
	assert.Equal(t, "Suite Ejecutiva", ranking[0].RoomName)
	assert.Equal(t, "Habitación Estándar", ranking[1].RoomName)
	assert.Equal(t, "Habitación Superior", ranking[2].RoomName)
}

func TestPopularRooms_Empty(t *testing.T) {
	svc := services.NewDashboardService()
	assert.Empty(t, svc.PopularRooms(nil))
}

func TestActiveReservations_CheckOutStrictlyAfterNow(t *testing.T) {
	svc := services.NewDashboardService()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	list := []*entities.Reservation{
		{ID: "past", CheckOutDate: "2026-08-01"},
		{ID: "today", CheckOutDate: "2026-09-01"},
		{ID: "future", CheckOutDate: "2026-10-01"},
		{ID: "undated"},
	}

	active := svc.ActiveReservations(list, now)

	require.Len(t, active, 1)
	assert.Equal(t, "future", active[0].ID)
}

func TestActiveReservations_RFC3339Dates(t *testing.T) {
	svc := services.NewDashboardService()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	list := []*entities.Reservation{
		{ID: "future", CheckOutDate: "2026-09-02T10:00:00Z"},
		{ID: "past", CheckOutDate: "2026-08-30T10:00:00Z"},
	}

	active := svc.ActiveReservations(list, now)

	require.Len(t, active, 1)
	assert.Equal(t, "future", active[0].ID)
}

func TestSummary_CapsRecentAndCountsEverything(t *testing.T) {
	svc := services.NewDashboardService()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	list := []*entities.Reservation{
		{ID: "r1", RoomName: "A", TotalPrice: 100, CheckOutDate: "2026-10-01"},
		{ID: "r2", RoomName: "A", RoomPrice: 50, DaysStaying: 2, CheckOutDate: "2026-08-01"},
		{ID: "r3", RoomName: "B", TotalPrice: 30, CheckOutDate: "2026-10-01"},
		{ID: "r4", RoomName: "B", TotalPrice: 20, CheckOutDate: "2026-10-01"},
	}

	summary := svc.Summary(list, now)

	assert.Equal(t, 250.0, summary.TotalRevenue)
	assert.Equal(t, 3, summary.ActiveCount)
	assert.Equal(t, 4, summary.TotalCount)
	require.Len(t, summary.Recent, 3)
	assert.Equal(t, "r1", summary.Recent[0].ID)
	require.Len(t, summary.PopularRooms, 2)
	assert.Equal(t, 2, summary.PopularRooms[0].Count)
}
