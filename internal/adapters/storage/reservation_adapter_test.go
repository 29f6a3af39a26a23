package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/adapters/kv"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/adapters/storage"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
)

func reservation(id, user, room string) *entities.Reservation {
	return &entities.Reservation{
		ID:       id,
		UserID:   user,
		RoomName: room,
	}
}

func TestReservationAdapter_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryAdapter()
	repo := storage.NewReservationAdapter(store, "@HotelApp")

	res := &entities.Reservation{
		ID:           "r1",
		RoomID:       3,
		RoomName:     "Suite Ejecutiva",
		UserID:       "ana@example.com",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
		DaysStaying:  3,
		RoomPrice:    250,
	}
	require.NoError(t, repo.Create(ctx, res))

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Suite Ejecutiva", got.RoomName)
	assert.Equal(t, 3, got.DaysStaying)
}

func TestReservationAdapter_BackToBackCreatesKeepCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewReservationAdapter(kv.NewMemoryAdapter(), "@HotelApp")

	// IDs chosen to sort lexically against creation order, so any
	// same-instant stamp collision would reorder the list.
	ids := []string{"z9", "m5", "a1", "x7", "b2"}
	for _, id := range ids {
		require.NoError(t, repo.Create(ctx, reservation(id, "ana@example.com", "Habitación Estándar")))
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(ids))
	for i, res := range all {
		assert.Equal(t, ids[i], res.ID)
	}
}

func TestReservationAdapter_GetMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewReservationAdapter(kv.NewMemoryAdapter(), "@HotelApp")

	got, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReservationAdapter_CreateRequiresID(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewReservationAdapter(kv.NewMemoryAdapter(), "@HotelApp")

	err := repo.Create(ctx, &entities.Reservation{UserID: "x@example.com"})
	assert.Error(t, err)
}

func TestReservationAdapter_ListByUserFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewReservationAdapter(kv.NewMemoryAdapter(), "@HotelApp")

	require.NoError(t, repo.Create(ctx, reservation("r1", "ana@example.com", "Habitación Estándar")))
	require.NoError(t, repo.Create(ctx, reservation("r2", "luis@example.com", "Habitación Superior")))
	require.NoError(t, repo.Create(ctx, reservation("r3", "ana@example.com", "Suite Ejecutiva")))

	mine, err := repo.ListByUser(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "r1", mine[0].ID)
	assert.Equal(t, "r3", mine[1].ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReservationAdapter_ListByUserIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewReservationAdapter(kv.NewMemoryAdapter(), "@HotelApp")
	require.NoError(t, repo.Create(ctx, reservation("r1", "ana@example.com", "Habitación Estándar")))

	first, err := repo.ListByUser(ctx, "ana@example.com")
	require.NoError(t, err)
	second, err := repo.ListByUser(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReservationAdapter_DeleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryAdapter()
	repo := storage.NewReservationAdapter(store, "@HotelApp")

	require.NoError(t, repo.Create(ctx, reservation("r1", "ana@example.com", "Habitación Estándar")))
	before := store.Len()

	require.NoError(t, repo.Create(ctx, reservation("r2", "ana@example.com", "Suite Ejecutiva")))
	require.NoError(t, repo.Delete(ctx, "r2"))

	assert.Equal(t, before, store.Len())
	remaining, err := repo.ListByUser(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "r1", remaining[0].ID)
}

func TestReservationAdapter_DeleteMissingIsNoError(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewReservationAdapter(kv.NewMemoryAdapter(), "@HotelApp")
	assert.NoError(t, repo.Delete(ctx, "ghost"))
}
