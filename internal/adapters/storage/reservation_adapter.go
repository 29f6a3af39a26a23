package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/entities"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/providers"
	"github.com/zatekoja/Hotelbookingdesign/backend/internal/domain/repositories"
)

// ReservationAdapter implements ReservationRepository over a KVStore. Each
// reservation lives under its own key, so concurrent writers never rewrite
// one another's records; creation order is recovered from a per-record
// sequence stamp.
type ReservationAdapter struct {
	store     providers.KVStore
	keyPrefix string

	// seq is seeded with the clock and incremented per create, so stamps
	// stay unique and strictly increasing even within one nanosecond.
	seq atomic.Int64
}

// reservationRecord is the persisted envelope. Seq orders records by
// creation.
type reservationRecord struct {
	Seq         int64                 `json:"seq"`
	Reservation *entities.Reservation `json:"reservation"`
}

// NewReservationAdapter creates a reservation repository over the given
// store. keyPrefix namespaces the records, e.g. "@HotelApp".
func NewReservationAdapter(store providers.KVStore, keyPrefix string) repositories.ReservationRepository {
	a := &ReservationAdapter{
		store:     store,
		keyPrefix: keyPrefix,
	}
	a.seq.Store(time.Now().UnixNano())
	return a
}

func (a *ReservationAdapter) key(id string) string {
	return a.keyPrefix + ":reservation:" + id
}

func (a *ReservationAdapter) prefix() string {
	return a.keyPrefix + ":reservation:"
}

// Create persists a new reservation under its ID
func (a *ReservationAdapter) Create(ctx context.Context, reservation *entities.Reservation) error {
	if reservation.ID == "" {
		return fmt.Errorf("reservation has no id")
	}
	record := reservationRecord{
		Seq:         a.seq.Add(1),
		Reservation: reservation,
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal reservation %s: %w", reservation.ID, err)
	}
	if err := a.store.Set(ctx, a.key(reservation.ID), data); err != nil {
		return fmt.Errorf("failed to persist reservation %s: %w", reservation.ID, err)
	}
	return nil
}

// GetByID retrieves a reservation by ID
func (a *ReservationAdapter) GetByID(ctx context.Context, id string) (*entities.Reservation, error) {
	data, err := a.store.Get(ctx, a.key(id))
	if errors.Is(err, providers.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation %s: %w", id, err)
	}
	record, err := decodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", id, err)
	}
	return record.Reservation, nil
}

// Delete removes a reservation by ID
func (a *ReservationAdapter) Delete(ctx context.Context, id string) error {
	if err := a.store.Delete(ctx, a.key(id)); err != nil {
		return fmt.Errorf("failed to delete reservation %s: %w", id, err)
	}
	return nil
}

// ListByUser retrieves the reservations whose UserID equals userID, in
// creation order
func (a *ReservationAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Reservation, error) {
	all, err := a.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entities.Reservation, 0, len(all))
	for _, res := range all {
		if res.UserID == userID {
			filtered = append(filtered, res)
		}
	}
	return filtered, nil
}

// ListAll retrieves every persisted reservation in creation order
func (a *ReservationAdapter) ListAll(ctx context.Context) ([]*entities.Reservation, error) {
	keys, err := a.store.Keys(ctx, a.prefix())
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate reservations: %w", err)
	}

	records := make([]reservationRecord, 0, len(keys))
	for _, key := range keys {
		data, err := a.store.Get(ctx, key)
		if errors.Is(err, providers.ErrKeyNotFound) {
			// Removed between Keys and Get; skip.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", key, err)
		}
		record, err := decodeRecord(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Seq != records[j].Seq {
			return records[i].Seq < records[j].Seq
		}
		return records[i].Reservation.ID < records[j].Reservation.ID
	})

	reservations := make([]*entities.Reservation, 0, len(records))
	for _, record := range records {
		reservations = append(reservations, record.Reservation)
	}
	return reservations, nil
}

func decodeRecord(data []byte) (reservationRecord, error) {
	var record reservationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("failed to unmarshal reservation record: %w", err)
	}
	if record.Reservation == nil {
		return record, fmt.Errorf("reservation record has no payload")
	}
	return record, nil
}
