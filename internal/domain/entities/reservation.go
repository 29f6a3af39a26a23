package entities

import (
	"time"
)

// Reservation represents a room booking made by a user. Reservations are
// keyed by ID; UserID carries the booking user's email.
type Reservation struct {
	ID           string  `json:"id"`
	RoomID       int     `json:"roomId"`
	RoomName     string  `json:"roomName"`
	UserID       string  `json:"userId"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	DaysStaying  int     `json:"daysStaying"`
	RoomPrice    float64 `json:"roomPrice"`
	TotalPrice   float64 `json:"totalPrice,omitempty"`
	CreatedAt    string  `json:"date,omitempty"`
}

// EffectiveTotal returns the amount the reservation contributes to revenue:
// TotalPrice when set, otherwise RoomPrice times DaysStaying, otherwise zero.
func (r *Reservation) EffectiveTotal() float64 {
	if r.TotalPrice != 0 {
		return r.TotalPrice
	}
	if total := r.RoomPrice * float64(r.DaysStaying); total != 0 {
		return total
	}
	return 0
}

// CheckOut parses the check-out date. The second return is false when the
// date is missing or malformed.
func (r *Reservation) CheckOut() (time.Time, bool) {
	return parseDate(r.CheckOutDate)
}

// CheckIn parses the check-in date. The second return is false when the
// date is missing or malformed.
func (r *Reservation) CheckIn() (time.Time, bool) {
	return parseDate(r.CheckInDate)
}

// IsActive reports whether the reservation's check-out date is strictly
// after the given instant. Reservations with no parseable check-out date
// are never active.
func (r *Reservation) IsActive(now time.Time) bool {
	out, ok := r.CheckOut()
	if !ok {
		return false
	}
	return out.After(now)
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
