package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveTotal(t *testing.T) {
	tests := []struct {
		name string
		res  Reservation
		want float64
	}{
		{"total price wins", Reservation{TotalPrice: 100, RoomPrice: 50, DaysStaying: 3}, 100},
		{"derived from nightly rate", Reservation{RoomPrice: 50, DaysStaying: 2}, 100},
		{"no pricing data", Reservation{}, 0},
		{"rate without nights", Reservation{RoomPrice: 50}, 0},
		{"nights without rate", Reservation{DaysStaying: 4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.EffectiveTotal())
		})
	}
}

func TestCheckOut_DateLayouts(t *testing.T) {
	res := Reservation{CheckOutDate: "2026-09-15"}
	out, ok := res.CheckOut()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), out)

	res.CheckOutDate = "2026-09-15T14:00:00Z"
	out, ok = res.CheckOut()
	assert.True(t, ok)
	assert.Equal(t, 14, out.Hour())

	res.CheckOutDate = "not-a-date"
	_, ok = res.CheckOut()
	assert.False(t, ok)

	res.CheckOutDate = ""
	_, ok = res.CheckOut()
	assert.False(t, ok)
}

func TestIsActive(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&Reservation{CheckOutDate: "2026-09-02"}).IsActive(now))
	assert.False(t, (&Reservation{CheckOutDate: "2026-08-31"}).IsActive(now))
	assert.False(t, (&Reservation{}).IsActive(now))
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleClient}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}

func TestRoomHasFeature(t *testing.T) {
	room := &Room{Features: []string{"TV", "WiFi"}}
	assert.True(t, room.HasFeature("WiFi"))
	assert.False(t, room.HasFeature("Jacuzzi"))
}
