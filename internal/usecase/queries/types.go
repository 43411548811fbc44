package queries

import (
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
)

// RoomView represents read-optimized room data
type RoomView struct {
	Number    int    `json:"number"`
	Category  string `json:"category"`
	RateCents int64  `json:"rate_cents"`
}

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID           int64      `json:"id"`
	RoomNumber   int        `json:"room_number"`
	RoomCategory string     `json:"room_category"`
	GuestName    string     `json:"guest_name"`
	CheckIn      time.Time  `json:"check_in"`
	CheckOut     time.Time  `json:"check_out"`
	Nights       int        `json:"nights"`
	TotalCents   int64      `json:"total_cents"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
}

func NewRoomView(r *room.Room) *RoomView {
	return &RoomView{
		Number:    r.Number(),
		Category:  r.Category().String(),
		RateCents: r.Rate().Cents(),
	}
}

// NewReservationView renders res; roomEntity may be nil if the room is unknown to the caller.
func NewReservationView(res *reservation.Reservation, roomEntity *room.Room) *ReservationView {
	view := &ReservationView{
		ID:         res.ID(),
		RoomNumber: res.RoomNumber(),
		GuestName:  res.Guest().String(),
		CheckIn:    res.Period().CheckIn(),
		CheckOut:   res.Period().CheckOut(),
		Nights:     res.Period().Nights(),
		TotalCents: res.Total().Cents(),
		Status:     res.Status().String(),
		CreatedAt:  res.CreatedAt(),
		PaidAt:     res.PaidAt(),
	}
	if roomEntity != nil {
		view.RoomCategory = roomEntity.Category().String()
	}
	return view
}
