package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
)

type RoomCatalog interface {
	ByNumber(number int) (*room.Room, error)
}

// ReservationLedger is the write side of the reservation store.
type ReservationLedger interface {
	Create(ctx context.Context, roomEntity *room.Room, guestName string, checkIn, checkOut time.Time) (*reservation.Reservation, error)
	Get(ctx context.Context, id int64) (*reservation.Reservation, error)
	MarkPaid(ctx context.Context, id int64) (*reservation.Reservation, bool, error)
}
