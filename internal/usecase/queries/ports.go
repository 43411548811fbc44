package queries

import (
	"context"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
)

type RoomCatalog interface {
	All() []*room.Room
	ByNumber(number int) (*room.Room, error)
}

type ReservationReadStore interface {
	Get(ctx context.Context, id int64) (*reservation.Reservation, error)
	Snapshot(ctx context.Context) map[int][]*reservation.Reservation
}
