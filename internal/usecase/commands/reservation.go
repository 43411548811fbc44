package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
)

type ReserveParams struct {
	RoomNumber int
	GuestName  string
	CheckIn    time.Time
	CheckOut   time.Time
}

type ReservationCommands interface {
	Reserve(ctx context.Context, params ReserveParams) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	catalog RoomCatalog
	ledger  ReservationLedger
	logger  *slog.Logger
}

func NewReservationCommands(catalog RoomCatalog, ledger ReservationLedger, logger *slog.Logger) ReservationCommands {
	return &reservationCommandsImpl{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
	}
}

// Reserve books a room. Ledger failures (invalid range, invalid guest, room
// unavailable) are returned unchanged so callers can match them with errors.Is.
func (c *reservationCommandsImpl) Reserve(ctx context.Context, params ReserveParams) (*queries.ReservationView, error) {
	roomEntity, err := c.catalog.ByNumber(params.RoomNumber)
	if err != nil {
		return nil, errs.Mark(err, room.ErrRoomNotFound)
	}

	res, err := c.ledger.Create(ctx, roomEntity, params.GuestName, params.CheckIn, params.CheckOut)
	if err != nil {
		if !infra.IsKind(err, infra.KindConflict) && !infra.IsKind(err, infra.KindInvalid) {
			return nil, errs.Wrap(err, "failed to create reservation")
		}
		return nil, err
	}

	c.logger.InfoContext(ctx, "reservation created",
		slog.Int64("reservation_id", res.ID()),
		slog.Int("room_number", res.RoomNumber()),
		slog.String("period", res.Period().String()),
		slog.String("total", res.Total().String()),
	)

	return queries.NewReservationView(res, roomEntity), nil
}
