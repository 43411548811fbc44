package usecase

//go:generate mockgen -source=booking.go -destination=../../tests/mock/usecase/booking.go -package=usecasemock

import (
	"context"
	"time"

	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
)

// BookingService is the engine's external surface: search, reserve, pay and
// lookup. Every method is safe for concurrent use.
type BookingService interface {
	ListRooms(ctx context.Context) ([]*queries.RoomView, error)
	SearchAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, category *string) ([]*queries.RoomView, error)
	Reserve(ctx context.Context, params commands.ReserveParams) (*queries.ReservationView, error)
	GetReservation(ctx context.Context, id int64) (*queries.ReservationView, error)
	Pay(ctx context.Context, params commands.PayParams) (*commands.PaymentResult, error)
}

type bookingService struct {
	reservationCommands commands.ReservationCommands
	paymentCommands     commands.PaymentCommands
	roomQueries         queries.RoomQueries
	reservationQueries  queries.ReservationQueries
}

func NewBookingService(
	reservationCommands commands.ReservationCommands,
	paymentCommands commands.PaymentCommands,
	roomQueries queries.RoomQueries,
	reservationQueries queries.ReservationQueries,
) BookingService {
	return &bookingService{
		reservationCommands: reservationCommands,
		paymentCommands:     paymentCommands,
		roomQueries:         roomQueries,
		reservationQueries:  reservationQueries,
	}
}

func (s *bookingService) ListRooms(ctx context.Context) ([]*queries.RoomView, error) {
	return s.roomQueries.ListRooms(ctx)
}

func (s *bookingService) SearchAvailableRooms(
	ctx context.Context,
	checkIn, checkOut time.Time,
	category *string,
) ([]*queries.RoomView, error) {
	return s.roomQueries.SearchAvailableRooms(ctx, checkIn, checkOut, category)
}

func (s *bookingService) Reserve(ctx context.Context, params commands.ReserveParams) (*queries.ReservationView, error) {
	return s.reservationCommands.Reserve(ctx, params)
}

func (s *bookingService) GetReservation(ctx context.Context, id int64) (*queries.ReservationView, error) {
	return s.reservationQueries.GetByID(ctx, id)
}

func (s *bookingService) Pay(ctx context.Context, params commands.PayParams) (*commands.PaymentResult, error) {
	return s.paymentCommands.Pay(ctx, params)
}
