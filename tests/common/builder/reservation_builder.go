//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/reservation"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
)

// Day returns the UTC midnight of the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type ReservationBuilder struct {
	ID         int64
	RoomNumber int
	GuestName  string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalCents int64
	Status     reservation.Status
	CreatedAt  time.Time
	PaidAt     *time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         1,
		RoomNumber: 101,
		GuestName:  "Alice",
		CheckIn:    Day(2024, time.January, 1),
		CheckOut:   Day(2024, time.January, 4),
		TotalCents: 30000,
		Status:     reservation.StatusPending,
		CreatedAt:  time.Date(2023, time.December, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithPeriod(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithGuest(name string) *ReservationBuilder {
	b.GuestName = name
	return b
}

func (b *ReservationBuilder) Paid(at time.Time) *ReservationBuilder {
	b.Status = reservation.StatusPaid
	b.PaidAt = &at
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	period, err := reservation.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	guest, err := reservation.NewGuestName(b.GuestName)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.ID, b.RoomNumber, guest, period, money.NewMoney(b.TotalCents), b.CreatedAt)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	nights := int((b.CheckOut.Unix() - b.CheckIn.Unix()) / (24 * 60 * 60))
	return &queries.ReservationView{
		ID:           b.ID,
		RoomNumber:   b.RoomNumber,
		RoomCategory: "Standard",
		GuestName:    b.GuestName,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Nights:       nights,
		TotalCents:   b.TotalCents,
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
		PaidAt:       b.PaidAt,
	}
}

func (b *ReservationBuilder) BuildReserveParams() commands.ReserveParams {
	return commands.ReserveParams{
		RoomNumber: b.RoomNumber,
		GuestName:  b.GuestName,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomNumber: b.RoomNumber,
		GuestName:  b.GuestName,
		CheckIn:    b.CheckIn.Format(reqdto.DateLayout),
		CheckOut:   b.CheckOut.Format(reqdto.DateLayout),
	}
}

type PaymentBuilder struct {
	Method      string
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		Method:      "CreditCard",
		CardNumber:  "1234567812345678",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) BuildParams(reservationID int64) commands.PayParams {
	return commands.PayParams{
		ReservationID: reservationID,
		Method:        b.Method,
		CardNumber:    b.CardNumber,
		ExpiryMonth:   b.ExpiryMonth,
		ExpiryYear:    b.ExpiryYear,
	}
}

func (b *PaymentBuilder) BuildRequestDTO() reqdto.PayReservationRequest {
	return reqdto.PayReservationRequest{
		Method:      b.Method,
		CardNumber:  b.CardNumber,
		ExpiryMonth: b.ExpiryMonth,
		ExpiryYear:  b.ExpiryYear,
	}
}
