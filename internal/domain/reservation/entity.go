package reservation

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrInvalidRange        = errs.ErrInvalidRange
	ErrInvalidGuest        = errs.ErrInvalidGuest
	ErrRoomUnavailable     = errs.ErrRoomUnavailable
	ErrReservationNotFound = errs.ErrReservationNotFound
	ErrNonPositiveTotal    = errors.New("total amount must be positive")
	ErrInvalidID           = errors.New("reservation id must be positive")
)

type Reservation struct {
	id         int64
	roomNumber int
	guest      GuestName
	period     StayPeriod
	total      money.Money
	status     Status
	createdAt  time.Time
	paidAt     *time.Time
}

func NewReservation(
	id int64,
	roomNumber int,
	guest GuestName,
	period StayPeriod,
	total money.Money,
	createdAt time.Time,
) (*Reservation, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if !total.IsPositive() {
		return nil, ErrNonPositiveTotal
	}

	return &Reservation{
		id:         id,
		roomNumber: roomNumber,
		guest:      guest,
		period:     period,
		total:      total,
		status:     StatusPending,
		createdAt:  createdAt,
	}, nil
}

func ReconstructReservation(
	id int64,
	roomNumber int,
	guest GuestName,
	period StayPeriod,
	total money.Money,
	status Status,
	createdAt time.Time,
	paidAt *time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		roomNumber: roomNumber,
		guest:      guest,
		period:     period,
		total:      total,
		status:     status,
		createdAt:  createdAt,
		paidAt:     paidAt,
	}
}

// MarkPaid settles the reservation. It returns false when it was already paid.
func (r *Reservation) MarkPaid(now time.Time) bool {
	if r.status == StatusPaid {
		return false
	}
	r.status = StatusPaid
	r.paidAt = &now
	return true
}

func (r *Reservation) IsPaid() bool {
	return r.status == StatusPaid
}

// Clone returns a copy that does not share mutable state with r.
func (r *Reservation) Clone() *Reservation {
	c := *r
	if r.paidAt != nil {
		paidAt := *r.paidAt
		c.paidAt = &paidAt
	}
	return &c
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) RoomNumber() int      { return r.roomNumber }
func (r *Reservation) Guest() GuestName     { return r.guest }
func (r *Reservation) Period() StayPeriod   { return r.period }
func (r *Reservation) Total() money.Money   { return r.total }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) PaidAt() *time.Time   { return r.paidAt }
