package reservation

import (
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/clock"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation builds a pending reservation. The id is assigned by the caller,
// which owns the sequence.
func (f *Factory) CreateReservation(
	id int64,
	roomEntity *room.Room,
	guest GuestName,
	period StayPeriod,
) (*Reservation, error) {
	total := f.PriceCalculator.CalculateTotal(roomEntity, period)

	return NewReservation(
		id,
		roomEntity.Number(),
		guest,
		period,
		total,
		f.Clock.Now(),
	)
}
