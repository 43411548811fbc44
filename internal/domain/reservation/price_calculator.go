package reservation

import (
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
)

type PriceCalculator interface {
	CalculateTotal(r *room.Room, period StayPeriod) money.Money
}

// NightlyPriceCalculator charges the room's nightly rate for every night of the stay.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) CalculateTotal(r *room.Room, period StayPeriod) money.Money {
	return r.Rate().Mul(period.Nights())
}
