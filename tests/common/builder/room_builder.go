//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"
)

type RoomBuilder struct {
	Number    int
	Category  room.Category
	RateCents int64
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Number:    101,
		Category:  room.CategoryStandard,
		RateCents: 10000,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithNumber(number int) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) WithCategory(category room.Category) *RoomBuilder {
	b.Category = category
	return b
}

func (b *RoomBuilder) WithRateCents(cents int64) *RoomBuilder {
	b.RateCents = cents
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.Number, b.Category, money.NewMoney(b.RateCents))
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		Number:    b.Number,
		Category:  b.Category.String(),
		RateCents: b.RateCents,
	}
}

// DefaultCatalog is the five-room hotel every scenario starts from:
// 101/102 Standard 100.00, 201/202 Deluxe 200.00, 301 Suite 300.00.
func DefaultCatalog() (*room.Catalog, error) {
	return room.NewCatalogFromSeeds(DefaultSeeds())
}

func DefaultSeeds() []room.Seed {
	defaults := config.DefaultRoomSeeds()
	seeds := make([]room.Seed, len(defaults))
	for i, s := range defaults {
		seeds[i] = room.Seed{Number: s.Number, Category: s.Category, PricePerNight: s.PricePerNight}
	}
	return seeds
}
