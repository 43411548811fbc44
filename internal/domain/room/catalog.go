package room

import (
	"fmt"

	"hotel-booking/internal/domain/money"

	"github.com/go-playground/validator/v10"
)

// Seed is the configuration shape of one room.
type Seed struct {
	Number        int    `validate:"gt=0"`
	Category      string `validate:"required,room_category"`
	PricePerNight string `validate:"required,numeric"`
}

// Catalog is the fixed registry of rooms, ordered as seeded.
// It is never mutated after construction and is safe for concurrent reads.
type Catalog struct {
	rooms    []*Room
	byNumber map[int]*Room
}

func NewCatalog(rooms []*Room) (*Catalog, error) {
	byNumber := make(map[int]*Room, len(rooms))
	ordered := make([]*Room, 0, len(rooms))
	for _, r := range rooms {
		if _, exists := byNumber[r.Number()]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateRoomNumber, r.Number())
		}
		byNumber[r.Number()] = r
		ordered = append(ordered, r)
	}
	return &Catalog{rooms: ordered, byNumber: byNumber}, nil
}

func NewCatalogFromSeeds(seeds []Seed) (*Catalog, error) {
	validate := newSeedValidator()

	rooms := make([]*Room, 0, len(seeds))
	for _, s := range seeds {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("invalid room seed %d: %w", s.Number, err)
		}

		category, err := ParseCategory(s.Category)
		if err != nil {
			return nil, err
		}
		rate, err := money.FromDecimal(s.PricePerNight)
		if err != nil {
			return nil, fmt.Errorf("invalid price for room %d: %w", s.Number, err)
		}

		r, err := NewRoom(s.Number, category, rate)
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", s.Number, err)
		}
		rooms = append(rooms, r)
	}
	return NewCatalog(rooms)
}

func newSeedValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("room_category", func(fl validator.FieldLevel) bool {
		_, err := ParseCategory(fl.Field().String())
		return err == nil
	})
	return v
}

// All returns every room in catalog order.
func (c *Catalog) All() []*Room {
	out := make([]*Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

func (c *Catalog) ByNumber(number int) (*Room, error) {
	r, ok := c.byNumber[number]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

func (c *Catalog) Len() int {
	return len(c.rooms)
}
