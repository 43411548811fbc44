package room

import (
	"errors"
	"strings"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrRoomNotFound        = errs.ErrRoomNotFound
	ErrInvalidRoomNumber   = errors.New("room number must be positive")
	ErrInvalidCategory     = errors.New("unknown room category")
	ErrNonPositiveRate     = errors.New("nightly rate must be positive")
	ErrDuplicateRoomNumber = errors.New("duplicate room number")
)

type Category string

const (
	CategoryStandard Category = "Standard"
	CategoryDeluxe   Category = "Deluxe"
	CategorySuite    Category = "Suite"
)

var categories = []Category{CategoryStandard, CategoryDeluxe, CategorySuite}

func ParseCategory(value string) (Category, error) {
	value = strings.TrimSpace(value)
	for _, c := range categories {
		if strings.EqualFold(string(c), value) {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

func (c Category) String() string {
	return string(c)
}

// Matches reports whether the category equals filter, ignoring case.
func (c Category) Matches(filter string) bool {
	return strings.EqualFold(string(c), strings.TrimSpace(filter))
}

type Room struct {
	number   int
	category Category
	rate     money.Money
}

func NewRoom(number int, category Category, rate money.Money) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidRoomNumber
	}
	if _, err := ParseCategory(string(category)); err != nil {
		return nil, err
	}
	if !rate.IsPositive() {
		return nil, ErrNonPositiveRate
	}

	return &Room{
		number:   number,
		category: category,
		rate:     rate,
	}, nil
}

func (r *Room) Number() int        { return r.number }
func (r *Room) Category() Category { return r.category }
func (r *Room) Rate() money.Money  { return r.rate }
