package request

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

type SearchRoomsRequest struct {
	CheckIn  string  `form:"checkIn" binding:"required"`
	CheckOut string  `form:"checkOut" binding:"required"`
	Category *string `form:"category"`
}

type SearchRoomsParams struct {
	CheckIn  time.Time
	CheckOut time.Time
	Category *string
}

func (r SearchRoomsRequest) ToParams() (SearchRoomsParams, error) {
	checkIn, err := ParseDate(r.CheckIn)
	if err != nil {
		return SearchRoomsParams{}, err
	}
	checkOut, err := ParseDate(r.CheckOut)
	if err != nil {
		return SearchRoomsParams{}, err
	}

	return SearchRoomsParams{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Category: r.GetCategory(),
	}, nil
}

func (r SearchRoomsRequest) GetCategory() *string {
	if r.Category == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Category)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
