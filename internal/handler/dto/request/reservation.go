package request

import (
	"hotel-booking/internal/usecase/commands"
)

type CreateReservationRequest struct {
	RoomNumber int    `json:"roomNumber" binding:"required,gt=0"`
	GuestName  string `json:"guestName" binding:"required"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
}

func (r CreateReservationRequest) ToParams() (commands.ReserveParams, error) {
	checkIn, err := ParseDate(r.CheckIn)
	if err != nil {
		return commands.ReserveParams{}, err
	}
	checkOut, err := ParseDate(r.CheckOut)
	if err != nil {
		return commands.ReserveParams{}, err
	}

	return commands.ReserveParams{
		RoomNumber: r.RoomNumber,
		GuestName:  r.GuestName,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, nil
}

// Expiry fields are passed through untouched; the authorizer does not check them.
type PayReservationRequest struct {
	Method      string `json:"method" binding:"required"`
	CardNumber  string `json:"cardNumber" binding:"required"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
}

func (r PayReservationRequest) ToParams(reservationID int64) commands.PayParams {
	return commands.PayParams{
		ReservationID: reservationID,
		Method:        r.Method,
		CardNumber:    r.CardNumber,
		ExpiryMonth:   r.ExpiryMonth,
		ExpiryYear:    r.ExpiryYear,
	}
}
