package response

import (
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type ReservationResponse struct {
	ID           int64      `json:"id"`
	RoomNumber   int        `json:"roomNumber"`
	RoomCategory string     `json:"roomCategory"`
	GuestName    string     `json:"guestName"`
	CheckInDate  string     `json:"checkIn"`
	CheckOutDate string     `json:"checkOut"`
	Nights       int        `json:"nights"`
	TotalAmount  string     `json:"totalAmount"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	PaidAt       *time.Time `json:"paidAt,omitempty"`
}

type PaymentResponse struct {
	Outcome       string               `json:"outcome"`
	DeclineReason string               `json:"declineReason,omitempty"`
	Reservation   *ReservationResponse `json:"reservation,omitempty"`
}

func FromReservationView(view *queries.ReservationView) (*ReservationResponse, error) {
	resp := &ReservationResponse{}
	// Identically named fields are copied; dates and amount are formatted below.
	if err := copier.Copy(resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map reservation response")
	}
	resp.CheckInDate = view.CheckIn.Format(dateLayout)
	resp.CheckOutDate = view.CheckOut.Format(dateLayout)
	resp.TotalAmount = money.NewMoney(view.TotalCents).String()
	return resp, nil
}

func FromPaymentResult(result *commands.PaymentResult) (*PaymentResponse, error) {
	resp := &PaymentResponse{
		Outcome:       string(result.Outcome),
		DeclineReason: string(result.DeclineReason),
	}
	if result.Reservation != nil {
		reservation, err := FromReservationView(result.Reservation)
		if err != nil {
			return nil, err
		}
		resp.Reservation = reservation
	}
	return resp, nil
}
