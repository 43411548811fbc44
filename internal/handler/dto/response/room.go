package response

import (
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/usecase/queries"
)

type RoomResponse struct {
	Number        int    `json:"number"`
	Category      string `json:"category"`
	PricePerNight string `json:"pricePerNight"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		Number:        view.Number,
		Category:      view.Category,
		PricePerNight: money.NewMoney(view.RateCents).String(),
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(views))
	for i, v := range views {
		out[i] = FromRoomView(v)
	}
	return out
}
