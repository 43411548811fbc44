package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	booking usecase.BookingService
}

func NewRoomHandler(booking usecase.BookingService) *RoomHandler {
	return &RoomHandler{booking: booking}
}

// @Summary List rooms
// @Description List every room in catalog order
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.booking.ListRooms(c.Request.Context())
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Search available rooms
// @Description Rooms free for [checkIn, checkOut), optionally filtered by category (case-insensitive)
// @Tags rooms
// @Produce json
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param category query string false "Room category"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/available [get]
func (h *RoomHandler) SearchAvailableRooms(c *gin.Context) {
	var req reqdto.SearchRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	views, err := h.booking.SearchAvailableRooms(c.Request.Context(), params.CheckIn, params.CheckOut, params.Category)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}
