package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithEngineError maps engine sentinel errors to HTTP statuses.
func abortWithEngineError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, reqdto.ErrInvalidDate):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "invalid_date", "Dates must be formatted as YYYY-MM-DD", nil)
	case errs.Is(err, errs.ErrInvalidRange):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "invalid_range", "Check-out must be after check-in", nil)
	case errs.Is(err, errs.ErrInvalidGuest):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "invalid_guest", "Guest name must not be empty", nil)
	case errs.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "room_not_found", "Room not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "reservation_not_found", "Reservation not found", nil)
	case errs.Is(err, errs.ErrRoomUnavailable):
		httperr.AbortWithCode(c, http.StatusConflict, err, "room_unavailable", "Room is not available for the selected dates", nil)
	case errs.Is(err, errs.ErrPaymentDeclined):
		httperr.AbortWithCode(c, http.StatusPaymentRequired, err, "payment_declined", "Payment declined", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithCode(c, http.StatusBadRequest, err, "invalid_request", "Invalid request format", nil)
}
